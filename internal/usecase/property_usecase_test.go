package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"
	mock_interfaces "rentora/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type propertyMocks struct {
	repo      *mock_interfaces.MockIPropertyRepository
	tenants   *mock_interfaces.MockITenantRepository
	contracts *mock_interfaces.MockIContractRepository
	payments  *mock_interfaces.MockIPaymentRepository
	txm       *mock_interfaces.MockITransactionManager
	tx        *mock_interfaces.MockITransaction
}

func newPropertyUseCase(ctrl *gomock.Controller, now time.Time) (*PropertyUseCase, propertyMocks) {
	m := propertyMocks{
		repo:      mock_interfaces.NewMockIPropertyRepository(ctrl),
		tenants:   mock_interfaces.NewMockITenantRepository(ctrl),
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		txm:       mock_interfaces.NewMockITransactionManager(ctrl),
		tx:        mock_interfaces.NewMockITransaction(ctrl),
	}
	uc := NewPropertyUseCase(m.repo, m.tenants, m.contracts, m.payments, m.txm, fixedClock{now: now})
	return uc, m
}

func TestPropertyUseCase_Create(t *testing.T) {
	owner := "owner-1"
	in := CreatePropertyInput{
		Name:        "Sunset Loft",
		Address:     "Rua Augusta 100",
		City:        "Sao Paulo",
		Country:     "BR",
		Type:        entities.PropertyTypeApartment,
		MonthlyRent: 2500,
	}

	t.Run("missing name", func(t *testing.T) {
		uc, _ := newPropertyUseCase(gomock.NewController(t), day(2025, time.January, 1))
		bad := in
		bad.Name = "  "
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidPropertyInput) {
			t.Fatalf("expected ErrInvalidPropertyInput, got %v", err)
		}
	})

	t.Run("invalid rent", func(t *testing.T) {
		uc, _ := newPropertyUseCase(gomock.NewController(t), day(2025, time.January, 1))
		bad := in
		bad.MonthlyRent = -1
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidPropertyRent) {
			t.Fatalf("expected ErrInvalidPropertyRent, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newPropertyUseCase(gomock.NewController(t), day(2025, time.January, 1))
		bad := in
		bad.Status = entities.PropertyStatus("bogus")
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidPropertyStatus) {
			t.Fatalf("expected ErrInvalidPropertyStatus, got %v", err)
		}
	})

	t.Run("defaults to available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropertyUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.ID == "" || p.OwnerID != owner {
					t.Fatalf("unexpected property: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), owner, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PropertyStatusAvailable {
			t.Fatalf("expected available, got %s", p.Status)
		}
	})
}

func TestPropertyUseCase_Update(t *testing.T) {
	owner := "owner-1"
	stored := entities.Property{
		ID: "prop-1", OwnerID: owner, Name: "Sunset Loft", Address: "Rua Augusta 100",
		MonthlyRent: 2500, Status: entities.PropertyStatusAvailable, Version: 3,
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropertyUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(stored, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) { return p, nil },
		)

		rent := 2800.0
		p, err := uc.Update(context.Background(), "prop-1", owner, UpdatePropertyInput{MonthlyRent: &rent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.MonthlyRent != 2800 || p.Name != "Sunset Loft" {
			t.Fatalf("unexpected property: %+v", p)
		}
	})

	t.Run("version conflict surfaces as concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropertyUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(stored, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Property{}, interfaces.ErrVersionConflict)

		rent := 2800.0
		_, err := uc.Update(context.Background(), "prop-1", owner, UpdatePropertyInput{MonthlyRent: &rent})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestPropertyUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newPropertyUseCase(ctrl, day(2025, time.January, 1))
	stored := entities.Property{ID: "prop-1", OwnerID: owner, Status: entities.PropertyStatusOccupied}

	m.repo.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(stored, nil)
	m.payments.EXPECT().ListByProperty(gomock.Any(), "prop-1", owner).Return([]entities.Payment{{ID: "pay-1"}}, nil)
	m.contracts.EXPECT().ListByProperty(gomock.Any(), "prop-1", owner).Return([]entities.Contract{{ID: "contract-1"}}, nil)
	m.tenants.EXPECT().ListByProperty(gomock.Any(), "prop-1", owner).Return([]entities.Tenant{
		{ID: "tenant-1", PropertyID: "prop-1", ContractStatus: entities.TenantContractActive},
	}, nil)
	m.txm.EXPECT().Begin().Return(m.tx)
	m.tx.EXPECT().DeletePayment("pay-1", owner)
	m.tx.EXPECT().DeleteContract("contract-1", owner)
	m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
		if tenant.PropertyID != "" || tenant.ContractStatus != entities.TenantContractNone {
			t.Fatalf("expected detached tenant, got %+v", tenant)
		}
	})
	m.tx.EXPECT().DeleteProperty("prop-1", owner)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	if err := uc.Delete(context.Background(), "prop-1", owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPropertyUseCase_Lists(t *testing.T) {
	owner := "owner-1"

	t.Run("invalid status filter", func(t *testing.T) {
		uc, _ := newPropertyUseCase(gomock.NewController(t), day(2025, time.January, 1))
		_, err := uc.ListByStatus(context.Background(), owner, entities.PropertyStatus("bogus"))
		if !errors.Is(err, ErrInvalidPropertyStatus) {
			t.Fatalf("expected ErrInvalidPropertyStatus, got %v", err)
		}
	})

	t.Run("available shortcut filters on status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropertyUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().ListByStatus(gomock.Any(), owner, entities.PropertyStatusAvailable).Return([]entities.Property{{ID: "prop-1"}}, nil)

		out, err := uc.ListAvailable(context.Background(), owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "prop-1" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

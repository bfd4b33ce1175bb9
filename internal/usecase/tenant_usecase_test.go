package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentora/internal/domain/entities"
	mock_interfaces "rentora/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type tenantMocks struct {
	repo      *mock_interfaces.MockITenantRepository
	props     *mock_interfaces.MockIPropertyRepository
	contracts *mock_interfaces.MockIContractRepository
	payments  *mock_interfaces.MockIPaymentRepository
	txm       *mock_interfaces.MockITransactionManager
	tx        *mock_interfaces.MockITransaction
}

func newTenantUseCase(ctrl *gomock.Controller, now time.Time) (*TenantUseCase, tenantMocks) {
	m := tenantMocks{
		repo:      mock_interfaces.NewMockITenantRepository(ctrl),
		props:     mock_interfaces.NewMockIPropertyRepository(ctrl),
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		txm:       mock_interfaces.NewMockITransactionManager(ctrl),
		tx:        mock_interfaces.NewMockITransaction(ctrl),
	}
	uc := NewTenantUseCase(m.repo, m.props, m.contracts, m.payments, m.txm, fixedClock{now: now})
	return uc, m
}

func TestTenantUseCase_Create(t *testing.T) {
	owner := "owner-1"
	in := CreateTenantInput{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Document:  "12345678900",
	}

	t.Run("missing required fields", func(t *testing.T) {
		uc, _ := newTenantUseCase(gomock.NewController(t), day(2025, time.January, 1))
		bad := in
		bad.Email = "  "
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidTenantInput) {
			t.Fatalf("expected ErrInvalidTenantInput, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com", owner).Return(entities.Tenant{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), owner, in)
		if !errors.Is(err, ErrTenantEmailTaken) {
			t.Fatalf("expected ErrTenantEmailTaken, got %v", err)
		}
	})

	t.Run("document taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com", owner).Return(entities.Tenant{}, nil)
		m.repo.EXPECT().GetByDocument(gomock.Any(), "12345678900", owner).Return(entities.Tenant{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), owner, in)
		if !errors.Is(err, ErrTenantDocumentTaken) {
			t.Fatalf("expected ErrTenantDocumentTaken, got %v", err)
		}
	})

	t.Run("create without property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com", owner).Return(entities.Tenant{}, nil)
		m.repo.EXPECT().GetByDocument(gomock.Any(), "12345678900", owner).Return(entities.Tenant{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tenant entities.Tenant) (entities.Tenant, error) {
				if tenant.ID == "" || tenant.ContractStatus != entities.TenantContractNone {
					t.Fatalf("unexpected tenant: %+v", tenant)
				}
				return tenant, nil
			},
		)

		tenant, err := uc.Create(context.Background(), owner, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.Email != "ana@example.com" {
			t.Fatalf("unexpected tenant: %+v", tenant)
		}
	})

	t.Run("create with property occupies it atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		withProperty := in
		withProperty.PropertyID = "prop-1"
		m.repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com", owner).Return(entities.Tenant{}, nil)
		m.repo.EXPECT().GetByDocument(gomock.Any(), "12345678900", owner).Return(entities.Tenant{}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusAvailable}, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.PropertyID != "prop-1" {
				t.Fatalf("expected tenant assigned to prop-1, got %q", tenant.PropertyID)
			}
		})
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusOccupied {
				t.Fatalf("expected property occupied, got %s", p.Status)
			}
		})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		tenant, err := uc.Create(context.Background(), owner, withProperty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.PropertyID != "prop-1" {
			t.Fatalf("expected assignment, got %+v", tenant)
		}
	})
}

func TestTenantUseCase_Update(t *testing.T) {
	owner := "owner-1"
	stored := entities.Tenant{
		ID: "tenant-1", OwnerID: owner, FirstName: "Ana", Email: "ana@example.com",
		Document: "12345678900", PropertyID: "prop-1", ContractStatus: entities.TenantContractActive,
	}

	t.Run("unchanged email skips the uniqueness check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(stored, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tenant entities.Tenant) (entities.Tenant, error) { return tenant, nil },
		)

		email := "ana@example.com"
		phone := "+55 11 99999-0000"
		tenant, err := uc.Update(context.Background(), "tenant-1", owner, UpdateTenantInput{Email: &email, Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.Phone != phone {
			t.Fatalf("expected phone update, got %+v", tenant)
		}
	})

	t.Run("new email collides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(stored, nil)
		m.repo.EXPECT().GetByEmail(gomock.Any(), "other@example.com", owner).Return(entities.Tenant{ID: "existing"}, nil)

		email := "other@example.com"
		_, err := uc.Update(context.Background(), "tenant-1", owner, UpdateTenantInput{Email: &email})
		if !errors.Is(err, ErrTenantEmailTaken) {
			t.Fatalf("expected ErrTenantEmailTaken, got %v", err)
		}
	})

	t.Run("reassignment frees the old property and occupies the new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusOccupied}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-2", owner).Return(entities.Property{ID: "prop-2", Status: entities.PropertyStatusAvailable}, nil)
		freed := false
		occupied := false
		m.tx.EXPECT().PutProperty(gomock.Any()).Times(2).Do(func(p entities.Property) {
			switch p.ID {
			case "prop-1":
				if p.Status != entities.PropertyStatusAvailable {
					t.Fatalf("expected prop-1 freed, got %s", p.Status)
				}
				freed = true
			case "prop-2":
				if p.Status != entities.PropertyStatusOccupied {
					t.Fatalf("expected prop-2 occupied, got %s", p.Status)
				}
				occupied = true
			}
		})
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.PropertyID != "prop-2" {
				t.Fatalf("expected tenant on prop-2, got %q", tenant.PropertyID)
			}
		})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		next := "prop-2"
		tenant, err := uc.Update(context.Background(), "tenant-1", owner, UpdateTenantInput{PropertyID: &next})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.PropertyID != "prop-2" || !freed || !occupied {
			t.Fatalf("swap not fully staged: %+v freed=%v occupied=%v", tenant, freed, occupied)
		}
	})

	t.Run("empty property id unassigns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusOccupied}, nil)
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusAvailable {
				t.Fatalf("expected property freed, got %s", p.Status)
			}
		})
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.PropertyID != "" {
				t.Fatalf("expected unassigned tenant, got %q", tenant.PropertyID)
			}
		})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		empty := ""
		tenant, err := uc.Update(context.Background(), "tenant-1", owner, UpdateTenantInput{PropertyID: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.PropertyID != "" {
			t.Fatalf("expected unassigned tenant, got %+v", tenant)
		}
	})
}

func TestTenantUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
	stored := entities.Tenant{ID: "tenant-1", OwnerID: owner, PropertyID: "prop-1"}

	m.repo.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(stored, nil)
	m.payments.EXPECT().ListByTenant(gomock.Any(), "tenant-1", owner).Return([]entities.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)
	m.contracts.EXPECT().ListByTenant(gomock.Any(), "tenant-1", owner).Return([]entities.Contract{{ID: "contract-1"}}, nil)
	m.txm.EXPECT().Begin().Return(m.tx)
	m.tx.EXPECT().DeletePayment("pay-1", owner)
	m.tx.EXPECT().DeletePayment("pay-2", owner)
	m.tx.EXPECT().DeleteContract("contract-1", owner)
	m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusOccupied}, nil)
	m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
		if p.Status != entities.PropertyStatusAvailable {
			t.Fatalf("expected property freed, got %s", p.Status)
		}
	})
	m.tx.EXPECT().DeleteTenant("tenant-1", owner)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	if err := uc.Delete(context.Background(), "tenant-1", owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTenantUseCase_ListWithoutProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newTenantUseCase(ctrl, day(2025, time.January, 1))
	m.repo.EXPECT().ListByOwner(gomock.Any(), owner).Return([]entities.Tenant{
		{ID: "assigned", PropertyID: "prop-1"},
		{ID: "free"},
	}, nil)

	out, err := uc.ListWithoutProperty(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "free" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

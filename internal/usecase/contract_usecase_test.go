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

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type contractMocks struct {
	repo    *mock_interfaces.MockIContractRepository
	tenants *mock_interfaces.MockITenantRepository
	props   *mock_interfaces.MockIPropertyRepository
	txm     *mock_interfaces.MockITransactionManager
	tx      *mock_interfaces.MockITransaction
}

func newContractUseCase(ctrl *gomock.Controller, now time.Time) (*ContractUseCase, contractMocks) {
	m := contractMocks{
		repo:    mock_interfaces.NewMockIContractRepository(ctrl),
		tenants: mock_interfaces.NewMockITenantRepository(ctrl),
		props:   mock_interfaces.NewMockIPropertyRepository(ctrl),
		txm:     mock_interfaces.NewMockITransactionManager(ctrl),
		tx:      mock_interfaces.NewMockITransaction(ctrl),
	}
	uc := NewContractUseCase(m.repo, m.tenants, m.props, m.txm, fixedClock{now: now})
	return uc, m
}

func TestContractUseCase_Create(t *testing.T) {
	owner := "owner-1"
	in := CreateContractInput{
		TenantID:    "tenant-1",
		PropertyID:  "prop-1",
		StartDate:   day(2024, time.January, 1),
		EndDate:     day(2025, time.January, 1),
		MonthlyRent: 1500,
	}

	t.Run("invalid dates", func(t *testing.T) {
		uc, _ := newContractUseCase(gomock.NewController(t), day(2024, time.June, 1))
		bad := in
		bad.EndDate = bad.StartDate
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidContractDates) {
			t.Fatalf("expected ErrInvalidContractDates, got %v", err)
		}
	})

	t.Run("invalid rent", func(t *testing.T) {
		uc, _ := newContractUseCase(gomock.NewController(t), day(2024, time.June, 1))
		bad := in
		bad.MonthlyRent = 0
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidContractRent) {
			t.Fatalf("expected ErrInvalidContractRent, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newContractUseCase(gomock.NewController(t), day(2024, time.June, 1))
		bad := in
		bad.Status = entities.ContractStatus("bogus")
		_, err := uc.Create(context.Background(), owner, bad)
		if !errors.Is(err, ErrInvalidContractStatus) {
			t.Fatalf("expected ErrInvalidContractStatus, got %v", err)
		}
	})

	t.Run("tenant not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{}, nil)

		_, err := uc.Create(context.Background(), owner, in)
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("overlapping contract blocks creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", OwnerID: owner}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", OwnerID: owner}, nil)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Contract{{
				ID:        "other",
				StartDate: day(2024, time.June, 1),
				EndDate:   day(2025, time.June, 1),
			}}, nil)

		_, err := uc.Create(context.Background(), owner, in)
		if !errors.Is(err, ErrContractOverlap) {
			t.Fatalf("expected ErrContractOverlap, got %v", err)
		}
	})

	t.Run("candidate outside the requested range does not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", OwnerID: owner}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", OwnerID: owner, Status: entities.PropertyStatusAvailable}, nil)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Contract{{
				ID:        "other",
				StartDate: day(2025, time.February, 1),
				EndDate:   day(2026, time.February, 1),
			}}, nil)

		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any())
		m.tx.EXPECT().PutProperty(gomock.Any())
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), owner, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success stays unsigned and reserves the property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", OwnerID: owner}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", OwnerID: owner, Status: entities.PropertyStatusAvailable}, nil)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.ContractStatus != entities.TenantContractInProcess {
				t.Fatalf("expected tenant in_process, got %s", tenant.ContractStatus)
			}
			if tenant.PropertyID != "prop-1" || tenant.ContractEnd == nil {
				t.Fatalf("expected tenant bound to the property: %+v", tenant)
			}
		})
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusReserved {
				t.Fatalf("expected property reserved, got %s", p.Status)
			}
		})
		m.tx.EXPECT().PutContract(gomock.Any()).Do(func(c entities.Contract) {
			if c.ID == "" || c.Status != entities.ContractStatusUnsigned {
				t.Fatalf("unexpected contract: %+v", c)
			}
		})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Create(context.Background(), owner, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ContractStatusUnsigned {
			t.Fatalf("expected unsigned, got %s", c.Status)
		}
	})

	t.Run("version conflict surfaces as concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1"}, nil)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any())
		m.tx.EXPECT().PutProperty(gomock.Any())
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(interfaces.ErrVersionConflict)

		_, err := uc.Create(context.Background(), owner, in)
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestContractUseCase_Update(t *testing.T) {
	owner := "owner-1"
	stored := entities.Contract{
		ID:          "contract-1",
		OwnerID:     owner,
		TenantID:    "tenant-1",
		PropertyID:  "prop-1",
		StartDate:   day(2024, time.January, 1),
		EndDate:     day(2025, time.January, 1),
		MonthlyRent: 1500,
		Status:      entities.ContractStatusActive,
	}

	t.Run("property reassignment frees the old and occupies the new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		newPropertyID := "prop-2"

		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).
			Return(entities.Property{ID: "prop-1", OwnerID: owner, Status: entities.PropertyStatusOccupied}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-2", owner).
			Return(entities.Property{ID: "prop-2", OwnerID: owner, Status: entities.PropertyStatusAvailable}, nil).
			Times(2)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-2", owner, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", OwnerID: owner}, nil)

		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			switch p.ID {
			case "prop-1":
				if p.Status != entities.PropertyStatusAvailable {
					t.Fatalf("expected old property available, got %s", p.Status)
				}
			case "prop-2":
				if p.Status != entities.PropertyStatusOccupied {
					t.Fatalf("expected new property occupied, got %s", p.Status)
				}
			default:
				t.Fatalf("unexpected property write: %s", p.ID)
			}
		}).Times(2)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.PropertyID != "prop-2" {
				t.Fatalf("expected tenant bound to prop-2, got %q", tenant.PropertyID)
			}
		})
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Update(context.Background(), "contract-1", owner, UpdateContractInput{PropertyID: &newPropertyID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.PropertyID != "prop-2" {
			t.Fatalf("expected contract on prop-2, got %s", c.PropertyID)
		}
	})

	t.Run("date change re-checks the property calendar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		newEnd := day(2025, time.June, 1)

		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, day(2024, time.January, 1), newEnd, gomock.Any()).
			Return([]entities.Contract{{
				ID:        "other",
				StartDate: day(2025, time.February, 1),
				EndDate:   day(2025, time.December, 1),
			}}, nil)

		_, err := uc.Update(context.Background(), "contract-1", owner, UpdateContractInput{EndDate: &newEnd})
		if !errors.Is(err, ErrContractOverlap) {
			t.Fatalf("expected ErrContractOverlap, got %v", err)
		}
	})

	t.Run("own record never blocks a date change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		newEnd := day(2025, time.June, 1)

		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.repo.EXPECT().FindOverlapping(gomock.Any(), "prop-1", owner, gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.Contract{stored}, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", OwnerID: owner}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).
			Return(entities.Property{ID: "prop-1", OwnerID: owner, Status: entities.PropertyStatusOccupied}, nil)
		m.tx.EXPECT().PutTenant(gomock.Any())
		m.tx.EXPECT().PutProperty(gomock.Any())
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Update(context.Background(), "contract-1", owner, UpdateContractInput{EndDate: &newEnd})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.EndDate.Equal(newEnd) {
			t.Fatalf("expected end date %v, got %v", newEnd, c.EndDate)
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		newEnd := day(2023, time.June, 1)

		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)

		_, err := uc.Update(context.Background(), "contract-1", owner, UpdateContractInput{EndDate: &newEnd})
		if !errors.Is(err, ErrInvalidContractDates) {
			t.Fatalf("expected ErrInvalidContractDates, got %v", err)
		}
	})
}

func TestContractUseCase_Sign(t *testing.T) {
	owner := "owner-1"
	stored := entities.Contract{
		ID:         "contract-1",
		OwnerID:    owner,
		TenantID:   "tenant-1",
		PropertyID: "prop-1",
		StartDate:  day(2024, time.January, 1),
		EndDate:    day(2025, time.January, 1),
		Status:     entities.ContractStatusUnsigned,
	}

	t.Run("only unsigned contracts can be signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		active := stored
		active.Status = entities.ContractStatusActive
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(active, nil)

		_, err := uc.Sign(context.Background(), "contract-1", owner)
		if !errors.Is(err, ErrContractNotSignable) {
			t.Fatalf("expected ErrContractNotSignable, got %v", err)
		}
	})

	t.Run("signing mid-term lands on active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1"}, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.ContractStatus != entities.TenantContractActive {
				t.Fatalf("expected tenant active, got %s", tenant.ContractStatus)
			}
		})
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusOccupied {
				t.Fatalf("expected property occupied, got %s", p.Status)
			}
		})
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Sign(context.Background(), "contract-1", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ContractStatusActive {
			t.Fatalf("expected active, got %s", c.Status)
		}
	})

	t.Run("signing near the end lands on expiring_soon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.December, 15))
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1"}, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any())
		m.tx.EXPECT().PutProperty(gomock.Any())
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Sign(context.Background(), "contract-1", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ContractStatusExpiringSoon {
			t.Fatalf("expected expiring_soon, got %s", c.Status)
		}
	})

	t.Run("signing past the end lands on finished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2025, time.February, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1"}, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.ContractStatus != entities.TenantContractFinished {
				t.Fatalf("expected tenant finished, got %s", tenant.ContractStatus)
			}
			if tenant.PropertyID != "" {
				t.Fatalf("expected property reference cleared")
			}
		})
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusAvailable {
				t.Fatalf("expected property available, got %s", p.Status)
			}
		})
		m.tx.EXPECT().PutContract(gomock.Any())
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		c, err := uc.Sign(context.Background(), "contract-1", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ContractStatusFinished {
			t.Fatalf("expected finished, got %s", c.Status)
		}
	})
}

func TestContractUseCase_Finalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
	stored := entities.Contract{
		ID:         "contract-1",
		OwnerID:    owner,
		TenantID:   "tenant-1",
		PropertyID: "prop-1",
		StartDate:  day(2024, time.January, 1),
		EndDate:    day(2025, time.January, 1),
		Status:     entities.ContractStatusActive,
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
	m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", PropertyID: "prop-1"}, nil)
	m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusOccupied}, nil)
	m.txm.EXPECT().Begin().Return(m.tx)
	m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
		if tenant.ContractStatus != entities.TenantContractFinished || tenant.PropertyID != "" {
			t.Fatalf("unexpected tenant sync: %+v", tenant)
		}
	})
	m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
		if p.Status != entities.PropertyStatusAvailable {
			t.Fatalf("expected property available, got %s", p.Status)
		}
	})
	m.tx.EXPECT().PutContract(gomock.Any())
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	c, err := uc.Finalize(context.Background(), "contract-1", owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != entities.ContractStatusFinished {
		t.Fatalf("expected finished, got %s", c.Status)
	}
}

func TestContractUseCase_Delete(t *testing.T) {
	owner := "owner-1"

	t.Run("occupying contract reverts tenant and property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		stored := entities.Contract{
			ID: "contract-1", OwnerID: owner, TenantID: "tenant-1", PropertyID: "prop-1",
			Status: entities.ContractStatusActive,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1", PropertyID: "prop-1", ContractStatus: entities.TenantContractActive}, nil)
		m.tx.EXPECT().PutTenant(gomock.Any()).Do(func(tenant entities.Tenant) {
			if tenant.ContractStatus != entities.TenantContractNone || tenant.PropertyID != "" {
				t.Fatalf("expected cleared tenant, got %+v", tenant)
			}
		})
		m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusOccupied}, nil)
		m.tx.EXPECT().PutProperty(gomock.Any()).Do(func(p entities.Property) {
			if p.Status != entities.PropertyStatusAvailable {
				t.Fatalf("expected property available, got %s", p.Status)
			}
		})
		m.tx.EXPECT().DeleteContract("contract-1", owner)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), "contract-1", owner); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("finished contract deletes without side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		stored := entities.Contract{
			ID: "contract-1", OwnerID: owner, TenantID: "tenant-1", PropertyID: "prop-1",
			Status: entities.ContractStatusFinished,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", owner).Return(stored, nil)
		m.txm.EXPECT().Begin().Return(m.tx)
		m.tx.EXPECT().DeleteContract("contract-1", owner)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), "contract-1", owner); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "missing", owner).Return(entities.Contract{}, nil)

		if err := uc.Delete(context.Background(), "missing", owner); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newContractUseCase(gomock.NewController(t), day(2024, time.June, 1))
		_, err := uc.UpdateStatus(context.Background(), "contract-1", "owner-1", entities.ContractStatus("bogus"))
		if !errors.Is(err, ErrInvalidContractStatus) {
			t.Fatalf("expected ErrInvalidContractStatus, got %v", err)
		}
	})
}

func TestContractUseCase_RecomputeStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newContractUseCase(ctrl, day(2024, time.December, 15))

	// The first contract moves to expiring_soon, the second is already
	// finished and must be skipped.
	changing := entities.Contract{
		ID: "contract-1", OwnerID: owner, TenantID: "tenant-1", PropertyID: "prop-1",
		StartDate: day(2024, time.January, 1), EndDate: day(2025, time.January, 1),
		Status: entities.ContractStatusActive,
	}
	settled := entities.Contract{
		ID: "contract-2", OwnerID: owner, TenantID: "tenant-2", PropertyID: "prop-2",
		StartDate: day(2023, time.January, 1), EndDate: day(2024, time.January, 1),
		Status: entities.ContractStatusFinished,
	}
	m.repo.EXPECT().ListByOwner(gomock.Any(), owner).Return([]entities.Contract{changing, settled}, nil)
	m.tenants.EXPECT().GetByID(gomock.Any(), "tenant-1", owner).Return(entities.Tenant{ID: "tenant-1"}, nil)
	m.props.EXPECT().GetByID(gomock.Any(), "prop-1", owner).Return(entities.Property{ID: "prop-1"}, nil)
	m.txm.EXPECT().Begin().Return(m.tx)
	m.tx.EXPECT().PutTenant(gomock.Any())
	m.tx.EXPECT().PutProperty(gomock.Any())
	m.tx.EXPECT().PutContract(gomock.Any()).Do(func(c entities.Contract) {
		if c.Status != entities.ContractStatusExpiringSoon {
			t.Fatalf("expected expiring_soon, got %s", c.Status)
		}
	})
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	changed, err := uc.RecomputeStatuses(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 changed, got %d", changed)
	}
}

func TestContractUseCase_ListExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	owner := "owner-1"
	uc, m := newContractUseCase(ctrl, day(2025, time.January, 1))

	contracts := []entities.Contract{
		{ID: "far", Status: entities.ContractStatusActive, EndDate: day(2025, time.March, 1)},
		{ID: "soon", Status: entities.ContractStatusSigned, EndDate: day(2025, time.January, 25)},
		{ID: "soonest", Status: entities.ContractStatusActive, EndDate: day(2025, time.January, 10)},
		{ID: "done", Status: entities.ContractStatusFinished, EndDate: day(2025, time.January, 5)},
		{ID: "past", Status: entities.ContractStatusExpiringSoon, EndDate: day(2024, time.December, 20)},
	}
	m.repo.EXPECT().ListByOwner(gomock.Any(), owner).Return(contracts, nil)

	out, err := uc.ListExpiring(context.Background(), owner, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(out))
	}
	if out[0].ID != "soonest" || out[1].ID != "soon" {
		t.Fatalf("unexpected order: %s, %s", out[0].ID, out[1].ID)
	}
}

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newContractUseCase(gomock.NewController(t), day(2024, time.June, 1))
		_, err := uc.GetByID(context.Background(), "  ", "owner-1")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newContractUseCase(ctrl, day(2024, time.June, 1))
		m.repo.EXPECT().GetByID(gomock.Any(), "contract-1", "owner-1").Return(entities.Contract{}, nil)

		_, err := uc.GetByID(context.Background(), "contract-1", "owner-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

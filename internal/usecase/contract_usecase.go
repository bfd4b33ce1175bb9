package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrInvalidContractDates  = errors.New("invalid contract dates")
	ErrInvalidContractRent   = errors.New("invalid contract rent")
	ErrInvalidContractStatus = errors.New("invalid contract status")
	ErrContractOverlap       = errors.New("overlapping contract for the property")
	ErrContractNotSignable   = errors.New("contract is not in a signable state")
	ErrConcurrentUpdate      = errors.New("entity was modified concurrently")
)

// overlapExcluded are the statuses that never block a property's calendar.
var overlapExcluded = []entities.ContractStatus{
	entities.ContractStatusFinished,
	entities.ContractStatusUnsigned,
}

// CreateContractInput carries the fields accepted on contract creation.
// Status defaults to unsigned when empty.
type CreateContractInput struct {
	TenantID    string
	PropertyID  string
	StartDate   time.Time
	EndDate     time.Time
	MonthlyRent float64
	Status      entities.ContractStatus
	DocumentURL string
}

// UpdateContractInput carries partial updates; nil fields are left unchanged.
type UpdateContractInput struct {
	TenantID    *string
	PropertyID  *string
	StartDate   *time.Time
	EndDate     *time.Time
	MonthlyRent *float64
	Status      *entities.ContractStatus
	DocumentURL *string
}

// IContractUseCase drives the lease contract lifecycle: creation with overlap
// detection, the explicit sign/finalize transitions, date-driven recompute,
// and the tenant/property synchronization that rides on every status change.

type IContractUseCase interface {
	Create(ctx context.Context, ownerID string, in CreateContractInput) (entities.Contract, error)
	Update(ctx context.Context, id, ownerID string, in UpdateContractInput) (entities.Contract, error)
	UpdateStatus(ctx context.Context, id, ownerID string, status entities.ContractStatus) (entities.Contract, error)
	Sign(ctx context.Context, id, ownerID string) (entities.Contract, error)
	Finalize(ctx context.Context, id, ownerID string) (entities.Contract, error)
	Delete(ctx context.Context, id, ownerID string) error
	RecomputeStatuses(ctx context.Context, ownerID string) (int, error)
	SetDocumentURL(ctx context.Context, id, ownerID, url string) (entities.Contract, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Contract, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Contract, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.ContractStatus) ([]entities.Contract, error)
	ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Contract, error)
	ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Contract, error)
	ListExpiring(ctx context.Context, ownerID string, days int) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo         interfaces.IContractRepository
	tenantRepo   interfaces.ITenantRepository
	propertyRepo interfaces.IPropertyRepository
	txm          interfaces.ITransactionManager
	clock        interfaces.Clock
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	tenantRepo interfaces.ITenantRepository,
	propertyRepo interfaces.IPropertyRepository,
	txm interfaces.ITransactionManager,
	clock interfaces.Clock,
) *ContractUseCase {
	return &ContractUseCase{repo: repo, tenantRepo: tenantRepo, propertyRepo: propertyRepo, txm: txm, clock: clock}
}

func (u *ContractUseCase) Create(ctx context.Context, ownerID string, in CreateContractInput) (entities.Contract, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return entities.Contract{}, ErrInvalidContractDates
	}
	if in.MonthlyRent <= 0 {
		return entities.Contract{}, ErrInvalidContractRent
	}

	status := in.Status
	if status == "" {
		status = entities.ContractStatusUnsigned
	}
	if !status.Valid() {
		return entities.Contract{}, ErrInvalidContractStatus
	}

	tenant, err := u.getTenant(ctx, in.TenantID, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}
	property, err := u.getProperty(ctx, in.PropertyID, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}

	if err := u.checkOverlap(ctx, property.ID, ownerID, in.StartDate, in.EndDate, ""); err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now()
	c := entities.Contract{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		TenantID:    tenant.ID,
		PropertyID:  property.ID,
		StartDate:   entities.DateOnly(in.StartDate),
		EndDate:     entities.DateOnly(in.EndDate),
		MonthlyRent: in.MonthlyRent,
		Status:      status,
		DocumentURL: in.DocumentURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.RecomputeStatus(now)

	zap.S().Infow("contract create", "contract_id", c.ID, "property_id", property.ID, "tenant_id", tenant.ID, "status", c.Status)

	tx := u.txm.Begin()
	u.stageSync(tx, c, &tenant, &property, now)
	tx.PutContract(c)
	if err := tx.Commit(ctx); err != nil {
		return entities.Contract{}, mapCommitErr(err)
	}
	return c, nil
}

func (u *ContractUseCase) Update(ctx context.Context, id, ownerID string, in UpdateContractInput) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now()
	tx := u.txm.Begin()
	rangeChanged := false

	// Reassignments revert the previous side before the new side is touched,
	// so a half-applied swap can never leave two records occupying.
	if in.TenantID != nil && strings.TrimSpace(*in.TenantID) != c.TenantID {
		if old, err := u.tenantRepo.GetByID(ctx, c.TenantID, ownerID); err != nil {
			return entities.Contract{}, err
		} else if old.ID != "" {
			old.ClearContract()
			old.UpdatedAt = now
			tx.PutTenant(old)
		}
		newTenant, err := u.getTenant(ctx, strings.TrimSpace(*in.TenantID), ownerID)
		if err != nil {
			return entities.Contract{}, err
		}
		c.TenantID = newTenant.ID
	}

	if in.PropertyID != nil && strings.TrimSpace(*in.PropertyID) != c.PropertyID {
		if old, err := u.propertyRepo.GetByID(ctx, c.PropertyID, ownerID); err != nil {
			return entities.Contract{}, err
		} else if old.ID != "" {
			old.Status = entities.PropertyStatusAvailable
			old.UpdatedAt = now
			tx.PutProperty(old)
		}
		newProperty, err := u.getProperty(ctx, strings.TrimSpace(*in.PropertyID), ownerID)
		if err != nil {
			return entities.Contract{}, err
		}
		c.PropertyID = newProperty.ID
		rangeChanged = true
	}

	if in.StartDate != nil {
		c.StartDate = entities.DateOnly(*in.StartDate)
		rangeChanged = true
	}
	if in.EndDate != nil {
		c.EndDate = entities.DateOnly(*in.EndDate)
		rangeChanged = true
	}
	if !c.EndDate.After(c.StartDate) {
		return entities.Contract{}, ErrInvalidContractDates
	}
	if in.MonthlyRent != nil {
		if *in.MonthlyRent <= 0 {
			return entities.Contract{}, ErrInvalidContractRent
		}
		c.MonthlyRent = *in.MonthlyRent
	}
	if in.DocumentURL != nil {
		c.DocumentURL = *in.DocumentURL
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.Contract{}, ErrInvalidContractStatus
		}
		c.Status = *in.Status
	}

	if rangeChanged {
		if err := u.checkOverlap(ctx, c.PropertyID, ownerID, c.StartDate, c.EndDate, c.ID); err != nil {
			return entities.Contract{}, err
		}
	}

	c.RecomputeStatus(now)
	c.UpdatedAt = now

	tenant, err := u.getTenant(ctx, c.TenantID, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}
	property, err := u.getProperty(ctx, c.PropertyID, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}

	u.stageSync(tx, c, &tenant, &property, now)
	tx.PutContract(c)
	if err := tx.Commit(ctx); err != nil {
		return entities.Contract{}, mapCommitErr(err)
	}
	return c, nil
}

func (u *ContractUseCase) UpdateStatus(ctx context.Context, id, ownerID string, status entities.ContractStatus) (entities.Contract, error) {
	if !status.Valid() {
		return entities.Contract{}, ErrInvalidContractStatus
	}
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now()
	c.Status = status
	c.RecomputeStatus(now)
	c.UpdatedAt = now

	return u.commitWithSync(ctx, c, now)
}

// Sign moves an unsigned contract into the active family and immediately
// applies the date rule, so a stale contract signs straight into
// expiring_soon or finished.
func (u *ContractUseCase) Sign(ctx context.Context, id, ownerID string) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status != entities.ContractStatusUnsigned {
		return entities.Contract{}, ErrContractNotSignable
	}

	now := u.clock.Now()
	c.Status = entities.ContractStatusActive
	c.RecomputeStatus(now)
	c.UpdatedAt = now

	zap.S().Infow("contract sign", "contract_id", c.ID, "status", c.Status)
	return u.commitWithSync(ctx, c, now)
}

// Finalize terminates the contract regardless of its prior state.
func (u *ContractUseCase) Finalize(ctx context.Context, id, ownerID string) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now()
	c.Status = entities.ContractStatusFinished
	c.UpdatedAt = now

	zap.S().Infow("contract finalize", "contract_id", c.ID)
	return u.commitWithSync(ctx, c, now)
}

func (u *ContractUseCase) Delete(ctx context.Context, id, ownerID string) error {
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}

	now := u.clock.Now()
	tx := u.txm.Begin()

	// An occupying contract leaves side effects behind; revert them in the
	// same transaction or stale occupancy survives the delete.
	if c.Status.Occupying() {
		if tenant, err := u.tenantRepo.GetByID(ctx, c.TenantID, ownerID); err != nil {
			return err
		} else if tenant.ID != "" {
			tenant.ClearContract()
			tenant.UpdatedAt = now
			tx.PutTenant(tenant)
		}
		if property, err := u.propertyRepo.GetByID(ctx, c.PropertyID, ownerID); err != nil {
			return err
		} else if property.ID != "" {
			property.Status = entities.PropertyStatusAvailable
			property.UpdatedAt = now
			tx.PutProperty(property)
		}
	}

	tx.DeleteContract(c.ID, ownerID)
	zap.S().Infow("contract delete", "contract_id", c.ID, "status", c.Status)
	if err := tx.Commit(ctx); err != nil {
		return mapCommitErr(err)
	}
	return nil
}

// RecomputeStatuses sweeps the owner's contracts through the date rule and
// returns how many changed. Each changed contract commits atomically with its
// synchronized tenant and property.
func (u *ContractUseCase) RecomputeStatuses(ctx context.Context, ownerID string) (int, error) {
	contracts, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	changed := 0
	for _, c := range contracts {
		if !c.RecomputeStatus(now) {
			continue
		}
		c.UpdatedAt = now
		if _, err := u.commitWithSync(ctx, c, now); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		zap.S().Infow("contract status sweep", "owner_id", ownerID, "changed", changed)
	}
	return changed, nil
}

func (u *ContractUseCase) SetDocumentURL(ctx context.Context, id, ownerID, url string) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}
	c.DocumentURL = url
	c.UpdatedAt = u.clock.Now()

	tx := u.txm.Begin()
	tx.PutContract(c)
	if err := tx.Commit(ctx); err != nil {
		return entities.Contract{}, mapCommitErr(err)
	}
	return c, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id, ownerID string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Contract, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *ContractUseCase) ListByStatus(ctx context.Context, ownerID string, status entities.ContractStatus) ([]entities.Contract, error) {
	if !status.Valid() {
		return nil, ErrInvalidContractStatus
	}
	return u.repo.ListByStatus(ctx, ownerID, status)
}

func (u *ContractUseCase) ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Contract, error) {
	return u.repo.ListByTenant(ctx, strings.TrimSpace(tenantID), ownerID)
}

func (u *ContractUseCase) ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Contract, error) {
	return u.repo.ListByProperty(ctx, strings.TrimSpace(propertyID), ownerID)
}

// ListExpiring returns signed/active contracts ending within the next `days`
// days, soonest first.
func (u *ContractUseCase) ListExpiring(ctx context.Context, ownerID string, days int) ([]entities.Contract, error) {
	if days <= 0 {
		days = entities.ExpiringSoonThresholdDays
	}
	contracts, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	today := entities.DateOnly(u.clock.Now())
	var out []entities.Contract
	for _, c := range contracts {
		switch c.Status {
		case entities.ContractStatusActive, entities.ContractStatusSigned, entities.ContractStatusExpiringSoon:
		default:
			continue
		}
		if entities.DateOnly(c.EndDate).Before(today) {
			continue
		}
		if c.DaysRemaining(today) <= days {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

// commitWithSync loads the contract's tenant and property, applies the
// synchronizer mappings for the contract's current status and commits all
// three entities as one transaction.
func (u *ContractUseCase) commitWithSync(ctx context.Context, c entities.Contract, now time.Time) (entities.Contract, error) {
	tenant, err := u.getTenant(ctx, c.TenantID, c.OwnerID)
	if err != nil {
		return entities.Contract{}, err
	}
	property, err := u.getProperty(ctx, c.PropertyID, c.OwnerID)
	if err != nil {
		return entities.Contract{}, err
	}

	tx := u.txm.Begin()
	u.stageSync(tx, c, &tenant, &property, now)
	tx.PutContract(c)
	if err := tx.Commit(ctx); err != nil {
		return entities.Contract{}, mapCommitErr(err)
	}
	return c, nil
}

// stageSync applies the synchronizer mappings onto the tenant and property
// and stages both writes. The tenant keeps its property reference only while
// the mapped status is in_process or active.
func (u *ContractUseCase) stageSync(tx interfaces.ITransaction, c entities.Contract, tenant *entities.Tenant, property *entities.Property, now time.Time) {
	mapped := entities.TenantStatusFor(c.Status)
	tenant.ContractStatus = mapped
	switch mapped {
	case entities.TenantContractInProcess, entities.TenantContractActive:
		tenant.PropertyID = c.PropertyID
		end := c.EndDate
		tenant.ContractEnd = &end
	case entities.TenantContractFinished:
		tenant.PropertyID = ""
	default:
		tenant.ClearContract()
	}
	tenant.UpdatedAt = now
	tx.PutTenant(*tenant)

	if status, ok := entities.PropertyStatusFor(c.Status); ok {
		property.Status = status
	}
	property.UpdatedAt = now
	tx.PutProperty(*property)
}

func (u *ContractUseCase) checkOverlap(ctx context.Context, propertyID, ownerID string, start, end time.Time, excludeID string) error {
	candidates, err := u.repo.FindOverlapping(ctx, propertyID, ownerID, start, end, overlapExcluded)
	if err != nil {
		return err
	}
	for _, o := range candidates {
		if o.ID == excludeID {
			continue
		}
		// The store matches on stored range bounds; confirm the intersection
		// on the entity dates before rejecting.
		if entities.Overlaps(start, end, o.StartDate, o.EndDate) {
			return ErrContractOverlap
		}
	}
	return nil
}

func (u *ContractUseCase) getTenant(ctx context.Context, id, ownerID string) (entities.Tenant, error) {
	t, err := u.tenantRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *ContractUseCase) getProperty(ctx context.Context, id, ownerID string) (entities.Property, error) {
	p, err := u.propertyRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

// mapCommitErr folds the storage-level optimistic-concurrency failure into
// the domain conflict error.
func mapCommitErr(err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return ErrConcurrentUpdate
	}
	return err
}

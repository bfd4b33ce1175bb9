package usecase

import (
	"context"
	"errors"
	"strings"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrInvalidTenantID     = errors.New("invalid tenant id")
	ErrInvalidTenantInput  = errors.New("invalid tenant input")
	ErrTenantEmailTaken    = errors.New("tenant email already in use")
	ErrTenantDocumentTaken = errors.New("tenant document already in use")
)

// CreateTenantInput carries the fields accepted on tenant creation. A
// non-empty PropertyID assigns the tenant straight onto a property.
type CreateTenantInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Document   string
	AvatarURL  string
	PropertyID string
}

// UpdateTenantInput carries partial updates; nil fields are left unchanged.
// PropertyID pointing at an empty string unassigns the tenant's property.
type UpdateTenantInput struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Document   *string
	AvatarURL  *string
	PropertyID *string
}

// ITenantUseCase manages renters: per-owner unique contact data, direct
// property assignment, and the ordered cascade that removes a tenant's
// payments and contracts before the tenant itself.

type ITenantUseCase interface {
	Create(ctx context.Context, ownerID string, in CreateTenantInput) (entities.Tenant, error)
	Update(ctx context.Context, id, ownerID string, in UpdateTenantInput) (entities.Tenant, error)
	Delete(ctx context.Context, id, ownerID string) error
	GetByID(ctx context.Context, id, ownerID string) (entities.Tenant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Tenant, error)
	ListWithoutProperty(ctx context.Context, ownerID string) ([]entities.Tenant, error)
}

type TenantUseCase struct {
	repo         interfaces.ITenantRepository
	propertyRepo interfaces.IPropertyRepository
	contractRepo interfaces.IContractRepository
	paymentRepo  interfaces.IPaymentRepository
	txm          interfaces.ITransactionManager
	clock        interfaces.Clock
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(
	repo interfaces.ITenantRepository,
	propertyRepo interfaces.IPropertyRepository,
	contractRepo interfaces.IContractRepository,
	paymentRepo interfaces.IPaymentRepository,
	txm interfaces.ITransactionManager,
	clock interfaces.Clock,
) *TenantUseCase {
	return &TenantUseCase{
		repo:         repo,
		propertyRepo: propertyRepo,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		txm:          txm,
		clock:        clock,
	}
}

func (u *TenantUseCase) Create(ctx context.Context, ownerID string, in CreateTenantInput) (entities.Tenant, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Document = strings.TrimSpace(in.Document)
	if in.Email == "" || in.Document == "" || strings.TrimSpace(in.FirstName) == "" {
		return entities.Tenant{}, ErrInvalidTenantInput
	}

	if err := u.checkUniqueEmail(ctx, in.Email, ownerID); err != nil {
		return entities.Tenant{}, err
	}
	if err := u.checkUniqueDocument(ctx, in.Document, ownerID); err != nil {
		return entities.Tenant{}, err
	}

	now := u.clock.Now()
	t := entities.Tenant{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          in.Email,
		Phone:          in.Phone,
		Document:       in.Document,
		AvatarURL:      in.AvatarURL,
		ContractStatus: entities.TenantContractNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if in.PropertyID == "" {
		return u.repo.Create(ctx, t)
	}

	property, err := u.getProperty(ctx, in.PropertyID, ownerID)
	if err != nil {
		return entities.Tenant{}, err
	}
	t.PropertyID = property.ID
	property.Status = entities.PropertyStatusOccupied
	property.UpdatedAt = now

	tx := u.txm.Begin()
	tx.PutTenant(t)
	tx.PutProperty(property)
	if err := tx.Commit(ctx); err != nil {
		return entities.Tenant{}, mapCommitErr(err)
	}
	return t, nil
}

func (u *TenantUseCase) Update(ctx context.Context, id, ownerID string, in UpdateTenantInput) (entities.Tenant, error) {
	t, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Tenant{}, err
	}

	if in.FirstName != nil {
		t.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		t.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != t.Email {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return entities.Tenant{}, ErrInvalidTenantInput
		}
		if err := u.checkUniqueEmail(ctx, email, ownerID); err != nil {
			return entities.Tenant{}, err
		}
		t.Email = email
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.Document != nil && strings.TrimSpace(*in.Document) != t.Document {
		document := strings.TrimSpace(*in.Document)
		if document == "" {
			return entities.Tenant{}, ErrInvalidTenantInput
		}
		if err := u.checkUniqueDocument(ctx, document, ownerID); err != nil {
			return entities.Tenant{}, err
		}
		t.Document = document
	}
	if in.AvatarURL != nil {
		t.AvatarURL = *in.AvatarURL
	}

	now := u.clock.Now()
	t.UpdatedAt = now

	// Direct property re-assignment frees the old unit before occupying the
	// new one, all inside one transaction.
	if in.PropertyID == nil || strings.TrimSpace(*in.PropertyID) == t.PropertyID {
		return u.repo.Save(ctx, t)
	}

	tx := u.txm.Begin()
	if t.PropertyID != "" {
		if old, err := u.propertyRepo.GetByID(ctx, t.PropertyID, ownerID); err != nil {
			return entities.Tenant{}, err
		} else if old.ID != "" {
			old.Status = entities.PropertyStatusAvailable
			old.UpdatedAt = now
			tx.PutProperty(old)
		}
		t.PropertyID = ""
	}
	if next := strings.TrimSpace(*in.PropertyID); next != "" {
		property, err := u.getProperty(ctx, next, ownerID)
		if err != nil {
			return entities.Tenant{}, err
		}
		t.PropertyID = property.ID
		property.Status = entities.PropertyStatusOccupied
		property.UpdatedAt = now
		tx.PutProperty(property)
	}
	tx.PutTenant(t)
	if err := tx.Commit(ctx); err != nil {
		return entities.Tenant{}, mapCommitErr(err)
	}
	return t, nil
}

// Delete removes the tenant after an explicit, ordered cascade: payments
// first, then contracts, then the assigned property is freed.
func (u *TenantUseCase) Delete(ctx context.Context, id, ownerID string) error {
	t, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}

	payments, err := u.paymentRepo.ListByTenant(ctx, t.ID, ownerID)
	if err != nil {
		return err
	}
	contracts, err := u.contractRepo.ListByTenant(ctx, t.ID, ownerID)
	if err != nil {
		return err
	}

	now := u.clock.Now()
	tx := u.txm.Begin()
	for _, p := range payments {
		tx.DeletePayment(p.ID, ownerID)
	}
	for _, c := range contracts {
		tx.DeleteContract(c.ID, ownerID)
	}
	if t.PropertyID != "" {
		if property, err := u.propertyRepo.GetByID(ctx, t.PropertyID, ownerID); err != nil {
			return err
		} else if property.ID != "" {
			property.Status = entities.PropertyStatusAvailable
			property.UpdatedAt = now
			tx.PutProperty(property)
		}
	}
	tx.DeleteTenant(t.ID, ownerID)

	zap.S().Infow("tenant delete", "tenant_id", t.ID, "payments", len(payments), "contracts", len(contracts))
	if err := tx.Commit(ctx); err != nil {
		return mapCommitErr(err)
	}
	return nil
}

func (u *TenantUseCase) GetByID(ctx context.Context, id, ownerID string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidTenantID
	}
	t, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *TenantUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Tenant, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *TenantUseCase) ListWithoutProperty(ctx context.Context, ownerID string) ([]entities.Tenant, error) {
	tenants, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entities.Tenant
	for _, t := range tenants {
		if t.PropertyID == "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *TenantUseCase) checkUniqueEmail(ctx context.Context, email, ownerID string) error {
	existing, err := u.repo.GetByEmail(ctx, email, ownerID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return ErrTenantEmailTaken
	}
	return nil
}

func (u *TenantUseCase) checkUniqueDocument(ctx context.Context, document, ownerID string) error {
	existing, err := u.repo.GetByDocument(ctx, document, ownerID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return ErrTenantDocumentTaken
	}
	return nil
}

func (u *TenantUseCase) getProperty(ctx context.Context, id, ownerID string) (entities.Property, error) {
	p, err := u.propertyRepo.GetByID(ctx, strings.TrimSpace(id), ownerID)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

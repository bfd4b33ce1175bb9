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
	ErrPropertyNotFound      = errors.New("property not found")
	ErrInvalidPropertyID     = errors.New("invalid property id")
	ErrInvalidPropertyInput  = errors.New("invalid property input")
	ErrInvalidPropertyRent   = errors.New("invalid property rent")
	ErrInvalidPropertyStatus = errors.New("invalid property status")
)

// CreatePropertyInput carries the fields accepted on property creation.
// Status defaults to available.
type CreatePropertyInput struct {
	Name        string
	Address     string
	City        string
	Country     string
	Type        entities.PropertyType
	MonthlyRent float64
	Status      entities.PropertyStatus
	ImageURL    string
}

// UpdatePropertyInput carries partial updates; nil fields are left unchanged.
type UpdatePropertyInput struct {
	Name        *string
	Address     *string
	City        *string
	Country     *string
	Type        *entities.PropertyType
	MonthlyRent *float64
	Status      *entities.PropertyStatus
	ImageURL    *string
}

// IPropertyUseCase manages rental units and the ordered cascade that removes
// a property's payments, contracts and tenant assignments before the
// property itself.

type IPropertyUseCase interface {
	Create(ctx context.Context, ownerID string, in CreatePropertyInput) (entities.Property, error)
	Update(ctx context.Context, id, ownerID string, in UpdatePropertyInput) (entities.Property, error)
	Delete(ctx context.Context, id, ownerID string) error
	SetImageURL(ctx context.Context, id, ownerID, url string) (entities.Property, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Property, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.PropertyStatus) ([]entities.Property, error)
	ListAvailable(ctx context.Context, ownerID string) ([]entities.Property, error)
}

type PropertyUseCase struct {
	repo         interfaces.IPropertyRepository
	tenantRepo   interfaces.ITenantRepository
	contractRepo interfaces.IContractRepository
	paymentRepo  interfaces.IPaymentRepository
	txm          interfaces.ITransactionManager
	clock        interfaces.Clock
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(
	repo interfaces.IPropertyRepository,
	tenantRepo interfaces.ITenantRepository,
	contractRepo interfaces.IContractRepository,
	paymentRepo interfaces.IPaymentRepository,
	txm interfaces.ITransactionManager,
	clock interfaces.Clock,
) *PropertyUseCase {
	return &PropertyUseCase{
		repo:         repo,
		tenantRepo:   tenantRepo,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		txm:          txm,
		clock:        clock,
	}
}

func (u *PropertyUseCase) Create(ctx context.Context, ownerID string, in CreatePropertyInput) (entities.Property, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return entities.Property{}, ErrInvalidPropertyInput
	}
	if in.MonthlyRent <= 0 {
		return entities.Property{}, ErrInvalidPropertyRent
	}

	status := in.Status
	if status == "" {
		status = entities.PropertyStatusAvailable
	}
	if !status.Valid() {
		return entities.Property{}, ErrInvalidPropertyStatus
	}

	now := u.clock.Now()
	p := entities.Property{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		City:        in.City,
		Country:     in.Country,
		Type:        in.Type,
		MonthlyRent: in.MonthlyRent,
		Status:      status,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PropertyUseCase) Update(ctx context.Context, id, ownerID string, in UpdatePropertyInput) (entities.Property, error) {
	p, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Property{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.MonthlyRent != nil {
		if *in.MonthlyRent <= 0 {
			return entities.Property{}, ErrInvalidPropertyRent
		}
		p.MonthlyRent = *in.MonthlyRent
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.Property{}, ErrInvalidPropertyStatus
		}
		p.Status = *in.Status
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}

	p.UpdatedAt = u.clock.Now()
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Property{}, mapCommitErr(err)
	}
	return saved, nil
}

// Delete removes the property after an explicit, ordered cascade: payments
// first, then contracts, then tenants assigned to the unit are detached.
func (u *PropertyUseCase) Delete(ctx context.Context, id, ownerID string) error {
	p, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}

	payments, err := u.paymentRepo.ListByProperty(ctx, p.ID, ownerID)
	if err != nil {
		return err
	}
	contracts, err := u.contractRepo.ListByProperty(ctx, p.ID, ownerID)
	if err != nil {
		return err
	}
	tenants, err := u.tenantRepo.ListByProperty(ctx, p.ID, ownerID)
	if err != nil {
		return err
	}

	now := u.clock.Now()
	tx := u.txm.Begin()
	for _, pay := range payments {
		tx.DeletePayment(pay.ID, ownerID)
	}
	for _, c := range contracts {
		tx.DeleteContract(c.ID, ownerID)
	}
	for _, t := range tenants {
		t.ClearContract()
		t.UpdatedAt = now
		tx.PutTenant(t)
	}
	tx.DeleteProperty(p.ID, ownerID)

	zap.S().Infow("property delete", "property_id", p.ID, "payments", len(payments), "contracts", len(contracts), "tenants", len(tenants))
	if err := tx.Commit(ctx); err != nil {
		return mapCommitErr(err)
	}
	return nil
}

func (u *PropertyUseCase) SetImageURL(ctx context.Context, id, ownerID, url string) (entities.Property, error) {
	p, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Property{}, err
	}
	p.ImageURL = url
	p.UpdatedAt = u.clock.Now()
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Property{}, mapCommitErr(err)
	}
	return saved, nil
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id, ownerID string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}
	p, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (u *PropertyUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Property, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *PropertyUseCase) ListByStatus(ctx context.Context, ownerID string, status entities.PropertyStatus) ([]entities.Property, error) {
	if !status.Valid() {
		return nil, ErrInvalidPropertyStatus
	}
	return u.repo.ListByStatus(ctx, ownerID, status)
}

func (u *PropertyUseCase) ListAvailable(ctx context.Context, ownerID string) ([]entities.Property, error) {
	return u.repo.ListByStatus(ctx, ownerID, entities.PropertyStatusAvailable)
}

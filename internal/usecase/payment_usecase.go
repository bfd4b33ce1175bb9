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
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrMissingDueDate       = errors.New("missing payment due date")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// CreatePaymentInput carries the fields accepted on payment creation.
// When Status is empty the status is derived from the dates.
type CreatePaymentInput struct {
	TenantID   string
	PropertyID string
	Amount     float64
	DueDate    time.Time
	PaidDate   *time.Time
	Status     entities.PaymentStatus
	ReceiptURL string
}

// UpdatePaymentInput carries partial updates; nil fields are left unchanged.
//
// Two rules interact here: an explicit Status assignment stamps or clears
// PaidDate, and a directly supplied PaidDate forces paid. When both appear in
// one request the direct PaidDate wins, so it is applied last.
type UpdatePaymentInput struct {
	Amount     *float64
	DueDate    *time.Time
	PaidDate   *time.Time
	Status     *entities.PaymentStatus
	ReceiptURL *string
}

// IPaymentUseCase exposes the rent payment lifecycle: status derivation from
// dates, explicit settlement via Register, and the late/pending views.

type IPaymentUseCase interface {
	Create(ctx context.Context, ownerID string, in CreatePaymentInput) (entities.Payment, error)
	Update(ctx context.Context, id, ownerID string, in UpdatePaymentInput) (entities.Payment, error)
	Register(ctx context.Context, id, ownerID string, paidDate *time.Time, receiptURL string) (entities.Payment, error)
	Delete(ctx context.Context, id, ownerID string) error
	GetByID(ctx context.Context, id, ownerID string) (entities.Payment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, ownerID string, status entities.PaymentStatus) ([]entities.Payment, error)
	ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Payment, error)
	ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Payment, error)
	ListLate(ctx context.Context, ownerID string, month time.Month, year int) ([]entities.Payment, error)
	RecomputeStatuses(ctx context.Context, ownerID string) (int, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	tenantRepo   interfaces.ITenantRepository
	propertyRepo interfaces.IPropertyRepository
	clock        interfaces.Clock
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	tenantRepo interfaces.ITenantRepository,
	propertyRepo interfaces.IPropertyRepository,
	clock interfaces.Clock,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tenantRepo: tenantRepo, propertyRepo: propertyRepo, clock: clock}
}

func (u *PaymentUseCase) Create(ctx context.Context, ownerID string, in CreatePaymentInput) (entities.Payment, error) {
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if in.DueDate.IsZero() {
		return entities.Payment{}, ErrMissingDueDate
	}

	tenant, err := u.tenantRepo.GetByID(ctx, strings.TrimSpace(in.TenantID), ownerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if tenant.ID == "" {
		return entities.Payment{}, ErrTenantNotFound
	}
	property, err := u.propertyRepo.GetByID(ctx, strings.TrimSpace(in.PropertyID), ownerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if property.ID == "" {
		return entities.Payment{}, ErrPropertyNotFound
	}

	now := u.clock.Now()
	status := in.Status
	if status == "" {
		status = entities.DerivePaymentStatus(in.DueDate, in.PaidDate, now)
	}
	if !status.Valid() {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	p := entities.Payment{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		TenantID:   tenant.ID,
		PropertyID: property.ID,
		Amount:     in.Amount,
		DueDate:    entities.DateOnly(in.DueDate),
		Status:     status,
		ReceiptURL: in.ReceiptURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.PaidDate != nil {
		paid := entities.DateOnly(*in.PaidDate)
		p.PaidDate = &paid
	}

	zap.S().Infow("payment create", "payment_id", p.ID, "tenant_id", p.TenantID, "status", p.Status)
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) Update(ctx context.Context, id, ownerID string, in UpdatePaymentInput) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Payment{}, err
	}

	if in.Amount != nil {
		if *in.Amount <= 0 {
			return entities.Payment{}, ErrInvalidPaymentAmount
		}
		p.Amount = *in.Amount
	}
	if in.DueDate != nil {
		p.DueDate = entities.DateOnly(*in.DueDate)
	}
	if in.ReceiptURL != nil {
		p.ReceiptURL = *in.ReceiptURL
	}

	now := u.clock.Now()
	if in.Status != nil {
		if !in.Status.Valid() {
			return entities.Payment{}, ErrInvalidPaymentStatus
		}
		p.Status = *in.Status
		if p.Status == entities.PaymentStatusPaid {
			if p.PaidDate == nil {
				today := entities.DateOnly(now)
				p.PaidDate = &today
			}
		} else {
			p.PaidDate = nil
		}
	}

	// A directly supplied paid date always settles the payment, even when the
	// same request carried a non-paid status.
	if in.PaidDate != nil {
		paid := entities.DateOnly(*in.PaidDate)
		p.PaidDate = &paid
		p.Status = entities.PaymentStatusPaid
	}

	p.UpdatedAt = now
	return u.repo.Save(ctx, p)
}

// Register settles the payment: it stamps the paid date (today when omitted),
// forces paid and optionally attaches a receipt URL. Registering twice with
// the same date is a no-op the second time.
func (u *PaymentUseCase) Register(ctx context.Context, id, ownerID string, paidDate *time.Time, receiptURL string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Payment{}, err
	}

	now := u.clock.Now()
	paid := entities.DateOnly(now)
	if paidDate != nil {
		paid = entities.DateOnly(*paidDate)
	}
	p.PaidDate = &paid
	p.Status = entities.PaymentStatusPaid
	if receiptURL != "" {
		p.ReceiptURL = receiptURL
	}
	p.UpdatedAt = now

	zap.S().Infow("payment register", "payment_id", p.ID, "paid_date", paid.Format("2006-01-02"))
	return u.repo.Save(ctx, p)
}

func (u *PaymentUseCase) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := u.GetByID(ctx, id, ownerID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id), ownerID)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id, ownerID string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Payment, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *PaymentUseCase) ListByStatus(ctx context.Context, ownerID string, status entities.PaymentStatus) ([]entities.Payment, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	return u.repo.ListByStatus(ctx, ownerID, status)
}

func (u *PaymentUseCase) ListByTenant(ctx context.Context, tenantID, ownerID string) ([]entities.Payment, error) {
	return u.repo.ListByTenant(ctx, strings.TrimSpace(tenantID), ownerID)
}

func (u *PaymentUseCase) ListByProperty(ctx context.Context, propertyID, ownerID string) ([]entities.Payment, error) {
	return u.repo.ListByProperty(ctx, strings.TrimSpace(propertyID), ownerID)
}

// ListLate returns late payments, oldest due date first, optionally filtered
// to the given due month/year (month zero means unfiltered). Lateness is
// derived from the dates, so a payment that went overdue since its last write
// shows up even before a sweep has persisted the late status.
func (u *PaymentUseCase) ListLate(ctx context.Context, ownerID string, month time.Month, year int) ([]entities.Payment, error) {
	payments, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	var out []entities.Payment
	for _, p := range payments {
		if entities.DerivePaymentStatus(p.DueDate, p.PaidDate, now) != entities.PaymentStatusLate {
			continue
		}
		if month != 0 && !p.DueIn(month, year) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

// RecomputeStatuses persists the date-derived status for every unpaid
// payment, moving overdue pendings to late. Returns how many changed.
func (u *PaymentUseCase) RecomputeStatuses(ctx context.Context, ownerID string) (int, error) {
	payments, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	changed := 0
	for _, p := range payments {
		derived := entities.DerivePaymentStatus(p.DueDate, p.PaidDate, now)
		if derived == p.Status {
			continue
		}
		p.Status = derived
		p.UpdatedAt = now
		if _, err := u.repo.Save(ctx, p); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		zap.S().Infow("payment status sweep", "owner_id", ownerID, "changed", changed)
	}
	return changed, nil
}

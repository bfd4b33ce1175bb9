package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase/interfaces"
)

// DashboardStats is the month-scoped portfolio summary.
//
// PropertyCount and TenantCount are activity proxies: distinct properties and
// tenants with any payment due in the target month, not portfolio headcounts.
type DashboardStats struct {
	Month           time.Month `json:"month"`
	Year            int        `json:"year"`
	MonthlyIncome   float64    `json:"monthly_income"`
	IncomeVariation float64    `json:"income_variation"`
	PendingTotal    float64    `json:"pending_total"`
	PropertyCount   int        `json:"property_count"`
	TenantCount     int        `json:"tenant_count"`
	DelinquentCount int        `json:"delinquent_count"`
}

// IDashboardUseCase is the read-only reporting aggregator over payments,
// contracts and properties.

type IDashboardUseCase interface {
	Stats(ctx context.Context, ownerID string, month time.Month, year int) (DashboardStats, error)
	LatePayments(ctx context.Context, ownerID string, month time.Month, year int) ([]entities.Payment, error)
	ExpiringContracts(ctx context.Context, ownerID string) ([]entities.Contract, error)
	FeaturedProperties(ctx context.Context, ownerID string) ([]entities.Property, error)
}

type DashboardUseCase struct {
	paymentRepo  interfaces.IPaymentRepository
	contractRepo interfaces.IContractRepository
	propertyRepo interfaces.IPropertyRepository
	clock        interfaces.Clock
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	paymentRepo interfaces.IPaymentRepository,
	contractRepo interfaces.IContractRepository,
	propertyRepo interfaces.IPropertyRepository,
	clock interfaces.Clock,
) *DashboardUseCase {
	return &DashboardUseCase{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		propertyRepo: propertyRepo,
		clock:        clock,
	}
}

// Stats aggregates the owner's payments for the given month/year (current
// month when zero). The income variation against the previous month is
// rounded to one decimal and floored to 0 whenever the previous month's
// income is not positive.
func (u *DashboardUseCase) Stats(ctx context.Context, ownerID string, month time.Month, year int) (DashboardStats, error) {
	now := u.clock.Now()
	if month == 0 || year == 0 {
		month = now.UTC().Month()
		year = now.UTC().Year()
	}

	payments, err := u.paymentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return DashboardStats{}, err
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	stats := DashboardStats{Month: month, Year: year}
	var prevIncome float64
	properties := map[string]struct{}{}
	tenants := map[string]struct{}{}
	delinquents := map[string]struct{}{}

	for _, p := range payments {
		if p.PaidDate != nil {
			if p.PaidIn(month, year) {
				stats.MonthlyIncome += p.Amount
			}
			if p.PaidIn(prev.Month(), prev.Year()) {
				prevIncome += p.Amount
			}
		}

		if !p.DueIn(month, year) {
			continue
		}
		properties[p.PropertyID] = struct{}{}
		tenants[p.TenantID] = struct{}{}

		switch entities.DerivePaymentStatus(p.DueDate, p.PaidDate, now) {
		case entities.PaymentStatusLate:
			delinquents[p.TenantID] = struct{}{}
			stats.PendingTotal += p.Amount
		case entities.PaymentStatusPending:
			stats.PendingTotal += p.Amount
		}
	}

	if prevIncome > 0 {
		stats.IncomeVariation = round1((stats.MonthlyIncome - prevIncome) / prevIncome * 100)
	}
	stats.PropertyCount = len(properties)
	stats.TenantCount = len(tenants)
	stats.DelinquentCount = len(delinquents)
	return stats, nil
}

// LatePayments lists overdue unpaid payments, optionally month-filtered,
// oldest due date first.
func (u *DashboardUseCase) LatePayments(ctx context.Context, ownerID string, month time.Month, year int) ([]entities.Payment, error) {
	payments, err := u.paymentRepo.ListByOwner(ctx, ownerID)
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

// ExpiringContracts lists signed/active contracts ending within the
// expiring-soon window, soonest first.
func (u *DashboardUseCase) ExpiringContracts(ctx context.Context, ownerID string) ([]entities.Contract, error) {
	contracts, err := u.contractRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	today := entities.DateOnly(u.clock.Now())
	limit := today.AddDate(0, 0, entities.ExpiringSoonThresholdDays)
	var out []entities.Contract
	for _, c := range contracts {
		switch c.Status {
		case entities.ContractStatusActive, entities.ContractStatusSigned, entities.ContractStatusExpiringSoon:
		default:
			continue
		}
		end := entities.DateOnly(c.EndDate)
		if !end.Before(today) && !end.After(limit) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

// FeaturedProperties lists the owner's currently available units.
func (u *DashboardUseCase) FeaturedProperties(ctx context.Context, ownerID string) ([]entities.Property, error) {
	return u.propertyRepo.ListByStatus(ctx, ownerID, entities.PropertyStatusAvailable)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package entities

import "time"

// PaymentStatus represents a rent payment's settlement state.
//
// Invariant: paid iff PaidDate is set; late iff PaidDate is unset and today is
// past the due date; pending otherwise. DerivePaymentStatus is the one place
// that encodes this.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusLate    PaymentStatus = "late"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusLate:
		return true
	}
	return false
}

// Payment is a rent payment scoped to one owning user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id

type Payment struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"owner_id"`
	TenantID   string        `json:"tenant_id"`
	PropertyID string        `json:"property_id"`
	Amount     float64       `json:"amount"`
	DueDate    time.Time     `json:"due_date"`
	PaidDate   *time.Time    `json:"paid_date,omitempty"`
	Status     PaymentStatus `json:"status"`
	ReceiptURL string        `json:"receipt_url,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// DerivePaymentStatus computes the status a payment should carry for the
// given day.
func DerivePaymentStatus(dueDate time.Time, paidDate *time.Time, today time.Time) PaymentStatus {
	if paidDate != nil {
		return PaymentStatusPaid
	}
	if DateOnly(today).After(DateOnly(dueDate)) {
		return PaymentStatusLate
	}
	return PaymentStatusPending
}

// DaysLate returns how many days past due the payment is: zero when paid,
// or while the due date has not passed.
func (p *Payment) DaysLate(today time.Time) int {
	if p.PaidDate != nil {
		return 0
	}
	today = DateOnly(today)
	due := DateOnly(p.DueDate)
	if !today.After(due) {
		return 0
	}
	return daysBetween(due, today)
}

// DueIn reports whether the payment's due date falls in the given month/year.
func (p *Payment) DueIn(month time.Month, year int) bool {
	return p.DueDate.UTC().Month() == month && p.DueDate.UTC().Year() == year
}

// PaidIn reports whether the payment was settled in the given month/year.
func (p *Payment) PaidIn(month time.Month, year int) bool {
	return p.PaidDate != nil && p.PaidDate.UTC().Month() == month && p.PaidDate.UTC().Year() == year
}

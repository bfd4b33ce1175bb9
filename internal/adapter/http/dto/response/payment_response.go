package response

import (
	"time"

	"rentora/internal/domain/entities"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	PropertyID string    `json:"property_id"`
	Amount     float64   `json:"amount"`
	DueDate    string    `json:"due_date"`
	PaidDate   string    `json:"paid_date,omitempty"`
	Status     string    `json:"status"`
	DaysLate   int       `json:"days_late,omitempty"`
	ReceiptURL string    `json:"receipt_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromPayment renders the payment with its lateness computed for today, so a
// stale stored status never reaches a client.
func FromPayment(p entities.Payment, today time.Time) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		TenantID:   p.TenantID,
		PropertyID: p.PropertyID,
		Amount:     p.Amount,
		DueDate:    p.DueDate.UTC().Format(dateLayout),
		PaidDate:   formatDatePtr(p.PaidDate),
		Status:     string(entities.DerivePaymentStatus(p.DueDate, p.PaidDate, today)),
		DaysLate:   p.DaysLate(today),
		ReceiptURL: p.ReceiptURL,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment, today time.Time) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p, today))
	}
	return out
}

package request

import (
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"
)

type CreatePaymentRequest struct {
	TenantID   string  `json:"tenant_id" binding:"required"`
	PropertyID string  `json:"property_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	DueDate    string  `json:"due_date" binding:"required"`
	PaidDate   *string `json:"paid_date"`
	Status     string  `json:"status"`
	ReceiptURL string  `json:"receipt_url"`
}

func (r CreatePaymentRequest) ToInput() (usecase.CreatePaymentInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.CreatePaymentInput{}, err
	}
	paid, err := parseDatePtr(r.PaidDate)
	if err != nil {
		return usecase.CreatePaymentInput{}, err
	}

	return usecase.CreatePaymentInput{
		TenantID:   r.TenantID,
		PropertyID: r.PropertyID,
		Amount:     r.Amount,
		DueDate:    due,
		PaidDate:   paid,
		Status:     entities.PaymentStatus(r.Status),
		ReceiptURL: r.ReceiptURL,
	}, nil
}

type UpdatePaymentRequest struct {
	Amount     *float64 `json:"amount"`
	DueDate    *string  `json:"due_date"`
	PaidDate   *string  `json:"paid_date"`
	Status     *string  `json:"status"`
	ReceiptURL *string  `json:"receipt_url"`
}

func (r UpdatePaymentRequest) ToInput() (usecase.UpdatePaymentInput, error) {
	due, err := parseDatePtr(r.DueDate)
	if err != nil {
		return usecase.UpdatePaymentInput{}, err
	}
	paid, err := parseDatePtr(r.PaidDate)
	if err != nil {
		return usecase.UpdatePaymentInput{}, err
	}

	in := usecase.UpdatePaymentInput{
		Amount:     r.Amount,
		DueDate:    due,
		PaidDate:   paid,
		ReceiptURL: r.ReceiptURL,
	}
	if r.Status != nil {
		st := entities.PaymentStatus(*r.Status)
		in.Status = &st
	}
	return in, nil
}

// RegisterPaymentRequest settles a payment. PaidDate defaults to today when
// omitted.
type RegisterPaymentRequest struct {
	PaidDate   *string `json:"paid_date"`
	ReceiptURL string  `json:"receipt_url"`
}

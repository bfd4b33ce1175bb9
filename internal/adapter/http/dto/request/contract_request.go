package request

import (
	"strconv"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase"
)

// CreateContractRequest carries dates as yyyy-mm-dd strings; ToInput parses
// them and rejects malformed values with ErrInvalidDate.
type CreateContractRequest struct {
	TenantID    string  `json:"tenant_id" binding:"required"`
	PropertyID  string  `json:"property_id" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	MonthlyRent float64 `json:"monthly_rent" binding:"required"`
	Status      string  `json:"status"`
	DocumentURL string  `json:"document_url"`
}

func (r CreateContractRequest) ToInput() (usecase.CreateContractInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}

	return usecase.CreateContractInput{
		TenantID:    r.TenantID,
		PropertyID:  r.PropertyID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: r.MonthlyRent,
		Status:      entities.ContractStatus(r.Status),
		DocumentURL: r.DocumentURL,
	}, nil
}

type UpdateContractRequest struct {
	TenantID    *string  `json:"tenant_id"`
	PropertyID  *string  `json:"property_id"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	MonthlyRent *float64 `json:"monthly_rent"`
	Status      *string  `json:"status"`
	DocumentURL *string  `json:"document_url"`
}

func (r UpdateContractRequest) ToInput() (usecase.UpdateContractInput, error) {
	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return usecase.UpdateContractInput{}, err
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return usecase.UpdateContractInput{}, err
	}

	in := usecase.UpdateContractInput{
		TenantID:    r.TenantID,
		PropertyID:  r.PropertyID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: r.MonthlyRent,
		DocumentURL: r.DocumentURL,
	}
	if r.Status != nil {
		st := entities.ContractStatus(*r.Status)
		in.Status = &st
	}
	return in, nil
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetContractDocumentRequest struct {
	DocumentURL string `json:"document_url" binding:"required"`
}

// ExpiringDays parses the ?days= query value, falling back to def when it is
// absent or not a positive integer.
func ExpiringDays(raw string, def int) int {
	if raw == "" {
		return def
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return def
	}
	return days
}

package response

import (
	"time"

	"rentora/internal/domain/entities"
)

type ContractResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	PropertyID  string    `json:"property_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	MonthlyRent float64   `json:"monthly_rent"`
	Status      string    `json:"status"`
	DocumentURL string    `json:"document_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		PropertyID:  c.PropertyID,
		StartDate:   c.StartDate.UTC().Format(dateLayout),
		EndDate:     c.EndDate.UTC().Format(dateLayout),
		MonthlyRent: c.MonthlyRent,
		Status:      string(c.Status),
		DocumentURL: c.DocumentURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}

// RecomputeResponse reports how many entities a sweep touched.
type RecomputeResponse struct {
	Updated int `json:"updated"`
}

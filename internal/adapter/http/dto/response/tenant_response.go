package response

import (
	"time"

	"rentora/internal/domain/entities"
)

type TenantResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Document       string    `json:"document"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	PropertyID     string    `json:"property_id,omitempty"`
	ContractStatus string    `json:"contract_status"`
	ContractEnd    string    `json:"contract_end,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:             t.ID,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Email:          t.Email,
		Phone:          t.Phone,
		Document:       t.Document,
		AvatarURL:      t.AvatarURL,
		PropertyID:     t.PropertyID,
		ContractStatus: string(t.ContractStatus),
		ContractEnd:    formatDatePtr(t.ContractEnd),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTenants(tenants []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, FromTenant(t))
	}
	return out
}

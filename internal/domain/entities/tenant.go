package entities

import "time"

// TenantContractStatus mirrors the tenant-facing view of their most recent
// contract. It is always derived through the synchronizer mapping, never set
// from request input directly.

type TenantContractStatus string

const (
	TenantContractNone      TenantContractStatus = "no_contract"
	TenantContractInProcess TenantContractStatus = "in_process"
	TenantContractActive    TenantContractStatus = "active"
	TenantContractFinished  TenantContractStatus = "finished"
)

func (s TenantContractStatus) Valid() bool {
	switch s {
	case TenantContractNone, TenantContractInProcess, TenantContractActive, TenantContractFinished:
		return true
	}
	return false
}

// Tenant is a renter scoped to one owning user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Email and Document are unique per owner; uniqueness is enforced by the
// usecase through lookups, not by the table schema.
//
// PropertyID is set only while ContractStatus is in_process or active.
// ContractEnd caches the end date of the tenant's current contract so list
// views don't need a join.

type Tenant struct {
	ID             string               `json:"id"`
	OwnerID        string               `json:"owner_id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone,omitempty"`
	Document       string               `json:"document"`
	AvatarURL      string               `json:"avatar_url,omitempty"`
	PropertyID     string               `json:"property_id,omitempty"`
	ContractStatus TenantContractStatus `json:"contract_status"`
	ContractEnd    *time.Time           `json:"contract_end,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ClearContract resets the tenant to the no-contract baseline used after a
// contract is deleted or its tenant is swapped out.
func (t *Tenant) ClearContract() {
	t.ContractStatus = TenantContractNone
	t.PropertyID = ""
	t.ContractEnd = nil
}

package entities

import "time"

// ContractStatus represents the lifecycle of a lease contract.
//
// Transitions are driven by explicit actions (sign, finalize) and by the
// date-driven recompute in RecomputeStatus. unsigned never auto-advances.

type ContractStatus string

const (
	ContractStatusUnsigned     ContractStatus = "unsigned"
	ContractStatusInProcess    ContractStatus = "in_process"
	ContractStatusSigned       ContractStatus = "signed"
	ContractStatusActive       ContractStatus = "active"
	ContractStatusExpiringSoon ContractStatus = "expiring_soon"
	ContractStatusFinished     ContractStatus = "finished"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusUnsigned, ContractStatusInProcess, ContractStatusSigned,
		ContractStatusActive, ContractStatusExpiringSoon, ContractStatusFinished:
		return true
	}
	return false
}

// Occupying reports whether a contract in this status holds tenant/property
// side effects that must be reverted before the contract goes away.
func (s ContractStatus) Occupying() bool {
	switch s {
	case ContractStatusActive, ContractStatusExpiringSoon, ContractStatusSigned, ContractStatusInProcess:
		return true
	}
	return false
}

// Days before the end date at which an ongoing contract becomes expiring_soon.
const ExpiringSoonThresholdDays = 30

// Contract binds one tenant to one property over a date range.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//   - GSI2 (property_id-index): property_id, used by the overlap query.

type Contract struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	TenantID    string         `json:"tenant_id"`
	PropertyID  string         `json:"property_id"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	MonthlyRent float64        `json:"monthly_rent"`
	Status      ContractStatus `json:"status"`
	DocumentURL string         `json:"document_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// RecomputeStatus applies the date-driven status rule for the given day and
// reports whether the status changed. An unsigned contract is left alone; the
// owner has to sign it first.
func (c *Contract) RecomputeStatus(today time.Time) bool {
	if c.Status == ContractStatusUnsigned {
		return false
	}

	prev := c.Status
	today = DateOnly(today)

	switch {
	case today.After(DateOnly(c.EndDate)):
		c.Status = ContractStatusFinished
	case today.Before(DateOnly(c.StartDate)):
		// Not started yet: keep it in the active family, never regress to unsigned.
		c.Status = ContractStatusActive
	case daysBetween(today, DateOnly(c.EndDate)) <= ExpiringSoonThresholdDays:
		c.Status = ContractStatusExpiringSoon
	default:
		c.Status = ContractStatusActive
	}
	return c.Status != prev
}

// DaysRemaining returns the days until the contract ends, zero once past it.
func (c *Contract) DaysRemaining(today time.Time) int {
	today = DateOnly(today)
	end := DateOnly(c.EndDate)
	if today.After(end) {
		return 0
	}
	return daysBetween(today, end)
}

// Overlaps reports whether two inclusive [start,end] date ranges intersect.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	start := DateOnly(startA)
	if DateOnly(startB).After(start) {
		start = DateOnly(startB)
	}
	end := DateOnly(endA)
	if DateOnly(endB).Before(end) {
		end = DateOnly(endB)
	}
	return !start.After(end)
}

// DateOnly truncates a timestamp to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

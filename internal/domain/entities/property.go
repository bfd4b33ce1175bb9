package entities

import "time"

// PropertyStatus represents the occupancy state of a rental property.
//
// Domain notes:
//   - occupied/reserved are driven by the contract lifecycle, never set directly
//     by the contract engine's callers.
//   - maintenance is a manual state and is left alone by the synchronizer.

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusReserved    PropertyStatus = "reserved"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusOccupied, PropertyStatusReserved, PropertyStatusMaintenance:
		return true
	}
	return false
}

// PropertyType is informational only; it never affects lifecycle decisions.

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCommerce  PropertyType = "commerce"
	PropertyTypeOffice    PropertyType = "office"
	PropertyTypeOther     PropertyType = "other"
)

// Property is a rental unit owned by exactly one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Version is an optimistic-concurrency counter. Every transaction that writes
// the property (directly or as a contract side effect) condition-checks and
// bumps it, which serializes concurrent contract creations on the same unit.

type Property struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Type        PropertyType   `json:"type"`
	MonthlyRent float64        `json:"monthly_rent"`
	Status      PropertyStatus `json:"status"`
	ImageURL    string         `json:"image_url,omitempty"`
	Version     int64          `json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

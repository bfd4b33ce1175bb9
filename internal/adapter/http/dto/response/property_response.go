package response

import (
	"time"

	"rentora/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

type PropertyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Type        string    `json:"type,omitempty"`
	MonthlyRent float64   `json:"monthly_rent"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Type:        string(p.Type),
		MonthlyRent: p.MonthlyRent,
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProperties(props []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, FromProperty(p))
	}
	return out
}

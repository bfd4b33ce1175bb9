package request

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// parseDate converts a yyyy-mm-dd payload field into a UTC calendar day.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	if *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type CreatePropertyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Type        string  `json:"type"`
	MonthlyRent float64 `json:"monthly_rent" binding:"required"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"image_url"`
}

type UpdatePropertyRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Type        *string  `json:"type"`
	MonthlyRent *float64 `json:"monthly_rent"`
	Status      *string  `json:"status"`
	ImageURL    *string  `json:"image_url"`
}

package response

import (
	"testing"
	"time"

	"rentora/internal/domain/entities"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Contract{
		ID:          "contract-1",
		TenantID:    "tenant-1",
		PropertyID:  "prop-1",
		StartDate:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: 1200,
		Status:      entities.ContractStatusActive,
		DocumentURL: "https://bucket/contracts/contract-1.pdf",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromContract(c)
	if res.ID != "contract-1" || res.TenantID != "tenant-1" || res.PropertyID != "prop-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.StartDate != "2024-02-01" || res.EndDate != "2025-02-01" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MonthlyRent != 1200 || res.Status != "active" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DocumentURL != "https://bucket/contracts/contract-1.pdf" {
		t.Fatalf("unexpected document url: %q", res.DocumentURL)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
}

func TestFromContracts_Empty(t *testing.T) {
	out := FromContracts(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}

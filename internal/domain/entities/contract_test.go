package entities

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContract_RecomputeStatus(t *testing.T) {
	base := Contract{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2025, time.January, 1),
	}

	t.Run("unsigned never auto-advances", func(t *testing.T) {
		c := base
		c.Status = ContractStatusUnsigned
		if c.RecomputeStatus(date(2025, time.June, 1)) {
			t.Fatalf("expected no change, got %s", c.Status)
		}
		if c.Status != ContractStatusUnsigned {
			t.Fatalf("expected unsigned, got %s", c.Status)
		}
	})

	t.Run("signed contract mid-term becomes active", func(t *testing.T) {
		c := base
		c.Status = ContractStatusSigned
		if !c.RecomputeStatus(date(2024, time.June, 15)) {
			t.Fatalf("expected a status change")
		}
		if c.Status != ContractStatusActive {
			t.Fatalf("expected active, got %s", c.Status)
		}
	})

	t.Run("within threshold of end becomes expiring_soon", func(t *testing.T) {
		c := base
		c.Status = ContractStatusActive
		if !c.RecomputeStatus(date(2024, time.December, 15)) {
			t.Fatalf("expected a status change")
		}
		if c.Status != ContractStatusExpiringSoon {
			t.Fatalf("expected expiring_soon, got %s", c.Status)
		}
	})

	t.Run("exactly at threshold becomes expiring_soon", func(t *testing.T) {
		c := base
		c.Status = ContractStatusActive
		c.RecomputeStatus(date(2024, time.December, 2))
		if c.Status != ContractStatusExpiringSoon {
			t.Fatalf("expected expiring_soon, got %s", c.Status)
		}
	})

	t.Run("one day beyond threshold stays active", func(t *testing.T) {
		c := base
		c.Status = ContractStatusActive
		if c.RecomputeStatus(date(2024, time.December, 1)) {
			t.Fatalf("expected no change, got %s", c.Status)
		}
	})

	t.Run("past end date becomes finished", func(t *testing.T) {
		c := base
		c.Status = ContractStatusExpiringSoon
		if !c.RecomputeStatus(date(2025, time.January, 5)) {
			t.Fatalf("expected a status change")
		}
		if c.Status != ContractStatusFinished {
			t.Fatalf("expected finished, got %s", c.Status)
		}
	})

	t.Run("end date itself is not finished", func(t *testing.T) {
		c := base
		c.Status = ContractStatusActive
		c.RecomputeStatus(date(2025, time.January, 1))
		if c.Status == ContractStatusFinished {
			t.Fatalf("expected not finished on the end date")
		}
	})

	t.Run("before start stays in the active family", func(t *testing.T) {
		c := base
		c.Status = ContractStatusSigned
		c.RecomputeStatus(date(2023, time.December, 1))
		if c.Status != ContractStatusActive {
			t.Fatalf("expected active, got %s", c.Status)
		}
	})

	t.Run("no change reports false", func(t *testing.T) {
		c := base
		c.Status = ContractStatusFinished
		if c.RecomputeStatus(date(2025, time.March, 1)) {
			t.Fatalf("expected no change")
		}
	})
}

func TestContract_DaysRemaining(t *testing.T) {
	c := Contract{EndDate: date(2025, time.January, 31)}

	if got := c.DaysRemaining(date(2025, time.January, 1)); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := c.DaysRemaining(date(2025, time.January, 31)); got != 0 {
		t.Fatalf("expected 0 on the end date, got %d", got)
	}
	if got := c.DaysRemaining(date(2025, time.February, 10)); got != 0 {
		t.Fatalf("expected 0 past the end date, got %d", got)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{
			name:   "disjoint ranges",
			startA: date(2024, time.January, 1), endA: date(2024, time.June, 30),
			startB: date(2024, time.July, 1), endB: date(2024, time.December, 31),
			want: false,
		},
		{
			name:   "shared boundary day overlaps",
			startA: date(2024, time.January, 1), endA: date(2024, time.June, 30),
			startB: date(2024, time.June, 30), endB: date(2024, time.December, 31),
			want: true,
		},
		{
			name:   "contained range overlaps",
			startA: date(2024, time.January, 1), endA: date(2024, time.December, 31),
			startB: date(2024, time.March, 1), endB: date(2024, time.April, 1),
			want: true,
		},
		{
			name:   "order of ranges does not matter",
			startA: date(2024, time.March, 1), endA: date(2024, time.April, 1),
			startB: date(2024, time.January, 1), endB: date(2024, time.December, 31),
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.startA, tc.endA, tc.startB, tc.endB); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestContractStatus_Occupying(t *testing.T) {
	occupying := []ContractStatus{ContractStatusInProcess, ContractStatusSigned, ContractStatusActive, ContractStatusExpiringSoon}
	for _, s := range occupying {
		if !s.Occupying() {
			t.Fatalf("expected %s to be occupying", s)
		}
	}
	if ContractStatusUnsigned.Occupying() {
		t.Fatalf("unsigned must not be occupying")
	}
	if ContractStatusFinished.Occupying() {
		t.Fatalf("finished must not be occupying")
	}
}

func TestContractStatus_Valid(t *testing.T) {
	if !ContractStatusExpiringSoon.Valid() {
		t.Fatalf("expected expiring_soon to be valid")
	}
	if ContractStatus("draft").Valid() {
		t.Fatalf("expected draft to be invalid")
	}
}

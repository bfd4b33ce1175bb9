package repository

import (
	"os"
	"sort"
	"strconv"
	"time"
)

// Calendar dates are stored as ISO day strings so range filters can compare
// them lexicographically inside DynamoDB expressions.
const dateLayout = "2006-01-02"

const ownerIDIndex = "owner_id-index"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseDate(s)
	return &t
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// newestFirst keeps list endpoints stable: most recently created first.
func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

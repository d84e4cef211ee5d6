package repository

import (
	"database/sql"
	"encoding/json"
	"time"
)

// nullableFloat converts a *float64 to a SQLite value (NULL when nil).
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableInt converts a *int to a SQLite value (NULL when nil).
func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatPtr converts a scanned sql.NullFloat64 back to a *float64.
func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// intPtr converts a scanned sql.NullInt64 back to a *int.
func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// encodeGoals serializes a goal list for storage. A nil list stores as [].
func encodeGoals(goals []string) string {
	if goals == nil {
		goals = []string{}
	}
	data, _ := json.Marshal(goals)
	return string(data)
}

// decodeGoals deserializes a stored goal list. Malformed data yields an
// empty list rather than an error.
func decodeGoals(raw string) []string {
	var goals []string
	if err := json.Unmarshal([]byte(raw), &goals); err != nil || goals == nil {
		return []string{}
	}
	return goals
}

// parseTime parses an RFC3339 timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

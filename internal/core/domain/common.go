package domain

import "time"

// DefaultUserID is the single owner identity every record is scoped to.
const DefaultUserID = "demo-user"

// TimestampLayout is the fixed-width UTC layout used for persisted timestamps.
// Fixed width keeps lexical order equal to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// AuditFields holds the creation and last-modification stamps of an entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FormatTimestamp renders t in TimestampLayout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout and falls back to RFC3339 for rows
// written by other tools.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

package models

// AuditFields holds the persisted creation and modification stamps.
// Timestamps are stored as fixed-width UTC text so they sort lexically.
type AuditFields struct {
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

package models

import "database/sql"

// Profile is the row shape of the profiles table.
type Profile struct {
	ID        string         `db:"id"`
	Username  sql.NullString `db:"username"`
	FullName  sql.NullString `db:"full_name"`
	UpdatedAt string         `db:"updated_at"`
}

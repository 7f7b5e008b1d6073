package domain

import "time"

// Profile holds display details of the owner.
type Profile struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username,omitempty"`
	FullName  *string   `json:"fullName,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateProfileInput replaces the display details of the owner.
type UpdateProfileInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=64"`
	FullName *string `json:"fullName,omitempty" validate:"omitempty,max=128"`
}

package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// UpdateProfileRequest replaces the owner's display details.
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,max=64"`
	FullName *string `json:"fullName" binding:"omitempty,max=128"`
}

// ToInput converts the request into the domain input.
func (r UpdateProfileRequest) ToInput() domain.UpdateProfileInput {
	return domain.UpdateProfileInput{Username: r.Username, FullName: r.FullName}
}

// ProfileResponse defines the data returned for the profile.
type ProfileResponse struct {
	ID        string     `json:"id"`
	Username  *string    `json:"username"`
	FullName  *string    `json:"fullName"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ToProfileResponse converts the domain profile. A never-saved profile has no updatedAt.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	res := ProfileResponse{ID: p.ID, Username: p.Username, FullName: p.FullName}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	return res
}

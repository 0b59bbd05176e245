package dto

import (
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for profile update.
// Absent fields keep their current values; preferences merge key by key.
type UpdateProfileRequest struct {
	Name        *string        `json:"name,omitempty"`
	Email       *string        `json:"email,omitempty" binding:"omitempty,email"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// ProfileResponse represents the profile in API responses.
type ProfileResponse struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Email       string         `json:"email,omitempty"`
	Preferences map[string]any `json:"preferences"`
}

// UpdateSettingsRequest represents the request body for settings update.
// Provided keys overwrite existing ones; absent keys are untouched.
type UpdateSettingsRequest struct {
	Settings map[string]any `json:"settings" binding:"required"`
}

// SettingsResponse represents the settings in API responses.
type SettingsResponse struct {
	Settings map[string]any `json:"settings"`
}

// ToProfileResponse converts a domain Profile to a ProfileResponse DTO.
func ToProfileResponse(profile entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Email:       profile.Email,
		Preferences: profile.Preferences,
	}
}

package profile

import (
	"context"
	"maps"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for updating the profile.
// Nil fields keep their current values; Preferences merges key by key.
type UpdateProfileInput struct {
	Name        *string
	Email       *string
	Preferences map[string]any
}

// UpdateProfileOutput represents the output of updating the profile.
type UpdateProfileOutput struct {
	Profile entity.Profile
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	stateManager adapter.StateManager
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(stateManager adapter.StateManager) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		stateManager: stateManager,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	var updated entity.Profile

	err := uc.stateManager.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		if input.Name != nil {
			snapshot.Profile.Name = *input.Name
		}
		if input.Email != nil {
			snapshot.Profile.Email = *input.Email
		}
		if len(input.Preferences) > 0 {
			if snapshot.Profile.Preferences == nil {
				snapshot.Profile.Preferences = map[string]any{}
			}
			for key, value := range input.Preferences {
				snapshot.Profile.Preferences[key] = value
			}
		}
		// Copied so the response is not a live reference into the state.
		updated = snapshot.Profile
		updated.Preferences = maps.Clone(snapshot.Profile.Preferences)
		return true
	})
	if err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{
		Profile: updated,
	}, nil
}

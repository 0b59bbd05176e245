// Package profile contains use cases for the owner's profile and settings.
package profile

import (
	"context"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetProfileInput represents the input for reading the profile.
type GetProfileInput struct{}

// GetProfileOutput represents the output of reading the profile.
type GetProfileOutput struct {
	Profile entity.Profile
}

// GetProfileUseCase handles profile read logic.
type GetProfileUseCase struct {
	stateManager adapter.StateManager
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(stateManager adapter.StateManager) *GetProfileUseCase {
	return &GetProfileUseCase{
		stateManager: stateManager,
	}
}

// Execute reads the current profile.
func (uc *GetProfileUseCase) Execute(_ context.Context, _ GetProfileInput) (*GetProfileOutput, error) {
	snapshot := uc.stateManager.Snapshot()

	return &GetProfileOutput{
		Profile: snapshot.Profile,
	}, nil
}

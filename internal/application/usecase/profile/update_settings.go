package profile

import (
	"context"
	"maps"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct{}

// GetSettingsOutput represents the output of reading settings.
type GetSettingsOutput struct {
	Settings map[string]any
}

// GetSettingsUseCase handles settings read logic.
type GetSettingsUseCase struct {
	stateManager adapter.StateManager
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(stateManager adapter.StateManager) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		stateManager: stateManager,
	}
}

// Execute reads the current settings.
func (uc *GetSettingsUseCase) Execute(_ context.Context, _ GetSettingsInput) (*GetSettingsOutput, error) {
	snapshot := uc.stateManager.Snapshot()

	return &GetSettingsOutput{
		Settings: snapshot.Settings,
	}, nil
}

// UpdateSettingsInput represents the input for updating settings. Provided
// keys overwrite existing ones; absent keys are untouched.
type UpdateSettingsInput struct {
	Settings map[string]any
}

// UpdateSettingsOutput represents the output of updating settings.
type UpdateSettingsOutput struct {
	Settings map[string]any
}

// UpdateSettingsUseCase handles settings update logic.
type UpdateSettingsUseCase struct {
	stateManager adapter.StateManager
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(stateManager adapter.StateManager) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		stateManager: stateManager,
	}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	var updated map[string]any

	err := uc.stateManager.Mutate(ctx, func(snapshot *entity.Snapshot) bool {
		if snapshot.Settings == nil {
			snapshot.Settings = map[string]any{}
		}
		for key, value := range input.Settings {
			snapshot.Settings[key] = value
		}
		// Copied so the response is not a live reference into the state.
		updated = maps.Clone(snapshot.Settings)
		return true
	})
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{
		Settings: updated,
	}, nil
}

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

func TestGoalRepositoryUnknownIDHasNoEffect(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	repo := NewGoalRepository(state)
	goal := populatedSnapshot().Goals[0]
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	before := state.Snapshot().LastUpdated
	time.Sleep(time.Millisecond)

	unknown := uuid.New()
	if err := repo.Update(ctx, &entity.Goal{ID: unknown}); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Fatalf("Update() error = %v, want ErrGoalNotFound", err)
	}
	if err := repo.Delete(ctx, unknown); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Fatalf("Delete() error = %v, want ErrGoalNotFound", err)
	}

	after := state.Snapshot()
	if !after.LastUpdated.Equal(before) {
		t.Errorf("LastUpdated = %v, want unchanged %v after not-found update and delete", after.LastUpdated, before)
	}
	if len(after.Goals) != 1 || after.Goals[0].ID != goal.ID {
		t.Error("goal collection must be untouched by a not-found update or delete")
	}
}

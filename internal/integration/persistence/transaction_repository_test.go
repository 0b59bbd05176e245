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

func TestTransactionRepositoryUnknownIDHasNoEffect(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := NewAppState(ctx, store, time.Hour)
	if err != nil {
		t.Fatalf("NewAppState() error = %v", err)
	}
	defer state.Close(ctx)

	repo := NewTransactionRepository(state)
	transaction := populatedSnapshot().Transactions[0]
	if err := repo.Create(ctx, transaction); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	before := state.Snapshot().LastUpdated
	time.Sleep(time.Millisecond)

	unknown := uuid.New()
	if err := repo.Update(ctx, &entity.Transaction{ID: unknown}); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("Update() error = %v, want ErrTransactionNotFound", err)
	}
	if err := repo.Delete(ctx, unknown); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("Delete() error = %v, want ErrTransactionNotFound", err)
	}

	after := state.Snapshot()
	if !after.LastUpdated.Equal(before) {
		t.Errorf("LastUpdated = %v, want unchanged %v after not-found update and delete", after.LastUpdated, before)
	}
	if len(after.Transactions) != 1 || after.Transactions[0].ID != transaction.ID {
		t.Error("ledger must be untouched by a not-found update or delete")
	}
}

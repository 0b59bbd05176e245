package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// fakeGoalRepo is an in-memory GoalRepository that counts writes, so tests
// can assert that rejected inputs never reach persistence.
type fakeGoalRepo struct {
	goals  []*entity.Goal
	writes int
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, goal)
	r.writes++
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) FindAll(_ context.Context) ([]*entity.Goal, error) {
	return append([]*entity.Goal(nil), r.goals...), nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	for i, g := range r.goals {
		if g.ID == goal.ID {
			r.goals[i] = goal
			r.writes++
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			r.writes++
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// fakeTransactionRepo is a read-only ledger for recompute tests.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return append([]*entity.Transaction(nil), r.transactions...), nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, t := range r.transactions {
		if t.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

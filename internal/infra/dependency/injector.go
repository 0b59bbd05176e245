// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/application/usecase/profile"
	"github.com/finance-dashboard/backend/internal/application/usecase/snapshot"
	"github.com/finance-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finance-dashboard/backend/internal/infra/scheduler"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Router          *router.Router
	State           *persistence.AppState
	BackupScheduler *scheduler.BackupScheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Loading the snapshot can fail (corrupt state), so wiring returns an error
// instead of panicking.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create snapshot store and in-memory state
	snapshotStore := persistence.NewSnapshotRepository(db)
	state, err := persistence.NewAppState(ctx, snapshotStore, cfg.Storage.DebounceWindow)
	if err != nil {
		return nil, err
	}

	// Create repositories over the state
	goalRepo := persistence.NewGoalRepository(state)
	transactionRepo := persistence.NewTransactionRepository(state)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	toggleGoalUseCase := goal.NewToggleGoalUseCase(goalRepo)
	goalSummaryUseCase := goal.NewGoalSummaryUseCase(goalRepo)
	recomputeGoalsUseCase := goal.NewRecomputeGoalsUseCase(goalRepo, transactionRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create snapshot use cases
	snapshotInfoUseCase := snapshot.NewGetSnapshotInfoUseCase(state)
	createBackupUseCase := snapshot.NewCreateBackupUseCase(state, snapshotStore)
	restoreBackupUseCase := snapshot.NewRestoreBackupUseCase(state, snapshotStore)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(state)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(state)
	getSettingsUseCase := profile.NewGetSettingsUseCase(state)
	updateSettingsUseCase := profile.NewUpdateSettingsUseCase(state)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		toggleGoalUseCase,
		goalSummaryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		recomputeGoalsUseCase,
	)

	snapshotController := controller.NewSnapshotController(
		snapshotInfoUseCase,
		createBackupUseCase,
		restoreBackupUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		updateProfileUseCase,
		getSettingsUseCase,
		updateSettingsUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		goalController,
		transactionController,
		snapshotController,
		profileController,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          r,
		State:           state,
		BackupScheduler: scheduler.NewBackupScheduler(state, snapshotStore),
	}, nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario. Every scenario gets a
// fresh in-memory database and a fresh application state.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Application
	injector *dependency.Injector

	// IDs captured from responses, substituted into later request paths
	goalID        string
	transactionID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{}

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return ctx, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return ctx, err
		}
		sqlDB.SetMaxOpenConns(1)

		if err := db.AutoMigrate(&model.SnapshotModel{}); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Storage.DebounceWindow = time.Millisecond

		injector, err := dependency.NewInjector(ctx, cfg, db)
		if err != nil {
			return ctx, err
		}

		tc.injector = injector
		tc.engine = injector.Router.Setup(cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.injector != nil {
				_ = tc.injector.State.Close(context.Background())
			}
			if tc.server != nil {
				tc.server.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerSetupSteps(ctx)
}

package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/db"
	"github.com/SultanDF/exam-dss/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string
}

// Store returns the solution store, or nil when persistence is disabled.
// Going through this accessor keeps a disabled database a true nil
// interface in the services layer.
func (a *AppContext) Store() db.SolutionStore {
	if a.Database == nil {
		return nil
	}
	return a.Database
}

// Close releases the database pool and flushes buffered log output
func (a *AppContext) Close() {
	if a.Database != nil {
		a.Database.Close()
	}
	if a.Logger != nil {
		a.Logger.Sync()
	}
}

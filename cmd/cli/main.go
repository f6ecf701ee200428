package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/cmd/cli/commands"
	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/postgres"
	"github.com/SultanDF/exam-dss/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "exam-dss",
		Short: "Exam Scheduling DSS - Schedule thesis examinations",
		Long: `A decision support tool for scheduling thesis examinations. Ranks
examiner committees with MCDM methods (SAW, TOPSIS), derives criteria
weights with AHP, and allocates every exam session to a timeslot, room
and committee.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment suffix for config and token files (e.g. test, prod)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (overrides config discovery)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.EvaluateCmd(app))
	rootCmd.AddCommand(commands.WeightsCmd(app))
	rootCmd.AddCommand(commands.CriteriaCmd(app))
	rootCmd.AddCommand(commands.AnalyzeCmd(app))
	rootCmd.AddCommand(commands.SolutionsCmd(app))
	rootCmd.AddCommand(commands.DemoCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.SampleCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration and optional database
func initApp(app *commands.AppContext) error {
	var err error
	app.Ctx = context.Background()
	app.Env = env

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.LoadWithEnv(env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	if app.Cfg.Database.DSN == "" {
		app.Logger.Debug("No database DSN configured, persistence disabled")
		return nil
	}

	app.Logger.Info("Connecting to database")
	app.Database, err = postgres.NewDB(app.Ctx, app.Cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running database migrations")
	if err := app.Database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database initialized successfully")

	return nil
}

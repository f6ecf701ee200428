package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/clients/sheetsclient"
	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [run_id]",
		Short: "Publish a stored run to Google Sheets",
		Long: `Write a stored scheduling run to the configured Google Sheet. Without a
run ID the latest run is published. The dataset must be the one the run
was generated from, since the sheet shows names and assignments only
carry IDs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) > 0 {
				runID = args[0]
			}
			input, _ := cmd.Flags().GetString("input")

			app.Logger.Debug("publish command", zap.String("run_id", runID))

			if app.Database == nil {
				return fmt.Errorf("no database configured")
			}

			dataset, err := resolveDataset(app.Cfg, input)
			if err != nil {
				return err
			}

			// The sheets client is built here rather than at startup so the
			// OAuth browser flow only ever runs for this command
			app.Logger.Info("Loading OAuth client configuration")
			oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			app.Logger.Info("Initializing sheets client")
			sheetsClient, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			result, err := services.PublishSchedule(app.Ctx, app.Store(), sheetsClient,
				app.Cfg, app.Logger, dataset, runID)
			if err != nil {
				return fmt.Errorf("failed to publish schedule: %w", err)
			}

			fmt.Printf("\n%s Schedule published to Google Sheets\n\n", green("✓"))
			fmt.Printf("Run ID:      %s\n", result.RunID)
			fmt.Printf("Spreadsheet: %s\n", result.SpreadsheetID)
			fmt.Printf("Tab:         %s\n", result.Tab)
			fmt.Printf("Rows:        %d\n\n", result.RowCount)

			return nil
		},
	}

	cmd.Flags().String("input", "", "Dataset file the run was generated from (default: bundled sample set)")

	return cmd
}

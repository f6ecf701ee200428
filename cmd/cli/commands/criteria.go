package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SultanDF/exam-dss/pkg/core/services"
)

// CriteriaCmd creates the criteria command
func CriteriaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "Show the active committee selection criteria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := services.ActiveCriteria(app.Cfg)

			fmt.Printf("\n%s\n\n", bold("Committee selection criteria"))

			rows := make([][]string, 0, len(criteria))
			for _, criterion := range criteria {
				rows = append(rows, []string{
					strconv.Itoa(criterion.ID),
					criterion.Name,
					fmt.Sprintf("%.2f", criterion.Weight),
					string(criterion.Type),
					criterion.Description,
				})
			}

			headers := []string{"ID", "Name", "Weight", "Type", "Description"}
			if err := renderTable(os.Stdout, headers, rows); err != nil {
				return err
			}
			fmt.Println()

			if app.Cfg != nil && len(app.Cfg.Scheduling.Criteria) > 0 {
				fmt.Printf("%s These criteria come from the configuration file, not the built-in defaults.\n\n", yellow("!"))
			}

			return nil
		},
	}
}

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/printers"
	"tableflip.dev/hairjourney/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise recent records by category",
		Long: `Report counts the records created within the time window, grouped by category,
with the latest record of each.

Examples:
  hairjourney report
  hairjourney report --last 3d
  hairjourney report --last 2mo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			until := time.Now()
			since, label, err := timeutil.Since(last, until)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			result, err := svc.Summary(commandContext(cmd), since, until)
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Summary(result, label)
			return nil
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w, 2mo)")
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/commands/options"
	"tableflip.dev/hairjourney/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
hairjourney ui
hairjourney ui --filter goals
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			i := ui.UI{
				Service: svc,
				Open:    app.OpenOptions{Filter: vo.Filter, Sort: vo.Sort, Search: vo.Search},
			}
			return i.Do(commandContext(cmd))
		},
	}

	cmd.Flags().StringVarP(&vo.Filter, "filter", "f", "", "Initial category filter.")
	cmd.Flags().StringVarP(&vo.Sort, "sort", "s", "", "Initial sort order.")
	cmd.Flags().StringVarP(&vo.Search, "search", "q", "", "Initial title search.")

	topLevel.AddCommand(cmd)
}

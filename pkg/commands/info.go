package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/runner/info"
	"tableflip.dev/hairjourney/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where records are stored.",
		Example: `
hairjourney info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(commandContext(cmd))
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the categories, their ranks and the sort orders",
		Example: `
hairjourney key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			if cfg != nil {
				if ranks := cfg.View().Ranks; len(ranks) > 0 {
					k.Ranks = make(catalog.RankTable, len(ranks))
					for name, r := range ranks {
						k.Ranks[catalog.Category(glyph.FilterForAlias(name))] = r
					}
				}
			}
			err := k.Do(commandContext(cmd))
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/commands/options"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	long := strings.Builder{}
	long.WriteString("List records through a filtered, sorted and searched view.\n\n")
	long.WriteString("Categories and aliases:\n")
	for _, g := range glyph.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%s %s: %s\n", g.Symbol, g.Category, strings.Join(g.Aliases, ", ")))
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List records",
		Long:    long.String(),
		Example: `
hairjourney list
hairjourney list --filter goals --sort title-asc
hairjourney list -q wash --last 2mo -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := list.List{
				Service: svc,
				Filter:  vo.Filter,
				Sort:    vo.Sort,
				Search:  vo.Search,
				Last:    vo.Last,
				ShowID:  io.ShowID,
				JSON:    oo.JSON(),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

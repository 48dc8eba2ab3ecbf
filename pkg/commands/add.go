package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/commands/options"
	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a timeline entry, goal or routine",
		Example: `
hairjourney add entry wash day --rating 4
hairjourney add goal shoulder length --target 2025-6-1
hairjourney add routine weekly mask --frequency weekly --product clay
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, g := range glyph.DefaultGlyphs() {
		addAddKind(cmd, g)
	}

	topLevel.AddCommand(cmd)
}

func addAddKind(topLevel *cobra.Command, g glyph.Glyph) {
	on := &options.OnOptions{}
	ro := &options.RecordOptions{}
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     g.Noun + " <title>",
		Short:   fmt.Sprintf("Add %s %s", article(g.Noun), g.Noun),
		Long:    fmt.Sprintf("%s (%s), %s\nAliases: %s", g.Symbol, g.Noun, g.Meaning, strings.Join(g.Aliases, ", ")),
		Aliases: aliasesExcept(g.Aliases, g.Noun),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			when, err := on.GetOn()
			if err != nil {
				return err
			}
			target, err := ro.GetTarget()
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:  g.Category,
				Title: title,
				Options: app.AddOptions{
					Notes:     ro.Notes,
					On:        when,
					Rating:    ro.Rating,
					Progress:  ro.Progress,
					Target:    target,
					Frequency: ro.Frequency,
					Products:  ro.Products,
				},
				Service: svc,
				ShowID:  io.ShowID,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddNotesArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)
	switch g.Noun {
	case "entry":
		options.AddEntryArgs(cmd, ro)
	case "goal":
		options.AddGoalArgs(cmd, ro)
	case "routine":
		options.AddRoutineArgs(cmd, ro)
	}

	topLevel.AddCommand(cmd)
}

func aliasesExcept(aliases []string, noun string) []string {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a != noun {
			out = append(out, a)
		}
	}
	return out
}

func article(noun string) string {
	if strings.ContainsRune("aeiou", rune(noun[0])) {
		return "an"
	}
	return "a"
}

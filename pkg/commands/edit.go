package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/glyph"
	"tableflip.dev/hairjourney/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	n := &edit.Edit{}
	var progress int
	cmd := &cobra.Command{
		Use:   "edit <id> [title]",
		Short: "Change the title of a record, or the progress of a goal",
		Example: `
hairjourney edit 171dff69f8b99dca4e0f2a6c1b3d5e7f big wash day
hairjourney edit 9a0c52e1d47b4f3c8e26b5d1a0f7c3e9 --progress 60
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an id")
			}
			if len(args) < 2 && !cmd.Flags().Changed("progress") {
				return errors.New("requires a title or --progress")
			}
			n.ID = args[0]
			n.Title = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("progress") {
				n.Progress = &progress
			}
			n.Service = svc
			n.Out = cmd.OutOrStdout()
			return output.HandleError(n.Do(commandContext(cmd)))
		},
	}
	cmd.Flags().IntVarP(&progress, "progress", "p", 0, "Percent complete, 0-100. Goals only.")

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Aliases:           []string{"remove", "delete"},
		Short:             "Delete a record permanently",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			e, err := svc.Remove(commandContext(cmd), args[0])
			if err != nil {
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s %s\n", glyph.For(e.Kind).Symbol, e.Title)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/hairjourney/pkg/app"
	"tableflip.dev/hairjourney/pkg/commands/options"
	"tableflip.dev/hairjourney/pkg/logger"
	"tableflip.dev/hairjourney/pkg/store"
)

var (
	output = &options.OutputOptions{}

	logLevel string
	noColor  bool

	// cfg is resolved once per invocation by the root PersistentPreRunE.
	cfg store.Config
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hairjourney",
		Short: options.Wrap80("A hair-journey journal on the command line: timeline entries, goals and routines."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn or error. Overrides log.level from config.")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colour output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addReport(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

func setup(cmd *cobra.Command) error {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if noColor || termenv.EnvNoColor() || !tty {
		color.NoColor = true
	}

	c, err := store.LoadConfig()
	if err != nil {
		return err
	}
	cfg = c

	level := logLevel
	if level == "" {
		level = cfg.LogLevel()
	}
	logger.Init(level, cmd.ErrOrStderr())
	logger.Debug("config loaded", "path", cfg.BasePath(), "command", cmd.Name())
	return nil
}

func loadService() (*app.Service, error) {
	if cfg == nil {
		c, err := store.LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p, Config: cfg}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

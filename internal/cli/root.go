// Package cli is the driving adapter: cobra commands for one-shot use
// plus an interactive menu, both backed by the service layer.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/service"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// App wires config, logging and services behind the command tree.
type App struct {
	cfg       config.Config
	log       *zap.Logger
	generator *service.GeneratorService
	analyzer  *service.AnalyzerService

	in  *bufio.Reader
	out io.Writer
}

// NewApp builds the application. The history store is constructed here
// and handed to the generator service; it lives for the session only.
func NewApp(cfg config.Config, log *zap.Logger) *App {
	hist := history.NewStore(cfg.HistoryLimit)
	return &App{
		cfg:       cfg,
		log:       log,
		generator: service.NewGeneratorService(hist, cfg.DefaultLength, cfg.DefaultWords),
		analyzer:  service.NewAnalyzerService(),
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// RootCommand returns the passforge root command. Without a subcommand
// it enters the interactive menu when attached to a terminal.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate passwords and passphrases, and score their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return cmd.Help()
			}
			return a.runMenu()
		},
	}

	root.AddCommand(
		a.generateCommand(),
		a.passphraseCommand(),
		a.analyzeCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passforge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, "passforge", Version)
		},
	}
}

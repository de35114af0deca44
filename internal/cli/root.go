package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/logger"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// NewRootCmd builds the fara command tree. Running it without a subcommand
// starts the HTTP server.
func NewRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "fara",
		Short:         "Salon booking backend: availability, reservations and the admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newAvailabilityCmd())
	root.AddCommand(newHashPasswordCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the process logger and installs it as the zap global.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.IsProduction, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

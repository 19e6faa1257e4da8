package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/spf13/cobra"
)

// connectFunc opens the transport to the server once the client
// configuration is known.
type connectFunc func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

type App struct {
	adapter   adapter.ServerAdapter
	connect   connectFunc
	buildInfo models.AppBuildInfo

	flagCfg config.ClientConfig
	verbose bool

	root   *cobra.Command
	logger *logger.Logger
}

// NewApp builds the client with its full command tree. The server adapter is
// created lazily from the merged client configuration right before a
// subcommand runs.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return newApp(buildInfo, adapter.NewHTTPServerAdapter)
}

func newApp(buildInfo models.AppBuildInfo, connect connectFunc) *App {
	app := &App{
		connect:   connect,
		buildInfo: buildInfo,
		logger:    logger.Nop(),
	}
	app.root = app.newRootCommand()

	return app
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "journal",
		Short: "Encrypted journal client",
		Long: `Talks to a running journal server.

Every entry is encrypted at rest by the server; the client only ever sees
decrypted records.

Examples:
  journal create --title Trip --body "Went hiking" --tag travel --tag outdoors
  journal list --tag travel
  journal export -o journal.md`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.flagCfg.Adapter.HTTPAddress, "address", "a", "", "journal server address (host:port or URL)")
	flags.DurationVar(&a.flagCfg.Adapter.RequestTimeout, "request-timeout", 0, "timeout for a single request")
	flags.StringVarP(&a.flagCfg.JSONFilePath, "config", "c", "", "path to a JSON config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		a.newCreateCommand(),
		a.newGetCommand(),
		a.newListCommand(),
		a.newUpdateCommand(),
		a.newDeleteCommand(),
		a.newExportCommand(),
		a.newVersionCommand(),
	)

	return root
}

// setup merges the client configuration and connects to the server. It is a
// no-op when an adapter is already attached.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.adapter != nil {
		return nil
	}

	a.logger = logger.NewClientLogger("go-journal-client", a.verbose)

	cfg, err := config.GetClientConfig(&a.flagCfg)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.setup").Msg("error getting client configs")
		return fmt.Errorf("error getting client configs: %w", err)
	}
	a.logger.Debug().Any("config", cfg).Msg("received client configs")

	serverAdapter, err := a.connect(cfg.Adapter, a.logger)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.setup").Msg("error creating server adapter")
		return fmt.Errorf("error creating server adapter: %w", err)
	}
	a.adapter = serverAdapter

	return nil
}

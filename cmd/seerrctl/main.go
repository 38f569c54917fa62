package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/seerrctl/internal/config"
	"github.com/amaumene/seerrctl/internal/services/seerr"
	"github.com/amaumene/seerrctl/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCommand(config.New(), os.Stdout).ExecuteContext(ctx)
}

// app carries what every subcommand needs once configuration is loaded
type app struct {
	v      *viper.Viper
	out    io.Writer
	cfg    *config.Config
	logger *logrus.Logger
	client *seerr.Client
}

func newRootCommand(v *viper.Viper, out io.Writer) *cobra.Command {
	a := &app{v: v, out: out}

	root := &cobra.Command{
		Use:           "seerrctl",
		Short:         "Browse, request and triage media on an Overseerr or Jellyseerr server",
		Version:       seerr.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.String("server-url", "", "server URL (env SERVER_URL)")
	flags.String("token", "", "session cookie value or API key (env TOKEN)")
	flags.String("auth-mode", "", "credential kind: cookie or apikey (env AUTH_MODE)")
	flags.String("log-level", "", "log level (env LOG_LEVEL)")
	flags.String("log-format", "", "log format: text or json (env LOG_FORMAT)")
	for key, flag := range map[string]string{
		"SERVER_URL": "server-url",
		"TOKEN":      "token",
		"AUTH_MODE":  "auth-mode",
		"LOG_LEVEL":  "log-level",
		"LOG_FORMAT": "log-format",
	} {
		// Lookup cannot miss: the flags are registered just above
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.recentCommand(),
		a.searchCommand(),
		a.detailCommand(),
		a.requestCommand(),
		a.issuesCommand(),
		a.watchCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	a.logger.WithFields(logrus.Fields{
		"server_url": cfg.ServerURL,
		"auth_mode":  cfg.AuthMode,
	}).Debug("Configuration loaded")

	a.client, err = seerr.NewClient(cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}
	return nil
}

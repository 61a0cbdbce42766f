package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/0xJijimi/estfor-api/client"
	"github.com/0xJijimi/estfor-api/client/internal/config"
)

// app carries the state shared by every sub-command once the root
// command's pre-run has loaded configuration and built the API client.
type app struct {
	cfgFile string
	baseURL string
	timeout time.Duration
	debug   bool

	cfg    *config.Config
	logger zerolog.Logger
	api    *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "estforctl",
		Short: "Query the Estfor game-data API",
		Long: `estforctl reads players, items, clans, quests, the order book and the
rest of the Estfor game data from the public REST API and prints it as JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./estforctl.yaml or $HOME/.estforctl/estforctl.yaml)")
	pf.StringVar(&a.baseURL, "base-url", "", "Estfor API base URL (overrides api.base_url)")
	pf.DurationVar(&a.timeout, "timeout", 0, "HTTP timeout, 0 disables it (overrides api.timeout)")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newResourcesCmd())
	rootCmd.AddCommand(newMultiCmd(a))
	rootCmd.AddCommand(newEquipmentCmd(a))
	rootCmd.AddCommand(newSubgraphHealthCmd(a))
	rootCmd.AddCommand(newSummaryCmd(a))

	return rootCmd
}

// initialize loads configuration, applies flag overrides and builds the client.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over file and environment
	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL = a.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = a.timeout
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = setupLogger(cmd.ErrOrStderr(), cfg.Logging)

	opts := []client.Option{
		client.WithBaseURL(cfg.API.BaseURL),
		client.WithDebugLogging(a.debug),
		client.WithLogger(a.logger),
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(cfg.API.Timeout))
	}
	a.api, err = client.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create Estfor client: %w", err)
	}

	a.logger.Debug().
		Str("base_url", a.api.BaseURL()).
		Dur("timeout", cfg.API.Timeout).
		Msg("client ready")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(w io.Writer, cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !cfg.Color,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

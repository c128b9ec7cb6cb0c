package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dreyes/roomledger/internal/config"
	"github.com/dreyes/roomledger/internal/logging"
	"github.com/dreyes/roomledger/internal/service"
	"github.com/dreyes/roomledger/internal/store"
)

var (
	// Version information (set at build time via ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	cfgFile   string
	dataDir   string
	logLevel  string
	logFormat string

	// Shared by the entity commands, initialized in setup.
	logger *zap.Logger
	svc    *service.Service
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roomledger",
	Short: "RoomLedger - Hotel, Customer & Reservation Management",
	Long: `RoomLedger keeps track of hotels, customers, and room reservations.

All records live as plain JSON files under a data directory, so the
full state can be inspected, versioned, or edited with ordinary tools.
Every command reloads the files before acting and rewrites them after,
which makes external edits between invocations safe.

Commands are grouped by entity:
  - hotel:       create, modify, delete, and inspect hotels
  - customer:    create, modify, delete, and inspect customers
  - reservation: book rooms and cancel bookings`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (default \"roomledger.yaml\")")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Directory holding the JSON collection files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Log format: console, json (overrides config)")
}

// setup initializes the logger and the service shared by the entity
// commands. It is attached as PersistentPreRunE on the hotel, customer,
// and reservation command groups so that commands like version run
// without touching configuration or the data directory.
//
// Settings resolve in order: built-in defaults, config file,
// environment variables, command-line flags.
func setup(cmd *cobra.Command, args []string) error {
	// Optional .env file for local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.NewLogger(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.NewStore(cfg.DataDir, logger)
	if err != nil {
		return err
	}
	svc = service.NewService(st, logger)

	return nil
}

// versionString returns formatted version information
func versionString() string {
	return fmt.Sprintf("RoomLedger %s (commit: %s, built: %s)",
		Version, Commit, BuildDate)
}

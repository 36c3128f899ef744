package cmd

import (
	"fmt"

	"github.com/abhisek/focusloop/internal/config"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "focusloop",
	Short: "Adaptive mastery tracking and focus session engine",
	Long: `focusloop tracks per-skill mastery for learners, picks what to practice next
and runs short adaptive focus sessions over an HTTP API.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./focusloop.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database DSN or SQLite path (overrides database.dsn)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return log, nil
}

// openStore opens the database using --db (highest priority), then
// database.dsn, then the default SQLite path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dsn := cfg.Database.DSN
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dsn = p
	}
	if cfg.Database.Driver == store.DriverSQLite {
		var err error
		if dsn == "" {
			dsn, err = store.DefaultDBPath()
		} else {
			err = store.EnsureDir(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	s, err := store.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

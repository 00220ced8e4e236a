package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vitals/internal/config"
	"vitals/internal/engine"
	"vitals/internal/store"
	"vitals/internal/sync"
)

var (
	cfg *config.Config
	st  *store.Store
	eng *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Daily risk verdict and recovery score from wearable exports",
	Long: `Vitals reads the SQLite databases written by the device export
pipeline and turns them into a daily risk verdict, a 0-100 recovery
score and short-horizon trends.

QUICK START:

  $ vitals              # Open the interactive dashboard
  $ vitals verdict      # Today's GREEN/YELLOW/RED verdict and flags
  $ vitals score        # Today's recovery score with sub-scores
  $ vitals trends       # 3- and 7-day deltas per signal
  $ vitals history      # Day-by-day verdicts and scores
  $ vitals sync         # Run the configured device export script

CONFIGURATION:

  Settings live in ~/.vitals/config.json. A commented example is
  written on first run; point data.dir at the directory that holds
  garmin.db and garmin_activities.db. The VITALS_DB_DIR environment
  variable overrides data.dir for one-off runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if errors.Is(err, config.ErrNoConfig) {
			if err := config.CreateExample(); err != nil {
				return fmt.Errorf("creating example config: %w", err)
			}
			dir, _ := config.GetConfigDir()
			return fmt.Errorf("no config found; wrote an example to %s/config.json - edit data.dir and retry", dir)
		}
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// The sync command runs without databases; a first sync is what
		// creates them.
		if cmd.Name() == "sync" {
			return nil
		}

		st, err = store.Open(cfg.Data.Dir)
		if err != nil {
			if errors.Is(err, store.ErrMissingDatabase) {
				return fmt.Errorf("%w - run 'vitals sync' first", err)
			}
			return err
		}

		eng, err = engine.New(st, cfg.Baseline)
		if err != nil {
			st.Close()
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(verdictCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(syncCmd)
}

func syncRunner() *sync.Runner {
	return sync.NewRunner(cfg.Data.SyncScript)
}

// parseDateFlag resolves a --date value, defaulting to today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return day, nil
}

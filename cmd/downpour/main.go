// downpour is a rainy 2D platformer: keep the fire alive through the storm.
//
// Usage:
//
//	downpour play                - Play the shipped levels in a window
//	downpour validate <files>    - Check level files for errors
//	downpour simulate [files]    - Run levels headless with the autopilot
//	downpour records <level>     - Show the fastest runs of a level
//
// Global flags:
//
//	--db <path>      - Run record database (default: ~/.downpour/runs.db)
//	--log <path>     - Log file (default: ~/.downpour/downpour.log)
//	--debug          - Log at debug level and mirror logs to stderr
//	--tuning <path>  - YAML file overriding the movement tunables
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/downpour/assets"
	cfg "github.com/automoto/downpour/config"
	"github.com/automoto/downpour/logger"
	"github.com/automoto/downpour/shared/leveldata"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
	flagTuning  string
)

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "downpour",
	Short: "Downpour - keep the fire alive through the storm",
	Long: `Downpour is a 2D platformer where rain wears you down. Collect the
fire pieces, stay out of the water and reach the exit.

Examples:
  downpour play
  downpour play --autopilot
  downpour validate assets/levels/*.txt
  downpour simulate --frames 20000
  downpour records first-drops`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(expandHome(flagLogPath), flagDebug); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		if flagTuning != "" {
			t, err := cfg.LoadTuning(flagTuning)
			if err != nil {
				return err
			}
			t.Apply()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.downpour/runs.db", "Path to the run record database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.downpour/downpour.log", "Path to the log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "YAML tuning overrides")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadLevels decodes the given files in order, or the shipped levels when
// there are none.
func loadLevels(files []string) ([]*leveldata.LevelData, error) {
	if len(files) == 0 {
		return assets.LoadLevels()
	}
	levels := make([]*leveldata.LevelData, 0, len(files))
	for _, f := range files {
		data, err := leveldata.Load(os.DirFS(filepath.Dir(f)), filepath.Base(f))
		if err != nil {
			return nil, err
		}
		levels = append(levels, data)
	}
	return levels, nil
}

// warnOnError logs a failure that the command can carry on without.
func warnOnError(msg string, err error) {
	if err != nil {
		logger.Log.Warnw(msg, "error", err)
	}
}

func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

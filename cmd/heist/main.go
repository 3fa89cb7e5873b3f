// heist is a terminal pursuit game: grab every valuable, dodge the guards,
// answer bonus questions and get out.
//
// Usage:
//
//	heist play               - Play in this terminal
//	heist serve              - Start SSH server for remote play
//	heist history            - Browse recorded runs
//	heist validate           - Check level, question bank and config files
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.heist/runs.db)
//	--config <path>     - Use a specific config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//
// Every global flag also reads a HEIST_* environment variable, and a .env
// file in the working directory is loaded first.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-heist/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heist",
	Short: "Maze Heist - loot the vault without getting caught",
	Long: `Maze Heist is a terminal game. Collect every valuable in the maze while
guards hunt you down, answer bonus questions for invisibility, and reach
the exit once it unlocks.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  history   - Browse recorded runs
  validate  - Check level, question bank and config files

Examples:
  heist play
  heist play --bank ./questions.yaml --watch
  heist serve --ssh :2222
  heist history --plain`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.heist/runs.db", "Path to run history database (empty disables it)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play discards logs when empty)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(validateCmd)
}

// applyEnv fills flags the user did not set from .env and HEIST_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	env, err := config.ReadEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if env.FPS > 0 && !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if env.HasSeed && !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if env.HasDB && !flags.Changed("db") {
		flagDBPath = env.DB
	}
	if env.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if env.Config != "" && !flags.Changed("config") {
		flagConfig = env.Config
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist"
	"github.com/vovakirdan/maze-heist/internal/games/heist/assets"
	"github.com/vovakirdan/maze-heist/internal/platform/tui"
)

var (
	flagLayout string
	flagBank   string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a heist in this terminal.

Controls:
  Arrows/WASD        - Move (hold to keep moving)
  Shift+Arrows/WASD  - Sprint while stamina lasts
  1/2/3              - Answer a bonus question
  Enter              - Start / back to menu
  H                  - Help
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

With --watch the question bank file is reloaded whenever it changes; the
new bank takes effect at the start of the next level.

Examples:
  heist play
  heist play --seed 42
  heist play --layout ./vault.yaml --bank ./questions.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a level YAML (default: embedded Vault)")
	playCmd.Flags().StringVar(&flagBank, "bank", "", "Path to a question bank YAML (default: embedded)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the question bank when the file changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs would garble the alternate screen, so they go to a file or nowhere.
	logger, closeLog, err := newLogger(flagLogFile, io.Discard, "heist")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, newGame, err := loadGame(gameSources{Level: flagLayout, Bank: flagBank}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if width < heist.MinWidth || height < heist.MinHeight+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the maze needs at least %dx%d\n",
			width, height, heist.MinWidth, heist.MinHeight+1)
	}

	opts := tui.Options{
		Game:   game,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HoldWindow: cfg.Input.HoldWindow(),
	}

	if flagWatch {
		bankPath := gameSources{Bank: flagBank}.resolve(cfg).Bank
		if bankPath == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch needs --bank or assets.questions in the config")
			os.Exit(1)
		}
		watcher, err := assets.WatchBank(bankPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", bankPath, err)
			os.Exit(1)
		}
		defer watcher.Close()
		opts.BankUpdates = watcher.Updates
		logger.Info("watching question bank", "path", bankPath)
	}

	store := openStore(logger)
	opts.Store = store

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-heist/internal/config"
	"github.com/vovakirdan/maze-heist/internal/games/heist"
	"github.com/vovakirdan/maze-heist/internal/games/heist/assets"
	"github.com/vovakirdan/maze-heist/internal/storage"
)

// newLogger builds the process logger. An empty path writes to fallback.
// The returned closer releases the log file, if any.
func newLogger(path string, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// gameSources names the files a game is built from. Empty paths fall back
// to the config's assets section, then to the embedded defaults.
type gameSources struct {
	Level string
	Bank  string
}

func (s gameSources) resolve(cfg config.HeistConfig) gameSources {
	if s.Level == "" {
		s.Level = cfg.Assets.Level
	}
	if s.Bank == "" {
		s.Bank = cfg.Assets.Questions
	}
	return s
}

// loadGame loads config, level and bank and returns a ready factory.
func loadGame(src gameSources, logger *log.Logger) (config.HeistConfig, func() (*heist.Game, error), error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	logger.Info("config loaded", "source", source)

	src = src.resolve(cfg)
	level, err := assets.LoadLevel(src.Level)
	if err != nil {
		return cfg, nil, err
	}
	bank, err := assets.LoadBank(src.Bank)
	if err != nil {
		return cfg, nil, err
	}
	logger.Info("assets loaded", "level", level.Name, "questions", len(bank))

	opts := heist.Options{Level: level, Bank: bank, Params: cfg.Params()}
	if _, err := heist.New(opts); err != nil {
		return cfg, nil, err
	}
	return cfg, func() (*heist.Game, error) { return heist.New(opts) }, nil
}

// openStore opens the run history. Failures are logged and play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

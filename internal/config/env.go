package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names. Each one supplies the default for the
// matching command-line flag.
const (
	EnvFPS      = "HEIST_FPS"
	EnvSeed     = "HEIST_SEED"
	EnvDB       = "HEIST_DB"
	EnvLogLevel = "HEIST_LOG_LEVEL"
	EnvConfig   = "HEIST_CONFIG"
)

// Env holds overrides read from the environment. Zero values mean unset.
type Env struct {
	FPS      int
	Seed     int64
	HasSeed  bool
	DB       string
	HasDB    bool
	LogLevel string
	Config   string
}

// LoadDotEnv loads .env (or the given files) into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading %v: %w", existing, err)
	}
	return nil
}

// ReadEnv collects overrides using lookup (os.LookupEnv in production).
// Malformed numbers are reported in the returned error and left unset.
func ReadEnv(lookup func(string) (string, bool)) (Env, error) {
	var env Env
	var errs []error

	if v, ok := lookup(EnvFPS); ok && v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			errs = append(errs, fmt.Errorf("%s=%q: want a positive integer", EnvFPS, v))
		} else {
			env.FPS = fps
		}
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: want an integer", EnvSeed, v))
		} else {
			env.Seed, env.HasSeed = seed, true
		}
	}
	if v, ok := lookup(EnvDB); ok {
		env.DB, env.HasDB = v, true
	}
	env.LogLevel, _ = lookup(EnvLogLevel)
	env.Config, _ = lookup(EnvConfig)

	return env, errors.Join(errs...)
}

package app

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"blackjack/internal/debug"
	"blackjack/internal/debug/logger"
	"blackjack/internal/gui"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// EnvFile is read, when present, before the environment is consulted.
const EnvFile = ".env"

type Config struct {
	Debug      debug.Config
	Controller gui.ControllerConfig
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadEnvFile loads EnvFile into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig builds the configuration from environment variables. Malformed
// values fall back to defaults and are reported in warnings.
func LoadConfig(lookup LookupFunc) (Config, []string) {
	var warnings []string

	cfg := Config{
		Debug:      getDebugConfig(lookup),
		Controller: gui.DefaultControllerConfig(),
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		if level, valid := logger.ParseLevel(v); valid {
			cfg.Debug.LogLevel = level
		} else {
			warnings = append(warnings, "unknown LOG_LEVEL "+strconv.Quote(v))
		}
	} else if v, _ := lookup("DEBUG"); v == "1" {
		cfg.Debug.LogLevel = zerolog.DebugLevel
	}

	if v, ok := lookup("BLACKJACK_DEALER_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			warnings = append(warnings, "invalid BLACKJACK_DEALER_DELAY "+strconv.Quote(v))
		} else {
			cfg.Controller.DealerDelay = d
		}
	}

	if v, ok := lookup("BLACKJACK_FPS"); ok && v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 || fps > 240 {
			warnings = append(warnings, "invalid BLACKJACK_FPS "+strconv.Quote(v))
		} else {
			cfg.Controller.FPS = fps
		}
	}

	return cfg, warnings
}

func getDebugConfig(lookup LookupFunc) debug.Config {
	if v, _ := lookup("BLACKJACK_PRODUCTION"); v == "true" {
		return debug.ProductionConfig()
	}

	config := debug.DefaultConfig()

	if v, _ := lookup("BLACKJACK_JSON_LOGS"); v == "true" {
		config.UseJSONLogging = true
	}

	if v, _ := lookup("BLACKJACK_QUIET"); v == "true" {
		config.EnableLogging = false
	}

	return config
}

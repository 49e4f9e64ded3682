package config

import (
	"fmt"
	"net/url"

	"github.com/depwatch/depwatch/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but depwatch only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade depwatch to a release that understands this config")
	}

	if cfg.Server.URL == "" {
		return errors.New(errors.ErrConfig,
			"No server URL configured",
			"Set server.url in "+ConfigFileName+" or pass --server")
	}

	u, err := url.Parse(cfg.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Server URL '%s' doesn't look valid", cfg.Server.URL),
			"Use a full URL like http://localhost:8000")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported server URL scheme '%s'", u.Scheme),
			"Only http and https are supported")
	}

	if cfg.Server.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"server.timeout cannot be negative",
			"Use a duration like 10s or 1m")
	}

	if cfg.Stream.Event == "" {
		return errors.New(errors.ErrConfig,
			"stream.event cannot be empty",
			"Use the event name the server emits metric updates on (default: metrics)")
	}

	if cfg.Monitor.HistorySize < 0 {
		return errors.New(errors.ErrConfig,
			"monitor.history_size cannot be negative",
			"Use a positive sample count like 60")
	}

	return nil
}

package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .depwatch.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Stream  StreamConfig  `yaml:"stream" mapstructure:"stream"`
	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
}

// ServerConfig describes the graph backend the dashboard talks to.
type ServerConfig struct {
	// URL is the base address of the monitoring backend,
	// e.g. http://localhost:8000.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds the one-shot snapshot fetch.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// StreamConfig describes the push channel carrying metric updates.
type StreamConfig struct {
	// Path is the socket endpoint path on the server.
	Path string `yaml:"path" mapstructure:"path"`

	// Namespace is the socket.io namespace to join.
	Namespace string `yaml:"namespace" mapstructure:"namespace"`

	// Event is the event name metric updates arrive on.
	Event string `yaml:"event" mapstructure:"event"`
}

// MonitorConfig tunes the dashboard itself.
type MonitorConfig struct {
	// HistorySize is the number of samples retained per node metric
	// for sparkline rendering.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`
}

// DefaultConfig returns a config with sensible defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Server: ServerConfig{
			URL:     "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		Stream: StreamConfig{
			Path:      "/ws",
			Namespace: "/",
			Event:     "metrics",
		},
		Monitor: MonitorConfig{
			HistorySize: 60,
		},
	}
}

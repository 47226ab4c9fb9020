package config

import "fmt"

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the file backend and environment
// variables.
//
// The backend is a flat JSON object at $XDG_CONFIG_HOME/hearback/config.json.
// Environment variables (HEARBACK_*) override backend values.
func Load() (Config, error) {
	return loadWith(newFileBackend(configFilePath()))
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	return cfg, nil
}

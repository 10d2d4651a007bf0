package cli

import "github.com/dmitrymomot/contracts/pkg/config"

// Config holds environment defaults for the global flags.
type Config struct {
	EnvFile   string `env:"CONTRACTS_ENV_FILE"`
	File      string `env:"CONTRACTS_FILE"`
	Format    string `env:"CONTRACTS_FORMAT" envDefault:"text"`
	LogLevel  string `env:"CONTRACTS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CONTRACTS_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment. When CONTRACTS_ENV_FILE names
// a .env file, its variables override the process environment before the
// final read.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.EnvFile == "" {
		return cfg, nil
	}

	if err := config.LoadEnv(cfg.EnvFile); err != nil {
		return Config{}, err
	}
	cfg = Config{}
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

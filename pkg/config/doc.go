// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged struct fields:
//
//	type Config struct {
//		File      string `env:"CONTRACTS_FILE"`
//		LogLevel  string `env:"CONTRACTS_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"CONTRACTS_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads additional .env files explicitly; later files override
// earlier ones.
package config

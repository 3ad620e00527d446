package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"trackfinder/providers"
	"trackfinder/utils"
)

const (
	DEFAULT_HOST = "0.0.0.0"
	DEFAULT_PORT = 5000
	ENV_PREFIX   = "TRACKFINDER"
)

type Config struct {
	Host         string
	Port         int
	LogLevel     string
	LogDir       string
	FetchTimeout time.Duration
	SearchLimit  int
}

func DefaultConfig() *Config {
	return &Config{
		Host:         DEFAULT_HOST,
		Port:         DEFAULT_PORT,
		LogLevel:     "info",
		FetchTimeout: utils.DefaultFetchTimeout,
		SearchLimit:  providers.DefaultSearchLimit,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) NewFetcher() *utils.Fetcher {
	return utils.NewFetcher(c.FetchTimeout)
}

func registerFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()

	flags.String("env-file", ".env", "dotenv file to load before reading the environment")
	flags.String("host", defaults.Host, "HTTP server host")
	flags.Int("port", defaults.Port, "HTTP server port (env PORT)")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-dir", "", "also write logs to timestamped files in this directory")
	flags.Duration("fetch-timeout", defaults.FetchTimeout, "timeout for each outbound page fetch")
	flags.Int("search-limit", defaults.SearchLimit, "maximum embeddable tracks returned by keyword search")
}

// loadDotEnv loads the dotenv file if there is one. A missing file is fine.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// hosting platforms hand the port over as a bare PORT variable
	if err := v.BindEnv("port", "PORT", ENV_PREFIX+"_PORT"); err != nil {
		return nil, err
	}

	return v, nil
}

func buildConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if host := v.GetString("host"); host != "" {
		cfg.Host = host
	}

	cfg.Port = v.GetInt("port")
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.LogLevel = strings.ToLower(v.GetString("log-level"))
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	cfg.LogDir = v.GetString("log-dir")

	cfg.FetchTimeout = v.GetDuration("fetch-timeout")
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = utils.DefaultFetchTimeout
	}

	cfg.SearchLimit = v.GetInt("search-limit")
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = providers.DefaultSearchLimit
	}

	return cfg, nil
}

func parseLogLevel(level string) (log.Lvl, error) {
	switch level {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for key, val := range envMap {
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.GitHub.BoardFile != "" {
		board, err := LoadBoard(cfg.GitHub.BoardFile)
		if err != nil {
			return nil, err
		}
		cfg.GitHub.applyBoard(board)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)

	v.SetDefault("github.api_url", "https://api.github.com/")
	v.SetDefault("github.graphql_url", "https://api.github.com/graphql")
	v.SetDefault("github.org", "squareup")
	v.SetDefault("github.project_number", 333)
	v.SetDefault("github.owner", "squareup")
	v.SetDefault("github.repo", "developer-programs")
	v.SetDefault("github.default_since", "2025-08-01")
	v.SetDefault("github.index_delay", 2*time.Second)
	v.SetDefault("github.client_timeout", 30*time.Second)

	v.SetDefault("auth.method", "none")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"github.api_url",
		"github.graphql_url",
		"github.org",
		"github.project_number",
		"github.owner",
		"github.repo",
		"github.required_label",
		"github.default_since",
		"github.index_delay",
		"github.client_timeout",
		"github.project_id",
		"github.start_field_id",
		"github.due_field_id",
		"github.board_file",
		"auth.method",
		"auth.api_key",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	_ = v.BindEnv("github.token", "GITHUB_TOKEN", "GITHUB_API_TOKEN")
}

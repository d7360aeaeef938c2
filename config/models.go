package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("GITHUB_TOKEN is required")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return errors.New("github.owner and github.repo are required")
	}
	if c.GitHub.Org == "" || c.GitHub.ProjectNumber <= 0 {
		return errors.New("github.org and github.project_number are required")
	}
	if _, err := time.Parse("2006-01-02", c.GitHub.DefaultSince); err != nil {
		return fmt.Errorf("github.default_since: %w", err)
	}
	if c.Auth.Method == "apikey" && c.Auth.APIKey == "" {
		return errors.New("auth.api_key is required for auth.method=apikey")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig guards the HTTP API. Method is "none" or "apikey".
type AuthConfig struct {
	Method string `mapstructure:"method"`
	APIKey string `mapstructure:"api_key"`
}

// GitHubConfig describes the upstream tracker and the project board.
type GitHubConfig struct {
	Token         string        `mapstructure:"token"`
	APIURL        string        `mapstructure:"api_url"`
	GraphQLURL    string        `mapstructure:"graphql_url"`
	ClientTimeout time.Duration `mapstructure:"client_timeout"`

	Org           string `mapstructure:"org"`
	ProjectNumber int    `mapstructure:"project_number"`
	Owner         string `mapstructure:"owner"`
	Repo          string `mapstructure:"repo"`
	RequiredLabel string `mapstructure:"required_label"`
	DefaultSince  string `mapstructure:"default_since"`

	// IndexDelay is waited after issue creation before project fields are set.
	IndexDelay time.Duration `mapstructure:"index_delay"`

	ProjectID    string `mapstructure:"project_id"`
	StartFieldID string `mapstructure:"start_field_id"`
	DueFieldID   string `mapstructure:"due_field_id"`
	BoardFile    string `mapstructure:"board_file"`
}

// Since returns the default lower bound of listed items.
func (g GitHubConfig) Since() time.Time {
	t, _ := time.Parse("2006-01-02", g.DefaultSince)
	return t
}

func (g *GitHubConfig) applyBoard(b *Board) {
	if b.Org != "" {
		g.Org = b.Org
	}
	if b.ProjectNumber != 0 {
		g.ProjectNumber = b.ProjectNumber
	}
	if b.ProjectID != "" {
		g.ProjectID = b.ProjectID
	}
	if b.Fields.Start != "" {
		g.StartFieldID = b.Fields.Start
	}
	if b.Fields.Due != "" {
		g.DueFieldID = b.Fields.Due
	}
	if b.RequiredLabel != "" {
		g.RequiredLabel = b.RequiredLabel
	}
}

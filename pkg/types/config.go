// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// OutputFormat selects how a blueprint is rendered.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputYAML     OutputFormat = "yaml"
	OutputJSON     OutputFormat = "json"
)

// ParseOutputFormat validates a format name. An empty string selects Markdown.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputMarkdown:
		return OutputMarkdown, nil
	case OutputYAML, OutputJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q: use markdown, yaml, or json", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputYAML:
		return "yaml"
	case OutputJSON:
		return "json"
	default:
		return "md"
	}
}

// GenerationConfig holds settings for the project and creative commands.
type GenerationConfig struct {
	// Format selects the output format: markdown, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// OutputDir is the directory for rendered blueprints (e.g. "output/blueprints").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Jobs bounds the number of forms generated in parallel by batch (default 4).
	Jobs int `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

// ArchiveConfig holds settings for the generated-versions archive.
type ArchiveConfig struct {
	// Enabled records every generation in the archive.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding blueprints.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// CacheConfig holds settings for the optional redis result cache.
type CacheConfig struct {
	// Addr is the redis address (host:port). Empty disables the cache.
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Password authenticates to redis.
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`

	// DB selects the redis database.
	DB int `json:"db" yaml:"db" mapstructure:"db"`

	// TTL is how long cached blueprints live (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowedOrigins lists CORS origins. Empty allows all origins.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" mapstructure:"allowed_origins"`

	// Token, when set, is required as a bearer token on /v1 routes.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	Cache CacheConfig `json:"cache" yaml:"cache" mapstructure:"cache"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to the console encoder.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// Config groups every setting for the CLI and server.
type Config struct {
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	Archive    ArchiveConfig    `json:"archive" yaml:"archive" mapstructure:"archive"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Format:    OutputMarkdown,
			OutputDir: "output/blueprints",
			Jobs:      4,
		},
		Archive: ArchiveConfig{
			Dir:        "archive",
			MaxResults: 20,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			Cache: CacheConfig{
				TTL: 24 * time.Hour,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

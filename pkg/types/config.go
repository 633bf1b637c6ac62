package types

import "time"

// HTTPConfig holds settings for outbound requests to the upstream APIs.
type HTTPConfig struct {
	// Timeout is the outbound HTTP request timeout. Zero disables it.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent to every upstream.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig holds settings for the inbound HTTP listener.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DuckDuckGoConfig configures the primary instant-answer backend.
type DuckDuckGoConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// WikipediaConfig configures the secondary encyclopedia backend.
type WikipediaConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Language selects the wiki edition (e.g. "ru", "en").
	Language string `json:"language" yaml:"language" mapstructure:"language"`

	// BaseURL is the wiki origin, e.g. "https://ru.wikipedia.org". When empty
	// it is derived from Language.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// ResultsConfig controls how results are normalized.
type ResultsConfig struct {
	// DefaultTitle replaces a missing result title.
	DefaultTitle string `json:"default_title" yaml:"default_title" mapstructure:"default_title"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for the aggregator.
type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
	DuckDuckGo DuckDuckGoConfig `json:"duckduckgo" yaml:"duckduckgo" mapstructure:"duckduckgo"`
	Wikipedia  WikipediaConfig  `json:"wikipedia" yaml:"wikipedia" mapstructure:"wikipedia"`
	Results    ResultsConfig    `json:"results" yaml:"results" mapstructure:"results"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}

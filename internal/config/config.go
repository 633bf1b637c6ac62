// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads aggregator settings from viper (config file,
// environment, bound flags) into types.Config and validates them.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/pdiddy/search-aggregator/internal/search"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultHTTPTimeout     = 10 * time.Second
	DefaultUserAgent       = "QuizTrainer/1.0 (+vercel)"
	DefaultLanguage        = "ru"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

// SetDefaults registers every known key with its default on v. Keys must be
// registered for AutomaticEnv to reach them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("http.user_agent", DefaultUserAgent)

	v.SetDefault("duckduckgo.enabled", true)
	v.SetDefault("duckduckgo.base_url", search.DefaultDuckDuckGoURL)

	v.SetDefault("wikipedia.enabled", true)
	v.SetDefault("wikipedia.language", DefaultLanguage)
	v.SetDefault("wikipedia.base_url", "")

	v.SetDefault("results.default_title", search.DefaultTitle)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load applies defaults, decodes v into a Config and validates it.
func Load(v *viper.Viper) (types.Config, error) {
	SetDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Normalize(&cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Normalize canonicalises cfg in place and reports the first invalid setting.
// The wiki language is reduced to its base language and, when no base URL is
// configured, used to derive one.
func Normalize(cfg *types.Config) error {
	if cfg.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative, got %s", cfg.HTTP.Timeout)
	}
	if strings.TrimSpace(cfg.HTTP.UserAgent) == "" {
		cfg.HTTP.UserAgent = DefaultUserAgent
	}

	lang, err := wikiLanguage(cfg.Wikipedia.Language)
	if err != nil {
		return err
	}
	cfg.Wikipedia.Language = lang
	if strings.TrimSpace(cfg.Wikipedia.BaseURL) == "" {
		cfg.Wikipedia.BaseURL = "https://" + lang + ".wikipedia.org"
	}

	if err := checkBaseURL("duckduckgo.base_url", cfg.DuckDuckGo.BaseURL); err != nil {
		return err
	}
	if err := checkBaseURL("wikipedia.base_url", cfg.Wikipedia.BaseURL); err != nil {
		return err
	}

	if cfg.Results.DefaultTitle == "" {
		cfg.Results.DefaultTitle = search.DefaultTitle
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Log.Format)
	}
	return nil
}

// wikiLanguage parses a BCP 47 tag and returns its base language subtag,
// e.g. "EN-us" -> "en".
func wikiLanguage(raw string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("wikipedia.language %q: %w", raw, err)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("wikipedia.language %q has no base language", raw)
	}
	return base.String(), nil
}

func checkBaseURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", key, raw)
	}
	return nil
}

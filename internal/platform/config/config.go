// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the environment leaves a setting empty.
const (
	DefaultAddr            = ":8080"
	DefaultRulesCacheTTL   = time.Hour
	DefaultFetchTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Config is the complete process configuration.
type Config struct {
	Server   Server
	Rules    RulesConfig
	Redis    RedisConfig
	LogLevel string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// DocumentConfig locates one rule page by ID or by space and title.
type DocumentConfig struct {
	ID    string
	Space string
	Title string
}

// RulesConfig holds the document store endpoint, credentials and pages.
// Missing credentials are valid: the service then serves built-in rules only.
type RulesConfig struct {
	BaseURL           string
	User              string
	Token             string
	Transfer          DocumentConfig
	CompanyCountries  DocumentConfig
	CompanyActivities DocumentConfig
	CacheTTL          time.Duration
	FetchTimeout      time.Duration
}

// Configured reports whether credentials and endpoint are all present.
func (c RulesConfig) Configured() bool {
	return c.BaseURL != "" && c.User != "" && c.Token != ""
}

// RedisConfig configures the optional shared rule cache. An empty URL
// disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// Only malformed values are errors; absent values take defaults.
func FromEnv() (Config, error) {
	e := &envReader{}
	cfg := Config{
		Server: Server{
			Addr:            e.str("ADVISOR_ADDR", DefaultAddr),
			ShutdownTimeout: e.duration("ADVISOR_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		},
		Rules: RulesConfig{
			BaseURL:           e.str("RULES_SOURCE_BASE_URL", ""),
			User:              e.str("RULES_SOURCE_USER", ""),
			Token:             e.str("RULES_SOURCE_TOKEN", ""),
			Transfer:          e.document("TRANSFER_RULES"),
			CompanyCountries:  e.document("COMPANY_COUNTRIES"),
			CompanyActivities: e.document("COMPANY_ACTIVITIES"),
			CacheTTL:          e.duration("RULES_CACHE_TTL", DefaultRulesCacheTTL),
			FetchTimeout:      e.duration("RULES_FETCH_TIMEOUT", DefaultFetchTimeout),
		},
		Redis: RedisConfig{
			URL:          e.str("REDIS_URL", ""),
			PoolSize:     e.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: e.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  e.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  e.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: e.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		LogLevel: e.str("LOG_LEVEL", "info"),
	}
	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, nil
}

// envReader records the first malformed value it meets.
type envReader struct {
	err error
}

func (e *envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.fail(fmt.Errorf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}

func (e *envReader) integer(key string, def int) int {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		e.fail(fmt.Errorf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

// document reads PREFIX_PAGE_ID, or PREFIX_SPACE and PREFIX_TITLE.
func (e *envReader) document(prefix string) DocumentConfig {
	return DocumentConfig{
		ID:    e.str(prefix+"_PAGE_ID", ""),
		Space: e.str(prefix+"_SPACE", ""),
		Title: e.str(prefix+"_TITLE", ""),
	}
}

func (e *envReader) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

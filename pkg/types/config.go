package types

import (
	"errors"
	"net/url"
	"time"
)

// Config holds the connection parameters for the admin API.
type Config struct {
	BaseURL     string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Username    string        `json:"username" yaml:"username" mapstructure:"username"`
	Password    string        `json:"-" yaml:"password" mapstructure:"password"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	LogMode     string        `json:"log_mode" yaml:"log_mode" mapstructure:"log_mode"`
	JournalPath string        `json:"journal_path" yaml:"journal_path" mapstructure:"journal_path"`
}

// Defaults applied by WithDefaults.
const (
	DefaultBaseURL = "http://localhost:5000/admin/v1/"
	DefaultTimeout = 30 * time.Second
	DefaultLogMode = "development"
)

// Config validation errors.
var (
	ErrBaseURLEmpty   = errors.New("base_url must not be empty")
	ErrBaseURLInvalid = errors.New("base_url must be an absolute http(s) URL")
	ErrTimeoutInvalid = errors.New("timeout must be positive")
	ErrLogModeUnknown = errors.New("unknown log mode")
)

var knownLogModes = map[string]bool{
	"development": true,
	"dev":         true,
	"production":  true,
	"prod":        true,
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.LogMode == "" {
		c.LogMode = DefaultLogMode
	}
	return c
}

// Validate checks that the Config is well-formed. It returns one of the
// sentinel errors above on failure.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrBaseURLInvalid
	}
	if c.Timeout <= 0 {
		return ErrTimeoutInvalid
	}
	if c.LogMode != "" && !knownLogModes[c.LogMode] {
		return ErrLogModeUnknown
	}
	return nil
}

// Package config resolves runtime settings from defaults, an optional .env
// file, the environment and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBase       = "https://career-kol5.onrender.com"
	DefaultProbeInterval = 30 * time.Second
	DefaultProbeTimeout  = 2 * time.Second
	DefaultEnvFile       = ".env"
)

// Environment variables read by FromEnv.
const (
	EnvAPIBase        = "API_BASE"
	EnvRequestTimeout = "CAREERSCOUT_REQUEST_TIMEOUT"
	EnvProbeInterval  = "CAREERSCOUT_PROBE_INTERVAL"
	EnvLogFile        = "CAREERSCOUT_LOG_FILE"
)

// Config holds everything the CLI and TUI need to reach the backend.
type Config struct {
	APIBase string
	// RequestTimeout applies to flow requests; zero means no client timeout.
	RequestTimeout time.Duration
	ProbeInterval  time.Duration
	ProbeTimeout   time.Duration
	LogFile        string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIBase:       DefaultAPIBase,
		ProbeInterval: DefaultProbeInterval,
		ProbeTimeout:  DefaultProbeTimeout,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.APIBase != "" {
		c.APIBase = source.APIBase
	}
	if source.RequestTimeout > 0 {
		c.RequestTimeout = source.RequestTimeout
	}
	if source.ProbeInterval > 0 {
		c.ProbeInterval = source.ProbeInterval
	}
	if source.ProbeTimeout > 0 {
		c.ProbeTimeout = source.ProbeTimeout
	}
	if source.LogFile != "" {
		c.LogFile = source.LogFile
	}
}

// Validate checks that the API base is an absolute http(s) URL and that no
// duration is negative.
func (c Config) Validate() error {
	base, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("invalid API base %q: %w", c.APIBase, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("invalid API base %q: scheme must be http or https", c.APIBase)
	}
	if base.Host == "" {
		return fmt.Errorf("invalid API base %q: missing host", c.APIBase)
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout cannot be negative")
	}
	if c.ProbeInterval < 0 {
		return errors.New("probe interval cannot be negative")
	}
	if c.ProbeTimeout < 0 {
		return errors.New("probe timeout cannot be negative")
	}
	return nil
}

// FromEnv reads the CAREERSCOUT_* variables and API_BASE through lookup.
// Unset variables leave the zero value.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config
	if v, ok := lookup(EnvAPIBase); ok {
		cfg.APIBase = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	var err error
	if cfg.RequestTimeout, err = durationFromEnv(lookup, EnvRequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ProbeInterval, err = durationFromEnv(lookup, EnvProbeInterval); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func durationFromEnv(lookup func(string) (string, bool), key string) (time.Duration, error) {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration cannot be negative", key)
	}
	return d, nil
}

// LoadDotEnv exports the variables in path into the process environment
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load returns Default merged with envFile and the process environment.
func Load(envFile string) (Config, error) {
	cfg := Default()
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, err
	}
	env, err := FromEnv(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}
	cfg.Merge(&env)
	return cfg, nil
}

// Package config resolves tripweaver settings from flags, the process
// environment, an optional .env file and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/keyring"
	"github.com/julianstephens/tripweaver/internal/logger"
	"github.com/julianstephens/tripweaver/internal/models"
)

type Config struct {
	APIBase         string
	Timeout         time.Duration
	DataSource      models.DataSource
	ShowExplanation bool
	APIToken        string
	ConfigDir       string
	Debug           bool
}

// Overrides carries values set explicitly on the command line. Zero values
// mean "not set".
type Overrides struct {
	APIBase   string
	Timeout   time.Duration
	ConfigDir string
	Debug     bool
}

// source looks a key up in the process environment first, then the .env file.
type source struct {
	file map[string]string
}

func (s source) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	v, ok := s.file[key]
	return v, ok && v != ""
}

func (s source) str(key, def string) string {
	if v, ok := s.lookup(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func (s source) duration(key string, def time.Duration) (time.Duration, error) {
	v, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// bare numbers are seconds
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return time.Duration(secs) * time.Second, nil
}

func (s source) boolean(key string, def bool) (bool, error) {
	v, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

// Load builds a Config. A missing env file is not an error.
func Load(envFile string, o Overrides) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(ExpandHome(envFile))
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
			// optional
		default:
			return Config{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}
	src := source{file: file}

	timeout, err := src.duration(constants.EnvTimeout, constants.DefaultTimeout)
	if err != nil {
		return Config{}, err
	}
	showExplanation, err := src.boolean(constants.EnvShowExplanation, constants.DefaultShowExplanation)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:         src.str(constants.EnvAPIBase, constants.DefaultAPIBase),
		Timeout:         timeout,
		DataSource:      models.DataSource(src.str(constants.EnvDataSource, string(models.DataSourceOffline))),
		ShowExplanation: showExplanation,
		APIToken:        src.str(constants.EnvAPIToken, ""),
		ConfigDir:       ExpandHome(constants.DefaultConfigDir),
		Debug:           o.Debug,
	}

	if o.APIBase != "" {
		cfg.APIBase = o.APIBase
	}
	if o.Timeout != 0 {
		cfg.Timeout = o.Timeout
	}
	if o.ConfigDir != "" {
		cfg.ConfigDir = ExpandHome(o.ConfigDir)
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("invalid API base %q: %w", c.APIBase, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API base %q: must be an http(s) URL", c.APIBase)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if !c.DataSource.Valid() {
		return fmt.Errorf("invalid data source %q: must be one of offline, google", c.DataSource)
	}
	return nil
}

// ResolveAPIToken returns the configured token, falling back to the OS keyring.
// An unavailable keyring is logged and treated as "no token".
func (c Config) ResolveAPIToken() string {
	if c.APIToken != "" {
		return c.APIToken
	}
	token, err := keyring.GetAPIToken()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup failed", "error", err)
		}
		return ""
	}
	return token
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/keyring"
	"github.com/julianstephens/tripweaver/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		constants.EnvAPIBase,
		constants.EnvTimeout,
		constants.EnvDataSource,
		constants.EnvShowExplanation,
		constants.EnvAPIToken,
	} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), Overrides{})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIBase != constants.DefaultAPIBase {
		t.Errorf("APIBase = %q, want %q", cfg.APIBase, constants.DefaultAPIBase)
	}
	if cfg.Timeout != constants.DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, constants.DefaultTimeout)
	}
	if cfg.DataSource != models.DataSourceOffline {
		t.Errorf("DataSource = %q, want offline", cfg.DataSource)
	}
	if !cfg.ShowExplanation {
		t.Error("ShowExplanation should default to true")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, strings.Join([]string{
		"TRIPWEAVER_API_BASE=https://plan.example.com/",
		"TRIPWEAVER_TIMEOUT=15",
		"TRIPWEAVER_DATA_SOURCE=google",
		"TRIPWEAVER_SHOW_EXPLANATION=false",
		"TRIPWEAVER_API_TOKEN=from-file",
	}, "\n"))

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIBase != "https://plan.example.com" {
		t.Errorf("APIBase = %q, want trailing slash trimmed", cfg.APIBase)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want 15s", cfg.Timeout)
	}
	if cfg.DataSource != models.DataSourceGoogle {
		t.Errorf("DataSource = %q, want google", cfg.DataSource)
	}
	if cfg.ShowExplanation {
		t.Error("ShowExplanation should be false from env file")
	}
	if cfg.APIToken != "from-file" {
		t.Errorf("APIToken = %q, want from-file", cfg.APIToken)
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "TRIPWEAVER_API_BASE=http://file:1\nTRIPWEAVER_TIMEOUT=5s\n")
	t.Setenv(constants.EnvAPIBase, "http://env:2")

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIBase != "http://env:2" {
		t.Errorf("environment should beat env file, got %q", cfg.APIBase)
	}

	cfg, err = Load(path, Overrides{APIBase: "http://flag:3", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIBase != "http://flag:3" {
		t.Errorf("flag should beat environment, got %q", cfg.APIBase)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("Timeout = %s, want 2s", cfg.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad scheme", constants.EnvAPIBase, "ftp://example.com"},
		{"no host", constants.EnvAPIBase, "http://"},
		{"bad timeout", constants.EnvTimeout, "soon"},
		{"negative timeout", constants.EnvTimeout, "-1s"},
		{"bad data source", constants.EnvDataSource, "bing"},
		{"bad bool", constants.EnvShowExplanation, "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load("", Overrides{}); err == nil {
				t.Errorf("Load() with %s=%q should fail", tt.key, tt.val)
			}
		})
	}
}

func TestResolveAPIToken(t *testing.T) {
	gokeyring.MockInit()
	_ = keyring.DeleteAPIToken()

	cfg := Config{}
	if got := cfg.ResolveAPIToken(); got != "" {
		t.Errorf("ResolveAPIToken() = %q, want empty", got)
	}

	if err := keyring.SetAPIToken("from-keyring"); err != nil {
		t.Fatalf("SetAPIToken() failed: %v", err)
	}
	if got := cfg.ResolveAPIToken(); got != "from-keyring" {
		t.Errorf("ResolveAPIToken() = %q, want from-keyring", got)
	}

	cfg.APIToken = "from-env"
	if got := cfg.ResolveAPIToken(); got != "from-env" {
		t.Errorf("ResolveAPIToken() = %q, want explicit token to win", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/.config/tripweaver"); got != filepath.Join(home, ".config/tripweaver") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("ExpandHome() should leave absolute paths alone, got %q", got)
	}
}

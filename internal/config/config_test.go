package config

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HEALTHCHECKS_TOKEN", "")
	t.Setenv("HEALTHCHECKS_USERAGENT", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogDir != "logs" || cfg.LogLevel != LogLevelInfo {
		t.Fatalf("logging defaults wrong: %+v", cfg)
	}
	if cfg.PingURL != "https://hc-ping.com" {
		t.Fatalf("ping url default wrong: %q", cfg.PingURL)
	}
	if cfg.APIURL != "https://healthchecks.io/api/v1" {
		t.Fatalf("api url default wrong: %q", cfg.APIURL)
	}
	if err := cfg.RequireToken(); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("want ErrMissingToken, got %v", err)
	}
}

func TestLoad_ParsesEnv(t *testing.T) {
	t.Setenv("HEALTHCHECKS_TOKEN", "tok_123")
	t.Setenv("HEALTHCHECKS_USERAGENT", "cron-box/1.0")
	t.Setenv("HEALTHCHECKS_LOG_DIR", "./_testlogs")
	t.Setenv("HEALTHCHECKS_LOG_LEVEL", "DEBUG")
	t.Setenv("HEALTHCHECKS_PING_URL", "https://ping.example.org")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "tok_123" || cfg.UserAgent != "cron-box/1.0" {
		t.Fatalf("token/user agent wrong: %+v", cfg)
	}
	if cfg.LogDir != "./_testlogs" || cfg.LogLevel != LogLevelDebug {
		t.Fatalf("log settings wrong: %+v", cfg)
	}
	if cfg.PingURL != "https://ping.example.org" {
		t.Fatalf("ping url wrong: %q", cfg.PingURL)
	}
	if err := cfg.RequireToken(); err != nil {
		t.Fatalf("RequireToken: %v", err)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("HEALTHCHECKS_TOKEN", "from_env")
	t.Setenv("HEALTHCHECKS_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("hcctl", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--token", "from_flag", "--user-agent", "flag-ua"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "from_flag" || cfg.UserAgent != "flag-ua" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	// unset flags must not shadow the environment
	if cfg.LogLevel != LogLevelWarn {
		t.Fatalf("want log level from env, got %q", cfg.LogLevel)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("HEALTHCHECKS_LOG_LEVEL", "verbose")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for unknown log level")
	}

	t.Setenv("HEALTHCHECKS_LOG_LEVEL", "info")
	t.Setenv("HEALTHCHECKS_API_URL", "not a url")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for invalid api url")
	}
}

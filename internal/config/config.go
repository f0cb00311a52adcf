package config

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hamed0406/healthchecks/pkg/manage"
	"github.com/hamed0406/healthchecks/pkg/ping"
)

// EnvPrefix is prepended to every key, e.g. HEALTHCHECKS_TOKEN.
const EnvPrefix = "HEALTHCHECKS"

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var ErrMissingToken = errors.New("HEALTHCHECKS_TOKEN must be set to use the management API")

type Config struct {
	Token     string `mapstructure:"token"`     // management API key
	UserAgent string `mapstructure:"useragent"` // overrides the default User-Agent
	LogDir    string `mapstructure:"log_dir"`   // logs directory
	LogLevel  string `mapstructure:"log_level"` // debug|info|warn|error
	PingURL   string `mapstructure:"ping_url"`  // e.g. https://hc-ping.com
	APIURL    string `mapstructure:"api_url"`   // e.g. https://healthchecks.io/api/v1
}

// RegisterFlags adds the global hcctl flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("token", "", "management API key ("+EnvPrefix+"_TOKEN)")
	fs.String("user-agent", "", "User-Agent header override ("+EnvPrefix+"_USERAGENT)")
	fs.String("log-dir", "", "directory for hcctl.log ("+EnvPrefix+"_LOG_DIR)")
	fs.String("log-level", "", "debug, info, warn or error ("+EnvPrefix+"_LOG_LEVEL)")
	fs.String("ping-url", "", "ping host ("+EnvPrefix+"_PING_URL)")
	fs.String("api-url", "", "management API base URL ("+EnvPrefix+"_API_URL)")
}

var flagKeys = map[string]string{
	"token":      "token",
	"user-agent": "useragent",
	"log-dir":    "log_dir",
	"log-level":  "log_level",
	"ping-url":   "ping_url",
	"api-url":    "api_url",
}

// Load reads defaults, then HEALTHCHECKS_* variables, then flags that were
// set explicitly. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("token", "")
	v.SetDefault("useragent", "")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("ping_url", ping.DefaultBaseURL)
	v.SetDefault("api_url", manage.DefaultBaseURL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogDir, validation.Required),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&c.PingURL, validation.Required, is.URL),
		validation.Field(&c.APIURL, validation.Required, is.URL),
	)
}

// RequireToken fails when no management API key is configured.
func (c *Config) RequireToken() error {
	err := validation.Validate(strings.TrimSpace(c.Token), validation.Required)
	if err != nil {
		return ErrMissingToken
	}
	return nil
}

// pkg/config/config.go

package config

import (
	"os"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/logdir_err"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LOGDIR"

	KeyAppName    = "app_name"
	KeyDateFormat = "date_format"
	KeyLogLevel   = "log_level"
	KeyLogToFile  = "log_to_file"
	KeyTrace      = "trace"

	DefaultDateFormat = "2006-01-02"
	DefaultLogLevel   = "warn"
	DotEnvFile        = ".env"
)

// Config is logdir's runtime configuration. Precedence: flags, LOGDIR_*
// environment (including .env), config file, defaults.
type Config struct {
	AppName    string `mapstructure:"app_name" validate:"omitempty,pathsegment"`
	DateFormat string `mapstructure:"date_format" validate:"required,datesegment"`
	LogLevel   string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error dpanic fatal"`
	LogToFile  bool   `mapstructure:"log_to_file"`
	Trace      bool   `mapstructure:"trace"`
}

// NewViper returns a viper instance with logdir's defaults and env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAppName, "")
	v.SetDefault(KeyDateFormat, DefaultDateFormat)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogToFile, false)
	v.SetDefault(KeyTrace, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfigFile is $XDG_CONFIG_HOME/logdir/config.yaml.
func DefaultConfigFile() string {
	return xdg.XDGConfigPath("logdir", "config.yaml")
}

// Load reads .env (if present), then configFile, or the default config file
// when configFile is empty and it exists, and validates the result.
// configFile may reference environment variables and ~.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	configFile, err := ExpandPath(configFile)
	if err != nil {
		return nil, err
	}

	switch {
	case configFile != "":
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, logdir_err.NewFilesystemError("cannot read config file "+configFile, err,
				"Check that the file exists and is valid YAML, JSON or TOML")
		}
	default:
		if path := DefaultConfigFile(); fileExists(path) {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, cerr.Wrapf(err, "read %s", path)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cerr.Wrap(err, "decode configuration")
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.AppName = strings.TrimSpace(cfg.AppName)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return &logdir_err.ClassifiedError{
			Category: logdir_err.CategoryValidation,
			Message:  "invalid configuration",
			Cause:    logdir_err.WrapValidationError(err),
			Remediation: []string{
				"Check the LOGDIR_* environment variables and " + DefaultConfigFile(),
			},
		}
	}
	return nil
}

// Today formats t with the configured date format for use as a date segment.
func (c *Config) Today(t time.Time) string {
	return t.Format(c.DateFormat)
}

func loadDotEnv(path string) error {
	if !fileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return cerr.Wrapf(err, "load %s", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

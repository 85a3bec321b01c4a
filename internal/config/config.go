package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GUARDLOG_LOG_LEVEL.
const EnvPrefix = "GUARDLOG"

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic,disabled"`
}

type ReportConfig struct {
	Head       int    `mapstructure:"head" validate:"min:0"`
	SpotGuard  uint32 `mapstructure:"spot_guard"`
	SpotMinute int    `mapstructure:"spot_minute" validate:"min:0|max:59"`
}

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
	Color  string       `mapstructure:"color" validate:"required|in:auto,always,never"`
	// Path is the config file that was read, empty when none was.
	Path string `mapstructure:"-"`
}

// SetDefaults registers the default for every key so environment
// overrides are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("report.head", 5)
	v.SetDefault("report.spot_guard", 1201)
	v.SetDefault("report.spot_minute", 16)
	v.SetDefault("color", "auto")
}

// Load resolves the configuration from defaults, an optional YAML file,
// GUARDLOG_* environment variables and any flags already bound to v,
// in increasing order of precedence.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.Path = path

	if err := NewValidator(&conf).Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

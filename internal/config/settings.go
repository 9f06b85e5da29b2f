package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for every setting.
const envPrefix = "PAYOUTOPT"

const (
	DefaultLogLevel     = "info"
	DefaultLogEncoding  = "console"
	DefaultOutputFormat = "console"
	DefaultServerAddr   = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultMaxBodyBytes = 1 << 20
)

// Settings holds application settings, as opposed to the profile being planned.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Output OutputSettings `mapstructure:"output"`
	Engine EngineSettings `mapstructure:"engine"`
	Server ServerSettings `mapstructure:"server"`
}

type LogSettings struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
}

type EngineSettings struct {
	Parallel bool `mapstructure:"parallel"`
}

type ServerSettings struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	MaxBodyBytes int           `mapstructure:"max_body_bytes"`
}

// settingKeys are bound explicitly so environment overrides apply even when
// no settings file mentions them.
var settingKeys = []string{
	"log.level", "log.encoding",
	"output.format",
	"engine.parallel",
	"server.addr", "server.read_timeout", "server.max_body_bytes",
}

// newViper builds a viper instance reading YAML with PAYOUTOPT_ environment
// overrides; "server.addr" resolves to PAYOUTOPT_SERVER_ADDR.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range settingKeys {
		_ = v.BindEnv(k)
	}
	return v
}

// LoadSettings reads the settings file at path, if any, merges environment
// overrides, applies defaults and validates the result.
func LoadSettings(path string) (*Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("settings: failed to read %q: %w", path, err)
		}
	}
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Settings, error) {
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("settings: failed to unmarshal: %w", err)
	}

	ApplyDefaults(s)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: validation failed: %w", err)
	}
	return s, nil
}

// ApplyDefaults fills zero-value fields; explicit values win.
func ApplyDefaults(s *Settings) {
	if s == nil {
		return
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
	if s.Log.Encoding == "" {
		s.Log.Encoding = DefaultLogEncoding
	}
	if s.Output.Format == "" {
		s.Output.Format = DefaultOutputFormat
	}
	if s.Server.Addr == "" {
		s.Server.Addr = DefaultServerAddr
	}
	if s.Server.ReadTimeout == 0 {
		s.Server.ReadTimeout = DefaultReadTimeout
	}
	if s.Server.MaxBodyBytes == 0 {
		s.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", s.Log.Level)
	}
	switch s.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding %q must be console or json", s.Log.Encoding)
	}
	if s.Server.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must not be negative")
	}
	if s.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must not be negative")
	}
	return nil
}

// Package config loads the dabmux-gui configuration.
//
// Configuration comes from an optional TOML file, then environment overrides,
// then Validate, which fills defaults and rejects values the rc client cannot
// use. The file is only ever read.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jroosing/dabmux-gui/internal/rc"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "DABMUXGUI_CONFIG"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Instance: InstanceConfig{Name: "CHANGEME"},
		Mux: MuxConfig{
			RCEndpoint:        rc.DefaultRCEndpoint,
			StatsEndpoint:     rc.DefaultStatsEndpoint,
			SetReplyFormatRaw: "frames",
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
			ExtraFields:      map[string]string{},
		},
	}
}

// ResolveConfigPath returns the flag value if set, else $DABMUXGUI_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(ConfigEnv))
}

// Load reads path (if non-empty), applies environment overrides and validates
// the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookupEnv("DABMUXGUI_RC_ENDPOINT"); ok {
		cfg.Mux.RCEndpoint = v
	}
	if v, ok := lookupEnv("DABMUXGUI_STATS_ENDPOINT"); ok {
		cfg.Mux.StatsEndpoint = v
	}
	if v, ok := lookupEnv("DABMUXGUI_SET_REPLY_FORMAT"); ok {
		cfg.Mux.SetReplyFormatRaw = v
	}
	if v, ok := lookupEnv("DABMUXGUI_API_HOST"); ok {
		cfg.API.Host = v
	}
	if v, ok := lookupEnv("DABMUXGUI_API_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DABMUXGUI_API_PORT: %w", err)
		}
		cfg.API.Port = port
	}
	if v, ok := lookupEnv("DABMUXGUI_API_KEY"); ok {
		cfg.API.APIKey = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv("DABMUXGUI_LOG_STRUCTURED"); ok {
		cfg.Logging.Structured = envBool(v, cfg.Logging.Structured)
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// envBool parses common truthy/falsy spellings, returning def otherwise.
func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Validate normalizes the configuration and checks it for errors.
func (cfg *Config) Validate() error {
	if cfg.Mux.RCEndpoint == "" {
		cfg.Mux.RCEndpoint = rc.DefaultRCEndpoint
	}
	if cfg.Mux.StatsEndpoint == "" {
		cfg.Mux.StatsEndpoint = rc.DefaultStatsEndpoint
	}
	if err := validateEndpoint("mux.rc_endpoint", cfg.Mux.RCEndpoint); err != nil {
		return err
	}
	if err := validateEndpoint("mux.stats_endpoint", cfg.Mux.StatsEndpoint); err != nil {
		return err
	}
	format, err := rc.ParseSetReplyFormat(cfg.Mux.SetReplyFormatRaw)
	if err != nil {
		return fmt.Errorf("mux.set_reply_format: %w", err)
	}
	cfg.Mux.SetReplyFormat = format
	cfg.Mux.SetReplyFormatRaw = format.String()

	if cfg.API.Host == "" {
		cfg.API.Host = "0.0.0.0"
	}
	if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}
	return nil
}

func validateEndpoint(field, ep string) error {
	for _, scheme := range []string{"tcp://", "ipc://", "inproc://"} {
		if strings.HasPrefix(ep, scheme) && len(ep) > len(scheme) {
			return nil
		}
	}
	return fmt.Errorf("%s: invalid endpoint %q (want tcp://, ipc:// or inproc://)", field, ep)
}

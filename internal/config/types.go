package config

import "github.com/jroosing/dabmux-gui/internal/rc"

// InstanceConfig describes this GUI instance.
type InstanceConfig struct {
	Name string `toml:"name" json:"name"`
}

// MuxConfig contains the ODR-DabMux endpoints and protocol settings.
type MuxConfig struct {
	RCEndpoint    string `toml:"rc_endpoint" json:"rc_endpoint"`
	StatsEndpoint string `toml:"stats_endpoint" json:"stats_endpoint"`
	// SetReplyFormat is "frames" (status first frame) or "json" (JSON array echo).
	SetReplyFormatRaw string            `toml:"set_reply_format" json:"set_reply_format"`
	SetReplyFormat    rc.SetReplyFormat `toml:"-" json:"-"`
}

// APIConfig contains HTTP API settings.
//
// APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Host      string `toml:"host" json:"host"`
	Port      int    `toml:"port" json:"port"`
	APIKey    string `toml:"api_key" json:"-"`
	StaticDir string `toml:"static_dir" json:"static_dir,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level            string            `toml:"level" json:"level"`
	Structured       bool              `toml:"structured" json:"structured"`
	StructuredFormat string            `toml:"structured_format" json:"structured_format"`
	IncludePID       bool              `toml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `toml:"extra_fields" json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Instance InstanceConfig `toml:"instance" json:"instance"`
	Mux      MuxConfig      `toml:"mux" json:"mux"`
	API      APIConfig      `toml:"api" json:"api"`
	Logging  LoggingConfig  `toml:"logging" json:"logging"`
}

// RCOptions returns the rc client options described by the mux section.
func (cfg *Config) RCOptions() rc.Options {
	return rc.Options{
		RCEndpoint:     cfg.Mux.RCEndpoint,
		StatsEndpoint:  cfg.Mux.StatsEndpoint,
		SetReplyFormat: cfg.Mux.SetReplyFormat,
	}
}

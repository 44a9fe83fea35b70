package models

import "time"

// HealthResponse reports the GUI process and host state.
type HealthResponse struct {
	Status        string    `json:"status"`
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	Host          *HostInfo `json:"host,omitempty"`
}

// HostInfo describes the machine the GUI (and usually the mux) runs on.
type HostInfo struct {
	Hostname      string  `json:"hostname"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	Load1         float64 `json:"load1"`
	Load5         float64 `json:"load5"`
	Load15        float64 `json:"load15"`
}

// ConfigResponse is the effective configuration with secrets removed.
type ConfigResponse struct {
	Instance       string `json:"instance"`
	RCEndpoint     string `json:"rc_endpoint"`
	StatsEndpoint  string `json:"stats_endpoint"`
	SetReplyFormat string `json:"set_reply_format"`
	APIHost        string `json:"api_host"`
	APIPort        int    `json:"api_port"`
	APIKeySet      bool   `json:"api_key_set"`
	LogLevel       string `json:"log_level"`
}

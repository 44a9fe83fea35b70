package models

// InputStatResponse contains the counters of one mux input.
type InputStatResponse struct {
	Name           string  `json:"name"`
	MaxFill        uint32  `json:"max_fill"`
	MinFill        uint32  `json:"min_fill"`
	NumUnderruns   uint64  `json:"num_underruns"`
	NumOverruns    uint64  `json:"num_overruns"`
	PeakLeft       int32   `json:"peak_left"`
	PeakRight      int32   `json:"peak_right"`
	PeakLeftSlow   int32   `json:"peak_left_slow"`
	PeakRightSlow  int32   `json:"peak_right_slow"`
	LastTistOffset int32   `json:"last_tist_offset"`
	State          *string `json:"state,omitempty"`
	Version        *string `json:"version,omitempty"`
	Uptime         *uint64 `json:"uptime,omitempty"`
}

// MuxStatsResponse is a snapshot of the mux statistics, inputs sorted by name.
type MuxStatsResponse struct {
	Version string              `json:"version"`
	Inputs  []InputStatResponse `json:"inputs"`
}

// DashboardResponse combines parameters and statistics. Each half carries its
// own error so that one failing endpoint does not hide the other.
type DashboardResponse struct {
	Instance    string            `json:"instance"`
	Params      []ParamResponse   `json:"params"`
	ParamsError string            `json:"params_error,omitempty"`
	Stats       *MuxStatsResponse `json:"stats,omitempty"`
	StatsError  string            `json:"stats_error,omitempty"`
}

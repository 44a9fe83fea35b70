package rc

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	// ServicePrefix is the identity an ODR-DabMux stats endpoint reports.
	ServicePrefix = "ODR-DabMux"

	// UnknownVersion is reported when the peer does not announce a version.
	UnknownVersion = "UNKNOWN"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// InputStat holds the runtime counters of one mux input.
type InputStat struct {
	MaxFill        uint32  `json:"max_fill"`
	MinFill        uint32  `json:"min_fill"`
	NumUnderruns   uint64  `json:"num_underruns"`
	NumOverruns    uint64  `json:"num_overruns"`
	PeakLeft       int32   `json:"peak_left"`
	PeakRight      int32   `json:"peak_right"`
	PeakLeftSlow   int32   `json:"peak_left_slow"`
	PeakRightSlow  int32   `json:"peak_right_slow"`
	State          *string `json:"state,omitempty"`
	Version        *string `json:"version,omitempty"`
	Uptime         *uint64 `json:"uptime,omitempty"`
	LastTistOffset int32   `json:"last_tist_offset"`
}

// InputStats pairs an input name with its counters.
type InputStats struct {
	Name string    `json:"name"`
	Stat InputStat `json:"stat"`
}

// Stats is a point-in-time snapshot of the mux.
type Stats struct {
	Version string       `json:"version"`
	Inputs  []InputStats `json:"inputs"`
}

// wireInputStat mirrors InputStat with every required counter optional so
// that absent fields can be told apart from zero values.
type wireInputStat struct {
	MaxFill        *uint32 `json:"max_fill"`
	MinFill        *uint32 `json:"min_fill"`
	NumUnderruns   *uint64 `json:"num_underruns"`
	NumOverruns    *uint64 `json:"num_overruns"`
	PeakLeft       *int32  `json:"peak_left"`
	PeakRight      *int32  `json:"peak_right"`
	PeakLeftSlow   *int32  `json:"peak_left_slow"`
	PeakRightSlow  *int32  `json:"peak_right_slow"`
	State          *string `json:"state"`
	Version        *string `json:"version"`
	Uptime         *uint64 `json:"uptime"`
	LastTistOffset *int32  `json:"last_tist_offset"`
}

func (w wireInputStat) inputStat() (InputStat, error) {
	var missing []string
	req32 := func(name string, p *uint32) uint32 {
		if p == nil {
			missing = append(missing, name)
			return 0
		}
		return *p
	}
	req64 := func(name string, p *uint64) uint64 {
		if p == nil {
			missing = append(missing, name)
			return 0
		}
		return *p
	}
	reqI32 := func(name string, p *int32) int32 {
		if p == nil {
			missing = append(missing, name)
			return 0
		}
		return *p
	}

	st := InputStat{
		MaxFill:        req32("max_fill", w.MaxFill),
		MinFill:        req32("min_fill", w.MinFill),
		NumUnderruns:   req64("num_underruns", w.NumUnderruns),
		NumOverruns:    req64("num_overruns", w.NumOverruns),
		PeakLeft:       reqI32("peak_left", w.PeakLeft),
		PeakRight:      reqI32("peak_right", w.PeakRight),
		PeakLeftSlow:   reqI32("peak_left_slow", w.PeakLeftSlow),
		PeakRightSlow:  reqI32("peak_right_slow", w.PeakRightSlow),
		State:          w.State,
		Version:        w.Version,
		Uptime:         w.Uptime,
		LastTistOffset: reqI32("last_tist_offset", w.LastTistOffset),
	}
	if len(missing) > 0 {
		return InputStat{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return st, nil
}

// decodeObject decodes a JSON object into its raw members. A null, a
// non-object or invalid JSON is an error.
func decodeObject(data []byte) (map[string]jsoniter.RawMessage, error) {
	var obj map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("not an object")
	}
	return obj, nil
}

// stringField returns obj[name] when it is present and a JSON string.
func stringField(obj map[string]jsoniter.RawMessage, name string) (string, bool) {
	raw, ok := obj[name]
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// parseInfo validates the info reply and returns the announced version.
func parseInfo(frame string) (string, error) {
	info, err := decodeObject([]byte(frame))
	if err != nil {
		return "", malformed("info", err)
	}
	service, ok := stringField(info, "service")
	if !ok {
		return "", &MissingFieldError{Name: "service"}
	}
	if !strings.HasPrefix(service, ServicePrefix) {
		return "", &WrongServiceError{Actual: service}
	}
	version, ok := stringField(info, "version")
	if !ok {
		version = UnknownVersion
	}
	return version, nil
}

// parseValues decodes the values reply into input stats sorted by name.
func parseValues(frame string) ([]InputStats, error) {
	root, err := decodeObject([]byte(frame))
	if err != nil {
		return nil, malformed("values", err)
	}
	raw, ok := root["values"]
	if !ok {
		return nil, malformed("values", errors.New("field absent"))
	}
	values, err := decodeObject(raw)
	if err != nil {
		return nil, malformed("values", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	inputs := make([]InputStats, 0, len(names))
	for _, name := range names {
		entry, err := decodeObject(values[name])
		if err != nil {
			return nil, &MissingFieldError{Name: "inputstat"}
		}
		statRaw, ok := entry["inputstat"]
		if !ok {
			return nil, &MissingFieldError{Name: "inputstat"}
		}
		var wire wireInputStat
		if err := json.Unmarshal(statRaw, &wire); err != nil {
			return nil, malformed(name+".inputstat", err)
		}
		st, err := wire.inputStat()
		if err != nil {
			return nil, malformed(name+".inputstat", err)
		}
		inputs = append(inputs, InputStats{Name: name, Stat: st})
	}
	return inputs, nil
}

package rc

import (
	"fmt"
	"strings"
)

const (
	replyOK   = "ok"
	replyFail = "fail"

	unknownSetError = "unknown error"
)

// SetReplyFormat selects how a set reply is decoded. Peer revisions differ in
// how they acknowledge a set, and the format is configured, never guessed.
type SetReplyFormat int

const (
	// SetReplyFrames expects a status first frame: "ok", or "fail" followed
	// by the reason in the second frame.
	SetReplyFrames SetReplyFormat = iota
	// SetReplyJSON expects the first frame to be a JSON array echo whose
	// first element is "ok" or "fail", optionally followed by the reason.
	SetReplyJSON
)

func (f SetReplyFormat) String() string {
	switch f {
	case SetReplyFrames:
		return "frames"
	case SetReplyJSON:
		return "json"
	default:
		return fmt.Sprintf("SetReplyFormat(%d)", int(f))
	}
}

// ParseSetReplyFormat maps a configuration string to a SetReplyFormat.
func ParseSetReplyFormat(s string) (SetReplyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frames":
		return SetReplyFrames, nil
	case "json":
		return SetReplyJSON, nil
	default:
		return SetReplyFrames, fmt.Errorf("unknown set reply format %q (want frames or json)", s)
	}
}

// SetOutcome is the decoded result of a set request.
type SetOutcome struct {
	OK     bool
	Reason string
}

// Err returns nil for a successful outcome and a SetRejectedError otherwise.
func (o SetOutcome) Err() error {
	if o.OK {
		return nil
	}
	return &SetRejectedError{Reason: o.Reason}
}

// DecodeSetReply interprets the frames of a set reply according to f.
func DecodeSetReply(f SetReplyFormat, frames []string) (SetOutcome, error) {
	switch f {
	case SetReplyJSON:
		return decodeJSONSetReply(frames)
	default:
		return statusOutcome(frames), nil
	}
}

func decodeJSONSetReply(frames []string) (SetOutcome, error) {
	if len(frames) == 0 {
		return SetOutcome{Reason: unknownSetError}, nil
	}
	v, err := ParseValue([]byte(frames[0]))
	if err != nil {
		return SetOutcome{}, malformed("set reply", err)
	}
	if v.Kind != KindArray {
		return SetOutcome{}, malformed("set reply", fmt.Errorf("expected array, got %s", v.Kind))
	}
	status := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		if item.Kind != KindString {
			break
		}
		status = append(status, item.Text)
	}
	return statusOutcome(status), nil
}

// statusOutcome applies the ok/fail convention shared by both reply formats.
func statusOutcome(status []string) SetOutcome {
	switch {
	case len(status) > 0 && status[0] == replyOK:
		return SetOutcome{OK: true}
	case len(status) > 1 && status[0] == replyFail:
		return SetOutcome{Reason: status[1]}
	default:
		return SetOutcome{Reason: unknownSetError}
	}
}

package rc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the RC protocol. Each structured error below matches
// exactly one of these through errors.Is.
var (
	ErrTimeout               = errors.New("rc: no reply within timeout")
	ErrMalformedResponse     = errors.New("rc: malformed response")
	ErrUnexpectedFraming     = errors.New("rc: unexpected multipart answer")
	ErrUnsupportedValueShape = errors.New("rc: unsupported value shape")
	ErrWrongService          = errors.New("rc: wrong service in stats")
	ErrMissingField          = errors.New("rc: missing field")
	ErrSetRejected           = errors.New("rc: set rejected")
)

// MalformedResponseError reports a reply that is not valid text, not valid
// JSON, or not shaped as expected at Detail.
type MalformedResponseError struct {
	Detail string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rc: malformed response at %s: %v", e.Detail, e.Err)
	}
	return "rc: malformed response at " + e.Detail
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }
func (e *MalformedResponseError) Unwrap() error        { return e.Err }

// FramingError reports a reply with the wrong number of frames for a
// single-value exchange.
type FramingError struct {
	Frames []string
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("rc: unexpected multipart answer (%d frames)", len(e.Frames))
}

func (e *FramingError) Is(target error) bool { return target == ErrUnexpectedFraming }

// UnsupportedValueShapeError reports an array or object parameter value.
type UnsupportedValueShapeError struct {
	Module string
	Param  string
	Kind   Kind
}

func (e *UnsupportedValueShapeError) Error() string {
	return fmt.Sprintf("rc: unexpected %s in %s.%s", e.Kind, e.Module, e.Param)
}

func (e *UnsupportedValueShapeError) Is(target error) bool {
	return target == ErrUnsupportedValueShape
}

// WrongServiceError reports a stats endpoint that identifies as something
// other than ODR-DabMux.
type WrongServiceError struct {
	Actual string
}

func (e *WrongServiceError) Error() string {
	return fmt.Sprintf("rc: wrong service in stats: %q", e.Actual)
}

func (e *WrongServiceError) Is(target error) bool { return target == ErrWrongService }

// MissingFieldError reports a required field absent from a reply.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return "rc: missing " + e.Name + " in response"
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// SetRejectedError reports a set request the peer refused.
type SetRejectedError struct {
	Reason string
}

func (e *SetRejectedError) Error() string {
	return "rc: failed to set parameter: " + e.Reason
}

func (e *SetRejectedError) Is(target error) bool { return target == ErrSetRejected }

func malformed(detail string, err error) error {
	return &MalformedResponseError{Detail: detail, Err: err}
}

// truncate shortens raw payloads before they go into a log line.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func joinFrames(frames []string) string {
	return truncate(strings.Join(frames, ","), 512)
}

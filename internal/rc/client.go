// Package rc is a remote-control client for ODR-DabMux.
//
// The mux exposes two ZeroMQ REP endpoints: the RC endpoint, which lists and
// sets module parameters, and the stats endpoint, which reports per-input
// runtime counters. Every Client call opens its own REQ session, performs one
// protocol exchange and closes the session before returning. Nothing is
// pooled, cached or retried: a reply that does not arrive within Timeout
// fails the call with ErrTimeout.
//
// Error Handling:
//
// Protocol failures are returned as structured errors (MalformedResponseError,
// FramingError, UnsupportedValueShapeError, WrongServiceError,
// MissingFieldError, SetRejectedError) that match the corresponding Err*
// sentinel with errors.Is. The offending payload is logged where the failure
// is detected.
package rc

import (
	"context"
	"errors"
	"log/slog"
)

// Default peer endpoints.
const (
	DefaultRCEndpoint    = "tcp://127.0.0.1:12722"
	DefaultStatsEndpoint = "tcp://127.0.0.1:12720"
)

// Options configures a Client. Zero fields take their defaults.
type Options struct {
	RCEndpoint     string
	StatsEndpoint  string
	SetReplyFormat SetReplyFormat
	Dialer         Dialer
	Logger         *slog.Logger
}

// Client talks to one ODR-DabMux instance. It holds only immutable
// configuration and is safe for concurrent use; the peer-side ordering of
// concurrent calls is not defined.
type Client struct {
	rcEndpoint    string
	statsEndpoint string
	setFormat     SetReplyFormat
	dialer        Dialer
	logger        *slog.Logger
}

// New creates a Client.
func New(opts Options) *Client {
	c := &Client{
		rcEndpoint:    opts.RCEndpoint,
		statsEndpoint: opts.StatsEndpoint,
		setFormat:     opts.SetReplyFormat,
		dialer:        opts.Dialer,
		logger:        opts.Logger,
	}
	if c.rcEndpoint == "" {
		c.rcEndpoint = DefaultRCEndpoint
	}
	if c.statsEndpoint == "" {
		c.statsEndpoint = DefaultStatsEndpoint
	}
	if c.dialer == nil {
		c.dialer = NewZMQDialer()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// RCEndpoint returns the endpoint used for parameter calls.
func (c *Client) RCEndpoint() string { return c.rcEndpoint }

// StatsEndpoint returns the endpoint used for statistics calls.
func (c *Client) StatsEndpoint() string { return c.statsEndpoint }

// ListParameters fetches all RC parameters of the mux as a flat list.
func (c *Client) ListParameters(ctx context.Context) ([]Param, error) {
	sess, err := c.dialer.Dial(ctx, c.rcEndpoint)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	msg, err := c.exchangeOne(ctx, sess, "showjson")
	if err != nil {
		return nil, err
	}

	root, err := ParseValue([]byte(msg))
	if err != nil {
		c.logger.Info("showjson reply is not valid JSON", "reply", truncate(msg, 512), "error", err)
		return nil, malformed("showjson", err)
	}

	params, err := Flatten(root)
	if err != nil {
		c.logger.Info("showjson reply has unexpected shape", "reply", truncate(msg, 512), "error", err)
		return nil, err
	}
	return params, nil
}

// SetParameter sets module.param to value.
func (c *Client) SetParameter(ctx context.Context, module, param, value string) error {
	sess, err := c.dialer.Dial(ctx, c.rcEndpoint)
	if err != nil {
		return err
	}
	defer sess.Close()

	reply, err := sess.Exchange(ctx, "set", module, param, value)
	if err != nil {
		return err
	}

	outcome, err := DecodeSetReply(c.setFormat, reply)
	if err != nil {
		c.logger.Info("set reply could not be decoded",
			"format", c.setFormat.String(), "reply", joinFrames(reply), "error", err)
		return err
	}
	if !outcome.OK {
		c.logger.Debug("set rejected",
			"module", module, "param", param, "reason", outcome.Reason)
	}
	return outcome.Err()
}

// Stats queries the stats endpoint. The service identity is checked before
// the values are requested; one bad input fails the whole call.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	sess, err := c.dialer.Dial(ctx, c.statsEndpoint)
	if err != nil {
		return Stats{}, err
	}
	defer sess.Close()

	info, err := c.exchangeOne(ctx, sess, "info")
	if err != nil {
		return Stats{}, err
	}
	version, err := parseInfo(info)
	if err != nil {
		var ws *WrongServiceError
		if errors.As(err, &ws) {
			c.logger.Info("stats info service mismatch", "service", ws.Actual)
		} else {
			c.logger.Info("stats info reply rejected", "reply", truncate(info, 512), "error", err)
		}
		return Stats{}, err
	}

	values, err := c.exchangeOne(ctx, sess, "values")
	if err != nil {
		return Stats{}, err
	}
	inputs, err := parseValues(values)
	if err != nil {
		c.logger.Info("stats values reply rejected", "reply", truncate(values, 512), "error", err)
		return Stats{}, err
	}

	return Stats{Version: version, Inputs: inputs}, nil
}

// exchangeOne sends a single-frame command and requires a single-frame reply.
func (c *Client) exchangeOne(ctx context.Context, sess Session, command string) (string, error) {
	reply, err := sess.Exchange(ctx, command)
	if err != nil {
		return "", err
	}
	if len(reply) != 1 {
		c.logger.Info("multipart returned", "command", command, "frames", joinFrames(reply))
		return "", &FramingError{Frames: reply}
	}
	return reply[0], nil
}

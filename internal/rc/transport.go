package rc

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-zeromq/zmq4"
)

// Timeout bounds every exchange with the peer, including connection setup.
const Timeout = 2000 * time.Millisecond

var errSessionClosed = errors.New("rc: session closed")

// Session is one request/response conversation with the peer. At most one
// request may be outstanding. A Session is not safe for concurrent use and is
// never reused once closed.
type Session interface {
	// Exchange sends frames as a single multipart request and waits for the
	// reply, returned one string per frame.
	Exchange(ctx context.Context, frames ...string) ([]string, error)
	Close() error
}

// Dialer opens sessions to an endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Session, error)
}

// zmqDialer opens ZeroMQ REQ sockets.
type zmqDialer struct {
	timeout time.Duration
}

// NewZMQDialer returns the production Dialer, speaking ZeroMQ REQ/REP.
func NewZMQDialer() Dialer {
	return zmqDialer{timeout: Timeout}
}

func (d zmqDialer) Dial(ctx context.Context, endpoint string) (Session, error) {
	sctx, cancel := context.WithCancel(context.Background())
	sock := zmq4.NewReq(sctx, zmq4.WithDialerTimeout(d.timeout))
	s := &zmqSession{sock: sock, cancel: cancel, endpoint: endpoint, timeout: d.timeout}

	// zmq4 retries the TCP connect synchronously, so the connect is bounded
	// the same way as a reply.
	done := make(chan error, 1)
	go func() { done <- sock.Dial(endpoint) }()

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("rc: dial %s: %w", endpoint, err)
		}
		return s, nil
	case <-timer.C:
		_ = s.Close()
		return nil, fmt.Errorf("%w: dial %s", ErrTimeout, endpoint)
	case <-ctx.Done():
		_ = s.Close()
		return nil, ctx.Err()
	}
}

type zmqSession struct {
	sock     zmq4.Socket
	cancel   context.CancelFunc
	endpoint string
	timeout  time.Duration
	closed   bool
}

type exchangeResult struct {
	msg zmq4.Msg
	err error
}

func (s *zmqSession) Exchange(ctx context.Context, frames ...string) ([]string, error) {
	if s.closed {
		return nil, errSessionClosed
	}

	parts := make([][]byte, len(frames))
	for i, f := range frames {
		parts[i] = []byte(f)
	}

	done := make(chan exchangeResult, 1)
	go func() {
		if err := s.sock.Send(zmq4.NewMsgFrom(parts...)); err != nil {
			done <- exchangeResult{err: fmt.Errorf("send: %w", err)}
			return
		}
		msg, err := s.sock.Recv()
		done <- exchangeResult{msg: msg, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("rc: exchange with %s: %w", s.endpoint, r.err)
		}
		return decodeFrames(r.msg.Frames)
	case <-timer.C:
		// The REQ state machine is stuck waiting for a reply that may never
		// come, so the socket is discarded.
		_ = s.Close()
		return nil, fmt.Errorf("%w: %s", ErrTimeout, s.endpoint)
	case <-ctx.Done():
		_ = s.Close()
		return nil, ctx.Err()
	}
}

func (s *zmqSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.sock.Close()
	s.cancel()
	return err
}

func decodeFrames(raw [][]byte) ([]string, error) {
	frames := make([]string, len(raw))
	for i, b := range raw {
		if !utf8.Valid(b) {
			return nil, malformed(fmt.Sprintf("frame %d", i), errors.New("invalid UTF-8"))
		}
		frames[i] = string(b)
	}
	return frames, nil
}

package rc

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// fakePeer scripts replies per endpoint and command and records every
// request. A nil reply simulates a timeout.
type fakePeer struct {
	mu       sync.Mutex
	replies  map[string][]string
	requests [][]string
	dialed   []string
	open     int
}

func newFakePeer() *fakePeer {
	return &fakePeer{replies: map[string][]string{}}
}

func (p *fakePeer) reply(endpoint, command string, frames ...string) *fakePeer {
	p.replies[endpoint+" "+command] = frames
	return p
}

func (p *fakePeer) Dial(_ context.Context, endpoint string) (Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialed = append(p.dialed, endpoint)
	p.open++
	return &fakeSession{peer: p, endpoint: endpoint}, nil
}

func (p *fakePeer) openSessions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

type fakeSession struct {
	peer     *fakePeer
	endpoint string
	closed   bool
}

func (s *fakeSession) Exchange(_ context.Context, frames ...string) ([]string, error) {
	if s.closed {
		return nil, errSessionClosed
	}
	s.peer.mu.Lock()
	defer s.peer.mu.Unlock()
	s.peer.requests = append(s.peer.requests, frames)

	reply, ok := s.peer.replies[s.endpoint+" "+frames[0]]
	if !ok {
		return nil, fmt.Errorf("fake peer: no reply scripted for %q on %s", strings.Join(frames, " "), s.endpoint)
	}
	if reply == nil {
		return nil, fmt.Errorf("%w: %s", ErrTimeout, s.endpoint)
	}
	return reply, nil
}

func (s *fakeSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.peer.mu.Lock()
	s.peer.open--
	s.peer.mu.Unlock()
	return nil
}

package report

import (
	"context"
	"sync"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
)

// Sessions tracks the build generation of every dashboard view. Starting a build
// for a view cancels the one in flight for the same view, and only the newest
// generation may commit its result.
type Sessions struct {
	mu    sync.Mutex
	views map[string]*viewState
}

type viewState struct {
	gen    uint64
	cancel context.CancelFunc
	latest *entity.Dashboard
}

func NewSessions() *Sessions {
	return &Sessions{views: make(map[string]*viewState)}
}

// Begin starts a new generation for view. The returned context is cancelled when a
// newer generation begins or when release is called.
func (s *Sessions) Begin(ctx context.Context, view string) (bctx context.Context, gen uint64, release func()) {
	s.mu.Lock()
	vs, ok := s.views[view]
	if !ok {
		vs = &viewState{}
		s.views[view] = vs
	}
	if vs.cancel != nil {
		vs.cancel()
	}
	vs.gen++
	gen = vs.gen
	bctx, cancel := context.WithCancel(ctx)
	vs.cancel = cancel
	s.mu.Unlock()

	release = func() {
		s.mu.Lock()
		if vs.gen == gen {
			vs.cancel = nil
		}
		s.mu.Unlock()
		cancel()
	}
	return bctx, gen, release
}

// Current reports whether gen is still the newest generation of view.
func (s *Sessions) Current(view string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.views[view]
	return ok && vs.gen == gen
}

// Commit stores d as the latest dashboard of view unless gen was superseded.
func (s *Sessions) Commit(view string, gen uint64, d *entity.Dashboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.views[view]
	if !ok || vs.gen != gen {
		return gerr.ErrSuperseded
	}
	vs.latest = d
	return nil
}

// Latest returns the last committed dashboard of view.
func (s *Sessions) Latest(view string) (*entity.Dashboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.views[view]
	if !ok || vs.latest == nil {
		return nil, false
	}
	return vs.latest, true
}

// Package session holds the per-page interaction state machine: the
// mobile menu, the theme flag and the transient "copied" feedback.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/clipboard"
)

// CopiedFor is how long the copied flag stays set after a successful copy.
const CopiedFor = 2 * time.Second

// UIState is the transient state of one page session.
type UIState struct {
	ThemeDark bool `json:"theme_dark"`
	MenuOpen  bool `json:"menu_open"`
	Copied    bool `json:"copied"`
}

// InitialState is the state a freshly mounted page starts in.
func InitialState() UIState {
	return UIState{ThemeDark: true}
}

// Options configures a Session.
type Options struct {
	// Text is what the copy gesture puts on the clipboard.
	Text   string
	Copier *clipboard.Copier
	Clock  Clock
	Logger *zap.Logger
	// Light starts the session in the light theme.
	Light bool
	// OnChange is called with the new state after every transition,
	// outside the session lock.
	OnChange func(UIState)
}

// Session owns one UIState and the timer that clears the copied flag.
// Handlers may be called from any goroutine.
type Session struct {
	text     string
	copier   *clipboard.Copier
	clock    Clock
	log      *zap.Logger
	onChange func(UIState)

	mu     sync.Mutex
	state  UIState
	reset  Timer
	gen    uint64
	closed bool
}

// New mounts a session in the initial state.
func New(opts Options) *Session {
	s := &Session{
		text:     opts.Text,
		copier:   opts.Copier,
		clock:    opts.Clock,
		log:      opts.Logger,
		onChange: opts.OnChange,
		state:    InitialState(),
	}
	if opts.Light {
		s.state.ThemeDark = false
	}
	if s.clock == nil {
		s.clock = RealClock
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.copier == nil {
		s.copier = clipboard.NewCopier(nil, nil, s.log)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Session) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ToggleMenu flips the mobile menu.
func (s *Session) ToggleMenu() UIState {
	return s.update(func(st *UIState) bool {
		st.MenuOpen = !st.MenuOpen
		return true
	})
}

// Navigate records activation of a navigation link. Any link closes an
// open mobile menu.
func (s *Session) Navigate(anchor string) UIState {
	s.log.Debug("Navigate", zap.String("anchor", anchor))
	return s.update(func(st *UIState) bool {
		if !st.MenuOpen {
			return false
		}
		st.MenuOpen = false
		return true
	})
}

// ToggleTheme flips between dark and light.
func (s *Session) ToggleTheme() UIState {
	return s.update(func(st *UIState) bool {
		st.ThemeDark = !st.ThemeDark
		return true
	})
}

// Copy puts the session text on the clipboard. On success the copied flag
// is set and its reset is (re)scheduled CopiedFor from now. On total
// failure the state is left alone.
func (s *Session) Copy(ctx context.Context) clipboard.Result {
	res := s.copier.Copy(ctx, s.text)
	if !res.Copied() {
		return res
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return res
	}
	if s.reset != nil {
		s.reset.Stop()
	}
	s.gen++
	gen := s.gen
	s.reset = s.clock.AfterFunc(CopiedFor, func() { s.clearCopied(gen) })
	changed := !s.state.Copied
	s.state.Copied = true
	st := s.state
	s.mu.Unlock()

	s.log.Debug("Copied", zap.Stringer("outcome", res.Outcome))
	if changed {
		s.notify(st)
	}
	return res
}

func (s *Session) clearCopied(gen uint64) {
	s.mu.Lock()
	// A superseded timer that fired before Stop took effect is ignored.
	if gen != s.gen || s.closed || !s.state.Copied {
		s.mu.Unlock()
		return
	}
	s.state.Copied = false
	s.reset = nil
	st := s.state
	s.mu.Unlock()
	s.notify(st)
}

// Close unmounts the session: the pending reset is cancelled and later
// transitions are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.reset != nil {
		s.reset.Stop()
		s.reset = nil
	}
}

func (s *Session) update(fn func(*UIState) bool) UIState {
	s.mu.Lock()
	if s.closed {
		st := s.state
		s.mu.Unlock()
		return st
	}
	changed := fn(&s.state)
	st := s.state
	s.mu.Unlock()
	if changed {
		s.notify(st)
	}
	return st
}

func (s *Session) notify(st UIState) {
	if s.onChange != nil {
		s.onChange(st)
	}
}

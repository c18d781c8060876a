package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/textflux/textflux-site/internal/clipboard"
)

const installCmd = "npm install react-textflux"

// manualClock fires callbacks only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Advance moves time forward by d and runs every timer that came due.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

func (c *manualClock) active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeBoard struct {
	primaryErr  error
	fallbackErr error
	contents    string
}

func (f *fakeBoard) WriteText(_ context.Context, text string) error {
	if f.primaryErr != nil {
		return f.primaryErr
	}
	f.contents = text
	return nil
}

func (f *fakeBoard) CopySelection(text string) error {
	if f.fallbackErr != nil {
		return f.fallbackErr
	}
	f.contents = text
	return nil
}

func newTestSession(board *fakeBoard) (*Session, *manualClock, *[]UIState) {
	clock := &manualClock{}
	var changes []UIState
	s := New(Options{
		Text:     installCmd,
		Copier:   clipboard.NewCopier(board, board, nil),
		Clock:    clock,
		OnChange: func(st UIState) { changes = append(changes, st) },
	})
	return s, clock, &changes
}

func TestInitialState(t *testing.T) {
	s := New(Options{})
	want := UIState{ThemeDark: true, MenuOpen: false, Copied: false}
	if got := s.State(); got != want {
		t.Errorf("state = %+v, want %+v", got, want)
	}
}

func TestInitialStateLight(t *testing.T) {
	s := New(Options{Light: true})
	if s.State().ThemeDark {
		t.Error("Light option should start in the light theme")
	}
}

func TestCopyPrimarySucceeds(t *testing.T) {
	board := &fakeBoard{}
	s, clock, _ := newTestSession(board)

	res := s.Copy(context.Background())
	if res.Outcome != clipboard.Succeeded {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if board.contents != installCmd {
		t.Errorf("clipboard = %q", board.contents)
	}
	if !s.State().Copied {
		t.Fatal("copied flag should be set immediately")
	}

	clock.Advance(1999 * time.Millisecond)
	if !s.State().Copied {
		t.Fatal("copied flag cleared too early")
	}
	clock.Advance(time.Millisecond)
	if s.State().Copied {
		t.Fatal("copied flag should clear after 2000ms")
	}
}

func TestCopyFallbackSucceeds(t *testing.T) {
	board := &fakeBoard{primaryErr: clipboard.ErrUnavailable}
	s, clock, _ := newTestSession(board)

	res := s.Copy(context.Background())
	if res.Outcome != clipboard.FallbackSucceeded {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if board.contents != installCmd {
		t.Errorf("clipboard = %q", board.contents)
	}
	if !s.State().Copied {
		t.Fatal("copied flag should be set")
	}
	clock.Advance(CopiedFor)
	if s.State().Copied {
		t.Fatal("copied flag should clear")
	}
}

func TestCopyBothFail(t *testing.T) {
	board := &fakeBoard{primaryErr: errors.New("denied"), fallbackErr: errors.New("no selection")}
	s, clock, changes := newTestSession(board)

	res := s.Copy(context.Background())
	if res.Outcome != clipboard.Failed {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if s.State().Copied {
		t.Fatal("copied flag must stay false on total failure")
	}
	if clock.active() != 0 {
		t.Error("no reset timer should be scheduled")
	}
	if len(*changes) != 0 {
		t.Errorf("unexpected transitions: %+v", *changes)
	}
}

func TestCopyRestartsTimer(t *testing.T) {
	s, clock, changes := newTestSession(&fakeBoard{})

	s.Copy(context.Background())
	clock.Advance(1500 * time.Millisecond)
	s.Copy(context.Background())

	if clock.active() != 1 {
		t.Fatalf("active timers = %d, want 1 (previous must be cancelled)", clock.active())
	}

	// 2000ms after the first activation the flag is still set.
	clock.Advance(500 * time.Millisecond)
	if !s.State().Copied {
		t.Fatal("second activation should restart the window")
	}
	clock.Advance(1499 * time.Millisecond)
	if !s.State().Copied {
		t.Fatal("cleared before 2000ms after the second activation")
	}
	clock.Advance(time.Millisecond)
	if s.State().Copied {
		t.Fatal("should clear 2000ms after the second activation")
	}

	// One transition to true and one back to false.
	if len(*changes) != 2 || !(*changes)[0].Copied || (*changes)[1].Copied {
		t.Errorf("transitions = %+v", *changes)
	}
}

func TestStaleTimerCallbackIgnored(t *testing.T) {
	s, _, _ := newTestSession(&fakeBoard{})
	s.Copy(context.Background())
	s.Copy(context.Background())

	// A callback from the first generation that was already in flight.
	s.clearCopied(1)
	if !s.State().Copied {
		t.Fatal("stale reset must not clear the flag")
	}
	s.clearCopied(2)
	if s.State().Copied {
		t.Fatal("current reset should clear the flag")
	}
}

func TestToggleMenuTwiceRestores(t *testing.T) {
	s := New(Options{})
	orig := s.State().MenuOpen
	s.ToggleMenu()
	if s.State().MenuOpen == orig {
		t.Fatal("toggle should flip the menu")
	}
	s.ToggleMenu()
	if s.State().MenuOpen != orig {
		t.Fatal("double toggle should restore the menu")
	}
}

func TestNavigateClosesMenu(t *testing.T) {
	for _, anchor := range []string{"#features", "#usage", "#customization", "#installation", "#react-native"} {
		s := New(Options{})
		s.ToggleMenu()
		if st := s.Navigate(anchor); st.MenuOpen {
			t.Errorf("%s: menu still open", anchor)
		}
	}
}

func TestNavigateWithMenuClosedIsNoop(t *testing.T) {
	var calls int
	s := New(Options{OnChange: func(UIState) { calls++ }})
	s.Navigate("#usage")
	if s.State().MenuOpen {
		t.Error("menu should stay closed")
	}
	if calls != 0 {
		t.Errorf("no transition expected, got %d", calls)
	}
}

func TestTogglesIndependentOfCopy(t *testing.T) {
	s, clock, _ := newTestSession(&fakeBoard{})
	s.Copy(context.Background())
	s.ToggleMenu()
	s.ToggleTheme()
	s.Navigate("#usage")

	st := s.State()
	if !st.Copied {
		t.Error("toggles must not clear the copied flag")
	}
	if st.ThemeDark {
		t.Error("theme should be light after one toggle")
	}
	clock.Advance(CopiedFor)
	st = s.State()
	if st.Copied || st.ThemeDark || st.MenuOpen {
		t.Errorf("state = %+v", st)
	}
}

func TestCloseCancelsReset(t *testing.T) {
	s, clock, _ := newTestSession(&fakeBoard{})
	s.Copy(context.Background())
	s.Close()
	if clock.active() != 0 {
		t.Error("close should cancel the pending reset")
	}
	s.ToggleMenu()
	if s.State().MenuOpen {
		t.Error("closed session should ignore gestures")
	}
}

func TestCopyWithRealClock(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the wall-clock reset")
	}
	board := &fakeBoard{}
	cleared := make(chan time.Time, 1)
	s := New(Options{
		Text:   installCmd,
		Copier: clipboard.NewCopier(board, board, nil),
		OnChange: func(st UIState) {
			if !st.Copied {
				cleared <- time.Now()
			}
		},
	})
	defer s.Close()

	start := time.Now()
	s.Copy(context.Background())
	select {
	case at := <-cleared:
		if d := at.Sub(start); d < 1900*time.Millisecond || d > 2100*time.Millisecond {
			t.Errorf("cleared after %v, want ~2s", d)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("copied flag never cleared")
	}
}

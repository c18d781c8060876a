package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/session"
	"github.com/textflux/textflux-site/internal/site"
)

var (
	// ErrRequestTimeout is returned when the browser does not answer a
	// clipboard request in time.
	ErrRequestTimeout = errors.New("clipboard request timed out")
	// ErrClosed is returned for requests on a closed connection.
	ErrClosed = errors.New("connection closed")
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Conn is one browser connection. It serializes writes and implements the
// browser clipboard as clipboard.Writer and clipboard.SelectionCopier by
// asking the page to perform the copy and waiting for its answer.
type Conn struct {
	ws      *websocket.Conn
	log     *zap.Logger
	timeout time.Duration
	ctx     context.Context

	writeMu sync.Mutex

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan error

	pushMu sync.Mutex
	last   session.UIState

	closeOnce sync.Once
	closed    chan struct{}
}

func newConn(ctx context.Context, ws *websocket.Conn, timeout time.Duration, log *zap.Logger) *Conn {
	return &Conn{
		ws:      ws,
		log:     log,
		timeout: timeout,
		ctx:     ctx,
		pending: make(map[uint64]chan error),
		closed:  make(chan struct{}),
	}
}

// Send writes one message to the browser.
func (c *Conn) Send(msg ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(msg)
}

func (c *Conn) sendError(text string) {
	if err := c.Send(ServerMessage{Type: MsgError, Error: text}); err != nil {
		c.log.Debug("Websocket write failed", zap.Error(err))
	}
}

// WriteText asks the page to write text with the asynchronous clipboard API.
func (c *Conn) WriteText(ctx context.Context, text string) error {
	return c.request(ctx, ModeWrite, text)
}

// CopySelection asks the page to copy text through a transient selection.
func (c *Conn) CopySelection(text string) error {
	return c.request(c.ctx, ModeSelect, text)
}

func (c *Conn) request(ctx context.Context, mode, text string) error {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	ch := make(chan error, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.Send(ServerMessage{Type: MsgClipboard, ID: id, Mode: mode, Text: text}); err != nil {
		return fmt.Errorf("sending clipboard request: %w", err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case err := <-ch:
		return err
	case <-timer.C:
		return ErrRequestTimeout
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return ErrClosed
	}
}

// resolve completes the request with the given id. Unknown ids belong to
// requests that already timed out and are dropped.
func (c *Conn) resolve(msg ClientMessage) {
	c.mu.Lock()
	ch, ok := c.pending[msg.ID]
	c.mu.Unlock()
	if !ok {
		c.log.Debug("Late clipboard result", zap.Uint64("id", msg.ID))
		return
	}
	var err error
	if !msg.OK {
		reason := msg.Error
		if reason == "" {
			reason = "rejected"
		}
		err = fmt.Errorf("browser clipboard: %s", reason)
	}
	select {
	case ch <- err:
	default:
	}
}

// push sends the fragments that differ between the last pushed state and
// the session's current one. Reading the current state under pushMu keeps
// pushes from concurrent transitions in order.
func (c *Conn) push(r *site.Renderer, sess *session.Session) {
	c.pushMu.Lock()
	defer c.pushMu.Unlock()

	st := sess.State()
	prev := c.last
	c.last = st

	var targets []string
	if st.MenuOpen != prev.MenuOpen {
		targets = append(targets, site.FragmentHeader)
	}
	if st.Copied != prev.Copied || st.ThemeDark != prev.ThemeDark {
		targets = append(targets, site.FragmentInstallation)
	}
	if st.ThemeDark != prev.ThemeDark {
		targets = append(targets, site.FragmentUsage)
	}

	for _, id := range targets {
		html, err := r.Fragment(id, st)
		if err != nil {
			c.log.Error("Failed to render fragment", zap.String("target", id), zap.Error(err))
			continue
		}
		if err := c.Send(ServerMessage{Type: MsgPatch, Target: id, HTML: string(html)}); err != nil {
			c.log.Debug("Websocket write failed", zap.Error(err))
			return
		}
	}
	if st.ThemeDark != prev.ThemeDark {
		if err := c.Send(ServerMessage{Type: MsgState, State: &st}); err != nil {
			c.log.Debug("Websocket write failed", zap.Error(err))
		}
	}
}

func (c *Conn) keepAlive() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *Conn) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.writeMu.Lock()
		_ = c.ws.Close()
		c.writeMu.Unlock()
	})
}

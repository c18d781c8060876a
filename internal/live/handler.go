package live

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/textflux/textflux-site/internal/clipboard"
	"github.com/textflux/textflux-site/internal/session"
	"github.com/textflux/textflux-site/internal/site"
)

// DefaultClipboardTimeout bounds how long a clipboard request waits for
// the browser.
const DefaultClipboardTimeout = 3 * time.Second

// Options configures a Handler.
type Options struct {
	// Renderer returns the current page renderer. It is called once per
	// connection, so a reloaded renderer applies to new connections.
	Renderer         func() *site.Renderer
	Light            bool
	ClipboardTimeout time.Duration
	Clock            session.Clock
	Logger           *zap.Logger
	// CheckOrigin overrides the upgrader's same-origin check.
	CheckOrigin func(r *http.Request) bool
}

// Handler upgrades requests to websockets and binds one session to each
// connection.
type Handler struct {
	opts     Options
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*Conn
}

// NewHandler creates a Handler.
func NewHandler(opts Options) *Handler {
	if opts.ClipboardTimeout <= 0 {
		opts.ClipboardTimeout = DefaultClipboardTimeout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		opts: opts,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: opts.CheckOrigin,
		},
		conns: make(map[string]*Conn),
	}
}

// Sessions returns the number of open sessions.
func (h *Handler) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every open session.
func (h *Handler) Close() {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()
	for _, c := range conns {
		c.close()
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	renderer := h.opts.Renderer()
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	log := h.log.With(zap.String("session", id))
	ctx, cancel := context.WithCancel(context.Background())

	c := newConn(ctx, ws, h.opts.ClipboardTimeout, log)
	var sess *session.Session
	sess = session.New(session.Options{
		Text:     renderer.Registry().InstallCommand,
		Copier:   clipboard.NewCopier(c, c, log),
		Clock:    h.opts.Clock,
		Logger:   log,
		Light:    h.opts.Light,
		OnChange: func(session.UIState) { c.push(renderer, sess) },
	})

	h.mu.Lock()
	h.conns[id] = c
	h.mu.Unlock()
	log.Info("Session opened", zap.String("remote", r.RemoteAddr))

	var copies sync.WaitGroup
	defer func() {
		cancel()
		c.close()
		copies.Wait()
		sess.Close()
		h.mu.Lock()
		delete(h.conns, id)
		h.mu.Unlock()
		log.Info("Session closed")
	}()

	st := sess.State()
	c.last = st
	if err := c.Send(ServerMessage{Type: MsgState, State: &st}); err != nil {
		return
	}

	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	go c.keepAlive()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Websocket read failed", zap.Error(err))
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("invalid message format")
			continue
		}

		switch msg.Type {
		case MsgToggleMenu:
			sess.ToggleMenu()
		case MsgNavigate:
			sess.Navigate(msg.Anchor)
		case MsgToggleTheme:
			sess.ToggleTheme()
		case MsgCopy:
			// Copies wait on clipboard replies read by this loop.
			copies.Add(1)
			go func() {
				defer copies.Done()
				sess.Copy(ctx)
			}()
		case MsgClipboardResult:
			c.resolve(msg)
		default:
			c.sendError("unknown message type: " + msg.Type)
		}
	}
}

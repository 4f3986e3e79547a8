package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

var errUnknownMessage = errors.New("gallery: unknown message type")

// Session is one mounted story driven by one websocket connection. Each
// session has its own store, so sessions never share state.
type Session struct {
	ID    string
	Story stories.Story

	server  *Server
	conn    *websocket.Conn
	logger  *slog.Logger
	root    *reactive.Root
	actions *stories.Actions

	closeOnce sync.Once
}

func (s *Server) newSession(conn *websocket.Conn, story stories.Story) *Session {
	id := uuid.NewString()
	sess := &Session{
		ID:     id,
		Story:  story,
		server: s,
		conn:   conn,
		logger: s.logger.With("session_id", id, "story", story.ID),
	}
	sess.mount()
	return sess
}

// mount builds a fresh store and root for the story.
func (sess *Session) mount() {
	var storeOpts []atom.Option
	rootOpts := []reactive.RootOption{reactive.WithLogger(sess.logger)}
	if m := sess.server.metrics; m != nil {
		storeOpts = append(storeOpts, atom.WithObserver(m))
		rootOpts = append(rootOpts, reactive.WithObserver(m))
	}

	comp, actions := sess.Story.Mount(sess.logger)
	sess.actions = actions
	sess.root = reactive.NewRoot(atom.NewStore(storeOpts...), comp, rootOpts...)
	sess.root.Mount()
}

// readLoop handles messages until the connection closes.
func (sess *Session) readLoop(ctx context.Context) {
	defer sess.Close()

	if err := sess.send(sess.renderMessage()); err != nil {
		sess.logger.Error("initial render send failed", "error", err)
		return
	}

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				sess.logger.Error("read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.logger.Warn("invalid message", "error", err)
			if err := sess.send(sess.errorMessage(fmt.Errorf("invalid message: %w", err))); err != nil {
				return
			}
			continue
		}

		var reply ServerMessage
		if err := sess.handle(ctx, msg); err != nil {
			reply = sess.errorMessage(err)
		} else {
			reply = sess.renderMessage()
		}
		if err := sess.send(reply); err != nil {
			sess.logger.Error("send failed", "error", err)
			return
		}
	}
}

// handle applies one client message inside a span.
func (sess *Session) handle(ctx context.Context, msg ClientMessage) error {
	_, span := sess.server.tracer.Start(ctx, "gallery."+msg.Type,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("headless.session_id", sess.ID),
			attribute.String("headless.story", sess.Story.ID),
			attribute.String("headless.event_type", msg.Type),
			attribute.String("headless.event_target", msg.HID),
		),
	)
	defer span.End()

	err := sess.apply(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		sess.logger.Warn("event failed", "type", msg.Type, "hid", msg.HID, "error", err)
		return err
	}
	span.SetStatus(codes.Ok, "")
	sess.logger.Debug("event", "type", msg.Type, "hid", msg.HID, "key", msg.Key)
	return nil
}

func (sess *Session) apply(msg ClientMessage) error {
	switch msg.Type {
	case MsgClick, MsgMouseEnter, MsgMouseLeave:
		return sess.root.Dispatch(msg.HID, vdom.Event{Type: msg.Type})
	case MsgKeyDown:
		ev := vdom.Event{Type: msg.Type, Key: msg.Key}
		if msg.HID != "" {
			if err := sess.root.Dispatch(msg.HID, ev); err != nil {
				return err
			}
		}
		sess.root.DispatchDocument(ev)
		return nil
	case MsgReset:
		sess.root.Unmount()
		sess.mount()
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownMessage, msg.Type)
	}
}

func (sess *Session) renderMessage() ServerMessage {
	html, err := sess.server.renderer.RenderToString(sess.root.Tree())
	if err != nil {
		return sess.errorMessage(err)
	}
	return ServerMessage{
		Type:    MsgRender,
		Session: sess.ID,
		HTML:    html,
		Actions: actionsJSON(sess.actions.Entries()),
	}
}

func (sess *Session) errorMessage(err error) ServerMessage {
	return ServerMessage{Type: MsgError, Session: sess.ID, Error: err.Error()}
}

func (sess *Session) send(msg ServerMessage) error {
	sess.conn.SetWriteDeadline(time.Now().Add(sess.server.config.WriteTimeout))
	return sess.conn.WriteJSON(msg)
}

// Close unmounts the story and closes the connection. It is safe to call
// more than once.
func (sess *Session) Close() {
	sess.closeOnce.Do(func() {
		sess.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		sess.conn.Close()
		sess.root.Unmount()
		sess.server.sessions.remove(sess)
		sess.logger.Info("session closed")
	})
}

// sessionManager tracks open sessions.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	server   *Server
}

func (m *sessionManager) add(sess *Session) {
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	count := len(m.sessions)
	m.mu.Unlock()

	if m.server.metrics != nil {
		m.server.metrics.SessionOpened()
	}
	sess.logger.Info("session created", "active_sessions", count)
}

func (m *sessionManager) remove(sess *Session) {
	m.mu.Lock()
	_, ok := m.sessions[sess.ID]
	delete(m.sessions, sess.ID)
	m.mu.Unlock()

	if ok && m.server.metrics != nil {
		m.server.metrics.SessionClosed()
	}
}

// get returns the open session with id.
func (m *sessionManager) get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *sessionManager) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *sessionManager) closeAll() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		all = append(all, sess)
	}
	m.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ctchen222/BoardGameKit/internal/api/response"
	"ctchen222/BoardGameKit/internal/display"
	"ctchen222/BoardGameKit/internal/validator"
	"ctchen222/BoardGameKit/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	heartbeatInterval = 10 * time.Second
	writeWait         = 5 * time.Second
)

// client serializes writes to one websocket connection.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) writeJSON(v any) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if err := cl.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return cl.conn.WriteJSON(v)
}

func (cl *client) ping() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// handleWebSocket pushes the screen to the browser after every change and
// dispatches the event frames it sends back.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket")
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	id, updates, cancel := s.screen.Subscribe()
	cl := &client{id: id, conn: conn}
	span.SetAttributes(attribute.String("client.id", id))
	slog.InfoContext(ctx, "Client connected", "client.id", id, "clients", s.screen.SubscriberCount())

	if err := cl.writeJSON(s.controller.Message()); err != nil {
		slog.WarnContext(ctx, "Failed to send initial screen", "client.id", id, "error", err)
		cancel()
		conn.Close()
		return
	}

	done := make(chan struct{})
	go s.writePump(cl, updates, done)

	s.readPump(ctx, cl)

	cancel()
	<-done
	conn.Close()
	slog.InfoContext(ctx, "Client disconnected", "client.id", id)
}

// writePump forwards screen updates and heartbeats until the subscription closes.
func (s *Server) writePump(cl *client, updates <-chan display.Snapshot, done chan<- struct{}) {
	defer close(done)
	pingTicker := time.NewTicker(heartbeatInterval)
	defer pingTicker.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := cl.writeJSON(s.controller.MessageFor(snap)); err != nil {
				slog.Warn("Failed to push screen to client", "client.id", cl.id, "error", err)
				cl.conn.Close()
				drain(updates)
				return
			}
		case <-pingTicker.C:
			if err := cl.ping(); err != nil {
				slog.Warn("Failed to send ping to client, assuming disconnect", "client.id", cl.id, "error", err)
				cl.conn.Close()
				drain(updates)
				return
			}
		}
	}
}

// readPump dispatches event frames until the connection fails.
func (s *Server) readPump(ctx context.Context, cl *client) {
	for {
		_, msg, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Client connection error", "client.id", cl.id, "error", err)
			}
			return
		}
		s.handleFrame(ctx, cl, msg)
	}
}

func (s *Server) handleFrame(ctx context.Context, cl *client, msg []byte) {
	ctx, span := tracer.Start(ctx, "server.handleFrame", trace.WithAttributes(
		attribute.String("client.id", cl.id),
	))
	defer span.End()

	fail := func(code int, err error) {
		slog.WarnContext(ctx, "invalid event from client", "client.id", cl.id, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid event")
		if werr := cl.writeJSON(response.NewError(false, code, err.Error())); werr != nil {
			slog.WarnContext(ctx, "Failed to send error to client", "client.id", cl.id, "error", werr)
		}
	}

	var req proto.ClientEvent
	if err := json.Unmarshal(msg, &req); err != nil {
		fail(http.StatusBadRequest, err)
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		fail(http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("event.kind", req.Type))

	ev, err := req.ToEvent()
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.Dispatch(ctx, ev); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fail(response.StatusFor(err), err)
	}
}

func drain(updates <-chan display.Snapshot) {
	for range updates {
	}
}

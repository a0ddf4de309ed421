package server

import (
	"log/slog"
	"net/http"
	"time"

	"ctchen222/BoardGameKit/internal/api/controller"
	"ctchen222/BoardGameKit/internal/display"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Subscriber streams display changes.
type Subscriber interface {
	Subscribe() (string, <-chan display.Snapshot, func())
	SubscriberCount() int
}

type Server struct {
	engine     *gin.Engine
	controller *controller.ScreenController
	dispatcher controller.Dispatcher
	screen     Subscriber
	upgrader   websocket.Upgrader
	webDir     string
}

// NewServer wires the HTTP routes. An empty webDir disables static files.
func NewServer(ctrl *controller.ScreenController, dispatcher controller.Dispatcher, screen Subscriber, webDir string) *Server {
	s := &Server{
		engine:     gin.New(),
		controller: ctrl,
		dispatcher: dispatcher,
		screen:     screen,
		// A nil CheckOrigin keeps gorilla's same-origin check, so other sites
		// cannot drive the session.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		webDir: webDir,
	}
	s.registerHandlers()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers() {
	s.engine.Use(gin.Recovery(), requestLogger())

	api := s.engine.Group("/api")
	api.GET("/screen", s.controller.GetScreen)
	api.GET("/games", s.controller.ListGames)
	api.POST("/events", s.controller.PostEvent)

	s.engine.GET("/ws", s.handleWebSocket)

	if s.webDir != "" {
		s.engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.webDir))))
	}
}

// requestLogger traces and logs every request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "server."+c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		slog.DebugContext(ctx, "http request",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status_code", status,
			"duration", time.Since(start),
		)
	}
}

package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/loomhq/loom/pkg/config"
	"github.com/loomhq/loom/pkg/database"
	"github.com/loomhq/loom/pkg/events"
	"github.com/loomhq/loom/pkg/orchestrator"
	"github.com/loomhq/loom/pkg/services"
)

// Server is the HTTP surface: turn streaming, session and history reads,
// the dashboard WebSocket and health.
type Server struct {
	cfg             *config.Config
	dbClient        *database.Client
	sessionService  *services.SessionService
	messageService  *services.MessageService
	snapshotService *services.SnapshotService
	executor        *orchestrator.TurnExecutor
	connManager     *events.ConnectionManager

	httpServer *http.Server
}

// NewServer wires the API server. The executor and connection manager may
// be nil in read-only deployments; their endpoints then return 503.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	sessionService *services.SessionService,
	messageService *services.MessageService,
	snapshotService *services.SnapshotService,
	executor *orchestrator.TurnExecutor,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:             cfg,
		dbClient:        dbClient,
		sessionService:  sessionService,
		messageService:  messageService,
		snapshotService: snapshotService,
		executor:        executor,
		connManager:     connManager,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)

	s.httpServer = &http.Server{
		Handler: e,
		// Turn streams are long-lived: no write timeout. Reads are small
		// JSON bodies.
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)
	v1.POST("/sessions/:id/cancel", s.cancelTurnHandler)

	v1.POST("/sessions/:id/turns", s.turnHandler)
	v1.GET("/sessions/:id/messages", s.listMessagesHandler)

	v1.GET("/sessions/:id/branches", s.listBranchesHandler)
	v1.GET("/sessions/:id/branches/:branch/snapshots", s.listSnapshotsHandler)
	v1.GET("/sessions/:id/messages/:messageId/branches", s.branchFamilyHandler)
	v1.GET("/snapshots/:id", s.getSnapshotHandler)
}

// Start begins serving on addr. Blocks until the listener fails or the
// server is shut down.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

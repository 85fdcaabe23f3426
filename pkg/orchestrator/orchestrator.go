// Package orchestrator runs conversation turns: it places the turn on a
// branch, drives the reasoning engine through its tool rounds, resolves the
// merge against the document on screen, commits the snapshot and streams
// every step to the waiting client.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/pkg/decision"
	"github.com/loomhq/loom/pkg/events"
	"github.com/loomhq/loom/pkg/history"
	"github.com/loomhq/loom/pkg/merge"
	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/reason"
)

var (
	// ErrTurnActive means the session already has a turn in flight.
	ErrTurnActive = errors.New("a turn is already running for this session")

	// ErrShuttingDown rejects new turns once Stop has been called.
	ErrShuttingDown = errors.New("executor is shutting down")

	// ErrAtCapacity means the global in-flight turn cap is reached.
	ErrAtCapacity = errors.New("too many turns in flight")
)

// maxDecisionRounds bounds the Decide/tool-call loop per turn. The engine
// normally converges in one or two rounds; past this it is looping.
const maxDecisionRounds = 4

// Sink receives stream events for the client. Satisfied by stream.Writer.
type Sink interface {
	Send(payload any) error
}

// Invoker executes one business-system call. Satisfied by erp.Client.
type Invoker interface {
	Invoke(ctx context.Context, call decision.APICall) (json.RawMessage, error)
}

// Publisher is the dashboard-event surface the executor uses. Satisfied by
// events.EventPublisher. All publishes are best-effort: a failed publish is
// logged, never propagated into the turn.
type Publisher interface {
	PublishTurnStarted(ctx context.Context, sessionID string, payload events.TurnStartedPayload) error
	PublishTurnCompleted(ctx context.Context, sessionID string, payload events.TurnCompletedPayload) error
	PublishTurnFailed(ctx context.Context, sessionID string, payload events.TurnFailedPayload) error
	PublishSnapshotCreated(ctx context.Context, sessionID string, payload events.SnapshotCreatedPayload) error
	PublishBranchForked(ctx context.Context, sessionID string, payload events.BranchForkedPayload) error
	PublishTitleUpdated(ctx context.Context, sessionID string, payload events.TitleUpdatedPayload) error
	PublishTurnProgress(ctx context.Context, sessionID string, payload events.TurnProgressPayload) error
}

// SessionStore is the slice of SessionService the executor needs.
type SessionStore interface {
	SetTitle(ctx context.Context, sessionID, title string) error
	TouchLastTurn(ctx context.Context, sessionID, podID string) error
}

// MessageStore is the slice of MessageService the executor needs.
type MessageStore interface {
	CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*ent.ChatMessage, error)
	ListMessages(ctx context.Context, sessionID string) ([]*ent.ChatMessage, error)
}

// TurnExecutorConfig tunes the executor.
type TurnExecutorConfig struct {
	TurnTimeout        time.Duration // hard bound per turn
	MaxConcurrentTurns int           // global in-flight cap
	PodID              string        // recorded on sessions this pod serves
}

// TurnInput carries everything the executor needs to run one turn.
type TurnInput struct {
	Session *ent.ConversationSession
	Request models.TurnRequest

	// NewSession marks a turn that created its conversation; the stream
	// then opens with a session event and closes with a generated title.
	NewSession bool
}

// TurnExecutor runs turns synchronously on the caller's goroutine (the SSE
// response streams on the request) while enforcing one turn per session and
// a global concurrency cap. Stop cancels in-flight turns and drains.
type TurnExecutor struct {
	cfg       TurnExecutorConfig
	history   *history.Engine
	reasoner  reason.Client
	invoker   Invoker
	resolver  *merge.Resolver
	sessions  SessionStore
	messages  MessageStore
	publisher Publisher
	catalog   string
	logger    *slog.Logger

	mu          sync.Mutex
	activeTurns map[string]context.CancelFunc // sessionID -> cancel
	wg          sync.WaitGroup
	stopped     bool
}

// NewTurnExecutor wires a turn executor. catalog is the rendered target
// catalog handed to the reasoning engine each round.
func NewTurnExecutor(
	cfg TurnExecutorConfig,
	hist *history.Engine,
	reasoner reason.Client,
	invoker Invoker,
	resolver *merge.Resolver,
	sessions SessionStore,
	messages MessageStore,
	publisher Publisher,
	catalog string,
	logger *slog.Logger,
) *TurnExecutor {
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = 5 * time.Minute
	}
	if cfg.MaxConcurrentTurns <= 0 {
		cfg.MaxConcurrentTurns = 32
	}
	return &TurnExecutor{
		cfg:         cfg,
		history:     hist,
		reasoner:    reasoner,
		invoker:     invoker,
		resolver:    resolver,
		sessions:    sessions,
		messages:    messages,
		publisher:   publisher,
		catalog:     catalog,
		logger:      logger.With("component", "orchestrator"),
		activeTurns: make(map[string]context.CancelFunc),
	}
}

// beginTurn registers the turn for cancellation and enforces the
// one-at-a-time and capacity constraints.
func (e *TurnExecutor) beginTurn(sessionID string, cancel context.CancelFunc) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrShuttingDown
	}
	if _, active := e.activeTurns[sessionID]; active {
		return ErrTurnActive
	}
	if len(e.activeTurns) >= e.cfg.MaxConcurrentTurns {
		return ErrAtCapacity
	}
	e.activeTurns[sessionID] = cancel
	e.wg.Add(1)
	return nil
}

func (e *TurnExecutor) endTurn(sessionID string) {
	e.mu.Lock()
	delete(e.activeTurns, sessionID)
	e.mu.Unlock()
	e.wg.Done()
}

// CancelTurn cancels the in-flight turn for a session, if any. The turn's
// stream terminates with an error event.
func (e *TurnExecutor) CancelTurn(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cancel, ok := e.activeTurns[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

// ActiveTurns returns the number of turns currently in flight.
func (e *TurnExecutor) ActiveTurns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.activeTurns)
}

// Stop rejects new turns, cancels the running ones and waits for them to
// drain. Safe to call more than once.
func (e *TurnExecutor) Stop() {
	e.mu.Lock()
	e.stopped = true
	for _, cancel := range e.activeTurns {
		cancel()
	}
	e.mu.Unlock()

	e.wg.Wait()
}

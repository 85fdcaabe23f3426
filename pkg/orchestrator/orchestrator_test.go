package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/pkg/decision"
	"github.com/loomhq/loom/pkg/events"
	"github.com/loomhq/loom/pkg/history"
	"github.com/loomhq/loom/pkg/merge"
	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/reason"
	"github.com/loomhq/loom/pkg/stream"
)

// scriptedReasoner returns canned decisions in order and records the
// inputs it was shown.
type scriptedReasoner struct {
	decisions []string
	title     string
	calls     int
	decideErr error
	inputs    []reason.TurnInput
}

func (r *scriptedReasoner) Decide(_ context.Context, input reason.TurnInput) (json.RawMessage, error) {
	r.inputs = append(r.inputs, input)
	if r.decideErr != nil {
		return nil, r.decideErr
	}
	if r.calls >= len(r.decisions) {
		return nil, fmt.Errorf("scripted reasoner ran out of decisions after %d calls", r.calls)
	}
	d := r.decisions[r.calls]
	r.calls++
	return []byte(d), nil
}

func (r *scriptedReasoner) GenerateTitle(_ context.Context, _ string) (string, error) {
	return r.title, nil
}

// mockInvoker serves canned data per target.
type mockInvoker struct {
	data map[string]string
	err  error
}

func (m *mockInvoker) Invoke(_ context.Context, call decision.APICall) (json.RawMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.data[call.TargetID]; ok {
		return []byte(d), nil
	}
	return []byte(`[]`), nil
}

// collectSink records every stream payload in order.
type collectSink struct {
	mu       sync.Mutex
	payloads []any
}

func (s *collectSink) Send(payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return nil
}

func (s *collectSink) types() []stream.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []stream.EventType
	for _, p := range s.payloads {
		switch v := p.(type) {
		case stream.SessionPayload:
			out = append(out, v.Type)
		case stream.ThinkingPayload:
			out = append(out, v.Type)
		case stream.ToolCallPayload:
			out = append(out, v.Type)
		case stream.DataPayload:
			out = append(out, v.Type)
		case stream.UIActionPayload:
			out = append(out, v.Type)
		case stream.SummaryMessagePayload:
			out = append(out, v.Type)
		case stream.UICompletePayload:
			out = append(out, v.Type)
		case stream.TextPayload:
			out = append(out, v.Type)
		case stream.TitleUpdatePayload:
			out = append(out, v.Type)
		case stream.DonePayload:
			out = append(out, v.Type)
		case stream.ErrorPayload:
			out = append(out, v.Type)
		}
	}
	return out
}

func (s *collectSink) find(t stream.EventType) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payloads {
		switch v := p.(type) {
		case stream.UIActionPayload:
			if v.Type == t {
				return v
			}
		case stream.UICompletePayload:
			if v.Type == t {
				return v
			}
		case stream.TextPayload:
			if v.Type == t {
				return v
			}
		case stream.ErrorPayload:
			if v.Type == t {
				return v
			}
		case stream.TitleUpdatePayload:
			if v.Type == t {
				return v
			}
		}
	}
	return nil
}

// recordingPublisher captures dashboard events.
type recordingPublisher struct {
	mu        sync.Mutex
	started   []events.TurnStartedPayload
	completed []events.TurnCompletedPayload
	failed    []events.TurnFailedPayload
	snapshots []events.SnapshotCreatedPayload
	forks     []events.BranchForkedPayload
	titles    []events.TitleUpdatedPayload
	progress  []events.TurnProgressPayload
}

func (p *recordingPublisher) PublishTurnStarted(_ context.Context, _ string, payload events.TurnStartedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, payload)
	return nil
}

func (p *recordingPublisher) PublishTurnCompleted(_ context.Context, _ string, payload events.TurnCompletedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = append(p.completed, payload)
	return nil
}

func (p *recordingPublisher) PublishTurnFailed(_ context.Context, _ string, payload events.TurnFailedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed = append(p.failed, payload)
	return nil
}

func (p *recordingPublisher) PublishSnapshotCreated(_ context.Context, _ string, payload events.SnapshotCreatedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, payload)
	return nil
}

func (p *recordingPublisher) PublishBranchForked(_ context.Context, _ string, payload events.BranchForkedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forks = append(p.forks, payload)
	return nil
}

func (p *recordingPublisher) PublishTitleUpdated(_ context.Context, _ string, payload events.TitleUpdatedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titles = append(p.titles, payload)
	return nil
}

func (p *recordingPublisher) PublishTurnProgress(_ context.Context, _ string, payload events.TurnProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, payload)
	return nil
}

// memMessages implements MessageStore in memory.
type memMessages struct {
	mu   sync.Mutex
	msgs []*ent.ChatMessage
	next int
}

func (m *memMessages) CreateMessage(_ context.Context, req models.CreateMessageRequest) (*ent.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	msg := &ent.ChatMessage{
		ID:        fmt.Sprintf("msg-%d", m.next),
		SessionID: req.SessionID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if req.Author != "" {
		msg.Author = &req.Author
	}
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

func (m *memMessages) ListMessages(_ context.Context, sessionID string) ([]*ent.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.ChatMessage
	for _, msg := range m.msgs {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// trackerSessions implements SessionStore, recording calls.
type trackerSessions struct {
	mu      sync.Mutex
	title   string
	touched int
}

func (s *trackerSessions) SetTitle(_ context.Context, _ string, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	return nil
}

func (s *trackerSessions) TouchLastTurn(_ context.Context, _ string, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched++
	return nil
}

type testHarness struct {
	executor  *TurnExecutor
	store     *history.MemStore
	sink      *collectSink
	publisher *recordingPublisher
	sessions  *trackerSessions
	messages  *memMessages
}

func newTestExecutor(t *testing.T, reasoner reason.Client, invoker Invoker) *testHarness {
	t.Helper()

	store := history.NewMemStore()
	store.EnsureSession("sess-1")
	engine := history.NewEngine(store, slog.Default())

	h := &testHarness{
		store:     store,
		sink:      &collectSink{},
		publisher: &recordingPublisher{},
		sessions:  &trackerSessions{},
		messages:  &memMessages{},
	}
	h.executor = NewTurnExecutor(
		TurnExecutorConfig{TurnTimeout: 30 * time.Second, MaxConcurrentTurns: 4, PodID: "pod-test"},
		engine,
		reasoner,
		invoker,
		merge.NewResolver(merge.DefaultConfig()),
		h.sessions,
		h.messages,
		h.publisher,
		"- demo_sales: sales data",
		slog.Default(),
	)
	return h
}

func testSession() *ent.ConversationSession {
	author := "alice"
	return &ent.ConversationSession{
		ID:           "sess-1",
		Author:       &author,
		ActiveBranch: models.MainBranch,
		CreatedAt:    time.Now(),
	}
}

const textDecision = `{"responseFormat":"text","textResponse":"Total revenue was 4.2M."}`

const uiDecisionWithCalls = `{
	"responseFormat": "ui",
	"layoutIntent": "extended",
	"textResponse": "Here's the revenue breakdown.",
	"apiCalls": [{"targetId": "demo_sales", "reason": "fetch revenue", "parameters": {"year": "2026"}}],
	"uiSpec": {"type": "bar_chart", "title": "Revenue by Region"}
}`

const uiDecisionFinal = `{
	"responseFormat": "ui",
	"layoutIntent": "extended",
	"textResponse": "Here's the revenue breakdown.",
	"uiSpec": {"type": "bar_chart", "title": "Revenue by Region"}
}`

func TestExecuteTurn_TextTurn(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "what was total revenue?"},
	}, h.sink)
	require.NoError(t, err)

	assert.Equal(t, []stream.EventType{
		stream.TypeThinking,
		stream.TypeText,
		stream.TypeDone,
	}, h.sink.types())

	text := h.sink.find(stream.TypeText).(stream.TextPayload)
	assert.Equal(t, "Total revenue was 4.2M.", text.Delta)

	// Text turns commit nothing.
	snaps, err := h.store.ListSnapshots(context.Background(), "sess-1", models.MainBranch, true)
	require.NoError(t, err)
	assert.Empty(t, snaps)

	require.Len(t, h.publisher.completed, 1)
	assert.Equal(t, "text", h.publisher.completed[0].ResponseFormat)
	assert.Empty(t, h.publisher.completed[0].SnapshotID)
	assert.Equal(t, 1, h.sessions.touched)
}

func TestExecuteTurn_RecordsSessionAuthor(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "what was total revenue?"},
	}, h.sink)
	require.NoError(t, err)

	require.Len(t, h.messages.msgs, 1)
	require.NotNil(t, h.messages.msgs[0].Author)
	assert.Equal(t, "alice", *h.messages.msgs[0].Author)
}

func TestExecuteTurn_AnonymousSessionRecordsNoAuthor(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	session := testSession()
	session.Author = nil
	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "what was total revenue?"},
	}, h.sink)
	require.NoError(t, err)

	require.Len(t, h.messages.msgs, 1)
	assert.Nil(t, h.messages.msgs[0].Author)
}

func TestExecuteTurn_UITurnWithToolCalls(t *testing.T) {
	reasoner := &scriptedReasoner{decisions: []string{uiDecisionWithCalls, uiDecisionFinal}}
	invoker := &mockInvoker{data: map[string]string{
		"demo_sales": `[{"region":"EMEA","revenue":1200},{"region":"APAC","revenue":3000}]`,
	}}
	h := newTestExecutor(t, reasoner, invoker)

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "show revenue by region"},
	}, h.sink)
	require.NoError(t, err)

	assert.Equal(t, []stream.EventType{
		stream.TypeThinking,
		stream.TypeToolCall,
		stream.TypeData,
		stream.TypeThinking,
		stream.TypeUIAction,
		stream.TypeSummaryMessage,
		stream.TypeUIComplete,
		stream.TypeDone,
	}, h.sink.types())

	action := h.sink.find(stream.TypeUIAction).(stream.UIActionPayload)
	assert.Equal(t, "NEW", action.Action)
	assert.False(t, action.Ambiguous)

	complete := h.sink.find(stream.TypeUIComplete).(stream.UICompletePayload)
	assert.Equal(t, models.MainBranch, complete.BranchName)
	assert.Equal(t, 0, complete.SnapshotIndex)
	assert.Equal(t, decision.LayoutExtended, complete.LayoutIntent)
	assert.Contains(t, complete.Content, "Revenue by Region")
	assert.Contains(t, complete.Content, "EMEA")

	snaps, err := h.store.ListSnapshots(context.Background(), "sess-1", models.MainBranch, true)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "NEW", snaps[0].Metadata[models.MetaMergeAction])

	require.Len(t, h.publisher.snapshots, 1)
	assert.Equal(t, "NEW", h.publisher.snapshots[0].MergeAction)
	require.Len(t, h.publisher.completed, 1)
	assert.Equal(t, snaps[0].ID, h.publisher.completed[0].SnapshotID)
}

func TestExecuteTurn_SecondUITurnModifies(t *testing.T) {
	// Same block ID in both turns: the second resolves as MODIFY/REPLACE
	// territory. With one identical block the fragment covers the prior
	// document, so REPLACE.
	reasoner := &scriptedReasoner{decisions: []string{uiDecisionFinal, uiDecisionFinal}}
	h := newTestExecutor(t, reasoner, &mockInvoker{})

	ctx := context.Background()
	session := testSession()
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "show revenue"},
	}, h.sink))

	second := &collectSink{}
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "make the bars monthly"},
	}, second))

	action := second.find(stream.TypeUIAction).(stream.UIActionPayload)
	assert.Equal(t, "REPLACE", action.Action)

	snaps, err := h.store.ListSnapshots(ctx, "sess-1", models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 1, snaps[1].Index)
}

func TestExecuteTurn_ClientDocumentReachesEngine(t *testing.T) {
	reasoner := &scriptedReasoner{decisions: []string{textDecision}}
	h := newTestExecutor(t, reasoner, &mockInvoker{})

	onScreen := `{"blocks":[{"id":"table-orders","type":"table"}]}`
	require.NoError(t, h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "sort it by date", CurrentUIContent: onScreen},
	}, h.sink))

	require.Len(t, reasoner.inputs, 1)
	assert.Equal(t, onScreen, reasoner.inputs[0].CurrentUI)
}

func TestExecuteTurn_EngineSeesBranchHeadWithoutClientDocument(t *testing.T) {
	reasoner := &scriptedReasoner{decisions: []string{uiDecisionFinal, textDecision}}
	h := newTestExecutor(t, reasoner, &mockInvoker{})

	ctx := context.Background()
	session := testSession()
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "show revenue"},
	}, h.sink))

	head, err := h.store.ListSnapshots(ctx, "sess-1", models.MainBranch, false)
	require.NoError(t, err)
	require.Len(t, head, 1)

	second := &collectSink{}
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "what does this show?"},
	}, second))

	require.Len(t, reasoner.inputs, 2)
	assert.Empty(t, reasoner.inputs[0].CurrentUI, "first turn has nothing on screen")
	assert.Equal(t, head[0].Content, reasoner.inputs[1].CurrentUI)
}

func TestExecuteTurn_EngineError(t *testing.T) {
	errDecision := `{
		"responseFormat": "text",
		"textResponse": "I need more detail before I can build that.",
		"error": {"kind": "needs_clarification", "message": "Which fiscal year?", "clarifyingQuestion": "Which fiscal year do you mean?"}
	}`
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{errDecision}}, &mockInvoker{})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "show the numbers"},
	}, h.sink)
	require.NoError(t, err)

	// Exactly one error event, immediately followed by done.
	types := h.sink.types()
	assert.Equal(t, stream.TypeDone, types[len(types)-1])
	assert.Equal(t, stream.TypeError, types[len(types)-2])

	errPayload := h.sink.find(stream.TypeError).(stream.ErrorPayload)
	assert.Equal(t, decision.ErrorNeedsClarification, errPayload.Kind)
	assert.Equal(t, "Which fiscal year do you mean?", errPayload.ClarifyingQuestion)

	snaps, _ := h.store.ListSnapshots(context.Background(), "sess-1", models.MainBranch, true)
	assert.Empty(t, snaps)
	require.Len(t, h.publisher.failed, 1)
	assert.Equal(t, "needs_clarification", h.publisher.failed[0].Kind)
}

func TestExecuteTurn_MalformedDecision(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{`{"responseFormat":"hologram"}`}}, &mockInvoker{})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "hi"},
	}, h.sink)
	require.NoError(t, err)

	types := h.sink.types()
	assert.Equal(t, stream.TypeDone, types[len(types)-1])
	assert.Equal(t, stream.TypeError, types[len(types)-2])

	errPayload := h.sink.find(stream.TypeError).(stream.ErrorPayload)
	assert.Equal(t, decision.ErrorOperationFailed, errPayload.Kind)
}

func TestExecuteTurn_NewSessionEmitsSessionAndTitle(t *testing.T) {
	reasoner := &scriptedReasoner{decisions: []string{textDecision}, title: "Revenue overview"}
	h := newTestExecutor(t, reasoner, &mockInvoker{})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session:    testSession(),
		Request:    models.TurnRequest{Message: "what was total revenue?"},
		NewSession: true,
	}, h.sink)
	require.NoError(t, err)

	types := h.sink.types()
	assert.Equal(t, stream.TypeSession, types[0])
	assert.Contains(t, types, stream.TypeTitleUpdate)
	assert.Equal(t, stream.TypeDone, types[len(types)-1])

	title := h.sink.find(stream.TypeTitleUpdate).(stream.TitleUpdatePayload)
	assert.Equal(t, "Revenue overview", title.Title)
	assert.Equal(t, "Revenue overview", h.sessions.title)
	require.Len(t, h.publisher.titles, 1)
}

func TestExecuteTurn_PinnedCursorForks(t *testing.T) {
	reasoner := &scriptedReasoner{decisions: []string{uiDecisionFinal, uiDecisionFinal, uiDecisionFinal}}
	h := newTestExecutor(t, reasoner, &mockInvoker{})

	ctx := context.Background()
	session := testSession()

	// Two live turns build main up to index 1.
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "show revenue"},
	}, &collectSink{}))
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "now by quarter"},
	}, &collectSink{}))

	// Third turn pinned at index 0 forks.
	pin := 0
	forkSink := &collectSink{}
	require.NoError(t, h.executor.ExecuteTurn(ctx, TurnInput{
		Session: session,
		Request: models.TurnRequest{Message: "actually, by product", BranchName: models.MainBranch, CursorIndex: &pin},
	}, forkSink))

	require.Len(t, h.publisher.forks, 1)
	fork := h.publisher.forks[0]
	assert.Equal(t, models.MainBranch, fork.ParentBranch)
	assert.Equal(t, 0, fork.ForkedFromIndex)
	assert.NotEqual(t, models.MainBranch, fork.BranchName)

	complete := forkSink.find(stream.TypeUIComplete).(stream.UICompletePayload)
	assert.Equal(t, fork.BranchName, complete.BranchName)
	assert.Equal(t, 0, complete.SnapshotIndex)

	// Source prefix intact; index 1 tombstoned.
	mainSnaps, err := h.store.ListSnapshots(ctx, "sess-1", models.MainBranch, true)
	require.NoError(t, err)
	require.Len(t, mainSnaps, 2)
	assert.True(t, mainSnaps[0].IsActive)
	assert.False(t, mainSnaps[1].IsActive)
}

func TestExecuteTurn_OneTurnPerSession(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	// Occupy the session slot manually.
	require.NoError(t, h.executor.beginTurn("sess-1", func() {}))
	defer h.executor.endTurn("sess-1")

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "hi"},
	}, h.sink)
	assert.ErrorIs(t, err, ErrTurnActive)
	assert.Empty(t, h.sink.types(), "registration failure writes nothing to the stream")
}

func TestExecuteTurn_CapacityLimit(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	for i := 0; i < 4; i++ {
		require.NoError(t, h.executor.beginTurn(fmt.Sprintf("other-%d", i), func() {}))
	}
	assert.Equal(t, 4, h.executor.ActiveTurns())

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "hi"},
	}, h.sink)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestExecuteTurn_RejectedAfterStop(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})
	h.executor.Stop()

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "hi"},
	}, h.sink)
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestExecuteTurn_ToolFailureFeedsBack(t *testing.T) {
	// First round requests a call that fails; the engine answers with text
	// on the second round.
	reasoner := &scriptedReasoner{decisions: []string{uiDecisionWithCalls, textDecision}}
	h := newTestExecutor(t, reasoner, &mockInvoker{err: fmt.Errorf("upstream down")})

	err := h.executor.ExecuteTurn(context.Background(), TurnInput{
		Session: testSession(),
		Request: models.TurnRequest{Message: "show revenue"},
	}, h.sink)
	require.NoError(t, err)

	types := h.sink.types()
	assert.Equal(t, stream.TypeDone, types[len(types)-1])
	assert.Equal(t, 2, reasoner.calls, "failure should trigger a second decision round")
}

func TestCancelTurn(t *testing.T) {
	h := newTestExecutor(t, &scriptedReasoner{decisions: []string{textDecision}}, &mockInvoker{})

	cancelled := false
	require.NoError(t, h.executor.beginTurn("sess-1", func() { cancelled = true }))
	defer h.executor.endTurn("sess-1")

	assert.True(t, h.executor.CancelTurn("sess-1"))
	assert.True(t, cancelled)
	assert.False(t, h.executor.CancelTurn("sess-unknown"))
}

func TestRenderFragment_FormBlock(t *testing.T) {
	dec := &decision.OrchestrationDecision{
		ResponseFormat: decision.FormatForm,
		TextResponse:   "Fill in the new customer.",
		FormSpec: &decision.FormSpec{
			Action:   decision.FormActionCreate,
			TargetID: "crm_customers",
			Title:    "New Customer",
		},
	}

	doc := renderFragment(dec, nil)
	require.NotNil(t, doc)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "form-crm_customers-create", doc.Blocks[0].ID)
	assert.Equal(t, "form", doc.Blocks[0].Kind)
}

func TestUIBlockID_Stability(t *testing.T) {
	spec := &decision.UISpec{Type: decision.VisualizationBarChart, Title: "Revenue by Region!"}
	assert.Equal(t, "bar_chart-revenue-by-region", uiBlockID(spec, nil))

	// Untitled specs fall back to the primary data source.
	untitled := &decision.UISpec{Type: decision.VisualizationTable}
	results := []reason.ToolResult{{TargetID: "demo_sales"}}
	assert.Equal(t, "table-demo_sales", uiBlockID(untitled, results))
	assert.Equal(t, "table", uiBlockID(untitled, nil))
}

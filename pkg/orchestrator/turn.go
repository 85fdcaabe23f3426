package orchestrator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/loomhq/loom/pkg/decision"
	"github.com/loomhq/loom/pkg/events"
	"github.com/loomhq/loom/pkg/history"
	"github.com/loomhq/loom/pkg/merge"
	"github.com/loomhq/loom/pkg/models"
	"github.com/loomhq/loom/pkg/reason"
	"github.com/loomhq/loom/pkg/stream"
)

// titleTimeout bounds the post-turn title generation call. Title failures
// never fail the turn.
const titleTimeout = 20 * time.Second

// ExecuteTurn runs one turn end to end, streaming events to sink as they
// happen. It blocks until the stream is terminal. Registration errors
// (ErrTurnActive, ErrAtCapacity, ErrShuttingDown) are returned before
// anything is written to the sink so the handler can answer with a plain
// HTTP status instead of a broken stream.
func (e *TurnExecutor) ExecuteTurn(reqCtx context.Context, input TurnInput, sink Sink) error {
	sessionID := input.Session.ID

	ctx, cancel := context.WithTimeout(reqCtx, e.cfg.TurnTimeout)
	defer cancel()

	if err := e.beginTurn(sessionID, cancel); err != nil {
		return err
	}
	defer e.endTurn(sessionID)

	logger := e.logger.With("session_id", sessionID)

	if input.NewSession {
		e.send(sink, stream.SessionPayload{
			Type:      stream.TypeSession,
			SessionID: sessionID,
			CreatedAt: input.Session.CreatedAt.Format(time.RFC3339Nano),
		})
	}

	// 1. Record the user message.
	author := ""
	if input.Session.Author != nil {
		author = *input.Session.Author
	}
	msg, err := e.messages.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID:    sessionID,
		Content:      input.Request.Message,
		Author:       author,
		EditedFromID: input.Request.EditOfMessageID,
	})
	if err != nil {
		logger.Error("Failed to create message", "error", err)
		e.failTurn(ctx, sink, sessionID, "", decision.ErrorOperationFailed, "failed to record message")
		return nil
	}
	logger = logger.With("message_id", msg.ID)

	// 2. Place the turn: live append or fork.
	placement, err := e.history.ResolveTurn(ctx, sessionID, input.Request)
	if err != nil {
		logger.Error("Failed to resolve turn placement", "error", err)
		e.failTurn(ctx, sink, sessionID, msg.ID, decision.ErrorOperationFailed, "failed to resolve branch placement")
		return nil
	}
	if placement.Forked {
		logger.Info("Turn forked a new branch",
			"branch", placement.BranchName,
			"parent", placement.ForkedFrom,
			"fork_index", placement.ForkIndex)
		e.publish(func() error {
			return e.publisher.PublishBranchForked(ctx, sessionID, events.BranchForkedPayload{
				Type:            events.EventTypeBranchForked,
				SessionID:       sessionID,
				BranchName:      placement.BranchName,
				ParentBranch:    placement.ForkedFrom,
				ForkedFromIndex: placement.ForkIndex,
				Timestamp:       now(),
			})
		})
	}

	e.publish(func() error {
		return e.publisher.PublishTurnStarted(ctx, sessionID, events.TurnStartedPayload{
			Type:       events.EventTypeTurnStarted,
			SessionID:  sessionID,
			MessageID:  msg.ID,
			BranchName: placement.BranchName,
			Timestamp:  now(),
		})
	})

	// 3. Drive the reasoning engine. It sees the document on screen: what
	// the client sent, or the branch head it is building on.
	currentUI := strings.TrimSpace(input.Request.CurrentUIContent)
	if currentUI == "" {
		base, baseErr := e.history.BaseContent(ctx, sessionID, placement)
		if baseErr != nil {
			logger.Warn("Failed to load base document for prompt", "error", baseErr)
		} else {
			currentUI = base
		}
	}

	dec, toolResults, runErr := e.runDecisionLoop(ctx, sink, sessionID, msg.ID, input.Request.Message, currentUI)
	if runErr != nil {
		kind := decision.ErrorOperationFailed
		message := "turn failed"
		if ctx.Err() != nil {
			message = "turn cancelled"
		}
		logger.Error("Decision loop failed", "error", runErr)
		e.failTurn(ctx, sink, sessionID, msg.ID, kind, message)
		return nil
	}

	// Engine-reported failure: stream the structured error, then close the
	// turn with done. The message stays recorded; nothing is committed.
	if dec.Error != nil {
		e.send(sink, stream.ErrorPayload{
			Type:               stream.TypeError,
			Kind:               dec.Error.Kind,
			Message:            dec.Error.Message,
			ClarifyingQuestion: dec.Error.ClarifyingQuestion,
			Suggestions:        dec.Error.Suggestions,
		})
		e.publish(func() error {
			return e.publisher.PublishTurnFailed(ctx, sessionID, events.TurnFailedPayload{
				Type:      events.EventTypeTurnFailed,
				SessionID: sessionID,
				MessageID: msg.ID,
				Kind:      string(dec.Error.Kind),
				Message:   dec.Error.Message,
				Timestamp: now(),
			})
		})
		e.send(sink, stream.DonePayload{Type: stream.TypeDone, MessageID: msg.ID})
		return nil
	}

	// 4. Finalize according to the response format.
	var snapshotID string
	switch dec.ResponseFormat {
	case decision.FormatText:
		e.send(sink, stream.TextPayload{Type: stream.TypeText, Delta: dec.TextResponse})

	default: // ui or form, per validation
		snap, commitErr := e.commitArtifact(ctx, sink, sessionID, msg.ID, placement, dec, toolResults, input.Request)
		if commitErr != nil {
			logger.Error("Failed to commit snapshot", "error", commitErr)
			e.failTurn(ctx, sink, sessionID, msg.ID, decision.ErrorOperationFailed, "failed to commit snapshot")
			return nil
		}
		snapshotID = snap.ID
	}

	// 5. First turn of a fresh conversation gets a generated title.
	if input.NewSession {
		e.generateTitle(sink, sessionID, input.Request.Message)
	}

	if err := e.sessions.TouchLastTurn(ctx, sessionID, e.cfg.PodID); err != nil {
		logger.Warn("Failed to touch session activity", "error", err)
	}

	e.publish(func() error {
		return e.publisher.PublishTurnCompleted(ctx, sessionID, events.TurnCompletedPayload{
			Type:           events.EventTypeTurnCompleted,
			SessionID:      sessionID,
			MessageID:      msg.ID,
			BranchName:     placement.BranchName,
			SnapshotID:     snapshotID,
			ResponseFormat: string(dec.ResponseFormat),
			Timestamp:      now(),
		})
	})

	e.send(sink, stream.DonePayload{Type: stream.TypeDone, MessageID: msg.ID})
	logger.Info("Turn complete", "format", dec.ResponseFormat, "branch", placement.BranchName)
	return nil
}

// runDecisionLoop calls the reasoning engine, executes any requested API
// calls and feeds their results back in, until the engine settles on a
// final decision or the round cap is hit.
func (e *TurnExecutor) runDecisionLoop(ctx context.Context, sink Sink, sessionID, messageID, message, currentUI string) (*decision.OrchestrationDecision, []reason.ToolResult, error) {
	hist, err := e.buildHistory(ctx, sessionID, messageID)
	if err != nil {
		return nil, nil, err
	}

	input := reason.TurnInput{
		Message:     message,
		History:     hist,
		ToolCatalog: e.catalog,
		CurrentUI:   currentUI,
	}

	var toolResults []reason.ToolResult
	for round := 0; round < maxDecisionRounds; round++ {
		e.send(sink, stream.ThinkingPayload{Type: stream.TypeThinking, Text: "Analyzing your request"})
		e.progress(ctx, sessionID, messageID, "thinking", "")

		raw, err := e.reasoner.Decide(ctx, input)
		if err != nil {
			return nil, nil, err
		}

		dec, err := decision.Parse(raw)
		if err != nil {
			return nil, nil, err
		}

		if len(dec.APICalls) == 0 || dec.Error != nil {
			return dec, toolResults, nil
		}

		for _, call := range dec.APICalls {
			e.send(sink, stream.ToolCallPayload{
				Type:       stream.TypeToolCall,
				TargetID:   call.TargetID,
				Reason:     call.Reason,
				Parameters: call.Parameters,
			})
			e.progress(ctx, sessionID, messageID, "tool_call", call.TargetID)

			data, callErr := e.invoker.Invoke(ctx, call)
			result := reason.ToolResult{TargetID: call.TargetID, Data: data}
			if callErr != nil {
				if ctx.Err() != nil {
					return nil, nil, callErr
				}
				// A failed call becomes engine input: the next round can
				// recover, narrow the request or report a structured error.
				result.Error = callErr.Error()
			}
			toolResults = append(toolResults, result)

			e.send(sink, stream.DataPayload{
				Type:     stream.TypeData,
				TargetID: call.TargetID,
				Summary:  call.Reason,
				RowCount: countRows(data),
			})
		}

		input.ToolResults = toolResults
	}

	// Round cap hit with calls still pending: surface as engine failure.
	return &decision.OrchestrationDecision{
		ResponseFormat: decision.FormatText,
		Error: &decision.TurnError{
			Kind:    decision.ErrorOperationFailed,
			Message: "the request required too many data lookups; try narrowing it",
		},
	}, toolResults, nil
}

// commitArtifact resolves the merge, commits the snapshot and streams the
// artifact events (ui_action, summary_message, ui_complete).
func (e *TurnExecutor) commitArtifact(
	ctx context.Context,
	sink Sink,
	sessionID, messageID string,
	placement *history.TurnPlacement,
	dec *decision.OrchestrationDecision,
	toolResults []reason.ToolResult,
	req models.TurnRequest,
) (*history.Snapshot, error) {
	baseContent, err := e.history.BaseContent(ctx, sessionID, placement)
	if err != nil {
		return nil, err
	}
	prev, err := merge.ParseDocument(baseContent)
	if err != nil {
		return nil, err
	}

	fragment := renderFragment(dec, toolResults)

	e.progress(ctx, sessionID, messageID, "merging", "")
	result := e.resolver.Resolve(prev, fragment, merge.Signal{
		RelatedToCurrent: strings.TrimSpace(req.CurrentUIContent) != "",
	})

	e.send(sink, stream.UIActionPayload{
		Type:      stream.TypeUIAction,
		Action:    string(result.Action),
		Ambiguous: result.Ambiguous,
	})
	e.send(sink, stream.SummaryMessagePayload{
		Type: stream.TypeSummaryMessage,
		Text: dec.TextResponse,
	})

	content, err := result.Document.Encode()
	if err != nil {
		return nil, err
	}

	layout := dec.LayoutIntent
	if layout == "" {
		layout = decision.LayoutPreview
	}

	snap, err := e.history.Commit(ctx, models.CreateSnapshotRequest{
		SessionID:    sessionID,
		MessageID:    messageID,
		BranchName:   placement.BranchName,
		Content:      content,
		LayoutIntent: string(layout),
		Metadata: map[string]any{
			models.MetaMergeAction:    string(result.Action),
			models.MetaMergeAmbiguous: result.Ambiguous,
			models.MetaSummary:        dec.TextResponse,
			models.MetaToolCalls:      toolTargets(toolResults),
		},
	})
	if err != nil {
		return nil, err
	}

	e.send(sink, stream.UICompletePayload{
		Type:          stream.TypeUIComplete,
		Content:       content,
		LayoutIntent:  layout,
		BranchName:    snap.BranchName,
		SnapshotID:    snap.ID,
		SnapshotIndex: snap.Index,
	})

	e.publish(func() error {
		return e.publisher.PublishSnapshotCreated(ctx, sessionID, events.SnapshotCreatedPayload{
			Type:          events.EventTypeSnapshotCreated,
			SessionID:     sessionID,
			SnapshotID:    snap.ID,
			MessageID:     messageID,
			BranchName:    snap.BranchName,
			SnapshotIndex: snap.Index,
			LayoutIntent:  string(layout),
			MergeAction:   string(result.Action),
			Timestamp:     now(),
		})
	})
	return snap, nil
}

// buildHistory assembles prior turns for the engine, excluding the message
// the current turn just recorded.
func (e *TurnExecutor) buildHistory(ctx context.Context, sessionID, currentMessageID string) ([]reason.HistoryEntry, error) {
	msgs, err := e.messages.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	entries := make([]reason.HistoryEntry, 0, len(msgs))
	for _, m := range msgs {
		if m.ID == currentMessageID {
			continue
		}
		entries = append(entries, reason.HistoryEntry{Message: m.Content})
	}
	return entries, nil
}

// generateTitle asks the engine for a session title and fans it out. Runs
// on its own context so a cancelled turn stream cannot abort it mid-write.
func (e *TurnExecutor) generateTitle(sink Sink, sessionID, firstMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), titleTimeout)
	defer cancel()

	title, err := e.reasoner.GenerateTitle(ctx, firstMessage)
	if err != nil || title == "" {
		e.logger.Warn("Title generation failed", "session_id", sessionID, "error", err)
		return
	}

	if err := e.sessions.SetTitle(ctx, sessionID, title); err != nil {
		e.logger.Warn("Failed to store session title", "session_id", sessionID, "error", err)
		return
	}

	e.send(sink, stream.TitleUpdatePayload{
		Type:      stream.TypeTitleUpdate,
		SessionID: sessionID,
		Title:     title,
	})
	e.publish(func() error {
		return e.publisher.PublishTitleUpdated(ctx, sessionID, events.TitleUpdatedPayload{
			Type:      events.EventTypeTitleUpdated,
			SessionID: sessionID,
			Title:     title,
			Timestamp: now(),
		})
	})
}

// failTurn emits the error event and records the failure on the dashboard
// channel. When the turn's context is still alive (a generation failure,
// not an abort), the stream closes with done so the client observes a
// complete turn boundary. Event publication uses a background context so a
// cancelled turn still reports its failure.
func (e *TurnExecutor) failTurn(ctx context.Context, sink Sink, sessionID, messageID string, kind decision.ErrorKind, message string) {
	e.send(sink, stream.ErrorPayload{
		Type:    stream.TypeError,
		Kind:    kind,
		Message: message,
	})

	pubCtx := ctx
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		pubCtx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}
	e.publish(func() error {
		return e.publisher.PublishTurnFailed(pubCtx, sessionID, events.TurnFailedPayload{
			Type:      events.EventTypeTurnFailed,
			SessionID: sessionID,
			MessageID: messageID,
			Kind:      string(kind),
			Message:   message,
			Timestamp: now(),
		})
	})

	if ctx.Err() == nil {
		e.send(sink, stream.DonePayload{Type: stream.TypeDone, MessageID: messageID})
	}
}

// send writes one stream event, logging write failures. A dead client
// connection surfaces as a failed send; the turn keeps going so its side
// effects (snapshot, events) still land.
func (e *TurnExecutor) send(sink Sink, payload any) {
	if err := sink.Send(payload); err != nil {
		e.logger.Warn("Failed to write stream event", "error", err)
	}
}

// progress publishes a transient turn.progress tick.
func (e *TurnExecutor) progress(ctx context.Context, sessionID, messageID, phase, detail string) {
	e.publish(func() error {
		return e.publisher.PublishTurnProgress(ctx, sessionID, events.TurnProgressPayload{
			Type:      events.EventTypeTurnProgress,
			SessionID: sessionID,
			MessageID: messageID,
			Phase:     phase,
			Detail:    detail,
			Timestamp: now(),
		})
	})
}

// publish runs one event publication if a publisher is wired.
func (e *TurnExecutor) publish(fn func() error) {
	if e.publisher == nil {
		return
	}
	if err := fn(); err != nil {
		e.logger.Warn("Failed to publish dashboard event", "error", err)
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// countRows reports the top-level element count of an array result, 0
// otherwise. Display hint only.
func countRows(data json.RawMessage) int {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0
	}
	return len(rows)
}

func toolTargets(results []reason.ToolResult) []string {
	targets := make([]string, 0, len(results))
	for _, r := range results {
		targets = append(targets, r.TargetID)
	}
	return targets
}

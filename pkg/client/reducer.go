// Package client consumes a turn stream and maintains the per-tab view
// state: what is on screen, how it is sized, and where in branch history
// the user is looking. Everything here is single-goroutine by design; the
// embedding UI loop owns each value exclusively.
package client

import (
	"strings"

	"github.com/loomhq/loom/pkg/stream"
)

// TurnOutcome is the reduced result of one finished stream.
type TurnOutcome struct {
	SessionID string // set when this turn created the conversation
	MessageID string
	Title     string

	// Format is "text", "ui" or "" when the turn never got that far.
	Format string

	Text       string
	Summary    string
	UIContent  string
	UIAction   string
	Ambiguous  bool
	Layout     string
	BranchName string
	SnapshotID string

	Err       *stream.ErrorPayload
	Done      bool
	Cancelled bool
}

// cancelledText is the local transcript entry recorded for an aborted turn.
const cancelledText = "[Request cancelled]"

// TurnReducer folds stream events into a TurnOutcome. The running state
// ("the response type decided so far") lives here explicitly instead of in
// closure variables, so the value read at commit time is always the value
// the last event set.
type TurnReducer struct {
	outcome TurnOutcome
	text    strings.Builder
}

// NewTurnReducer creates a reducer for one turn.
func NewTurnReducer() *TurnReducer {
	return &TurnReducer{}
}

// Apply folds one event. Unknown events are ignored by contract.
func (r *TurnReducer) Apply(ev stream.Event) {
	switch ev.Type {
	case stream.TypeSession:
		r.outcome.SessionID = ev.Session.SessionID

	case stream.TypeText:
		r.outcome.Format = "text"
		r.text.WriteString(ev.Text.Delta)

	case stream.TypeSummaryMessage:
		r.outcome.Format = "ui"
		r.outcome.Summary = ev.SummaryMessage.Text

	case stream.TypeUIAction:
		r.outcome.UIAction = ev.UIAction.Action
		r.outcome.Ambiguous = ev.UIAction.Ambiguous

	case stream.TypeUIComplete:
		r.outcome.Format = "ui"
		r.outcome.UIContent = ev.UIComplete.Content
		r.outcome.Layout = string(ev.UIComplete.LayoutIntent)
		r.outcome.BranchName = ev.UIComplete.BranchName
		r.outcome.SnapshotID = ev.UIComplete.SnapshotID

	case stream.TypeTitleUpdate:
		r.outcome.Title = ev.TitleUpdate.Title

	case stream.TypeError:
		e := *ev.Error
		r.outcome.Err = &e

	case stream.TypeDone:
		r.outcome.Done = true
		r.outcome.MessageID = ev.Done.MessageID

	case stream.TypeThinking, stream.TypeToolCall, stream.TypeData, stream.TypeUnknown:
		// Progress and forward-compat events carry no reducible state.
	}
}

// Cancel marks the turn as locally aborted. The transcript shows the
// cancellation marker instead of whatever partial text arrived.
func (r *TurnReducer) Cancel() {
	r.outcome.Cancelled = true
}

// Outcome returns the reduced turn.
func (r *TurnReducer) Outcome() TurnOutcome {
	out := r.outcome
	if out.Cancelled {
		out.Text = cancelledText
		return out
	}
	out.Text = r.text.String()
	return out
}

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/decision"
	"github.com/loomhq/loom/pkg/stream"
)

func TestTurnReducer_TextTurn(t *testing.T) {
	r := NewTurnReducer()
	r.Apply(stream.Event{Type: stream.TypeThinking, Thinking: &stream.ThinkingPayload{Text: "Working"}})
	r.Apply(stream.Event{Type: stream.TypeText, Text: &stream.TextPayload{Delta: "Revenue is "}})
	r.Apply(stream.Event{Type: stream.TypeText, Text: &stream.TextPayload{Delta: "up 4%."}})
	r.Apply(stream.Event{Type: stream.TypeDone, Done: &stream.DonePayload{MessageID: "msg-1"}})

	out := r.Outcome()
	assert.Equal(t, "text", out.Format)
	assert.Equal(t, "Revenue is up 4%.", out.Text)
	assert.Equal(t, "msg-1", out.MessageID)
	assert.True(t, out.Done)
	assert.Nil(t, out.Err)
	assert.Empty(t, out.UIContent)
}

func TestTurnReducer_UITurn(t *testing.T) {
	r := NewTurnReducer()
	r.Apply(stream.Event{Type: stream.TypeSession, Session: &stream.SessionPayload{SessionID: "sess-9"}})
	r.Apply(stream.Event{Type: stream.TypeUIAction, UIAction: &stream.UIActionPayload{Action: "MODIFY", Ambiguous: true}})
	r.Apply(stream.Event{Type: stream.TypeSummaryMessage, SummaryMessage: &stream.SummaryMessagePayload{Text: "Quarterly revenue by region"}})
	r.Apply(stream.Event{Type: stream.TypeUIComplete, UIComplete: &stream.UICompletePayload{
		Content:      `{"blocks":[]}`,
		LayoutIntent: decision.LayoutPreview,
		BranchName:   "main",
		SnapshotID:   "snap-3",
	}})
	r.Apply(stream.Event{Type: stream.TypeTitleUpdate, TitleUpdate: &stream.TitleUpdatePayload{Title: "Revenue review"}})
	r.Apply(stream.Event{Type: stream.TypeDone, Done: &stream.DonePayload{MessageID: "msg-2"}})

	out := r.Outcome()
	assert.Equal(t, "ui", out.Format)
	assert.Equal(t, "sess-9", out.SessionID)
	assert.Equal(t, "Quarterly revenue by region", out.Summary)
	assert.Equal(t, `{"blocks":[]}`, out.UIContent)
	assert.Equal(t, "MODIFY", out.UIAction)
	assert.True(t, out.Ambiguous)
	assert.Equal(t, "preview", out.Layout)
	assert.Equal(t, "main", out.BranchName)
	assert.Equal(t, "snap-3", out.SnapshotID)
	assert.Equal(t, "Revenue review", out.Title)
	assert.True(t, out.Done)
}

func TestTurnReducer_ErrorThenDone(t *testing.T) {
	r := NewTurnReducer()
	r.Apply(stream.Event{Type: stream.TypeError, Error: &stream.ErrorPayload{
		Kind:    decision.ErrorOperationFailed,
		Message: "decision failed validation",
	}})
	r.Apply(stream.Event{Type: stream.TypeDone, Done: &stream.DonePayload{MessageID: "msg-3"}})

	out := r.Outcome()
	require.NotNil(t, out.Err)
	assert.Equal(t, decision.ErrorOperationFailed, out.Err.Kind)
	assert.True(t, out.Done, "a failed turn still closes with done")
	assert.Empty(t, out.UIContent)
}

func TestTurnReducer_Cancelled(t *testing.T) {
	r := NewTurnReducer()
	r.Apply(stream.Event{Type: stream.TypeText, Text: &stream.TextPayload{Delta: "partial answer that never"}})
	r.Cancel()

	out := r.Outcome()
	assert.True(t, out.Cancelled)
	assert.False(t, out.Done)
	assert.Equal(t, "[Request cancelled]", out.Text)
}

func TestTurnReducer_IgnoresUnknown(t *testing.T) {
	r := NewTurnReducer()
	r.Apply(stream.Event{Type: stream.TypeUnknown, Raw: []byte(`{"type":"shimmer"}`)})
	r.Apply(stream.Event{Type: stream.TypeDone, Done: &stream.DonePayload{MessageID: "msg-4"}})

	out := r.Outcome()
	assert.True(t, out.Done)
	assert.Empty(t, out.Text)
}

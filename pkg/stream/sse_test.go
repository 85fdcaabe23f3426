package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader yields the source a few bytes at a time, forcing frames to
// split across reads.
type chunkReader struct {
	data []byte
	size int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.size
	if n > len(c.data) {
		n = len(c.data)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

func TestDecodeEvent_UnknownTypeIsIgnorable(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{"type":"hologram","intensity":11}`))
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, ev.Type)
	assert.JSONEq(t, `{"type":"hologram","intensity":11}`, string(ev.Raw))
	assert.False(t, ev.Terminal())
}

func TestDecodeEvent_MalformedJSON(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":"text",`))
	require.Error(t, err)
}

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Send(SessionPayload{Type: TypeSession, SessionID: "s-1", CreatedAt: "2026-01-02T03:04:05Z"}))
	require.NoError(t, w.Send(ThinkingPayload{Type: TypeThinking, Text: "looking at invoices"}))
	require.NoError(t, w.Send(ToolCallPayload{Type: TypeToolCall, TargetID: "erp.invoices.list", Reason: "fetch open invoices"}))
	require.NoError(t, w.Send(UIActionPayload{Type: TypeUIAction, Action: "REPLACE", Ambiguous: true}))
	require.NoError(t, w.Send(UICompletePayload{Type: TypeUIComplete, Content: `{"blocks":[]}`, BranchName: "main", SnapshotIndex: 0}))
	require.NoError(t, w.Send(DonePayload{Type: TypeDone, MessageID: "m-1"}))

	// Feed the encoded stream back 7 bytes at a time so every frame is
	// split across multiple reads.
	r := NewReader(&chunkReader{data: buf.Bytes(), size: 7})

	var types []EventType
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		types = append(types, ev.Type)
		if ev.Type == TypeUIComplete {
			assert.Equal(t, `{"blocks":[]}`, ev.UIComplete.Content)
		}
		if ev.Type == TypeUIAction {
			assert.Equal(t, "REPLACE", ev.UIAction.Action)
			assert.True(t, ev.UIAction.Ambiguous)
		}
	}

	assert.Equal(t, []EventType{
		TypeSession, TypeThinking, TypeToolCall, TypeUIAction, TypeUIComplete, TypeDone,
	}, types)
}

func TestReader_SkipsCommentsAndBlankLines(t *testing.T) {
	raw := ": keep-alive\n\ndata: {\"type\":\"text\",\"delta\":\"hi\"}\n\n: ping\ndata: {\"type\":\"done\",\"message_id\":\"m\"}\n\n"
	r := NewReader(strings.NewReader(raw))

	ev, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, TypeText, ev.Type)
	assert.Equal(t, "hi", ev.Text.Delta)

	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, TypeDone, ev.Type)
	assert.True(t, ev.Terminal())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_DropsIncompleteTrailingFrame(t *testing.T) {
	raw := "data: {\"type\":\"text\",\"delta\":\"complete\"}\ndata: {\"type\":\"text\",\"del"
	r := NewReader(strings.NewReader(raw))

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "complete", ev.Text.Delta)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_CRLFLines(t *testing.T) {
	raw := "data: {\"type\":\"summary_message\",\"text\":\"two tables\"}\r\n\r\n"
	r := NewReader(strings.NewReader(raw))

	ev, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, TypeSummaryMessage, ev.Type)
	assert.Equal(t, "two tables", ev.SummaryMessage.Text)
}

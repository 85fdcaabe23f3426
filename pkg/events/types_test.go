package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "session:abc-123", SessionChannel("abc-123"))
	assert.Equal(t, "session:", SessionChannel(""))
}

func TestClientMessage_Unmarshal(t *testing.T) {
	t.Run("catchup with last_event_id", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal(
			[]byte(`{"action":"catchup","channel":"session:s1","last_event_id":42}`), &msg))

		assert.Equal(t, "catchup", msg.Action)
		assert.Equal(t, "session:s1", msg.Channel)
		require.NotNil(t, msg.LastEventID)
		assert.Equal(t, int64(42), *msg.LastEventID)
	})

	t.Run("subscribe without last_event_id", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal(
			[]byte(`{"action":"subscribe","channel":"sessions"}`), &msg))

		assert.Equal(t, "subscribe", msg.Action)
		assert.Nil(t, msg.LastEventID)
	})
}

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_BackAndForward(t *testing.T) {
	c := NewCursor("main", 3)
	assert.True(t, c.Live())
	assert.Equal(t, 2, c.Index())
	assert.Nil(t, c.PinnedIndex())

	require.True(t, c.Back())
	assert.False(t, c.Live())
	assert.Equal(t, 1, c.Index())
	require.NotNil(t, c.PinnedIndex())
	assert.Equal(t, 1, *c.PinnedIndex())

	require.True(t, c.Back())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Back(), "cannot move before the branch root")
	assert.Equal(t, 0, c.Index())

	require.True(t, c.Forward())
	assert.Equal(t, 1, c.Index())
	require.True(t, c.Forward())
	assert.True(t, c.Live(), "stepping onto the last index returns to live")
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.Forward(), "forward from live is a no-op")
}

func TestCursor_ForwardPastEndAlwaysLive(t *testing.T) {
	for length := 1; length <= 6; length++ {
		c := NewCursor("main", length)
		for c.Back() {
		}
		for range length {
			c.Forward()
		}
		assert.True(t, c.Live(), "length=%d: forward-walking past the end must land live", length)
		assert.Equal(t, length-1, c.Index())
	}
}

func TestCursor_EmptyBranch(t *testing.T) {
	c := NewCursor("main", 0)
	assert.True(t, c.Live())
	assert.Equal(t, -1, c.Index())
	assert.Nil(t, c.PinnedIndex())
	assert.False(t, c.Back())
	assert.False(t, c.Forward())

	c.OnAppend()
	assert.True(t, c.Live())
	assert.Equal(t, 0, c.Index())
}

func TestCursor_AppendWhilePinned(t *testing.T) {
	c := NewCursor("main", 2)
	require.True(t, c.Back())
	assert.Equal(t, 0, c.Index())

	c.OnAppend()
	assert.False(t, c.Live(), "a pinned cursor keeps pointing at what the user is viewing")
	assert.Equal(t, 0, c.Index())

	// The new head is now two steps ahead.
	require.True(t, c.Forward())
	assert.Equal(t, 1, c.Index())
	require.True(t, c.Forward())
	assert.True(t, c.Live())
	assert.Equal(t, 2, c.Index())
}

func TestCursor_SwitchBranch(t *testing.T) {
	c := NewCursor("main", 4)
	c.SwitchBranch("fork-1700000000000", 3, 1)
	assert.Equal(t, "fork-1700000000000", c.Branch())
	assert.False(t, c.Live())
	assert.Equal(t, 1, c.Index())

	c.SwitchBranch("main", 4, 3)
	assert.True(t, c.Live(), "jumping to the head index lands live")
	assert.Equal(t, 3, c.Index())
}

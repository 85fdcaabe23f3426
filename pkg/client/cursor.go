package client

// ConversationCursor tracks which snapshot of which branch the tab is
// viewing. Live means the newest snapshot of the branch; a pinned index
// means the user navigated back into history. The cursor never leaves the
// contiguous [0, len-1] window of the branch it sits on.
type ConversationCursor struct {
	branch string
	length int
	index  int
	live   bool
}

// NewCursor starts live on the given branch, which holds length snapshots.
func NewCursor(branch string, length int) *ConversationCursor {
	return &ConversationCursor{branch: branch, length: length, live: true, index: max(length-1, 0)}
}

// Branch returns the branch the cursor is on.
func (c *ConversationCursor) Branch() string { return c.branch }

// Live reports whether the cursor tracks the branch head.
func (c *ConversationCursor) Live() bool { return c.live }

// Index returns the snapshot index currently in view. Live on an empty
// branch returns -1 (nothing to view yet).
func (c *ConversationCursor) Index() int {
	if c.length == 0 {
		return -1
	}
	if c.live {
		return c.length - 1
	}
	return c.index
}

// PinnedIndex returns the index to send with a turn request, or nil when
// live. A non-nil value tells the server the turn forks off history.
func (c *ConversationCursor) PinnedIndex() *int {
	if c.live || c.length == 0 {
		return nil
	}
	i := c.index
	return &i
}

// Back moves one snapshot into the past. From live it pins at len-2; at
// index 0 it stays put. Returns whether the view changed.
func (c *ConversationCursor) Back() bool {
	if c.length < 2 {
		return false
	}
	if c.live {
		c.live = false
		c.index = c.length - 2
		return true
	}
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

// Forward moves one snapshot toward the present. Stepping onto the last
// index (or past it) returns the cursor to live mode, so the next append
// is immediately in view. Returns whether the view changed.
func (c *ConversationCursor) Forward() bool {
	if c.live {
		return false
	}
	if c.index+1 >= c.length-1 {
		c.live = true
		c.index = c.length - 1
		return true
	}
	c.index++
	return true
}

// OnAppend records a new snapshot on the cursor's branch. A live cursor
// follows the head; a pinned cursor keeps pointing at what the user is
// looking at.
func (c *ConversationCursor) OnAppend() {
	c.length++
	if c.live {
		c.index = c.length - 1
	}
}

// SwitchBranch jumps to another branch in a message's branch family,
// pinning at the matching snapshot index there. An index at or past the
// branch head lands live.
func (c *ConversationCursor) SwitchBranch(branch string, length, index int) {
	c.branch = branch
	c.length = length
	if index >= length-1 {
		c.live = true
		c.index = max(length-1, 0)
		return
	}
	c.live = false
	c.index = max(index, 0)
}

package client

import (
	"sync"
	"time"

	"github.com/loomhq/loom/pkg/decision"
)

// DisplayMode is one state of the assistant surface. The modes are not
// persisted; a page reload starts at Hidden.
type DisplayMode string

const (
	ModeHidden   DisplayMode = "hidden"
	ModeThinking DisplayMode = "thinking"
	ModePreview  DisplayMode = "preview"
	ModeExpanded DisplayMode = "expanded"
	ModeFull     DisplayMode = "full"
	// ModeButton is the transient re-entry affordance shown after the
	// surface retracts so the user can bring the last result back.
	ModeButton DisplayMode = "button"
)

// defaultIdleDelay is how long the surface lingers in preview before
// retracting once the user has seen and touched it.
const defaultIdleDelay = 8 * time.Second

// DisplayState drives the assistant surface through its modes as stream
// events and user actions arrive. All methods are called from the tab's
// single event loop except the idle timer callback, so a small mutex
// guards the fields.
type DisplayState struct {
	mu             sync.Mutex
	mode           DisplayMode
	manualOverride bool
	interacted     bool
	idleDelay      time.Duration
	idleTimer      *time.Timer

	// afterFunc is swappable so tests can fire the idle timer directly.
	afterFunc func(d time.Duration, f func()) *time.Timer

	onChange func(DisplayMode)
}

// NewDisplayState starts hidden. onChange, if non-nil, fires on every
// transition with the new mode.
func NewDisplayState(onChange func(DisplayMode)) *DisplayState {
	return &DisplayState{
		mode:      ModeHidden,
		idleDelay: defaultIdleDelay,
		afterFunc: time.AfterFunc,
		onChange:  onChange,
	}
}

// Mode returns the current display mode.
func (d *DisplayState) Mode() DisplayMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// BeginTurn resets per-turn flags and shows the thinking indicator. The
// manual override from the previous turn never outlives it.
func (d *DisplayState) BeginTurn() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.manualOverride = false
	d.interacted = false
	d.stopIdleTimerLocked()
	d.setModeLocked(ModeThinking)
}

// ShowPreview surfaces the first visible output of the turn: the summary
// message on UI turns, or the first text chunk. Automatic transitions are
// suppressed while the user holds a manual override.
func (d *DisplayState) ShowPreview() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.manualOverride {
		return
	}
	d.setModeLocked(ModePreview)
	d.armIdleTimerLocked()
}

// ApplyLayout maps a server-declared layout intent onto a display mode.
// Ignored while the user holds a manual override.
func (d *DisplayState) ApplyLayout(intent decision.LayoutIntent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.manualOverride {
		return
	}
	switch intent {
	case decision.LayoutFull:
		d.setModeLocked(ModeFull)
	case decision.LayoutExtended:
		d.setModeLocked(ModeExpanded)
	case decision.LayoutPreview:
		d.setModeLocked(ModePreview)
		d.armIdleTimerLocked()
	case decision.LayoutHidden:
		d.setModeLocked(ModeHidden)
	}
}

// UserSet applies an explicit user action and suppresses automatic layout
// changes for the remainder of the turn.
func (d *DisplayState) UserSet(mode DisplayMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.manualOverride = true
	d.interacted = true
	d.stopIdleTimerLocked()
	d.setModeLocked(mode)
}

// MarkInteracted records that the user touched the current turn's surface,
// arming the idle auto-hide. Content the user never saw is not retracted.
func (d *DisplayState) MarkInteracted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.interacted {
		return
	}
	d.interacted = true
	if d.mode == ModePreview {
		d.armIdleTimerLocked()
	}
}

// Retract collapses the surface to the re-entry button.
func (d *DisplayState) Retract() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopIdleTimerLocked()
	d.setModeLocked(ModeButton)
}

// armIdleTimerLocked schedules the preview-to-hidden retraction. Only an
// already-interacted turn retracts on idle.
func (d *DisplayState) armIdleTimerLocked() {
	d.stopIdleTimerLocked()
	if !d.interacted {
		return
	}
	d.idleTimer = d.afterFunc(d.idleDelay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.mode == ModePreview {
			d.setModeLocked(ModeHidden)
		}
	})
}

func (d *DisplayState) stopIdleTimerLocked() {
	if d.idleTimer != nil {
		d.idleTimer.Stop()
		d.idleTimer = nil
	}
}

func (d *DisplayState) setModeLocked(mode DisplayMode) {
	if d.mode == mode {
		return
	}
	d.mode = mode
	if d.onChange != nil {
		d.onChange(mode)
	}
}

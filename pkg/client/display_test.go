package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomhq/loom/pkg/decision"
)

// fakeTimer captures the idle callback so tests fire it deterministically.
type fakeTimer struct {
	fire func()
}

func newTestDisplay(t *testing.T) (*DisplayState, *fakeTimer) {
	t.Helper()
	ft := &fakeTimer{}
	d := NewDisplayState(nil)
	d.afterFunc = func(_ time.Duration, f func()) *time.Timer {
		ft.fire = f
		return time.NewTimer(time.Hour)
	}
	return d, ft
}

func TestDisplay_TurnLifecycle(t *testing.T) {
	d, _ := newTestDisplay(t)
	assert.Equal(t, ModeHidden, d.Mode())

	d.BeginTurn()
	assert.Equal(t, ModeThinking, d.Mode())

	d.ShowPreview()
	assert.Equal(t, ModePreview, d.Mode())

	d.ApplyLayout(decision.LayoutFull)
	assert.Equal(t, ModeFull, d.Mode())

	d.ApplyLayout(decision.LayoutExtended)
	assert.Equal(t, ModeExpanded, d.Mode())

	d.ApplyLayout(decision.LayoutHidden)
	assert.Equal(t, ModeHidden, d.Mode())
}

func TestDisplay_ManualOverrideSuppressesLayout(t *testing.T) {
	d, _ := newTestDisplay(t)
	d.BeginTurn()
	d.UserSet(ModeExpanded)

	d.ApplyLayout(decision.LayoutHidden)
	assert.Equal(t, ModeExpanded, d.Mode(), "server layout must not override the user")
	d.ShowPreview()
	assert.Equal(t, ModeExpanded, d.Mode())

	d.BeginTurn()
	assert.Equal(t, ModeThinking, d.Mode())
	d.ApplyLayout(decision.LayoutFull)
	assert.Equal(t, ModeFull, d.Mode(), "the override must not outlive the turn")
}

func TestDisplay_IdleHideRequiresInteraction(t *testing.T) {
	d, ft := newTestDisplay(t)
	d.BeginTurn()
	d.ShowPreview()
	assert.Nil(t, ft.fire, "no idle timer before the user touches the surface")

	d.MarkInteracted()
	require.NotNil(t, ft.fire)
	ft.fire()
	assert.Equal(t, ModeHidden, d.Mode())
}

func TestDisplay_IdleTimerOnlyHidesPreview(t *testing.T) {
	d, ft := newTestDisplay(t)
	d.BeginTurn()
	d.ShowPreview()
	d.MarkInteracted()
	require.NotNil(t, ft.fire)

	d.UserSet(ModeFull)
	ft.fire()
	assert.Equal(t, ModeFull, d.Mode(), "a stale idle callback must not hide an expanded surface")
}

func TestDisplay_Retract(t *testing.T) {
	d, _ := newTestDisplay(t)
	d.BeginTurn()
	d.ShowPreview()
	d.Retract()
	assert.Equal(t, ModeButton, d.Mode())
}

func TestDisplay_OnChangeNotifications(t *testing.T) {
	var seen []DisplayMode
	d := NewDisplayState(func(m DisplayMode) { seen = append(seen, m) })
	d.BeginTurn()
	d.ShowPreview()
	d.ShowPreview() // no transition, no callback
	assert.Equal(t, []DisplayMode{ModeThinking, ModePreview}, seen)
}

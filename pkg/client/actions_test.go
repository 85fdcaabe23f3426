package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWriteTrigger(t *testing.T) {
	tests := []struct {
		name   string
		action SurfaceAction
		want   bool
	}{
		{"submit with message", SurfaceAction{Kind: ActionSubmit, Message: "Create invoice for ACME"}, true},
		{"confirm with message", SurfaceAction{Kind: ActionConfirm, Message: "Yes, archive it"}, true},
		{"submit without message", SurfaceAction{Kind: ActionSubmit, Message: "  "}, false},
		{"navigation", SurfaceAction{Kind: ActionNavigate, Message: "open customer page"}, false},
		{"pagination", SurfaceAction{Kind: ActionPaginate, Message: "next page"}, false},
		{"sort", SurfaceAction{Kind: ActionSort}, false},
		{"filter", SurfaceAction{Kind: ActionFilter}, false},
		{"conversational continuation", SurfaceAction{Kind: ActionContinue, Message: "tell me more"}, false},
		{"unknown kind", SurfaceAction{Kind: "sparkle", Message: "do something"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWriteTrigger(tt.action))
		})
	}
}

func TestTurnMessage(t *testing.T) {
	assert.Equal(t, "Create invoice for ACME",
		TurnMessage(SurfaceAction{Kind: ActionSubmit, Message: "  Create invoice for ACME "}))
	assert.Empty(t, TurnMessage(SurfaceAction{Kind: ActionNavigate, Message: "back"}))
}

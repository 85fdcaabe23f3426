package client

import "strings"

// SurfaceAction is an affordance event raised by the rendering layer. Only
// write-operation triggers become new turns; navigation and conversational
// continuations are handled locally or as plain follow-up messages.
type SurfaceAction struct {
	Kind    string `json:"kind"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message,omitempty"`
}

// Affordance kinds the rendering layer emits.
const (
	ActionNavigate = "navigate"
	ActionPaginate = "paginate"
	ActionSort     = "sort"
	ActionFilter   = "filter"
	ActionContinue = "continue"
	ActionSubmit   = "submit"
	ActionConfirm  = "confirm"
)

// IsWriteTrigger reports whether the action should start a new turn that
// may mutate business state. Navigation, pagination, and sort/filter
// affordances rearrange what is already on screen; conversational
// continuations are follow-up prompts, not operations.
func IsWriteTrigger(a SurfaceAction) bool {
	switch a.Kind {
	case ActionSubmit, ActionConfirm:
		return strings.TrimSpace(a.Message) != ""
	default:
		return false
	}
}

// TurnMessage extracts the message a write-trigger action feeds into the
// next turn. Non-triggers yield empty.
func TurnMessage(a SurfaceAction) string {
	if !IsWriteTrigger(a) {
		return ""
	}
	return strings.TrimSpace(a.Message)
}

package reason

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDecisionPrompt_Sections(t *testing.T) {
	input := TurnInput{
		Message:     "show revenue by region",
		ToolCatalog: "- erp_orders: Order lookup",
		CurrentUI:   `{"blocks":[{"id":"b1"}]}`,
		History: []HistoryEntry{
			{Message: "hi", Summary: "Greeted the user"},
		},
		ToolResults: []ToolResult{
			{TargetID: "erp_orders", Data: json.RawMessage(`{"orders":[]}`)},
		},
	}

	prompt := BuildDecisionPrompt(input)

	assert.Contains(t, prompt, "[TARGET CATALOG]\n- erp_orders: Order lookup")
	assert.Contains(t, prompt, "[CONVERSATION HISTORY]")
	assert.Contains(t, prompt, "user: hi")
	assert.Contains(t, prompt, "assistant: Greeted the user")
	assert.Contains(t, prompt, "[CURRENT UI DOCUMENT]")
	assert.Contains(t, prompt, "[TOOL RESULTS]")
	assert.Contains(t, prompt, "[USER MESSAGE]\nshow revenue by region")

	// The user message always comes last so it cannot be shadowed by context.
	assert.True(t, strings.HasSuffix(prompt, "show revenue by region"))
}

func TestBuildDecisionPrompt_OmitsEmptySections(t *testing.T) {
	prompt := BuildDecisionPrompt(TurnInput{Message: "hello"})

	assert.NotContains(t, prompt, "[TARGET CATALOG]")
	assert.NotContains(t, prompt, "[CONVERSATION HISTORY]")
	assert.NotContains(t, prompt, "[CURRENT UI DOCUMENT]")
	assert.NotContains(t, prompt, "[TOOL RESULTS]")
	assert.Contains(t, prompt, "[USER MESSAGE]\nhello")
}

func TestBuildTitlePrompt(t *testing.T) {
	prompt := BuildTitlePrompt("what were Q3 sales?")
	assert.Contains(t, prompt, "what were Q3 sales?")
	assert.Contains(t, prompt, "six words")
}

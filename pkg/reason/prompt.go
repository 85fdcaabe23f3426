package reason

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decisionPrompt is the fixed instruction block describing the decision
// contract. The schema is closed: unknown fields or enum values fail
// validation downstream and surface as a generation error.
const decisionPrompt = `You orchestrate a conversational interface that can answer in plain text or synthesize a live UI (tables, charts, forms) from business-system data.

Respond with a single JSON object, no prose, matching exactly:
{
  "responseFormat": "text" | "ui" | "form",
  "layoutIntent": "full" | "extended" | "preview" | "hidden",
  "textResponse": "<always present; the human-readable summary of this turn>",
  "apiCalls": [{"targetId": "<catalog id>", "reason": "<why>", "parameters": {...}}],
  "uiSpec": {"type": "table"|"bar_chart"|"line_chart"|"pie_chart"|"metric_cards", ...},
  "formSpec": {"action": "create"|"update"|"delete", "title": "...", ...},
  "error": {"kind": "operation_failed"|"needs_clarification"|"rate_limited"|"upstream_unavailable", "message": "..."}
}

Rules:
- "textResponse" is required for every format, including ui and form.
- Populate exactly one of "uiSpec" (for "ui") or "formSpec" (for "form"); neither for "text".
- Request data through "apiCalls" using only catalog target ids. When results are already provided in the tool-results section, do not request them again; produce the final decision.
- Do not invent fields. Unknown fields are rejected.`

// BuildDecisionPrompt assembles the full prompt for one decision round.
func BuildDecisionPrompt(input TurnInput) string {
	var b strings.Builder
	b.WriteString(decisionPrompt)

	if input.ToolCatalog != "" {
		b.WriteString("\n\n[TARGET CATALOG]\n")
		b.WriteString(input.ToolCatalog)
	}

	if len(input.History) > 0 {
		b.WriteString("\n[CONVERSATION HISTORY]\n")
		for _, h := range input.History {
			fmt.Fprintf(&b, "user: %s\n", h.Message)
			if h.Summary != "" {
				fmt.Fprintf(&b, "assistant: %s\n", h.Summary)
			}
		}
	}

	if input.CurrentUI != "" {
		b.WriteString("\n[CURRENT UI DOCUMENT]\n")
		b.WriteString(input.CurrentUI)
		b.WriteString("\n")
	}

	if len(input.ToolResults) > 0 {
		b.WriteString("\n[TOOL RESULTS]\n")
		results, _ := json.MarshalIndent(input.ToolResults, "", "  ")
		b.Write(results)
		b.WriteString("\n")
	}

	b.WriteString("\n[USER MESSAGE]\n")
	b.WriteString(input.Message)
	return b.String()
}

// titlePrompt asks for a short noun-phrase session title.
const titlePrompt = `Produce a short title (at most six words, no quotes, no trailing punctuation) for a conversation that starts with the following message. Reply with the title only.

`

// BuildTitlePrompt assembles the title-generation prompt.
func BuildTitlePrompt(firstMessage string) string {
	return titlePrompt + firstMessage
}

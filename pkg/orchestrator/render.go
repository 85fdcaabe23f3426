package orchestrator

import (
	"encoding/json"
	"strings"

	"github.com/loomhq/loom/pkg/decision"
	"github.com/loomhq/loom/pkg/merge"
	"github.com/loomhq/loom/pkg/reason"
)

// renderFragment turns the engine's decision plus the fetched data into the
// block fragment handed to the merge resolver. Block IDs are derived
// deterministically from the artifact's identity so a regenerated version of
// the same artifact matches its predecessor and resolves as MODIFY.
func renderFragment(dec *decision.OrchestrationDecision, toolResults []reason.ToolResult) *merge.Document {
	switch dec.ResponseFormat {
	case decision.FormatUI:
		if dec.UISpec == nil {
			return nil
		}
		return &merge.Document{Blocks: []merge.Block{uiBlock(dec.UISpec, toolResults)}}

	case decision.FormatForm:
		if dec.FormSpec == nil {
			return nil
		}
		return &merge.Document{Blocks: []merge.Block{formBlock(dec.FormSpec)}}
	}
	return nil
}

func uiBlock(spec *decision.UISpec, toolResults []reason.ToolResult) merge.Block {
	specJSON, _ := json.Marshal(spec)
	return merge.Block{
		ID:    uiBlockID(spec, toolResults),
		Kind:  string(spec.Type),
		Title: spec.Title,
		Spec:  specJSON,
		Data:  combineData(toolResults),
	}
}

func formBlock(spec *decision.FormSpec) merge.Block {
	specJSON, _ := json.Marshal(spec)
	return merge.Block{
		ID:    "form-" + spec.TargetID + "-" + string(spec.Action),
		Kind:  "form",
		Title: spec.Title,
		Spec:  specJSON,
	}
}

// uiBlockID keys a visualization by its title when it has one, otherwise by
// its type and primary data source.
func uiBlockID(spec *decision.UISpec, toolResults []reason.ToolResult) string {
	if s := slug(spec.Title); s != "" {
		return string(spec.Type) + "-" + s
	}
	if len(toolResults) > 0 {
		return string(spec.Type) + "-" + toolResults[0].TargetID
	}
	return string(spec.Type)
}

// combineData packs the turn's fetched results for the block. A single
// result is embedded as-is; several are keyed by target.
func combineData(toolResults []reason.ToolResult) json.RawMessage {
	withData := make([]reason.ToolResult, 0, len(toolResults))
	for _, r := range toolResults {
		if len(r.Data) > 0 {
			withData = append(withData, r)
		}
	}
	switch len(withData) {
	case 0:
		return nil
	case 1:
		return withData[0].Data
	}

	byTarget := make(map[string]json.RawMessage, len(withData))
	for _, r := range withData {
		byTarget[r.TargetID] = r.Data
	}
	combined, _ := json.Marshal(byTarget)
	return combined
}

// slug lowercases a title into an identifier fragment: runs of
// non-alphanumerics collapse into single dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

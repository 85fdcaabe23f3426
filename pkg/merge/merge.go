// Package merge reconciles a newly generated UI fragment against the
// document currently on screen. The resolver is server-side and
// authoritative: the client receives the chosen action via a ui_action
// event and the already-merged result via ui_complete, so there is a
// single source of truth for what "current" means.
package merge

import (
	"encoding/json"
	"fmt"
)

// Action is the resolver's decision for one turn.
type Action string

const (
	// ActionNew — no prior document exists; the fragment becomes the
	// document as-is.
	ActionNew Action = "NEW"
	// ActionAdd — the new content is additive; the fragment is composed
	// alongside the prior document.
	ActionAdd Action = "ADD"
	// ActionModify — the new content targets an identified subset of the
	// prior document; that subset is replaced in place, the rest preserved.
	ActionModify Action = "MODIFY"
	// ActionReplace — the new content supersedes the whole prior document.
	ActionReplace Action = "REPLACE"
)

// Block is one addressable unit of a UI document (a table, a chart, a
// form). Blocks are matched across turns by ID.
type Block struct {
	ID    string          `json:"id"`
	Kind  string          `json:"kind"`
	Title string          `json:"title,omitempty"`
	Spec  json.RawMessage `json:"spec,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Document is the parsed form of the serialized UI document stored in
// snapshots and flushed in ui_complete.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// ParseDocument decodes a serialized UI document. Empty input yields nil —
// "no document" rather than an empty one.
func ParseDocument(content string) (*Document, error) {
	if content == "" {
		return nil, nil
	}
	var d Document
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return nil, fmt.Errorf("failed to parse ui document: %w", err)
	}
	return &d, nil
}

// Encode serializes the document for storage and transport.
func (d *Document) Encode() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode ui document: %w", err)
	}
	return string(data), nil
}

// Empty reports whether the document holds no blocks.
func (d *Document) Empty() bool {
	return d == nil || len(d.Blocks) == 0
}

// Signal is the contextual input to classification: whether the user is
// mid-edit of the artifact currently on screen, as opposed to asking an
// unrelated question.
type Signal struct {
	RelatedToCurrent bool
}

// Config tunes the resolver. The ambiguity default is an explicit policy,
// not an accident: REPLACE is safer than silently corrupting partial state.
type Config struct {
	// AmbiguityDefault is applied when the fragment partially overlaps the
	// prior document and the overlap ratio is below ModifyThreshold.
	AmbiguityDefault Action
	// ModifyThreshold is the minimum fraction of fragment blocks that must
	// match existing blocks for a partial overlap to be treated as MODIFY.
	ModifyThreshold float64
}

// DefaultConfig preserves the historical behavior: ambiguous merges
// replace the whole document, and only a full-overlap fragment modifies.
func DefaultConfig() Config {
	return Config{
		AmbiguityDefault: ActionReplace,
		ModifyThreshold:  1.0,
	}
}

// Result is the resolver's output: the action taken, the merged document,
// and whether the classification was ambiguous (recorded in snapshot
// metadata for later inspection).
type Result struct {
	Action    Action
	Document  *Document
	Ambiguous bool
}

// Resolver classifies and applies merge actions. It is a pure function of
// its inputs — replaying the same (previous, fragment, signal) triple
// always yields the same result.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver with the given policy. Zero-value config
// fields fall back to the defaults.
func NewResolver(cfg Config) *Resolver {
	if cfg.AmbiguityDefault == "" {
		cfg.AmbiguityDefault = ActionReplace
	}
	if cfg.ModifyThreshold <= 0 {
		cfg.ModifyThreshold = 1.0
	}
	return &Resolver{cfg: cfg}
}

// Resolve decides how the fragment relates to the previous document and
// applies that relation. prev may be nil (no document on screen).
func (r *Resolver) Resolve(prev, fragment *Document, sig Signal) Result {
	if fragment.Empty() {
		// Nothing generated: keep the prior document untouched.
		return Result{Action: ActionModify, Document: prev}
	}
	if prev.Empty() {
		return Result{Action: ActionNew, Document: fragment}
	}

	prevIDs := make(map[string]bool, len(prev.Blocks))
	for _, b := range prev.Blocks {
		prevIDs[b.ID] = true
	}

	overlap := 0
	for _, b := range fragment.Blocks {
		if prevIDs[b.ID] {
			overlap++
		}
	}

	switch {
	case overlap == len(fragment.Blocks) && len(fragment.Blocks) >= len(prev.Blocks):
		// Fragment covers every prior block: it supersedes the document.
		return Result{Action: ActionReplace, Document: fragment}

	case overlap == len(fragment.Blocks):
		return Result{Action: ActionModify, Document: applyModify(prev, fragment)}

	case overlap == 0 && sig.RelatedToCurrent:
		return Result{Action: ActionAdd, Document: applyAdd(prev, fragment)}

	case overlap == 0:
		return Result{Action: ActionReplace, Document: fragment}
	}

	// Partial overlap: ambiguous. Above the threshold we trust the matched
	// subset and modify; below it the configured default applies.
	ratio := float64(overlap) / float64(len(fragment.Blocks))
	if ratio >= r.cfg.ModifyThreshold {
		return Result{Action: ActionModify, Document: applyModify(prev, fragment), Ambiguous: true}
	}

	res := Result{Action: r.cfg.AmbiguityDefault, Ambiguous: true}
	switch r.cfg.AmbiguityDefault {
	case ActionAdd:
		res.Document = applyAdd(prev, fragment)
	case ActionModify:
		res.Document = applyModify(prev, fragment)
	default:
		res.Document = fragment
	}
	return res
}

// applyModify replaces matching blocks in place, preserves the rest, and
// appends fragment blocks the prior document does not have.
func applyModify(prev, fragment *Document) *Document {
	byID := make(map[string]Block, len(fragment.Blocks))
	for _, b := range fragment.Blocks {
		byID[b.ID] = b
	}

	merged := &Document{Blocks: make([]Block, 0, len(prev.Blocks))}
	for _, b := range prev.Blocks {
		if repl, ok := byID[b.ID]; ok {
			merged.Blocks = append(merged.Blocks, repl)
			delete(byID, b.ID)
			continue
		}
		merged.Blocks = append(merged.Blocks, b)
	}
	// Unmatched fragment blocks keep their original order.
	for _, b := range fragment.Blocks {
		if _, ok := byID[b.ID]; ok {
			merged.Blocks = append(merged.Blocks, b)
		}
	}
	return merged
}

// applyAdd composes the fragment alongside the prior document.
func applyAdd(prev, fragment *Document) *Document {
	merged := &Document{Blocks: make([]Block, 0, len(prev.Blocks)+len(fragment.Blocks))}
	merged.Blocks = append(merged.Blocks, prev.Blocks...)
	merged.Blocks = append(merged.Blocks, fragment.Blocks...)
	return merged
}

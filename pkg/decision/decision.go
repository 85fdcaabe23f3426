// Package decision defines the typed contract the reasoning engine emits
// per turn, and its closed-schema validation.
package decision

// ResponseFormat selects how the assistant answers a turn.
type ResponseFormat string

const (
	FormatText ResponseFormat = "text"
	FormatUI   ResponseFormat = "ui"
	FormatForm ResponseFormat = "form"
)

// LayoutIntent is the server-declared display sizing for a UI turn.
type LayoutIntent string

const (
	LayoutFull     LayoutIntent = "full"
	LayoutExtended LayoutIntent = "extended"
	LayoutPreview  LayoutIntent = "preview"
	LayoutHidden   LayoutIntent = "hidden"
)

// VisualizationType is the closed set of UI artifacts the engine may request.
type VisualizationType string

const (
	VisualizationTable       VisualizationType = "table"
	VisualizationBarChart    VisualizationType = "bar_chart"
	VisualizationLineChart   VisualizationType = "line_chart"
	VisualizationPieChart    VisualizationType = "pie_chart"
	VisualizationMetricCards VisualizationType = "metric_cards"
)

// ColumnFormat is the closed set of value formats for table columns.
type ColumnFormat string

const (
	ColumnFormatText     ColumnFormat = "text"
	ColumnFormatNumber   ColumnFormat = "number"
	ColumnFormatCurrency ColumnFormat = "currency"
	ColumnFormatPercent  ColumnFormat = "percent"
	ColumnFormatDate     ColumnFormat = "date"
)

// FormAction is the closed set of write operations a generated form may bind to.
type FormAction string

const (
	FormActionCreate FormAction = "create"
	FormActionUpdate FormAction = "update"
	FormActionDelete FormAction = "delete"
)

// ErrorKind classifies turn-level generation errors.
type ErrorKind string

const (
	ErrorOperationFailed     ErrorKind = "operation_failed"
	ErrorNeedsClarification  ErrorKind = "needs_clarification"
	ErrorRateLimited         ErrorKind = "rate_limited"
	ErrorUpstreamUnavailable ErrorKind = "upstream_unavailable"
)

// APICall is one business-system invocation the engine wants executed
// before the decision is finalized. Calls run in order, synchronously,
// within the same turn.
type APICall struct {
	TargetID   string         `json:"targetId"`
	Reason     string         `json:"reason"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Column describes one table column in a UISpec.
type Column struct {
	Key    string       `json:"key"`
	Label  string       `json:"label"`
	Format ColumnFormat `json:"format,omitempty"`
}

// UISpec is the visualization intent for responseFormat "ui".
type UISpec struct {
	Type            VisualizationType `json:"type"`
	Title           string            `json:"title,omitempty"`
	DataDescription string            `json:"dataDescription,omitempty"`
	Columns         []Column          `json:"columns,omitempty"`
	Highlights      []string          `json:"highlights,omitempty"`
	GroupBy         string            `json:"groupBy,omitempty"`
	SortBy          string            `json:"sortBy,omitempty"`
	Filter          string            `json:"filter,omitempty"`
}

// FormSpec is the form intent for responseFormat "form".
type FormSpec struct {
	Action       FormAction        `json:"action"`
	TargetID     string            `json:"targetId"`
	Title        string            `json:"title,omitempty"`
	Prefill      map[string]any    `json:"prefill,omitempty"`
	HiddenFields map[string]string `json:"hiddenFields,omitempty"`
}

// TurnError is the engine-reported failure for a turn. The turn still
// completes its stream (error event, then done).
type TurnError struct {
	Kind               ErrorKind `json:"kind"`
	Message            string    `json:"message"`
	ClarifyingQuestion string    `json:"clarifyingQuestion,omitempty"`
	Suggestions        []string  `json:"suggestions,omitempty"`
}

// OrchestrationDecision is the engine's complete output for one turn.
// TextResponse is always present — for ui/form turns it serves as the
// human-readable summary shown while the artifact is collapsed.
type OrchestrationDecision struct {
	ResponseFormat ResponseFormat `json:"responseFormat"`
	LayoutIntent   LayoutIntent   `json:"layoutIntent,omitempty"`
	TextResponse   string         `json:"textResponse"`
	APICalls       []APICall      `json:"apiCalls,omitempty"`
	UISpec         *UISpec        `json:"uiSpec,omitempty"`
	FormSpec       *FormSpec      `json:"formSpec,omitempty"`
	Error          *TurnError     `json:"error,omitempty"`
}

package decision

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SchemaError reports why a decision failed validation. It is a generation
// error, not a protocol error: callers surface it as an operation_failed
// turn error and still complete the stream.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("decision schema violation at '%s': %s", e.Field, e.Message)
}

func newSchemaError(field, message string) error {
	return &SchemaError{Field: field, Message: message}
}

// Parse decodes raw engine output into an OrchestrationDecision and
// validates it against the closed schema. Additional properties and
// unknown enum values are rejected rather than silently degraded.
func Parse(data []byte) (*OrchestrationDecision, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d OrchestrationDecision
	if err := dec.Decode(&d); err != nil {
		return nil, &SchemaError{Field: "$", Message: err.Error()}
	}
	if dec.More() {
		return nil, newSchemaError("$", "trailing content after decision object")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks enum membership and the cross-field invariants.
func (d *OrchestrationDecision) Validate() error {
	switch d.ResponseFormat {
	case FormatText, FormatUI, FormatForm:
	case "":
		return newSchemaError("responseFormat", "required")
	default:
		return newSchemaError("responseFormat", "unknown value "+string(d.ResponseFormat))
	}

	switch d.LayoutIntent {
	case "", LayoutFull, LayoutExtended, LayoutPreview, LayoutHidden:
	default:
		return newSchemaError("layoutIntent", "unknown value "+string(d.LayoutIntent))
	}

	if d.TextResponse == "" {
		return newSchemaError("textResponse", "required for every turn")
	}

	// Exactly one of uiSpec/formSpec is populated when the format requires it.
	switch d.ResponseFormat {
	case FormatUI:
		if d.UISpec == nil {
			return newSchemaError("uiSpec", "required when responseFormat is ui")
		}
		if d.FormSpec != nil {
			return newSchemaError("formSpec", "must be absent when responseFormat is ui")
		}
	case FormatForm:
		if d.FormSpec == nil {
			return newSchemaError("formSpec", "required when responseFormat is form")
		}
		if d.UISpec != nil {
			return newSchemaError("uiSpec", "must be absent when responseFormat is form")
		}
	case FormatText:
		if d.UISpec != nil || d.FormSpec != nil {
			return newSchemaError("responseFormat", "text turns carry neither uiSpec nor formSpec")
		}
	}

	for i, call := range d.APICalls {
		if call.TargetID == "" {
			return newSchemaError(fmt.Sprintf("apiCalls[%d].targetId", i), "required")
		}
	}

	if d.UISpec != nil {
		if err := d.UISpec.validate(); err != nil {
			return err
		}
	}
	if d.FormSpec != nil {
		if err := d.FormSpec.validate(); err != nil {
			return err
		}
	}
	if d.Error != nil {
		switch d.Error.Kind {
		case ErrorOperationFailed, ErrorNeedsClarification, ErrorRateLimited, ErrorUpstreamUnavailable:
		default:
			return newSchemaError("error.kind", "unknown value "+string(d.Error.Kind))
		}
	}

	return nil
}

func (s *UISpec) validate() error {
	switch s.Type {
	case VisualizationTable, VisualizationBarChart, VisualizationLineChart,
		VisualizationPieChart, VisualizationMetricCards:
	case "":
		return newSchemaError("uiSpec.type", "required")
	default:
		return newSchemaError("uiSpec.type", "unknown value "+string(s.Type))
	}

	for i, col := range s.Columns {
		if col.Key == "" {
			return newSchemaError(fmt.Sprintf("uiSpec.columns[%d].key", i), "required")
		}
		switch col.Format {
		case "", ColumnFormatText, ColumnFormatNumber, ColumnFormatCurrency,
			ColumnFormatPercent, ColumnFormatDate:
		default:
			return newSchemaError(
				fmt.Sprintf("uiSpec.columns[%d].format", i),
				"unknown value "+string(col.Format))
		}
	}
	return nil
}

func (s *FormSpec) validate() error {
	switch s.Action {
	case FormActionCreate, FormActionUpdate, FormActionDelete:
	case "":
		return newSchemaError("formSpec.action", "required")
	default:
		return newSchemaError("formSpec.action", "unknown value "+string(s.Action))
	}
	if s.TargetID == "" {
		return newSchemaError("formSpec.targetId", "required")
	}
	return nil
}

package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidDecisions(t *testing.T) {
	t.Run("text turn", func(t *testing.T) {
		d, err := Parse([]byte(`{
			"responseFormat": "text",
			"textResponse": "Revenue was flat quarter over quarter."
		}`))
		require.NoError(t, err)
		assert.Equal(t, FormatText, d.ResponseFormat)
		assert.Nil(t, d.UISpec)
		assert.Nil(t, d.FormSpec)
	})

	t.Run("ui turn with api calls", func(t *testing.T) {
		d, err := Parse([]byte(`{
			"responseFormat": "ui",
			"layoutIntent": "extended",
			"textResponse": "Here is the open invoice breakdown.",
			"apiCalls": [
				{"targetId": "erp.invoices.list", "reason": "fetch open invoices", "parameters": {"status": "open"}}
			],
			"uiSpec": {
				"type": "table",
				"title": "Open Invoices",
				"columns": [
					{"key": "number", "label": "Invoice"},
					{"key": "amount", "label": "Amount", "format": "currency"}
				],
				"sortBy": "amount"
			}
		}`))
		require.NoError(t, err)
		assert.Equal(t, FormatUI, d.ResponseFormat)
		assert.Equal(t, LayoutExtended, d.LayoutIntent)
		require.NotNil(t, d.UISpec)
		assert.Equal(t, VisualizationTable, d.UISpec.Type)
		require.Len(t, d.APICalls, 1)
		assert.Equal(t, "erp.invoices.list", d.APICalls[0].TargetID)
	})

	t.Run("form turn", func(t *testing.T) {
		d, err := Parse([]byte(`{
			"responseFormat": "form",
			"textResponse": "Fill in the new customer details.",
			"formSpec": {
				"action": "create",
				"targetId": "erp.customers.create",
				"title": "New Customer",
				"prefill": {"country": "DE"},
				"hiddenFields": {"source": "assistant"}
			}
		}`))
		require.NoError(t, err)
		require.NotNil(t, d.FormSpec)
		assert.Equal(t, FormActionCreate, d.FormSpec.Action)
	})

	t.Run("error turn still validates", func(t *testing.T) {
		d, err := Parse([]byte(`{
			"responseFormat": "text",
			"textResponse": "I could not complete that.",
			"error": {"kind": "needs_clarification", "message": "ambiguous period", "clarifyingQuestion": "Which quarter?"}
		}`))
		require.NoError(t, err)
		require.NotNil(t, d.Error)
		assert.Equal(t, ErrorNeedsClarification, d.Error.Kind)
	})
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "unknown top-level property",
			input:     `{"responseFormat":"text","textResponse":"x","surprise":true}`,
			wantField: "$",
		},
		{
			name:      "unknown responseFormat enum value",
			input:     `{"responseFormat":"markdown","textResponse":"x"}`,
			wantField: "responseFormat",
		},
		{
			name:      "unknown layoutIntent enum value",
			input:     `{"responseFormat":"text","layoutIntent":"giant","textResponse":"x"}`,
			wantField: "layoutIntent",
		},
		{
			name:      "missing textResponse",
			input:     `{"responseFormat":"text"}`,
			wantField: "textResponse",
		},
		{
			name:      "ui turn without uiSpec",
			input:     `{"responseFormat":"ui","textResponse":"x"}`,
			wantField: "uiSpec",
		},
		{
			name: "ui turn with both specs",
			input: `{"responseFormat":"ui","textResponse":"x",
				"uiSpec":{"type":"table"},
				"formSpec":{"action":"create","targetId":"t"}}`,
			wantField: "formSpec",
		},
		{
			name:      "form turn without formSpec",
			input:     `{"responseFormat":"form","textResponse":"x"}`,
			wantField: "formSpec",
		},
		{
			name:      "text turn with uiSpec",
			input:     `{"responseFormat":"text","textResponse":"x","uiSpec":{"type":"table"}}`,
			wantField: "responseFormat",
		},
		{
			name:      "unknown chart type",
			input:     `{"responseFormat":"ui","textResponse":"x","uiSpec":{"type":"sankey"}}`,
			wantField: "uiSpec.type",
		},
		{
			name: "unknown column format",
			input: `{"responseFormat":"ui","textResponse":"x",
				"uiSpec":{"type":"table","columns":[{"key":"a","label":"A","format":"emoji"}]}}`,
			wantField: "uiSpec.columns[0].format",
		},
		{
			name:      "unknown form action",
			input:     `{"responseFormat":"form","textResponse":"x","formSpec":{"action":"merge","targetId":"t"}}`,
			wantField: "formSpec.action",
		},
		{
			name:      "api call without target",
			input:     `{"responseFormat":"text","textResponse":"x","apiCalls":[{"reason":"r"}]}`,
			wantField: "apiCalls[0].targetId",
		},
		{
			name:      "unknown error kind",
			input:     `{"responseFormat":"text","textResponse":"x","error":{"kind":"exploded","message":"m"}}`,
			wantField: "error.kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantField, schemaErr.Field)
		})
	}
}

func TestParse_RejectsNestedUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{
		"responseFormat": "ui",
		"textResponse": "x",
		"uiSpec": {"type": "table", "animation": "spin"}
	}`))
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

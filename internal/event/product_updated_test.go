package event_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuxmai/product-updated-sink/internal/event"
)

// decodeBody mirrors the HTTP layer's decoding: numbers arrive as json.Number.
func decodeBody(t *testing.T, raw string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var body any
	require.NoError(t, dec.Decode(&body))
	return body
}

func TestValidateProductUpdated_Accepted(t *testing.T) {
	body := decodeBody(t, `{
		"id": "  p1  ",
		"name": "Widget",
		"pricePence": 500,
		"description": "",
		"updatedAt": "2024-01-01T00:00:00.000Z"
	}`)

	ev, violations := event.ValidateProductUpdated(body)

	require.Empty(t, violations)
	// Fields are carried verbatim; trimming is only used for the emptiness check.
	assert.Equal(t, event.ProductUpdated{
		ID:          "  p1  ",
		Name:        "Widget",
		PricePence:  500,
		Description: "",
		UpdatedAt:   "2024-01-01T00:00:00.000Z",
	}, ev)
}

func TestValidateProductUpdated_NonObjectBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string", `"hello"`},
		{"number", `42`},
		{"null", `null`},
		{"array", `[{"id":"p1"}]`},
		{"bool", `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, violations := event.ValidateProductUpdated(decodeBody(t, tt.raw))
			assert.Equal(t, []string{event.MsgNotObject}, violations)
		})
	}
}

func TestValidateProductUpdated_FieldRules(t *testing.T) {
	valid := map[string]any{
		"id":          "p1",
		"name":        "Widget",
		"pricePence":  json.Number("500"),
		"description": "a widget",
		"updatedAt":   "2024-01-01T00:00:00.000Z",
	}

	tests := []struct {
		name    string
		mutate  func(m map[string]any)
		want    []string
		wantErr bool
	}{
		{
			name:   "missing id",
			mutate: func(m map[string]any) { delete(m, "id") },
			want:   []string{event.MsgID},
		},
		{
			name:   "whitespace only id",
			mutate: func(m map[string]any) { m["id"] = "  " },
			want:   []string{event.MsgID},
		},
		{
			name:   "non-string name",
			mutate: func(m map[string]any) { m["name"] = json.Number("7") },
			want:   []string{event.MsgName},
		},
		{
			name:   "negative pricePence",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("-1") },
			want:   []string{event.MsgPricePence},
		},
		{
			name:   "fractional pricePence",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("3.5") },
			want:   []string{event.MsgPricePence},
		},
		{
			name:   "string pricePence",
			mutate: func(m map[string]any) { m["pricePence"] = "500" },
			want:   []string{event.MsgPricePence},
		},
		{
			name:   "zero pricePence is fine",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("0") },
			want:   nil,
		},
		{
			name:   "integer-valued float pricePence is fine",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("5e2") },
			want:   nil,
		},
		{
			name:   "pricePence beyond int64 range",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("9223372036854775808") },
			want:   []string{event.MsgPricePence},
		},
		{
			name:   "max int64 pricePence is fine",
			mutate: func(m map[string]any) { m["pricePence"] = json.Number("9223372036854775807") },
			want:   nil,
		},
		{
			name:   "missing description",
			mutate: func(m map[string]any) { delete(m, "description") },
			want:   []string{event.MsgDescription},
		},
		{
			name:   "non-string description",
			mutate: func(m map[string]any) { m["description"] = nil },
			want:   []string{event.MsgDescription},
		},
		{
			name:   "date without time component",
			mutate: func(m map[string]any) { m["updatedAt"] = "2024-01-01" },
			want:   []string{event.MsgUpdatedAt},
		},
		{
			name:   "timestamp without milliseconds",
			mutate: func(m map[string]any) { m["updatedAt"] = "2024-01-01T00:00:00Z" },
			want:   []string{event.MsgUpdatedAt},
		},
		{
			name:   "timestamp with offset notation",
			mutate: func(m map[string]any) { m["updatedAt"] = "2024-01-01T00:00:00.000+00:00" },
			want:   []string{event.MsgUpdatedAt},
		},
		{
			name:   "garbage timestamp",
			mutate: func(m map[string]any) { m["updatedAt"] = "bad" },
			want:   []string{event.MsgUpdatedAt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := make(map[string]any, len(valid))
			for k, v := range valid {
				body[k] = v
			}
			tt.mutate(body)

			_, violations := event.ValidateProductUpdated(body)
			assert.Equal(t, tt.want, violations)
		})
	}
}

func TestValidateProductUpdated_CollectsAllViolationsInOrder(t *testing.T) {
	body := decodeBody(t, `{
		"id": "",
		"name": 3,
		"pricePence": -5,
		"description": null,
		"updatedAt": "bad"
	}`)

	_, violations := event.ValidateProductUpdated(body)

	assert.Equal(t, []string{
		event.MsgID,
		event.MsgName,
		event.MsgPricePence,
		event.MsgDescription,
		event.MsgUpdatedAt,
	}, violations)
}

package quotegen

import (
	"encoding/json"
	"testing"
)

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"integer", `7`, 7},
		{"float", `2.5`, 2.5},
		{"negative", `-3.25`, -3.25},
		{"numeric string", `"12.75"`, 12.75},
		{"numeric string with spaces", `" 8 "`, 8},
		{"scientific notation", `1e3`, 1000},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"trailing garbage", `"12abc"`, 0},
		{"boolean", `true`, 0},
		{"object", `{"x":1}`, 0},
		{"array", `[1,2]`, 0},
		{"overflow to infinity", `"1e999"`, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n FlexNumber
			if err := json.Unmarshal([]byte(tt.raw), &n); err != nil {
				t.Fatalf("UnmarshalJSON(%s) returned error: %v", tt.raw, err)
			}
			if n.Float64() != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.raw, n.Float64(), tt.want)
			}
		})
	}
}

func TestFlexNumber_AbsentFieldIsZero(t *testing.T) {
	t.Parallel()

	var item LineItem
	if err := json.Unmarshal([]byte(`{"passes": 2}`), &item); err != nil {
		t.Fatalf("decoding item: %v", err)
	}

	if item.PathLengthArea != 0 {
		t.Errorf("PathLengthArea = %v, want 0", item.PathLengthArea)
	}
	if item.Passes != 2 {
		t.Errorf("Passes = %v, want 2", item.Passes)
	}
}

func TestQuoteRequest_DecodesFullPayload(t *testing.T) {
	t.Parallel()

	body := `{
		"customerName": "Acme Fabrication",
		"description": "2mm steel laser cut",
		"notes": "Delivery in **5 days**",
		"rate": 10,
		"items": [{"pathLengthArea": 5, "thickness": 2, "passes": 2, "quantity": 3}]
	}`

	var req QuoteRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decoding request: %v", err)
	}

	if req.CustomerName != "Acme Fabrication" {
		t.Errorf("CustomerName = %q", req.CustomerName)
	}
	if req.Description != "2mm steel laser cut" {
		t.Errorf("Description = %q", req.Description)
	}
	if req.Notes == "" {
		t.Error("Notes not decoded")
	}
	if len(req.Items) != 1 || req.Items[0].Thickness != 2 {
		t.Errorf("Items = %+v", req.Items)
	}
}

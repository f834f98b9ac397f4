package quotegen

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestComputeQuote_SingleItemScenario(t *testing.T) {
	t.Parallel()

	req := QuoteRequest{
		Rate: 10,
		Items: []LineItem{
			{PathLengthArea: 5, Passes: 2, Quantity: 3},
		},
	}

	priced := ComputeQuote(req)

	if len(priced.Items) != 1 {
		t.Fatalf("got %d priced items, want 1", len(priced.Items))
	}
	item := priced.Items[0]
	if item.Index != 1 {
		t.Errorf("Index = %d, want 1", item.Index)
	}
	if item.UnitTotal != 100 {
		t.Errorf("UnitTotal = %v, want 100", item.UnitTotal)
	}
	if item.ItemTotal != 300 {
		t.Errorf("ItemTotal = %v, want 300", item.ItemTotal)
	}
	if priced.FinalTotal != 300 {
		t.Errorf("FinalTotal = %v, want 300", priced.FinalTotal)
	}
}

func TestComputeQuote_EmptyItems(t *testing.T) {
	t.Parallel()

	priced := ComputeQuote(QuoteRequest{Rate: 42})

	if len(priced.Items) != 0 {
		t.Errorf("got %d priced items, want 0", len(priced.Items))
	}
	if priced.FinalTotal != 0 {
		t.Errorf("FinalTotal = %v, want 0", priced.FinalTotal)
	}
}

func TestComputeQuote_FinalTotalIsSumInOrder(t *testing.T) {
	t.Parallel()

	req := QuoteRequest{
		Rate: 2,
		Items: []LineItem{
			{PathLengthArea: 1, Passes: 1, Quantity: 1}, // 2
			{PathLengthArea: 3, Passes: 2, Quantity: 2}, // 24
			{PathLengthArea: 0.5, Passes: 4, Quantity: 10}, // 40
		},
	}

	priced := ComputeQuote(req)

	var sum float64
	for i, item := range priced.Items {
		if item.Index != i+1 {
			t.Errorf("Items[%d].Index = %d, want %d", i, item.Index, i+1)
		}
		sum += item.ItemTotal
	}
	if priced.FinalTotal != sum {
		t.Errorf("FinalTotal = %v, want sum of item totals %v", priced.FinalTotal, sum)
	}
	if math.Abs(priced.FinalTotal-66) > 1e-9 {
		t.Errorf("FinalTotal = %v, want 66", priced.FinalTotal)
	}
}

func TestComputeQuote_ZeroedFieldsProduceZeroRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item LineItem
	}{
		{"all zero", LineItem{}},
		{"missing passes", LineItem{PathLengthArea: 5, Quantity: 3}},
		{"missing quantity", LineItem{PathLengthArea: 5, Passes: 2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			priced := ComputeQuote(QuoteRequest{Rate: 10, Items: []LineItem{tt.item}})
			if priced.Items[0].ItemTotal != 0 {
				t.Errorf("ItemTotal = %v, want 0", priced.Items[0].ItemTotal)
			}
			if priced.FinalTotal != 0 {
				t.Errorf("FinalTotal = %v, want 0", priced.FinalTotal)
			}
		})
	}
}

func TestComputeQuote_ThicknessDoesNotAffectPricing(t *testing.T) {
	t.Parallel()

	thin := ComputeQuote(QuoteRequest{Rate: 10, Items: []LineItem{{PathLengthArea: 5, Thickness: 1, Passes: 2, Quantity: 3}}})
	thick := ComputeQuote(QuoteRequest{Rate: 10, Items: []LineItem{{PathLengthArea: 5, Thickness: 99, Passes: 2, Quantity: 3}}})

	if !reflect.DeepEqual(thin, thick) {
		t.Errorf("thickness changed pricing: %+v vs %+v", thin, thick)
	}
}

func TestComputeQuote_Deterministic(t *testing.T) {
	t.Parallel()

	req := QuoteRequest{
		CustomerName: "Acme",
		Description:  "cutting",
		Rate:         7.5,
		Items: []LineItem{
			{PathLengthArea: 12.25, Passes: 3, Quantity: 4},
			{PathLengthArea: 0.1, Passes: 1, Quantity: 1000},
		},
	}

	first := ComputeQuote(req)
	second := ComputeQuote(req)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeQuote_LenientJSONNeverFails(t *testing.T) {
	t.Parallel()

	body := `{
		"customerName": "Acme",
		"rate": "10",
		"items": [
			{"pathLengthArea": "5", "passes": 2, "quantity": "3"},
			{"pathLengthArea": "garbage", "passes": null, "quantity": {}},
			{}
		]
	}`

	var req QuoteRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decoding lenient body: %v", err)
	}

	priced := ComputeQuote(req)

	if priced.Items[0].ItemTotal != 300 {
		t.Errorf("Items[0].ItemTotal = %v, want 300", priced.Items[0].ItemTotal)
	}
	if priced.Items[1].ItemTotal != 0 {
		t.Errorf("Items[1].ItemTotal = %v, want 0", priced.Items[1].ItemTotal)
	}
	if priced.Items[2].ItemTotal != 0 {
		t.Errorf("Items[2].ItemTotal = %v, want 0", priced.Items[2].ItemTotal)
	}
	if priced.FinalTotal != 300 {
		t.Errorf("FinalTotal = %v, want 300", priced.FinalTotal)
	}
}

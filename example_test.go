package quotegen_test

import (
	"fmt"

	quotegen "github.com/Dhanushcdivakar/quote-generator"
)

func ExampleComputeQuote() {
	priced := quotegen.ComputeQuote(quotegen.QuoteRequest{
		CustomerName: "Acme Fabrication",
		Description:  "2mm steel laser cut",
		Rate:         10,
		Items: []quotegen.LineItem{
			{PathLengthArea: 5, Passes: 2, Quantity: 3},
			{PathLengthArea: 1.5, Passes: 1, Quantity: 2},
		},
	})

	for _, item := range priced.Items {
		fmt.Printf("row %d: unit %.2f, total %.2f\n", item.Index, item.UnitTotal, item.ItemTotal)
	}
	fmt.Printf("final: %.2f\n", priced.FinalTotal)
	// Output:
	// row 1: unit 100.00, total 300.00
	// row 2: unit 15.00, total 30.00
	// final: 330.00
}

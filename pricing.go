package quotegen

// ComputeQuote prices every line item and accumulates the final total.
//
// For each item, the unit total is pathLengthArea * passes * rate and the
// item total is the unit total * quantity. The final total is the plain
// running sum in input order with no intermediate rounding.
//
// This stage never fails: numeric leniency is handled at decode time by
// FlexNumber, so malformed input arrives here as zeros and produces
// zero-valued rows. The function is pure and deterministic.
func ComputeQuote(req QuoteRequest) PricedQuote {
	rate := req.Rate.Float64()

	priced := PricedQuote{
		Items: make([]PricedLineItem, 0, len(req.Items)),
	}

	for i, item := range req.Items {
		unitTotal := item.PathLengthArea.Float64() * item.Passes.Float64() * rate
		itemTotal := unitTotal * item.Quantity.Float64()

		priced.Items = append(priced.Items, PricedLineItem{
			Index:     i + 1,
			Quantity:  item.Quantity.Float64(),
			UnitTotal: unitTotal,
			ItemTotal: itemTotal,
		})
		priced.FinalTotal += itemTotal
	}

	return priced
}

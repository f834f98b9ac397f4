package quotegen

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that decodes leniently from JSON. Numbers, numeric
// strings, null, absent fields, and garbage all decode without error;
// anything that is not a finite number becomes zero.
//
// This is the one defined coercion rule for every numeric field in a quote
// request: malformed input silently degrades to zero-valued rows instead of
// rejecting the submission.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = FlexNumber(lenientFloat(data))
	return nil
}

// Float64 returns the underlying value.
func (n FlexNumber) Float64() float64 { return float64(n) }

// lenientFloat parses raw JSON bytes into a float64, coercing anything
// non-numeric (including infinities from overflow) to zero.
func lenientFloat(data []byte) float64 {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return 0
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return 0
		}
		s = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// LineItem is one row of cutting work in a quote request.
type LineItem struct {
	// PathLengthArea is the path length or area being cut.
	PathLengthArea FlexNumber `json:"pathLengthArea"`

	// Thickness is collected from the client but does not participate in
	// the pricing formula. It is accepted so older clients keep working.
	Thickness FlexNumber `json:"thickness"`

	// Passes is how many times the path is traversed.
	Passes FlexNumber `json:"passes"`

	// Quantity is how many identical units are billed.
	Quantity FlexNumber `json:"quantity"`
}

// QuoteRequest is one quote submission. It has no identity and is discarded
// once the generated document has been returned.
type QuoteRequest struct {
	CustomerName string `json:"customerName"`

	// Description applies to every rendered line item.
	Description string `json:"description"`

	// Notes is optional Markdown rendered into the document's notes
	// section, if the template has one.
	Notes string `json:"notes"`

	// Rate is the monetary rate per unit, uniform across all items.
	Rate FlexNumber `json:"rate"`

	// Items keep their insertion order; it defines row order and the
	// 1-based row index shown on the document.
	Items []LineItem `json:"items"`
}

// PricedLineItem is a line item with its derived amounts. Amounts are
// recomputed on every render and never stored.
type PricedLineItem struct {
	// Index is the 1-based position in the request's item sequence.
	Index int

	Quantity float64

	// UnitTotal is pathLengthArea * passes * rate, unrounded.
	UnitTotal float64

	// ItemTotal is UnitTotal * quantity, unrounded.
	ItemTotal float64
}

// PricedQuote is the pricing engine's output: priced rows in input order and
// their running-sum total. Rounding happens only at display time.
type PricedQuote struct {
	Items      []PricedLineItem
	FinalTotal float64
}

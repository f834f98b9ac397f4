package quotegen

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/Dhanushcdivakar/quote-generator/internal/money"
)

// Template tokens. Exact spellings are an external contract: template files
// may be versioned and shared independently of this code.
const (
	tokenLogo         = "{{logoBase64}}"
	tokenQuoteNumber  = "{{quoteNumber}}"
	tokenDate         = "{{date}}"
	tokenDueDate      = "{{dueDate}}"
	tokenCustomerName = "{{customerName}}"
	tokenItems        = "{{items}}"
	tokenFinalTotal   = "{{finalTotal}}"
	tokenNotes        = "{{notes}}"
)

// dueDateOffset is how far in the future the quote's due date lies.
const dueDateOffset = 30 * 24 * time.Hour

// documentAssembler substitutes computed values into the quote template.
type documentAssembler struct {
	currency   string
	dateFormat string
	now        func() time.Time
}

// tokenValue binds one template token to its substituted value.
type tokenValue struct {
	token string
	value string
}

// Assemble replaces every template token with its value. Each token is
// substituted exactly once, across all of its occurrences; tokens the
// template does not contain are silently skipped.
func (a *documentAssembler) Assemble(tmpl string, req QuoteRequest, priced PricedQuote, logoRef, notesHTML string) string {
	now := a.now()

	substitutions := []tokenValue{
		{tokenLogo, logoRef},
		{tokenQuoteNumber, quoteNumber(now)},
		{tokenDate, now.Format(a.dateFormat)},
		{tokenDueDate, now.Add(dueDateOffset).Format(a.dateFormat)},
		{tokenCustomerName, html.EscapeString(req.CustomerName)},
		{tokenItems, a.itemRows(req.Description, priced)},
		{tokenFinalTotal, money.Format(a.currency, priced.FinalTotal)},
		{tokenNotes, notesHTML},
	}

	out := tmpl
	for _, sub := range substitutions {
		out = strings.ReplaceAll(out, sub.token, sub.value)
	}
	return out
}

// itemRows builds the table-rows fragment: one <tr> per priced item with the
// 1-based index, the shared description, the quantity, and the formatted unit
// and item totals. An empty item sequence yields an empty fragment.
func (a *documentAssembler) itemRows(description string, priced PricedQuote) string {
	var b strings.Builder
	for _, item := range priced.Items {
		fmt.Fprintf(&b, `
        <tr>
          <td>%d</td>
          <td>%s</td>
          <td>%s</td>
          <td>%s</td>
          <td>%s</td>
        </tr>`,
			item.Index,
			html.EscapeString(description),
			money.Bare(item.Quantity),
			money.Format(a.currency, item.UnitTotal),
			money.Format(a.currency, item.ItemTotal),
		)
	}
	return b.String()
}

// quoteNumber derives a display label from the current time: "Q-" followed by
// the last four digits of the unix-millisecond timestamp. It is not unique
// and must never be treated as a business identifier.
func quoteNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 4 {
		ms = ms[len(ms)-4:]
	}
	return "Q-" + ms
}

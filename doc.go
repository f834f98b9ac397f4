// Package quotegen turns quote requests into PDF quote documents using
// headless Chrome.
//
// # Quick Start
//
// Create a service, generate a quote, and close when done:
//
//	svc := quotegen.New()
//	defer svc.Close()
//
//	pdf, err := svc.Generate(ctx, quotegen.QuoteRequest{
//	    CustomerName: "Acme Fabrication",
//	    Description:  "2mm steel laser cut",
//	    Rate:         10,
//	    Items: []quotegen.LineItem{
//	        {PathLengthArea: 5, Passes: 2, Quantity: 3},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("quote.pdf", pdf, 0644)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Pricing: each line item is priced as pathLengthArea * passes * rate,
//     multiplied by quantity, and summed into the final total.
//  2. Asset loading: the HTML template (required) and the logo image
//     (optional, falling back to a placeholder reference).
//  3. Token substitution: a fixed set of {{placeholder}} tokens is replaced
//     with priced rows, totals, dates, and the quote number.
//  4. PDF rendering via headless Chrome (go-rod), A4 with print backgrounds.
//
// Numeric request fields are deliberately lenient: absent, null, or
// non-numeric values decode as zero and never fail the request.
//
// # Parallel Processing
//
// Each Service owns one browser instance. For concurrent submissions, use
// ServicePool to bound the number of instances:
//
//	pool := quotegen.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	pdf, err := svc.Generate(ctx, req)
//
// # Custom Assets
//
// The built-in template ships embedded in the binary. Point an AssetLoader at
// a directory containing template.html and logo.png to override it:
//
//	loader, err := quotegen.NewAssetLoader("/etc/quotegen/assets")
//	svc := quotegen.New(quotegen.WithAssetLoader(loader))
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package quotegen

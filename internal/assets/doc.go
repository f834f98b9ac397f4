// Package assets loads the quote template and logo image, preferring a
// configured directory and falling back to the embedded defaults.
package assets

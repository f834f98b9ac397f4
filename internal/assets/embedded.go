package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/quote.html
var templates embed.FS

// EmbeddedLoader loads assets compiled into the binary. It ships the default
// quote template but no logo; logo handling is a deployment concern.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate returns the embedded default quote template.
func (e *EmbeddedLoader) LoadTemplate() (string, error) {
	content, err := templates.ReadFile("templates/quote.html")
	if err != nil {
		return "", fmt.Errorf("%w: embedded quote template: %v", ErrTemplateNotFound, err)
	}
	return string(content), nil
}

// LoadLogo always reports not found; no logo is embedded.
func (e *EmbeddedLoader) LoadLogo() (string, error) {
	return "", fmt.Errorf("%w: no embedded logo", ErrLogoNotFound)
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)

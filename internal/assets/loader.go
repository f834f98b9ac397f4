package assets

// Asset file names looked up inside a custom asset directory.
const (
	TemplateFileName = "template.html"
	LogoFileName     = "logo.png"
)

// Loader loads the quote template and the logo image.
type Loader interface {
	// LoadTemplate returns the quote template HTML.
	// Returns ErrTemplateNotFound if no template is available.
	LoadTemplate() (string, error)

	// LoadLogo returns the logo as an embeddable data URI.
	// Returns ErrLogoNotFound if no logo is available.
	LoadLogo() (string, error)
}

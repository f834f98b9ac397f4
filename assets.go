package quotegen

import (
	"errors"

	"github.com/Dhanushcdivakar/quote-generator/internal/assets"
)

// AssetLoader defines the contract for loading the quote template and logo.
// Implementations may load from filesystem, embedded assets, S3, database,
// etc. The library provides NewAssetLoader() for filesystem-based loading
// with fallback to the embedded default template.
type AssetLoader interface {
	// LoadTemplate loads the quote template HTML. A failure here is fatal
	// to generation: there is no product without a template.
	LoadTemplate() (string, error)

	// LoadLogo loads the logo as an embeddable data URI. A failure here is
	// recoverable: the service substitutes its placeholder reference.
	LoadLogo() (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, only the embedded template is used.
// If basePath is set, it should contain template.html and logo.png; custom
// assets take precedence with fallback to the embedded template.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable
// directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps the internal Resolver to surface public errors.
type assetLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *assetLoaderAdapter) LoadTemplate() (string, error) {
	content, err := a.resolver.LoadTemplate()
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadLogo() (string, error) {
	uri, err := a.resolver.LoadLogo()
	if err != nil {
		return "", convertAssetError(err)
	}
	return uri, nil
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateUnavailable, err)
	case errors.Is(err, assets.ErrLogoNotFound):
		return wrapError(ErrLogoNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError preserves the original message while matching the public
// sentinel under errors.Is. Internal sentinels stay internal.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

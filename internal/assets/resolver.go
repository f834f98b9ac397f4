package assets

import "errors"

// Resolver combines a custom filesystem loader with the embedded defaults.
// When a custom directory is configured it is tried first; the embedded
// template is the fallback for "not found" only, never for I/O errors.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath means embedded
// assets only. Returns ErrInvalidBasePath if customBasePath is set but not a
// readable directory.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate tries the custom directory first, then the embedded default.
func (r *Resolver) LoadTemplate() (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate()
	}

	content, err := r.custom.LoadTemplate()
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return r.embedded.LoadTemplate()
}

// LoadLogo loads the logo from the custom directory. There is no embedded
// logo, so without a custom directory it reports not found; callers treat
// that as the cue to use their placeholder reference.
func (r *Resolver) LoadLogo() (string, error) {
	if r.custom == nil {
		return r.embedded.LoadLogo()
	}

	uri, err := r.custom.LoadLogo()
	if err == nil {
		return uri, nil
	}
	if !errors.Is(err, ErrLogoNotFound) {
		return "", err
	}
	return r.embedded.LoadLogo()
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)

package assets

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a base directory containing
// template.html and logo.png.
type FilesystemLoader struct {
	base string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at base.
// Returns ErrInvalidBasePath if base is not a readable directory.
func NewFilesystemLoader(base string) (*FilesystemLoader, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, base)
	}
	return &FilesystemLoader{base: base}, nil
}

// LoadTemplate reads template.html from the base directory.
func (f *FilesystemLoader) LoadTemplate() (string, error) {
	path := filepath.Join(f.base, TemplateFileName)
	content, err := os.ReadFile(path) // #nosec G304 -- path is rooted at the configured asset dir
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(content), nil
}

// LoadLogo reads logo.png from the base directory and returns it as a
// data URI suitable for an <img src> attribute.
func (f *FilesystemLoader) LoadLogo() (string, error) {
	path := filepath.Join(f.base, LogoFileName)
	content, err := os.ReadFile(path) // #nosec G304 -- path is rooted at the configured asset dir
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return "", fmt.Errorf("reading logo %s: %w", path, err)
	}
	return DataURI(content), nil
}

// DataURI encodes image bytes as a base64 data URI, sniffing the media type
// from the content.
func DataURI(content []byte) string {
	mediaType := http.DetectContentType(content)
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)

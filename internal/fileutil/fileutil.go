// Package fileutil provides file utility functions for the render pipeline.
package fileutil

import (
	"fmt"
	"os"
)

// WriteTempFile creates a temporary HTML file with the given content.
// Returns the file path and a cleanup function to remove the file.
// The assembled document is written to disk so headless Chrome can load it
// over file:// instead of a data URL, which has size limits.
func WriteTempFile(content string) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "quotegen-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

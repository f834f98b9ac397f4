package quotegen

import "errors"

// Sentinel errors for library operations.
var (
	// ErrTemplateUnavailable means the quote template could not be loaded.
	// There is no product without a template, so generation aborts before
	// any browser work is started.
	ErrTemplateUnavailable = errors.New("quote template unavailable")

	ErrNotesRender   = errors.New("notes rendering failed")
	ErrPDFGeneration = errors.New("PDF generation failed")

	// Browser lifecycle errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrLogoNotFound     = errors.New("logo not found")
)

package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrLogoNotFound     = errors.New("logo not found")
	ErrInvalidBasePath  = errors.New("invalid asset base path")
)

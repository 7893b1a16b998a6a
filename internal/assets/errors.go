package assets

import "errors"

// Sentinel errors for stylesheet lookup.
var (
	// ErrStyleNotFound means no loader has a stylesheet with that name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName rejects names that are not a bare style identifier.
	ErrInvalidAssetName = errors.New("invalid style name")

	// ErrInvalidBasePath means the --asset-path directory is unusable.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	// ErrAssetRead wraps I/O failures on a stylesheet that does exist.
	ErrAssetRead = errors.New("failed to read stylesheet")

	// ErrPathTraversal means a stylesheet resolved outside the asset directory.
	ErrPathTraversal = errors.New("stylesheet outside asset directory")
)

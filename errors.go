package mathmark

import (
	"errors"

	"github.com/alnah/go-mathmark/internal/assets"
)

// Sentinel errors for library operations.
var (
	ErrNativeBackendUnavailable = errors.New("native typesetting backend is not available")
	ErrUnknownBackend           = errors.New("unknown backend")
	ErrRenderPanic              = errors.New("render stage panicked")

	// Markdown conversion errors.
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = assets.ErrStyleNotFound
)

// renderFailedCode tags render failures handed to the Logger.
const renderFailedCode = "MATH_RENDER_FAILED"

package mathmark

import (
	"fmt"
	"log/slog"

	goerrors "github.com/goliatone/go-errors"

	"github.com/alnah/go-mathmark/internal/pipeline"
)

// Logger receives render failures. *slog.Logger and the go-logger
// glog.Logger both satisfy it.
type Logger interface {
	Error(msg string, args ...any)
}

// slogDefault forwards to whatever slog.Default() is at call time, so a
// later slog.SetDefault still takes effect for the shared renderer.
type slogDefault struct{}

func (slogDefault) Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}

// Renderer runs the math stages over text. It holds no mutable state and is
// safe for concurrent use.
type Renderer struct {
	backend Backend
	engine  pipeline.Engine
	stages  []pipeline.Stage
	logger  Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets where render failures are reported.
// Panics if logger is nil (programmer error).
func WithLogger(logger Logger) Option {
	if logger == nil {
		panic("mathmark: WithLogger logger must not be nil")
	}
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithBackend overrides the probed backend.
func WithBackend(b Backend) Option {
	return func(r *Renderer) {
		r.backend = b
	}
}

// NewRenderer creates a Renderer. Without options it uses the probed backend
// and logs through slog.Default().
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		backend: ProbeBackend(),
		logger:  slogDefault{},
	}

	for _, opt := range opts {
		opt(r)
	}

	engine, err := engineFor(r.backend)
	if err != nil {
		return nil, err
	}
	r.engine = engine
	r.stages = pipeline.MathStages(engine)

	return r, nil
}

// engineFor resolves the formula engine once, at construction.
func engineFor(b Backend) (pipeline.Engine, error) {
	switch b {
	case BackendFallback:
		return pipeline.FallbackEngine{}, nil
	case BackendNative:
		return nil, ErrNativeBackendUnavailable
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, b)
	}
}

// Backend returns the backend chosen at construction.
func (r *Renderer) Backend() Backend {
	return r.backend
}

// Render converts fractions and supported formulas in text to HTML markup.
// Empty input yields empty output. If any stage fails or panics, the failure
// goes to the Logger and text is returned unchanged.
func (r *Renderer) Render(text string) (out string) {
	if text == "" {
		return ""
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.reportFailure(text, fmt.Errorf("%w: %v", ErrRenderPanic, rec))
			out = text
		}
	}()

	rendered, err := pipeline.Run(r.stages, text)
	if err != nil {
		r.reportFailure(text, err)
		return text
	}
	return rendered
}

// HasFormula reports whether text appears to contain formula syntax.
func (r *Renderer) HasFormula(text string) bool {
	return pipeline.HasFormula(text)
}

func (r *Renderer) reportFailure(input string, err error) {
	wrapped := goerrors.Wrap(err, goerrors.CategoryCommand, "math render failed").
		WithTextCode(renderFailedCode)
	r.logger.Error("math render failed",
		"error", wrapped,
		"backend", r.backend.String(),
		"input_length", len(input),
	)
}

// defaultRenderer backs the package-level functions.
var defaultRenderer = mustNewRenderer()

func mustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic("mathmark: default renderer: " + err.Error())
	}
	return r
}

// Render converts text with the default renderer. See Renderer.Render.
func Render(text string) string {
	return defaultRenderer.Render(text)
}

// HasFormula reports whether text matches $...$ or a \macro{...} call on a
// single line. It is a quick pre-check, not a parser: "$5 and $10" counts.
func HasFormula(text string) bool {
	return pipeline.HasFormula(text)
}

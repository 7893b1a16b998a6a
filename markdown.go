package mathmark

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mathmark/internal/assets"
	"github.com/alnah/go-mathmark/internal/fileutil"
	"github.com/alnah/go-mathmark/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Input is one Markdown document to convert.
type Input struct {
	Markdown  string
	Title     string // <title> text; empty uses "Document"
	CSS       string // Appended after the converter's stylesheet
	SourceDir string // Directory of the Markdown file, for relative links
	OutputDir string // Directory the HTML will be written to
}

// MarkdownConverter renders Markdown documents to standalone HTML5 with math
// markup applied to text and $...$ spans.
type MarkdownConverter struct {
	cfg           markdownConfig
	renderer      *Renderer
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	sheets        []string // page style then highlight theme; nil when styling is off
}

// markdownConfig holds options collected before construction.
type markdownConfig struct {
	renderer       *Renderer
	style          string
	noStyle        bool
	assetPath      string
	hardWraps      bool
	highlightStyle string
}

// MarkdownOption configures a MarkdownConverter.
type MarkdownOption func(*markdownConfig)

// WithRenderer sets the renderer used for text and formulas.
// Panics if r is nil (programmer error).
func WithRenderer(r *Renderer) MarkdownOption {
	if r == nil {
		panic("mathmark: WithRenderer renderer must not be nil")
	}
	return func(c *markdownConfig) {
		c.renderer = r
	}
}

// WithStyle sets the stylesheet by name ("default", "plain") or CSS file path.
func WithStyle(nameOrPath string) MarkdownOption {
	return func(c *markdownConfig) {
		c.style = nameOrPath
	}
}

// WithoutStyle disables stylesheet injection.
func WithoutStyle() MarkdownOption {
	return func(c *markdownConfig) {
		c.noStyle = true
	}
}

// WithAssetPath adds a directory searched for styles/{name}.css before the
// embedded styles.
func WithAssetPath(dir string) MarkdownOption {
	return func(c *markdownConfig) {
		c.assetPath = dir
	}
}

// WithHardWraps renders single newlines as <br />.
func WithHardWraps() MarkdownOption {
	return func(c *markdownConfig) {
		c.hardWraps = true
	}
}

// WithHighlightStyle inlines the named chroma style into code blocks instead
// of emitting CSS classes.
func WithHighlightStyle(name string) MarkdownOption {
	return func(c *markdownConfig) {
		c.highlightStyle = name
	}
}

// NewMarkdownConverter creates a MarkdownConverter. The stylesheet is
// resolved once here, so a missing style fails construction rather than
// every conversion.
func NewMarkdownConverter(opts ...MarkdownOption) (*MarkdownConverter, error) {
	cfg := markdownConfig{style: assets.DefaultStyleName}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := cfg.renderer
	if r == nil {
		r = defaultRenderer
	}

	if cfg.highlightStyle != "" {
		if err := pipeline.ValidateHighlightStyle(cfg.highlightStyle); err != nil {
			return nil, err
		}
	}

	c := &MarkdownConverter{
		cfg:          cfg,
		renderer:     r,
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(r.Render, pipeline.GoldmarkOptions{
			HardWraps:      cfg.hardWraps,
			HighlightStyle: cfg.highlightStyle,
		}),
		cssInjector: &pipeline.CSSInjection{},
	}

	if !cfg.noStyle {
		sheets, err := resolveStyle(cfg)
		if err != nil {
			return nil, err
		}
		c.sheets = sheets
	}

	return c, nil
}

// resolveStyle loads the page stylesheet and, for class-based highlighting,
// the chroma theme as a second sheet.
func resolveStyle(cfg markdownConfig) ([]string, error) {
	var css string
	if fileutil.IsFilePath(cfg.style) {
		content, err := os.ReadFile(cfg.style) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("loading style file %q: %w", cfg.style, err)
		}
		css = string(content)
	} else {
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		css, err = resolver.LoadStyle(cfg.style)
		if err != nil {
			return nil, fmt.Errorf("loading style %q: %w", cfg.style, err)
		}
	}

	sheets := []string{css}
	if cfg.highlightStyle == "" {
		highlight, err := pipeline.HighlightCSS(pipeline.DefaultHighlightTheme)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, highlight)
	}
	return sheets, nil
}

// ToHTML converts a Markdown string with no path context.
func (c *MarkdownConverter) ToHTML(ctx context.Context, markdown string) (string, error) {
	return c.Convert(ctx, Input{Markdown: markdown})
}

// Convert runs the document pipeline: preprocess, Goldmark with the math
// extension, relative path rebasing, then stylesheet injection.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *MarkdownConverter) Convert(ctx context.Context, input Input) (htmlContent string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	htmlContent, err = c.htmlConverter.ToHTML(ctx, mdContent, input.Title)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, err = pipeline.RebaseRelativePaths(htmlContent, input.SourceDir, input.OutputDir)
	if err != nil {
		return "", fmt.Errorf("rebasing relative paths: %w", err)
	}

	// Converter sheets first, caller CSS last so it can override. The
	// capped slice keeps append from writing into the shared c.sheets.
	sheets := append(c.sheets[:len(c.sheets):len(c.sheets)], input.CSS)
	htmlContent = c.cssInjector.InjectStyles(ctx, htmlContent, sheets...)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return htmlContent, nil
}

// StyleNames lists the embedded stylesheet names.
func StyleNames() []string {
	return assets.StyleNames()
}

// AvailableStyles lists the names WithStyle accepts when combined with
// WithAssetPath(assetPath). An unusable assetPath lists the built-ins only.
func AvailableStyles(assetPath string) []string {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return assets.StyleNames()
	}
	return resolver.StyleNames()
}

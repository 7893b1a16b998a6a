// Package mathmark turns plain text containing bare fractions and a small
// set of LaTeX-style formulas into presentational HTML markup.
//
// # Quick Start
//
// The package-level Render uses a shared default renderer:
//
//	html := mathmark.Render("Mix 1/2 cup with $x^2$")
//	// Mix <span class="fraction"><sup>1</sup>⁄<sub>2</sub></span> cup with x<sup>2</sup>
//
// Render never fails. When a stage breaks, the original text is returned
// unchanged and the failure is logged.
//
// # Rendering Pipeline
//
// Every call runs the same ordered stages:
//
//  1. Macro typo correction (\rac{ becomes \frac{)
//  2. Plain fractions outside formula delimiters (3/4)
//  3. Formula rendering by the selected backend
//
// Supported formulas, each wrapped in single $ delimiters:
//
//	$\frac{a}{b}$   fraction markup
//	$x^2$           x<sup>2</sup>
//	$\sqrt{x}$      √x
//
// Anything else passes through literally.
//
// # Configuration
//
// Use functional options to build a dedicated Renderer:
//
//	r, err := mathmark.NewRenderer(
//	    mathmark.WithLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil))),
//	    mathmark.WithBackend(mathmark.BackendFallback),
//	)
//
// The backend is chosen once, at construction. Only the fallback backend is
// compiled in; requesting BackendNative returns ErrNativeBackendUnavailable.
//
// # Markdown Documents
//
// MarkdownConverter renders whole Markdown documents to HTML5, passing
// $...$ spans and plain text through the renderer while leaving code,
// link destinations, and raw HTML alone:
//
//	conv, err := mathmark.NewMarkdownConverter(mathmark.WithStyle("plain"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := conv.ToHTML(ctx, "# Ratios\n\nUse 3/4 of $\\sqrt{x}$.")
package mathmark

package pipeline

import (
	"bufio"
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RenderFunc turns escaped text into math markup. It must not fail.
type RenderFunc func(text string) string

// KindMathSpan is the node kind of a $-delimited formula span.
var KindMathSpan = ast.NewNodeKind("MathSpan")

// MathSpan holds a formula including its delimiters, so the renderer sees
// exactly what the author typed ($x^2$ or $$x^2$$).
type MathSpan struct {
	ast.BaseInline
	Literal []byte
}

// Kind implements ast.Node.
func (n *MathSpan) Kind() ast.NodeKind { return KindMathSpan }

// Dump implements ast.Node.
func (n *MathSpan) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Literal": string(n.Literal)}, nil)
}

// mathSpanParser claims $...$ and $$...$$ on a single line. This keeps
// Goldmark's emphasis and escape handling away from formula bodies.
type mathSpanParser struct{}

var delimiterByte = []byte(Delimiter)

func (p *mathSpanParser) Trigger() []byte {
	return delimiterByte
}

func (p *mathSpanParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	line = util.TrimRightSpace(line)

	end := closingDelimiter(line, 2)
	if end < 0 {
		end = closingDelimiter(line, 1)
	}
	if end < 0 {
		return nil
	}

	node := &MathSpan{Literal: append([]byte(nil), line[:end]...)}
	block.Advance(end)
	return node
}

// closingDelimiter returns the end offset of a span opened by n delimiters,
// or -1 when the line has no non-empty span of that width.
func closingDelimiter(line []byte, n int) int {
	fence := bytes.Repeat(delimiterByte, n)
	if !bytes.HasPrefix(line, fence) {
		return -1
	}
	idx := bytes.Index(line[n:], fence)
	if idx <= 0 {
		return -1
	}
	return n + idx + n
}

// mathHTMLRenderer renders MathSpan nodes and replaces the default Text
// renderer so plain fractions in prose are rendered too.
type mathHTMLRenderer struct {
	html.Config
	render RenderFunc
}

func newMathHTMLRenderer(render RenderFunc) renderer.NodeRenderer {
	return &mathHTMLRenderer{Config: html.NewConfig(), render: render}
}

// SetOption picks up renderer-wide options such as hard wraps and XHTML.
func (r *mathHTMLRenderer) SetOption(name renderer.OptionName, value interface{}) {
	r.Config.SetOption(name, value)
}

func (r *mathHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMathSpan, r.renderMathSpan)
	reg.Register(ast.KindText, r.renderText)
}

func (r *mathHTMLRenderer) renderMathSpan(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MathSpan)
	_, _ = w.WriteString(r.render(string(util.EscapeHTML(n.Literal))))
	return ast.WalkContinue, nil
}

// renderText mirrors Goldmark's Text renderer, passing the escaped segment
// through the math stages. East Asian line break handling is not carried over.
func (r *mathHTMLRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)

	if n.IsRaw() {
		r.Writer.RawWrite(w, value)
		return ast.WalkContinue, nil
	}

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	r.Writer.Write(bw, value)
	_ = bw.Flush()
	_, _ = w.WriteString(r.render(buf.String()))

	switch {
	case n.HardLineBreak() || (n.SoftLineBreak() && r.HardWraps):
		if r.XHTML {
			_, _ = w.WriteString("<br />\n")
		} else {
			_, _ = w.WriteString("<br>\n")
		}
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

// mathExtension wires the span parser and renderer into a Goldmark instance.
type mathExtension struct {
	render RenderFunc
}

// NewMathExtension returns a Goldmark extension that renders formulas and
// plain fractions with render.
func NewMathExtension(render RenderFunc) goldmark.Extender {
	return &mathExtension{render: render}
}

// Extend implements goldmark.Extender. Priority 150 places the renderer ahead
// of the default HTML renderer (1000) so the Text override wins.
func (e *mathExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&mathSpanParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newMathHTMLRenderer(e.render), 150),
	))
}

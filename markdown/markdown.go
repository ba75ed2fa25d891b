// Package markdown provides a goldmark extension that renders ASCIIMath
// spans inside markdown documents. Inline spans are delimited by $...$
// and display spans by $$...$$; both translate to MathML in the HTML
// output.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/btr-supply/asciimath2ml"
)

// KindMath identifies math nodes in the goldmark AST.
var KindMath = ast.NewNodeKind("Math")

// MathNode is an inline node holding the raw notation of one span.
type MathNode struct {
	ast.BaseInline
	Notation []byte
	Display  bool
}

func (n *MathNode) Kind() ast.NodeKind {
	return KindMath
}

func (n *MathNode) Dump(src []byte, level int) {
	ast.DumpHelper(n, src, level, map[string]string{
		"Notation": string(n.Notation),
	}, nil)
}

type mathParser struct{}

func (p *mathParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	delim := line[:1]
	display := false
	if 1 < len(line) && line[1] == '$' {
		delim = line[:2]
		display = true
	}
	stop := bytes.Index(line[len(delim):], delim)
	if stop <= 0 {
		return nil // no closing delimiter on this line, or empty span
	}
	notation := make([]byte, stop)
	copy(notation, line[len(delim):len(delim)+stop])
	block.Advance(2*len(delim) + stop)
	return &MathNode{Notation: notation, Display: display}
}

type mathRenderer struct{}

func (r *mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMath, r.render)
}

func (r *mathRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MathNode)
	if _, err := w.WriteString(asciimath.Convert(string(n.Notation), !n.Display)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}

type mathExt struct{}

// Math is the goldmark extension; pass it to goldmark.WithExtensions.
var Math goldmark.Extender = &mathExt{}

func (e *mathExt) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&mathParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathRenderer{}, 150),
	))
}

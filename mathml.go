package asciimath

import "strings"

// attr is a single attribute on an output element.
type attr struct {
	key, val string
}

// elem is a node of the MathML output tree. Leaf elements carry text
// content, inner elements carry children. Fragments are built bottom-up
// and never modified once returned.
type elem struct {
	tag   string
	attrs []attr
	text  string
	child []*elem
}

func newElem(tag string, child ...*elem) *elem {
	return &elem{tag: tag, child: child}
}

func newText(tag, text string) *elem {
	return &elem{tag: tag, text: text}
}

func (e *elem) withAttr(key, val string) *elem {
	e.attrs = append(e.attrs, attr{key, val})
	return e
}

func errorElem(msg string) *elem {
	return newElem("merror", newText("mtext", msg))
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

func (e *elem) String() string {
	sb := &strings.Builder{}
	e.writeTo(sb)
	return sb.String()
}

func (e *elem) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.key)
		sb.WriteString(`="`)
		_, _ = attrEscaper.WriteString(sb, a.val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if len(e.child) == 0 {
		_, _ = textEscaper.WriteString(sb, e.text)
	}
	for _, c := range e.child {
		c.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

// Package asciimath translates compact ASCII math notation into MathML.
//
// The input is scanned with a longest-match tokenizer driven by a fixed
// symbol table and parsed by a three-tier recursive-descent grammar
// (simple, scripted, sequenced expressions) into a MathML element tree.
// Translation never fails: invalid notation renders as inline merror
// diagnostics inside an otherwise well-formed fragment.
//
//	asciimath.Convert("sum_(i=1)^n i^2", false)
//
// Each call owns its scan state exclusively; the symbol table and the
// character substitution tables are process-wide constants, so calls
// may run concurrently without locking.
package asciimath

import "io"

// Convert translates notation into a MathML fragment. The display
// attribute of the math element is "inline" or "block" according to
// inline.
func Convert(input string, inline bool) string {
	display := "block"
	if inline {
		display = "inline"
	}
	s := newScanner(input)
	math := newElem("math", s.parseAll()...).
		withAttr("xmlns", "http://www.w3.org/1998/Math/MathML").
		withAttr("display", display)
	return math.String()
}

// WriteMathML translates notation and writes the fragment to w.
func WriteMathML(w io.Writer, input string, inline bool) error {
	_, err := io.WriteString(w, Convert(input, inline))
	return err
}

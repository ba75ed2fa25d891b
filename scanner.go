package asciimath

import (
	"strings"
	"unicode/utf8"
)

// scanner is the per-translation scan state: the source text, a cursor,
// and the stack of active character substitution tables. The grammar
// pushes and pops tables around font-scope constructs; the scanner only
// consults the innermost one when rendering identifiers and text.
type scanner struct {
	src   string
	pos   int
	fonts []*subTable
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// peek returns the next symbol and the cursor position just past it
// without committing the advance. Leading whitespace is skipped.
func (s *scanner) peek() (symbol, int) {
	i := s.pos
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	if i == len(s.src) {
		return eofSymbol, i
	}

	c := s.src[i]
	if c == '"' {
		j := strings.IndexByte(s.src[i+1:], '"')
		if j < 0 {
			// unterminated quotes scan to end of input
			return symbol{pattern: s.src[i:], run: runText, out: s.src[i+1:]}, len(s.src)
		}
		end := i + 1 + j + 1
		return symbol{pattern: s.src[i:end], run: runText, out: s.src[i+1 : end-1]}, end
	}
	if isDigit(c) {
		j := i
		for j < len(s.src) && isDigit(s.src[j]) {
			j++
		}
		if j < len(s.src) && s.src[j] == '.' {
			j++
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
		}
		return symbol{pattern: s.src[i:j], run: runNumber, out: s.src[i:j]}, j
	}

	for _, sym := range symbolTable[c] {
		if strings.HasPrefix(s.src[i:], sym.pattern) {
			return sym, i + len(sym.pattern)
		}
	}

	// no match: consume one character and report it
	_, n := utf8.DecodeRuneInString(s.src[i:])
	return symbol{pattern: s.src[i : i+n], run: runError, out: s.src[i : i+n]}, i + n
}

// next commits the advance that peek would report.
func (s *scanner) next() symbol {
	sym, pos := s.peek()
	s.pos = pos
	return sym
}

func (s *scanner) pushFont(t *subTable) {
	s.fonts = append(s.fonts, t)
}

func (s *scanner) popFont() {
	s.fonts = s.fonts[:len(s.fonts)-1]
}

// mapText runs a string through the innermost active substitution
// table, if any. Only ASCII letters are substituted.
func (s *scanner) mapText(str string) string {
	if len(s.fonts) == 0 {
		return str
	}
	t := s.fonts[len(s.fonts)-1]
	sb := strings.Builder{}
	for _, r := range str {
		sb.WriteRune(t.apply(r))
	}
	return sb.String()
}

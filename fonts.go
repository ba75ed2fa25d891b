package asciimath

// subTable maps Latin letters to styled code points: entries 0-25 are
// A-Z, entries 26-51 are a-z. A zero entry keeps the original letter.
// Only the innermost table on the scan state's stack applies; tables do
// not compose.
type subTable [52]rune

// newSubTable fills consecutive runs starting at the given upper- and
// lowercase base code points, then overrides the letters whose styled
// forms predate the Mathematical Alphanumeric Symbols block and live in
// Letterlike Symbols instead.
func newSubTable(upper, lower rune, except map[rune]rune) *subTable {
	t := &subTable{}
	for i := rune(0); i < 26; i++ {
		t[i] = upper + i
		t[i+26] = lower + i
	}
	for r, sub := range except {
		if 'a' <= r {
			t[r-'a'+26] = sub
		} else {
			t[r-'A'] = sub
		}
	}
	return t
}

var (
	boldTable = newSubTable(0x1D400, 0x1D41A, nil)
	sansTable = newSubTable(0x1D5A0, 0x1D5BA, nil)
	monoTable = newSubTable(0x1D670, 0x1D68A, nil)

	scriptTable = newSubTable(0x1D49C, 0x1D4B6, map[rune]rune{
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	})
	frakturTable = newSubTable(0x1D504, 0x1D51E, map[rune]rune{
		'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
	})
	doubleStruckTable = newSubTable(0x1D538, 0x1D552, map[rune]rune{
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	})
)

// apply substitutes a single letter, passing every other rune through
// unchanged.
func (t *subTable) apply(r rune) rune {
	switch {
	case 'A' <= r && r <= 'Z':
		if s := t[r-'A']; s != 0 {
			return s
		}
	case 'a' <= r && r <= 'z':
		if s := t[r-'a'+26]; s != 0 {
			return s
		}
	}
	return r
}

package asciimath

import "sort"

// symKind determines how the grammar treats a symbol; how it renders is
// covered separately by its behavior.
type symKind int

const (
	symDefault symKind = iota
	symUnderOver
	symLeftBracket
	symRightBracket
	symMatrixLeft
	symMatrixRight
	symCellSep
	symRowSep
	symEOF
)

// behavior selects the rendering action of a symbol. Symbols taking
// arguments resolve their arity here: unary behaviors parse one further
// simple expression, binary behaviors two.
type behavior int

const (
	runIdentifier    behavior = iota // <mi>, substitution table applies
	runOperator                      // <mo>
	runNumber                        // <mn>, produced by the scanner
	runText                          // <mtext>, substitution table applies
	runUnaryWrap                     // one argument inside tag
	runUnaryOver                     // argument with a mark above, <mover>
	runUnaryUnder                    // argument with a mark below, <munder>
	runUnarySurround                 // argument between two fences
	runUnaryFont                     // scoped substitution table around one argument
	runBinaryWrap                    // two arguments inside tag
	runError                         // unrecognized input, <merror>
	runEmpty                         // end of input, renders nothing
)

type symbol struct {
	pattern   string
	kind      symKind
	run       behavior
	out       string    // text content, bracket glyph, or accent mark
	tag       string    // element tag for unary/binary wraps
	left      string    // opening fence for runUnarySurround
	right     string    // closing fence for runUnarySurround
	font      *subTable // substitution table for runUnaryFont
	rev       bool      // binary wrap emits its two arguments swapped
	invisible bool      // bracket that renders nothing
}

var eofSymbol = symbol{kind: symEOF, run: runEmpty}

func op(pattern, out string) symbol {
	return symbol{pattern: pattern, run: runOperator, out: out}
}

func ident(pattern, out string) symbol {
	return symbol{pattern: pattern, run: runIdentifier, out: out}
}

func txt(pattern, out string) symbol {
	return symbol{pattern: pattern, run: runText, out: out}
}

func underOver(pattern, out string) symbol {
	return symbol{pattern: pattern, kind: symUnderOver, run: runOperator, out: out}
}

func unary(pattern, tag string) symbol {
	return symbol{pattern: pattern, run: runUnaryWrap, tag: tag}
}

func accentOver(pattern, mark string) symbol {
	return symbol{pattern: pattern, run: runUnaryOver, out: mark}
}

func accentUnder(pattern, mark string) symbol {
	return symbol{pattern: pattern, run: runUnaryUnder, out: mark}
}

func surround(pattern, left, right string) symbol {
	return symbol{pattern: pattern, run: runUnarySurround, left: left, right: right}
}

func fontScope(pattern string, t *subTable) symbol {
	return symbol{pattern: pattern, run: runUnaryFont, font: t}
}

func binary(pattern, tag string, rev bool) symbol {
	return symbol{pattern: pattern, run: runBinaryWrap, tag: tag, rev: rev}
}

func leftBracket(pattern, glyph string) symbol {
	return symbol{pattern: pattern, kind: symLeftBracket, run: runOperator, out: glyph, invisible: glyph == ""}
}

func rightBracket(pattern, glyph string) symbol {
	return symbol{pattern: pattern, kind: symRightBracket, run: runOperator, out: glyph, invisible: glyph == ""}
}

func matrixLeft(pattern, glyph string) symbol {
	return symbol{pattern: pattern, kind: symMatrixLeft, run: runOperator, out: glyph, invisible: glyph == ""}
}

func matrixRight(pattern, glyph string) symbol {
	return symbol{pattern: pattern, kind: symMatrixRight, run: runOperator, out: glyph, invisible: glyph == ""}
}

// symbols is the authored vocabulary. Buckets of symbolTable are sorted
// longest pattern first (see init), so entries that are prefixes of one
// another may be declared in any order here.
var symbols = []symbol{
	// arithmetic
	op("+", "+"), op("-", "-"), op("*", "⋅"), op("**", "∗"), op("***", "⋆"),
	op("//", "/"), op(`\\`, `\`), op("xx", "×"), op("-:", "÷"), op("@", "∘"),
	op("o+", "⊕"), op("ox", "⊗"), op("o.", "⊙"),
	op("^^", "∧"), op("vv", "∨"), op("nn", "∩"), op("uu", "∪"),
	underOver("sum", "∑"), underOver("prod", "∏"),
	underOver("^^^", "⋀"), underOver("vvv", "⋁"),
	underOver("nnn", "⋂"), underOver("uuu", "⋃"),

	// the fraction separator and the script markers double as plain
	// operators; the grammar recognizes them by pattern
	op("/", "/"), op("_", "_"), op("^", "^"),

	// relations
	op("=", "="), op("!=", "≠"), op("<", "<"), op(">", ">"),
	op("<=", "≤"), op(">=", "≥"), op("-<", "≺"), op(">-", "≻"),
	op("in", "∈"), op("!in", "∉"),
	op("sub", "⊂"), op("sup", "⊃"), op("sube", "⊆"), op("supe", "⊇"),
	op("-=", "≡"), op("~=", "≅"), op("~~", "≈"), op("prop", "∝"),

	// logic
	txt("and", "and"), txt("or", "or"), txt("if", "if"),
	op("not", "¬"), op("=>", "⇒"), op("iff", "⇔"),
	op("AA", "∀"), op("EE", "∃"), op("_|_", "⊥"), op("TT", "⊤"),
	op("|--", "⊢"), op("|==", "⊨"),

	// miscellaneous
	op("int", "∫"), op("oint", "∮"), op("del", "∂"), op("grad", "∇"),
	op("+-", "±"), op("O/", "∅"), op("oo", "∞"), op("aleph", "ℵ"),
	op("/_", "∠"), op(":.", "∴"), op("...", "…"),
	op("cdots", "⋯"), op("vdots", "⋮"), op("ddots", "⋱"),
	op("diamond", "⋄"), op("square", "□"),
	op("|", "|"), op("!", "!"), op(",", ","), op(":", ":"), op("'", "′"),

	// arrows
	op("uarr", "↑"), op("darr", "↓"), op("rarr", "→"), op("->", "→"),
	op("larr", "←"), op("harr", "↔"),
	op("rArr", "⇒"), op("lArr", "⇐"), op("hArr", "⇔"), op("|->", "↦"),

	// greek
	ident("alpha", "α"), ident("beta", "β"), ident("gamma", "γ"),
	ident("delta", "δ"), ident("epsilon", "ε"), ident("varepsilon", "ɛ"),
	ident("zeta", "ζ"), ident("eta", "η"), ident("theta", "θ"),
	ident("vartheta", "ϑ"), ident("iota", "ι"), ident("kappa", "κ"),
	ident("lambda", "λ"), ident("mu", "μ"), ident("nu", "ν"),
	ident("xi", "ξ"), ident("pi", "π"), ident("rho", "ρ"),
	ident("sigma", "σ"), ident("tau", "τ"), ident("upsilon", "υ"),
	ident("phi", "φ"), ident("varphi", "ϕ"), ident("chi", "χ"),
	ident("psi", "ψ"), ident("omega", "ω"),
	ident("Gamma", "Γ"), ident("Delta", "Δ"), ident("Theta", "Θ"),
	ident("Lambda", "Λ"), ident("Xi", "Ξ"), ident("Pi", "Π"),
	ident("Sigma", "Σ"), ident("Phi", "Φ"), ident("Psi", "Ψ"),
	ident("Omega", "Ω"),

	// common sets
	ident("CC", "ℂ"), ident("NN", "ℕ"), ident("QQ", "ℚ"),
	ident("RR", "ℝ"), ident("ZZ", "ℤ"),

	// functions
	ident("sin", "sin"), ident("cos", "cos"), ident("tan", "tan"),
	ident("sec", "sec"), ident("csc", "csc"), ident("cot", "cot"),
	ident("sinh", "sinh"), ident("cosh", "cosh"), ident("tanh", "tanh"),
	ident("log", "log"), ident("ln", "ln"), ident("det", "det"),
	ident("dim", "dim"), ident("mod", "mod"), ident("gcd", "gcd"),
	ident("lcm", "lcm"),
	underOver("lim", "lim"), underOver("min", "min"), underOver("max", "max"),

	// unary constructs
	unary("sqrt", "msqrt"),
	accentOver("hat", "^"), accentOver("bar", "¯"), accentOver("vec", "→"),
	accentOver("dot", "."), accentOver("ddot", ".."),
	accentUnder("ul", "̲"),
	surround("abs", "|", "|"), surround("floor", "⌊", "⌋"),
	surround("ceil", "⌈", "⌉"), surround("norm", "∥", "∥"),

	// font scopes
	fontScope("bb", boldTable), fontScope("bbb", doubleStruckTable),
	fontScope("cc", scriptTable), fontScope("fr", frakturTable),
	fontScope("sf", sansTable), fontScope("tt", monoTable),

	// binary constructs
	binary("frac", "mfrac", false),
	binary("root", "mroot", true),
	binary("stackrel", "mover", true),

	// brackets
	leftBracket("(", "("), leftBracket("[", "["), leftBracket("{", "{"),
	leftBracket("(:", "⟨"), leftBracket("{:", ""),
	rightBracket(")", ")"), rightBracket("]", "]"), rightBracket("}", "}"),
	rightBracket(":)", "⟩"), rightBracket(":}", ""),
	leftBracket("|__", "⌊"), rightBracket("__|", "⌋"),
	leftBracket("|~", "⌈"), rightBracket("~|", "⌉"),

	// matrices
	matrixLeft("[|", "["), matrixLeft("(|", "("), matrixLeft("{|", ""),
	matrixRight("|]", "]"), matrixRight("|)", ")"), matrixRight("|}", ""),
	{pattern: ";;", kind: symRowSep, run: runOperator, out: ";;"},
	{pattern: ";", kind: symCellSep, run: runOperator, out: ";"},
}

// symbolTable maps the first byte of each pattern to its candidate
// symbols, longest pattern first so that first-match scanning is
// longest-match. Declaration order breaks ties between equal lengths.
var symbolTable = map[byte][]symbol{}

func init() {
	all := symbols
	for c := byte('a'); c <= 'z'; c++ {
		all = append(all, ident(string(c), string(c)))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		all = append(all, ident(string(c), string(c)))
	}
	for _, sym := range all {
		symbolTable[sym.pattern[0]] = append(symbolTable[sym.pattern[0]], sym)
	}
	for _, bucket := range symbolTable {
		sort.SliceStable(bucket, func(i, j int) bool {
			return len(bucket[j].pattern) < len(bucket[i].pattern)
		})
	}
}

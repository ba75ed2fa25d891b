package asciimath

import (
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/test"
)

func block(inner string) string {
	return `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">` + inner + `</math>`
}

func TestConvert(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"   \t\n", ""},
		{"x", "<mi>x</mi>"},
		{"42", "<mn>42</mn>"},
		{"3.14", "<mn>3.14</mn>"},
		{"x+y", "<mi>x</mi><mo>+</mo><mi>y</mi>"},
		{"a^2+b^2=c^2", "<msup><mi>a</mi><mn>2</mn></msup><mo>+</mo><msup><mi>b</mi><mn>2</mn></msup><mo>=</mo><msup><mi>c</mi><mn>2</mn></msup>"},
		{"sqrt 2", "<msqrt><mn>2</mn></msqrt>"},
		{"1/2", "<mfrac><mn>1</mn><mn>2</mn></mfrac>"},
		{"x_1^2", "<msubsup><mi>x</mi><mn>1</mn><mn>2</mn></msubsup>"},
		{"x_1", "<msub><mi>x</mi><mn>1</mn></msub>"},
		{"alpha beta", "<mi>α</mi><mi>β</mi>"},
		{"x < y", "<mi>x</mi><mo>&lt;</mo><mi>y</mi>"},
		{"a -> b", "<mi>a</mi><mo>→</mo><mi>b</mi>"},
		{"a in A", "<mi>a</mi><mo>∈</mo><mi>A</mi>"},
		{"(a+b)", "<mrow><mo>(</mo><mi>a</mi><mo>+</mo><mi>b</mi><mo>)</mo></mrow>"},
		{"{: a :}", "<mrow><mi>a</mi></mrow>"},
		{"(: x, y :)", "<mrow><mo>⟨</mo><mi>x</mi><mo>,</mo><mi>y</mi><mo>⟩</mo></mrow>"},
		{"abs x", "<mrow><mo>|</mo><mi>x</mi><mo>|</mo></mrow>"},
		{"floor x", "<mrow><mo>⌊</mo><mi>x</mi><mo>⌋</mo></mrow>"},
		{"hat x", "<mover><mi>x</mi><mo>^</mo></mover>"},
		{"ul x", "<munder><mi>x</mi><mo>̲</mo></munder>"},
		{"frac a b", "<mfrac><mi>a</mi><mi>b</mi></mfrac>"},
		{"root 3 x", "<mroot><mi>x</mi><mn>3</mn></mroot>"},
		{`stackrel "def" =`, "<mover><mo>=</mo><mtext>def</mtext></mover>"},
		{"sum_(i=1)^n i", "<munderover><mo>∑</mo><mrow><mo>(</mo><mi>i</mi><mo>=</mo><mn>1</mn><mo>)</mo></mrow><mi>n</mi></munderover><mi>i</mi>"},
		{"lim_(x->0)", "<munder><mo>lim</mo><mrow><mo>(</mo><mi>x</mi><mo>→</mo><mn>0</mn><mo>)</mo></mrow></munder>"},
		{"sum x", "<mo>∑</mo><mi>x</mi>"},
		{`"hello"`, "<mtext>hello</mtext>"},
		{`"a b"`, "<mtext>a b</mtext>"},
		{"bb x", "<mi>𝐱</mi>"},
		{`cc "AB"`, "<mtext>𝒜ℬ</mtext>"},
		{"bbb R", "<mi>ℝ</mi>"},
		{"fr H", "<mi>ℌ</mi>"},
		{"a/b/c", "<mfrac><mi>a</mi><mi>b</mi></mfrac><mo>/</mo><mi>c</mi>"},
		{"sin x", "<mi>sin</mi><mi>x</mi>"},
		{"f(x)", "<mi>f</mi><mrow><mo>(</mo><mi>x</mi><mo>)</mo></mrow>"},
		{"AA x in RR", "<mo>∀</mo><mi>x</mi><mo>∈</mo><mi>ℝ</mi>"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, Convert(tt.s, false), block(tt.want))
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"#", "<merror><mtext>#</mtext></merror>"},
		{"# x", "<merror><mtext>#</mtext></merror><mi>x</mi>"},
		{"(a", "<mrow><mo>(</mo><mi>a</mi><merror><mtext>missing closing paren</mtext></merror></mrow>"},
		{"1/", "<mfrac><mn>1</mn><merror><mtext>missing argument</mtext></merror></mfrac>"},
		{"sqrt", "<msqrt><merror><mtext>missing argument</mtext></merror></msqrt>"},
		{"frac a", "<mfrac><mi>a</mi><merror><mtext>missing argument</mtext></merror></mfrac>"},
		{`"ab`, "<mtext>ab</mtext>"},
		{"a)b", "<mi>a</mi><mo>)</mo><mi>b</mi>"},
		{"a; b", "<mi>a</mi><mo>;</mo><mi>b</mi>"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, Convert(tt.s, false), block(tt.want))
		})
	}
}

func TestConvertMatrix(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"[| a; b;; c; d |]", "<mrow><mo>[</mo><mtable>" +
			"<mtr><mtd><mi>a</mi></mtd><mtd><mi>b</mi></mtd></mtr>" +
			"<mtr><mtd><mi>c</mi></mtd><mtd><mi>d</mi></mtd></mtr>" +
			"</mtable><mo>]</mo></mrow>"},
		{"(| x |)", "<mrow><mo>(</mo><mtable><mtr><mtd><mi>x</mi></mtd></mtr></mtable><mo>)</mo></mrow>"},
		{"{| a; b |}", "<mtable><mtr><mtd><mi>a</mi></mtd><mtd><mi>b</mi></mtd></mtr></mtable>"},
		{"{| a |]", "<mrow><mtable><mtr><mtd><mi>a</mi></mtd></mtr></mtable><mo>]</mo></mrow>"},
		{"[| a", "<mrow><mo>[</mo><mtable><mtr><mtd><mi>a</mi></mtd></mtr></mtable><merror><mtext>missing closing paren</mtext></merror></mrow>"},
		{"[| |]", "<mrow><mo>[</mo><mtable></mtable><mo>]</mo></mrow>"},
		{"[| a+b; c/d |]", "<mrow><mo>[</mo><mtable><mtr>" +
			"<mtd><mi>a</mi><mo>+</mo><mi>b</mi></mtd>" +
			"<mtd><mfrac><mi>c</mi><mi>d</mi></mfrac></mtd>" +
			"</mtr></mtable><mo>]</mo></mrow>"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, Convert(tt.s, false), block(tt.want))
		})
	}
}

func TestConvertInline(t *testing.T) {
	test.String(t, Convert("x", true), `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline"><mi>x</mi></math>`)
}

func TestConvertEscaping(t *testing.T) {
	test.String(t, Convert(`"<&>"`, true), `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline"><mtext>&lt;&amp;&gt;</mtext></math>`)
}

func TestWhitespaceIdempotent(t *testing.T) {
	tests := [][2]string{
		{"a+b", " a + b "},
		{"sqrt 2", "sqrt  2"},
		{"x_1^2", "x _ 1 ^ 2"},
		{"[| a; b;; c; d |]", "[|a;b;;c;d|]"},
		{"sum_(i=1)^n i", "sum _ ( i = 1 ) ^ n i"},
	}
	for _, tt := range tests {
		test.String(t, Convert(tt[1], false), Convert(tt[0], false), tt[1])
	}
}

func TestBalancedNoErrors(t *testing.T) {
	inputs := []string{
		"(a+b)*(c-d)",
		"[x]",
		"{(a)}",
		"(: v, w :)",
		"((a))",
		"sqrt(a+b)",
		"[| (a, b); c |]",
	}
	for _, s := range inputs {
		test.That(t, !strings.Contains(Convert(s, false), "<merror>"), s)
	}
}

// Every output must lex as well-formed XML, valid input or not.
func TestWellFormed(t *testing.T) {
	inputs := []string{
		"", "x", "a^2+b^2=c^2", "sqrt 2", "1/2", "(a", "#", `"ab`,
		"[| a; b;; c; d |]", "[| a", "a)b", "sqrt", "frac a", "a/b/c",
		"bb (x+y)", `"<&>"`, "{: a", "^", "_", "/", ";;", "|",
	}
	for _, s := range inputs {
		starts, ends, voids := 0, 0, 0
		l := xml.NewLexer(parse.NewInputString(Convert(s, false)))
	lexing:
		for {
			tt, _ := l.Next()
			switch tt {
			case xml.ErrorToken:
				test.T(t, l.Err(), io.EOF, s)
				break lexing
			case xml.StartTagToken:
				starts++
			case xml.EndTagToken:
				ends++
			case xml.StartTagCloseVoidToken:
				voids++
			}
		}
		test.T(t, starts, ends+voids, s)
	}
}

func TestWriteMathML(t *testing.T) {
	sb := &strings.Builder{}
	test.T(t, WriteMathML(sb, "x", false), nil)
	test.String(t, sb.String(), Convert("x", false))
}

package parse

import (
	"testing"

	icerr "github.com/icalc/icalc/error"
	"github.com/icalc/icalc/term"
)

func TestParseBasic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"x", "x"},
		{"x_0", "x₀"},
		{"x_1", "x₁"},
		{"x₀", "x₀"},
		{"x₁", "x₁"},
		{"λx.x", "λx.x"},
		{`\x.x`, "λx.x"},
		{"&{}", "&{}"},
		{"&{1,2}", "&L{1, 2}"},
		{"&R{1,2}", "&R{1, 2}"},
		{"!x&L=1;x_0", "! x &L= 1; x₀"},
		{"!x&=1;x_0", "! x &L= 1; x₀"},
		{"(f 1)", "(f 1)"},
		{"(1 + 2)", "(1 + 2)"},
		{"(1 - 2)", "(1 - 2)"},
		{"(1 * 2)", "(1 * 2)"},
		{"(1 / 2)", "(1 / 2)"},
		{"(1, 2)", "(1, 2)"},
		{"  ( 1 ,  2 )  ", "(1, 2)"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.src, err)
			}
			if s := term.Print(got); s != tc.want {
				t.Errorf("Parse(%q) = %q, want %q", tc.src, s, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	srcs := []string{
		"(λx.x 42)",
		"((λx.λy.x 1) 2)",
		"! z &L= (2 + 2); (z₀ + z₁)",
		"! x &L= &L{1,2}; (x₀ + x₁)",
		"(&L{1,2} + 10)",
		"! f &L= λx.x; ((f₀ 1), (f₁ 2))",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			t1, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", src, err)
			}
			printed := term.Print(t1)
			t2, err := Parse(printed)
			if err != nil {
				t.Fatalf("Parse(pretty(%q)=%q) returned error: %v", src, printed, err)
			}
			if term.Print(t2) != printed {
				t.Errorf("round trip mismatch: %q != %q", term.Print(t2), printed)
			}
		})
	}
}

func TestParseErrorOffsets(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		inside [2]int // [min, max] acceptable offset range
	}{
		{"missing rparen", "(1 +", [2]int{4, 4}},
		{"missing rbrace", "&L{1,2", [2]int{6, 6}},
		{"missing lambda name", "λ.", [2]int{1, 1}},
		{"trailing garbage", "42 43", [2]int{3, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want a ParseError", tc.src)
			}
			pe, ok := err.(*icerr.ParseError)
			if !ok {
				t.Fatalf("Parse(%q) returned %T, want *error.ParseError", tc.src, err)
			}
			if pe.Offset < tc.inside[0] || pe.Offset > tc.inside[1] {
				t.Errorf("Parse(%q) offset = %d, want within [%d,%d]", tc.src, pe.Offset, tc.inside[0], tc.inside[1])
			}
		})
	}
}

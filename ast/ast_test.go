package ast

import (
	"testing"

	"github.com/marto-nievas/rex-go/token"
)

func TestNodeStringRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		node   Node
		expect string
	}{
		{"literal", Literal{Byte: 'a'}, "a"},
		{"concat", Concat{L: Literal{Byte: 'a'}, R: Literal{Byte: 'b'}}, "ab"},
		{"union", Union{L: Literal{Byte: 'a'}, R: Literal{Byte: 'b'}}, "a|b"},
		{"star", Star{E: Literal{Byte: 'a'}}, "a*"},
		{"plus", Plus{E: Literal{Byte: 'a'}}, "a+"},
		{"epsilon", Epsilon{}, ""},
		{"star over union needs parens", Star{E: Union{L: Literal{Byte: 'a'}, R: Literal{Byte: 'b'}}}, "(a|b)*"},
		{"concat of unions needs parens on both sides", Concat{L: Union{L: Literal{Byte: 'a'}, R: Literal{Byte: 'b'}}, R: Union{L: Literal{Byte: 'c'}, R: Literal{Byte: 'd'}}}, "(a|b)(c|d)"},
	}

	for _, tc := range cases {
		got := tc.node.String()
		if got != tc.expect {
			t.Errorf("%s: String() got %q; want %q", tc.name, got, tc.expect)
		}
	}
}

func TestClassString(t *testing.T) {
	c := token.NewCharClass()
	c.AddRange('a', 'c')
	c.Add('z')
	n := Class{Bitmap: c}
	if got, want := n.String(), "[a-cz]"; got != want {
		t.Errorf("Class.String() got %q; want %q", got, want)
	}

	c2 := token.NewCharClass()
	c2.AddRange('0', '9')
	c2.Negate = true
	n2 := Class{Bitmap: c2}
	if got, want := n2.String(), "[^0-9]"; got != want {
		t.Errorf("negated Class.String() got %q; want %q", got, want)
	}
}

func TestAtomicClassification(t *testing.T) {
	atomic := []Node{EmptySet{}, Epsilon{}, Literal{Byte: 'a'}, Class{Bitmap: token.NewCharClass()}}
	for _, n := range atomic {
		if !n.Atomic() {
			t.Errorf("%T should be Atomic", n)
		}
	}

	nonAtomic := []Node{
		Concat{L: Epsilon{}, R: Epsilon{}},
		Union{L: Epsilon{}, R: Epsilon{}},
		Star{E: Epsilon{}},
		Plus{E: Epsilon{}},
	}
	for _, n := range nonAtomic {
		if n.Atomic() {
			t.Errorf("%T should not be Atomic", n)
		}
	}
}

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marto-nievas/rex-go/token"
)

func classOf(bytes ...byte) Class {
	c := token.NewCharClass()
	for _, b := range bytes {
		c.Add(b)
	}
	return Class{Bitmap: c}
}

func TestFoldCaseLiteral(t *testing.T) {
	folded := FoldCase(Literal{Byte: 'a'})
	c, ok := folded.(Class)
	if !ok {
		t.Fatalf("FoldCase(Literal 'a') got %T; want Class", folded)
	}
	if !c.Bitmap.Contains('a') || !c.Bitmap.Contains('A') {
		t.Errorf("folded class should contain both cases of 'a', got %s", c.String())
	}

	// a non-alphabetic literal is returned unchanged
	if got := FoldCase(Literal{Byte: '1'}); got != (Literal{Byte: '1'}) {
		t.Errorf("FoldCase(Literal '1') got %#v; want unchanged", got)
	}
}

func TestFoldCaseClass(t *testing.T) {
	cls := token.NewCharClass()
	cls.AddRange('a', 'c')
	folded := FoldCase(Class{Bitmap: cls})
	c := folded.(Class)
	for _, b := range []byte{'a', 'b', 'c', 'A', 'B', 'C'} {
		if !c.Bitmap.Contains(b) {
			t.Errorf("folded class should contain %q", b)
		}
	}
}

func TestFoldCaseNegatedClass(t *testing.T) {
	cls := token.NewCharClass()
	cls.Add('a')
	cls.Negate = true
	folded := FoldCase(Class{Bitmap: cls})
	c := folded.(Class)
	// negated class excludes 'a'; folding must also exclude 'A' so that
	// case-insensitive membership matches the non-negated expansion rule
	if c.Bitmap.Contains('a') || c.Bitmap.Contains('A') {
		t.Errorf("folded negated class should exclude both cases of 'a', got %s", c.String())
	}
	if !c.Bitmap.Contains('z') {
		t.Errorf("folded negated class should still contain unrelated bytes")
	}
}

func TestFoldCaseRecursesThroughCombinators(t *testing.T) {
	tree := Concat{L: Literal{Byte: 'a'}, R: Union{L: Literal{Byte: 'b'}, R: Star{E: Literal{Byte: 'c'}}}}
	folded := FoldCase(tree).(Concat)
	if _, ok := folded.L.(Class); !ok {
		t.Errorf("Concat.L should be folded to a Class")
	}
	union := folded.R.(Union)
	if _, ok := union.L.(Class); !ok {
		t.Errorf("Union.L should be folded to a Class")
	}
	star := union.R.(Star)
	if _, ok := star.E.(Class); !ok {
		t.Errorf("Star.E should be folded to a Class")
	}
}

func TestFoldCaseExactTreeShape(t *testing.T) {
	tree := Concat{L: Literal{Byte: 'a'}, R: Literal{Byte: '1'}}
	want := Concat{L: classOf('a', 'A'), R: Literal{Byte: '1'}}
	got := FoldCase(tree)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FoldCase(a1) mismatch (-want +got):\n%s", diff)
	}
}

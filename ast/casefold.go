package ast

import "github.com/marto-nievas/rex-go/token"

// FoldCase rewrites n so that every Literal or Class alphabetic byte also
// matches its opposite case, implementing case-insensitive matching by
// character-class expansion rather than by lower-casing input text — the
// approach spec.md §9 calls out as "preferred for perf". EmptySet, Epsilon,
// and non-alphabetic Literal/Class bytes are returned unchanged.
func FoldCase(n Node) Node {
	switch v := n.(type) {
	case Literal:
		if o, ok := swapCase(v.Byte); ok {
			cls := token.NewCharClass()
			cls.Add(v.Byte)
			cls.Add(o)
			return Class{Bitmap: cls}
		}
		return v
	case Class:
		cls := token.NewCharClass()
		*cls = *v.Bitmap
		for b := 0; b < 256; b++ {
			if v.Bitmap.Bitmap[b] {
				if o, ok := swapCase(byte(b)); ok {
					cls.Bitmap[o] = true
				}
			}
		}
		return Class{Bitmap: cls}
	case Concat:
		return Concat{L: FoldCase(v.L), R: FoldCase(v.R)}
	case Union:
		return Union{L: FoldCase(v.L), R: FoldCase(v.R)}
	case Star:
		return Star{E: FoldCase(v.E)}
	case Plus:
		return Plus{E: FoldCase(v.E)}
	default:
		return n
	}
}

func swapCase(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A'), true
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A'), true
	default:
		return 0, false
	}
}

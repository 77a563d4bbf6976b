package types

import (
	"errors"
	"testing"
)

func TestSquareBijection(t *testing.T) {
	seen := make(map[Square]bool)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq, err := SquareAt(row, col)
			if err != nil {
				t.Fatalf("SquareAt(%d, %d): %v", row, col, err)
			}
			if int(sq) != row*8+col {
				t.Errorf("SquareAt(%d, %d) = %d, want %d", row, col, sq, row*8+col)
			}
			if sq.Row() != row || sq.Col() != col {
				t.Errorf("square %d = (%d, %d), want (%d, %d)", sq, sq.Row(), sq.Col(), row, col)
			}
			if seen[sq] {
				t.Errorf("square %d produced twice", sq)
			}
			seen[sq] = true
		}
	}
	if len(seen) != 64 {
		t.Errorf("got %d distinct squares, want 64", len(seen))
	}
}

func TestSquareAtRejectsOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		_, err := SquareAt(c[0], c[1])
		if !errors.Is(err, ErrMalformedSquare) {
			t.Errorf("SquareAt(%d, %d) err = %v, want ErrMalformedSquare", c[0], c[1], err)
		}
	}
}

func TestSquareString(t *testing.T) {
	checks := []struct {
		sq   Square
		want string
	}{
		{0, "a8"},
		{7, "h8"},
		{56, "a1"},
		{63, "h1"},
		{12, "e7"},
		{NoSquare, "square(-1)"},
	}
	for _, c := range checks {
		if got := c.sq.String(); got != c.want {
			t.Errorf("Square(%d).String() = %q, want %q", c.sq, got, c.want)
		}
	}
}

func TestPieceCodeBits(t *testing.T) {
	for i, pt := range PieceTypes {
		if pt.Bit() != PieceCode(1<<i) {
			t.Errorf("%s bit = %b, want %b", pt, pt.Bit(), 1<<i)
		}
	}
	if KnownBits != 0x3f {
		t.Errorf("KnownBits = %#x, want 0x3f", uint32(KnownBits))
	}

	code := CodeOf(King, Bishop) | 1<<9
	if code.Count() != 2 {
		t.Errorf("Count() = %d, want 2", code.Count())
	}
	if code.Unknown() != 1<<9 {
		t.Errorf("Unknown() = %#x, want 0x200", uint32(code.Unknown()))
	}
	if !code.Has(King) || !code.Has(Bishop) || code.Has(Queen) {
		t.Errorf("Has mismatch for %s", code)
	}
	if got := code.String(); got != "king+bishop+0x200" {
		t.Errorf("String() = %q", got)
	}
}

func TestSquareSet(t *testing.T) {
	s := SquareSetOf(20, 4, NoSquare, 63)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(4) || !s.Has(20) || !s.Has(63) || s.Has(5) || s.Has(NoSquare) {
		t.Errorf("membership wrong for %s", s)
	}
	got := s.Squares()
	want := []Square{4, 20, 63}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if SquareSetOf(4, 20) != SquareSetOf(20, 4) {
		t.Error("sets with equal members should compare equal")
	}
	if !SquareSet(0).Empty() {
		t.Error("zero set should be empty")
	}
}

func TestParseSquare(t *testing.T) {
	for i := 0; i < BoardSize*BoardSize; i++ {
		sq := Square(i)
		got, err := ParseSquare(sq.String())
		if err != nil || got != sq {
			t.Errorf("ParseSquare(%q) = %d, %v, want %d", sq.String(), got, err, sq)
		}
	}
	for _, bad := range []string{"", "e", "e9", "i1", "e0", "e44", "E4"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrMalformedSquare) {
			t.Errorf("ParseSquare(%q) err = %v, want ErrMalformedSquare", bad, err)
		}
	}
}

package supercalc

import "testing"

func TestScanNum(t *testing.T) {
	cases := []struct {
		src  string
		want *Value
		n    int
	}{
		{"0", Int(0), 1},
		{"9876543210", Int(9876543210), 10},
		{"123abc", Int(123), 3},
		{"1.5", Real(1.5), 3},
		{"1.", Real(1), 2},
		{".5", Real(0.5), 2},
		{"1e3", Real(1000), 3},
		{"1e", Int(1), 1},
		{"1e+5", Real(1e5), 4},
		{"2.5e-1x", Real(0.25), 6},
		{"1.0.1", Real(1), 3},
		{"9223372036854775807", Int(9223372036854775807), 19},
		// Too big for an integer, so the real wins.
		{"9223372036854775808", Real(9223372036854775808), 19},
		// Too big for a real, so the integer wins.
		{"1e400", Int(1), 1},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			cur := NewCursor(c.src)
			got := cur.scanNum()
			if !got.Equal(c.want) {
				t.Errorf("wrong value: want %v, got %v", c.want, got)
			}
			if cur.off != c.n {
				t.Errorf("wrong length: want %d, got %d", c.n, cur.off)
			}
		})
	}
}

func TestScanNumErrors(t *testing.T) {
	for _, src := range []string{".", ".e1", "e1"} {
		cur := NewCursor(src)
		v := cur.scanNum()
		if !v.IsErr() {
			t.Errorf("%q scanned to %v", src, v)
			continue
		}
		if v.Err().Kind != SyntaxError || v.Err().Pos() != 1 {
			t.Errorf("%q gave wrong error %v", src, v.Err())
		}
	}
}

func TestScanIdent(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"", ""},
		{"1x", ""},
		{"x", "x"},
		{"e1", "e1"},
		{"π", "π"},
		{"eπ(", "eπ"},
		{"_1234_ x", "_1234_"},
		{"a+b", "a"},
	}
	for _, c := range cases {
		cur := NewCursor(c.src)
		if got := cur.scanIdent(); got != c.want {
			t.Errorf("scanning %q: want %q, got %q", c.src, c.want, got)
		}
		if cur.Rest() != c.src[len(c.want):] {
			t.Errorf("scanning %q: left %q", c.src, cur.Rest())
		}
	}
}

func TestSign(t *testing.T) {
	cases := []struct {
		src  string
		want int
		rest string
	}{
		{"x", 1, "x"},
		{"-x", -1, "x"},
		{"--x", 1, "x"},
		{"- + -  - x", -1, "x"},
		{"+x", 1, "x"},
	}
	for _, c := range cases {
		cur := NewCursor(c.src)
		if got := cur.sign(); got != c.want {
			t.Errorf("sign of %q: want %d, got %d", c.src, c.want, got)
		}
		if cur.Rest() != c.rest {
			t.Errorf("sign of %q left %q", c.src, cur.Rest())
		}
	}
}

func TestCursorPos(t *testing.T) {
	cur := NewCursor("a×b")
	want := []struct {
		r   rune
		pos int
	}{{'a', 1}, {'×', 2}, {'b', 3}, {0, 4}}
	for _, w := range want {
		if cur.Pos() != w.pos {
			t.Errorf("at %q: want pos %d, got %d", w.r, w.pos, cur.Pos())
		}
		if r := cur.Next(); r != w.r {
			t.Errorf("want %q, got %q", w.r, r)
		}
	}
	if !cur.Done() {
		t.Error("cursor not done at end of input")
	}
	if cur.Pos() != 4 {
		t.Errorf("Next at end moved the cursor to %d", cur.Pos())
	}
}

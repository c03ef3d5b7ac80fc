package atlas

import "testing"

func TestShelfCursor_Basic(t *testing.T) {
	s := newShelfCursor(100, 100, 1)

	x, y, ok := s.place(20, 20)
	if !ok {
		t.Fatal("failed to place first glyph")
	}
	if x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}

	x, y, ok = s.place(20, 20)
	if !ok {
		t.Fatal("failed to place second glyph")
	}
	if x != 21 || y != 0 { // 20 + 1 padding
		t.Errorf("expected (21,0), got (%d,%d)", x, y)
	}
}

func TestShelfCursor_RowWrap(t *testing.T) {
	s := newShelfCursor(50, 100, 1)

	// Two 20px glyphs fill the row: 0..20, 21..41; a third cannot fit.
	_, y1, _ := s.place(20, 20)
	_, _, _ = s.place(20, 20)
	x3, y3, ok := s.place(20, 20)
	if !ok {
		t.Fatal("failed to place third glyph")
	}
	if x3 != 0 {
		t.Errorf("expected x=0 after row wrap, got %d", x3)
	}
	if y3 != y1+21 { // row height = tallest glyph + padding
		t.Errorf("expected y=%d after row wrap, got %d", y1+21, y3)
	}
}

func TestShelfCursor_RowHeightIsTallest(t *testing.T) {
	s := newShelfCursor(50, 100, 1)

	_, _, _ = s.place(20, 10)
	_, _, _ = s.place(20, 30) // taller glyph grows the row
	x, y, ok := s.place(20, 10)
	if !ok {
		t.Fatal("failed to place glyph on new row")
	}
	if x != 0 || y != 31 {
		t.Errorf("expected (0,31), got (%d,%d)", x, y)
	}
}

func TestShelfCursor_VerticalOverflow(t *testing.T) {
	s := newShelfCursor(50, 50, 1)

	if _, _, ok := s.place(40, 40); !ok {
		t.Fatal("first glyph must fit")
	}
	// Wraps to a new row at y=41, where 40px of height does not fit.
	if _, _, ok := s.place(40, 40); ok {
		t.Error("expected vertical overflow")
	}
}

func TestShelfCursor_Utilization(t *testing.T) {
	s := newShelfCursor(100, 100, 0)

	if u := s.utilization(); u != 0 {
		t.Errorf("expected zero utilization before packing, got %f", u)
	}

	_, _, _ = s.place(10, 50)
	if u := s.utilization(); u != 0.5 {
		t.Errorf("expected utilization 0.5, got %f", u)
	}
}

func TestShelfCursor_Deterministic(t *testing.T) {
	sizes := [][2]int{{7, 9}, {12, 5}, {30, 14}, {8, 8}, {25, 11}, {40, 9}}

	run := func() [][2]int {
		s := newShelfCursor(64, 64, 1)
		var got [][2]int
		for _, wh := range sizes {
			x, y, ok := s.place(wh[0], wh[1])
			if !ok {
				break
			}
			got = append(got, [2]int{x, y})
		}
		return got
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("placement counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("placement %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

package layout

import (
	"image"
	"testing"
)

func TestParsePPI(t *testing.T) {
	for _, s := range []string{"300", "600", "1200"} {
		if _, err := ParsePPI(s); err != nil {
			t.Errorf("ParsePPI(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "72", "150", "abc", "-300"} {
		if _, err := ParsePPI(s); err == nil {
			t.Errorf("ParsePPI(%q) should fail", s)
		}
	}
}

func TestParsePaperSize(t *testing.T) {
	if p, err := ParsePaperSize("US"); err != nil || p != PaperUS {
		t.Fatalf("ParsePaperSize(US) = %v, %v", p, err)
	}
	if p, err := ParsePaperSize("A4"); err != nil || p != PaperA4 {
		t.Fatalf("ParsePaperSize(A4) = %v, %v", p, err)
	}
	if _, err := ParsePaperSize("letter"); err == nil {
		t.Fatalf("ParsePaperSize(letter) should fail")
	}
}

func TestPageDimensions(t *testing.T) {
	if w := PageWidth(PPI300, PaperUS); w != 2550 {
		t.Errorf("US width @300 = %d, want 2550", w)
	}
	if h := PageHeight(PPI300, PaperUS); h != 3300 {
		t.Errorf("US height @300 = %d, want 3300", h)
	}
	if w := PageWidth(PPI600, PaperA4); w != 4962 {
		t.Errorf("A4 width @600 = %d, want 4962", w)
	}
	if h := PageHeight(PPI600, PaperA4); h != 7014 {
		t.Errorf("A4 height @600 = %d, want 7014", h)
	}
}

func TestCardSize(t *testing.T) {
	c := CardSize(PPI300)
	if c.X != 744 || c.Y != 1039 {
		t.Fatalf("card @300 = %v, want (744, 1039)", c)
	}
}

func TestContentFitsOnPage(t *testing.T) {
	for _, ppi := range []PPI{PPI300, PPI600, PPI1200} {
		for _, paper := range []PaperSize{PaperUS, PaperA4} {
			if ContentWidth(ppi) > PageWidth(ppi, paper) {
				t.Errorf("content width overflows %v @%d", paper, ppi)
			}
			if ContentHeight(ppi) > PageHeight(ppi, paper) {
				t.Errorf("content height overflows %v @%d", paper, ppi)
			}
			if MarginX(ppi, paper) < 0 || MarginY(ppi, paper) < 0 {
				t.Errorf("negative margin for %v @%d", paper, ppi)
			}
		}
	}
}

func TestPlacementGrid(t *testing.T) {
	card := CardSize(PPI300)
	mx := MarginX(PPI300, PaperUS)
	my := MarginY(PPI300, PaperUS)

	// Slot 0: top-left, one gutter in.
	got := Placement(0, PPI300, PaperUS)
	want := image.Rect(mx+GutterPx, my+GutterPx, mx+GutterPx+card.X, my+GutterPx+card.Y)
	if got != want {
		t.Errorf("slot 0 = %v, want %v", got, want)
	}

	// Slot 4: center of the grid.
	got = Placement(4, PPI300, PaperUS)
	wantX := card.X + 2*GutterPx + mx
	wantY := card.Y + 2*GutterPx + my
	if got.Min.X != wantX || got.Min.Y != wantY {
		t.Errorf("slot 4 origin = %v, want (%d, %d)", got.Min, wantX, wantY)
	}

	// Slot 8: bottom-right.
	got = Placement(8, PPI300, PaperUS)
	if got.Min.X != 2*card.X+3*GutterPx+mx || got.Min.Y != 2*card.Y+3*GutterPx+my {
		t.Errorf("slot 8 origin = %v", got.Min)
	}

	// All nine slots are card-sized and disjoint.
	var rects []image.Rectangle
	for pos := 0; pos < CardsPerPage; pos++ {
		r := Placement(pos, PPI300, PaperUS)
		if r.Dx() != card.X || r.Dy() != card.Y {
			t.Errorf("slot %d size = %dx%d", pos, r.Dx(), r.Dy())
		}
		for _, prev := range rects {
			if r.Overlaps(prev) {
				t.Errorf("slot %d overlaps an earlier slot", pos)
			}
		}
		rects = append(rects, r)
	}
}

func TestPlacementPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for slot 9")
		}
	}()
	Placement(9, PPI300, PaperUS)
}

func TestCornerGeometry(t *testing.T) {
	if r := CornerRadius(PPI300); r != 35 {
		t.Errorf("radius @300 = %d, want 35", r)
	}
	if r := CornerRadius(PPI1200); r != 142 {
		t.Errorf("radius @1200 = %d, want 142", r)
	}
	if n := ArcSegments(PPI300); n != 65 {
		t.Errorf("segments @300 = %d, want 65", n)
	}
	if n := ArcSegments(PPI600); n != 130 {
		t.Errorf("segments @600 = %d, want 130", n)
	}
	if n := ArcSegments(PPI1200); n != 260 {
		t.Errorf("segments @1200 = %d, want 260", n)
	}
}

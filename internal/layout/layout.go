// Package layout computes the page geometry for 3x3 card sheets. Everything
// here is pure pixel arithmetic; drawing belongs to the compose package.
//
// Assumptions carried over from the print workflow:
//   - cards are 63mm x 88mm (2.48031in x 3.46457in), already at print scale
//   - nine cards per page in a 3x3 grid, centered on the paper
//   - thin gutters between cards give slack for cutting
package layout

import (
	"fmt"
	"image"
	"math"
	"strconv"
)

// PPI is the print resolution in pixels per inch. Only the three standard
// print resolutions are supported.
type PPI int

const (
	PPI300  PPI = 300
	PPI600  PPI = 600
	PPI1200 PPI = 1200
)

// ParsePPI parses a resolution string. Only 300, 600, and 1200 are accepted.
func ParsePPI(s string) (PPI, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("layout: invalid ppi %q", s)
	}
	p := PPI(n)
	switch p {
	case PPI300, PPI600, PPI1200:
		return p, nil
	}
	return 0, fmt.Errorf("layout: unsupported ppi %d (use 300, 600, or 1200)", n)
}

// PaperSize selects the physical page dimensions.
type PaperSize int

const (
	PaperUS PaperSize = iota // 8.5in x 11in
	PaperA4                  // 8.27in x 11.69in
)

// ParsePaperSize parses "US" or "A4".
func ParsePaperSize(s string) (PaperSize, error) {
	switch s {
	case "US":
		return PaperUS, nil
	case "A4":
		return PaperA4, nil
	}
	return 0, fmt.Errorf("layout: unsupported paper size %q (use US or A4)", s)
}

func (p PaperSize) String() string {
	if p == PaperA4 {
		return "A4"
	}
	return "US"
}

const (
	// CardsPerPage is the grid capacity: 3 columns by 3 rows.
	CardsPerPage = 9

	// GutterPx is the thickness of the cut gutters between cards.
	GutterPx = 3

	// ArcThicknessPx is the stroke width of the rounded-corner arcs.
	ArcThicknessPx = 3

	// cornerRadiusInch is the 3mm playing-card corner radius.
	cornerRadiusInch = 0.11811

	// cardBorderInch matches the corner radius; halved for the inner border.
	cardBorderInch = 0.11811

	cardWidthInch  = 2.48031 // 63mm
	cardHeightInch = 3.46457 // 88mm
)

// CardSize returns the card dimensions in pixels at the given resolution.
func CardSize(ppi PPI) image.Point {
	return image.Point{
		X: int(float64(ppi) * cardWidthInch),
		Y: int(float64(ppi) * cardHeightInch),
	}
}

// PageWidth returns the page width in pixels.
func PageWidth(ppi PPI, paper PaperSize) int {
	if paper == PaperA4 {
		return int(float64(ppi) * 8.27)
	}
	return int(ppi)*8 + int(ppi)/2
}

// PageHeight returns the page height in pixels.
func PageHeight(ppi PPI, paper PaperSize) int {
	if paper == PaperA4 {
		return int(float64(ppi) * 11.69)
	}
	return int(ppi) * 11
}

// MarginX returns the horizontal margin, split evenly between left and right,
// from the difference of the paper width and the 3-card content width.
func MarginX(ppi PPI, paper PaperSize) int {
	return (PageWidth(ppi, paper) - 3*CardSize(ppi).X) / 2
}

// MarginY returns the vertical margin, split evenly between top and bottom.
func MarginY(ppi PPI, paper PaperSize) int {
	return (PageHeight(ppi, paper) - 3*CardSize(ppi).Y) / 2
}

// Placement returns the page rectangle for the card in grid slot pos, where
// slots run 0..8 left-to-right, top-to-bottom. Gutters shift each card right
// and down by one gutter width per preceding grid line.
func Placement(pos int, ppi PPI, paper PaperSize) image.Rectangle {
	if pos < 0 || pos >= CardsPerPage {
		panic(fmt.Sprintf("layout: card slot %d out of range", pos))
	}
	card := CardSize(ppi)
	col := pos % 3
	row := pos / 3

	x := col*card.X + (col+1)*GutterPx + MarginX(ppi, paper)
	y := row*card.Y + (row+1)*GutterPx + MarginY(ppi, paper)
	return image.Rect(x, y, x+card.X, y+card.Y)
}

// CornerRadius returns the rounded-corner radius in pixels.
func CornerRadius(ppi PPI) int {
	return int(math.Round(cornerRadiusInch * float64(ppi)))
}

// BorderPx returns the inner card border thickness in pixels.
func BorderPx(ppi PPI) int {
	return int(float64(ppi) * cardBorderInch / 2.0)
}

// ArcSegments returns the number of line segments used to approximate a
// quarter arc at the corner radius: a quarter of the circle circumference in
// pixels, rounded up to a stable per-resolution count.
func ArcSegments(ppi PPI) int {
	switch ppi {
	case PPI600:
		return 130
	case PPI1200:
		return 260
	default:
		return 65
	}
}

// ContentWidth returns the width of the 3-card grid including its gutters.
func ContentWidth(ppi PPI) int {
	return 3*CardSize(ppi).X + 4*GutterPx
}

// ContentHeight returns the height of the 3-card grid including its gutters.
func ContentHeight(ppi PPI) int {
	return 3*CardSize(ppi).Y + 4*GutterPx
}

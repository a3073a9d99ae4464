// Package compose renders card sheet pages onto an in-memory RGBA surface.
// It draws the cutting aids (margin border, guide lines, gutters, rounded
// corner arcs) and blits card images into their grid slots. Geometry comes
// from the layout package; nothing here does file I/O except card loading.
package compose

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hevi0/cardprint/internal/layout"
)

// White is the page background.
var White = color.RGBA{255, 255, 255, 255}

// GuideGray is the color of the full-bleed alignment guides.
var GuideGray = color.RGBA{64, 64, 64, 255}

// Page is a single card sheet being composed.
type Page struct {
	img   *image.RGBA
	ppi   layout.PPI
	paper layout.PaperSize
}

// NewPage allocates a page surface at the paper's pixel dimensions and fills
// it with the white background.
func NewPage(ppi layout.PPI, paper layout.PaperSize) *Page {
	w := layout.PageWidth(ppi, paper)
	h := layout.PageHeight(ppi, paper)
	p := &Page{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		ppi:   ppi,
		paper: paper,
	}
	p.fill(p.img.Bounds(), White)
	return p
}

// Image exposes the underlying surface.
func (p *Page) Image() *image.RGBA { return p.img }

func (p *Page) fill(r image.Rectangle, c color.RGBA) {
	draw.Draw(p.img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// DrawMarginBorder extends the card background color into the margins around
// the 3x3 content area, giving extra slack when cutting:
//
//	111111111
//	4 X X X 2
//	4 X X X 2
//	4 X X X 2
//	333333333
//
// The top and bottom bands extend past the content width by the border
// thickness on each side; the left and right bands span the content height.
func (p *Page) DrawMarginBorder(c color.RGBA) {
	mx := layout.MarginX(p.ppi, p.paper)
	my := layout.MarginY(p.ppi, p.paper)
	cw := layout.ContentWidth(p.ppi)
	ch := layout.ContentHeight(p.ppi)
	b := layout.BorderPx(p.ppi)

	p.fill(image.Rect(mx-b, my-b, mx+cw+b, my), c)       // top
	p.fill(image.Rect(mx+cw, my, mx+cw+b, my+ch), c)     // right
	p.fill(image.Rect(mx-b, my+ch, mx+cw+b, my+ch+b), c) // bottom
	p.fill(image.Rect(mx-b, my, mx, my+ch), c)           // left
}

// DrawBackgroundLines draws the guide lines that extend across the full page,
// marking every grid boundary for alignment when cutting.
func (p *Page) DrawBackgroundLines(c color.RGBA) {
	card := layout.CardSize(p.ppi)
	mx := layout.MarginX(p.ppi, p.paper)
	my := layout.MarginY(p.ppi, p.paper)
	pw := layout.PageWidth(p.ppi, p.paper)
	ph := layout.PageHeight(p.ppi, p.paper)

	for i := 0; i < 4; i++ {
		x := card.X*i + i*layout.GutterPx + mx
		p.fill(image.Rect(x, 0, x+layout.GutterPx, ph), c)
	}
	for i := 0; i < 4; i++ {
		y := card.Y*i + i*layout.GutterPx + my
		p.fill(image.Rect(0, y, pw, y+layout.GutterPx), c)
	}
}

// DrawGutterLines fills the gutters between cards, bounded to the content
// area, with the chosen cut-line color.
func (p *Page) DrawGutterLines(c color.RGBA) {
	card := layout.CardSize(p.ppi)
	mx := layout.MarginX(p.ppi, p.paper)
	my := layout.MarginY(p.ppi, p.paper)
	cw := layout.ContentWidth(p.ppi)
	ch := layout.ContentHeight(p.ppi)

	for i := 0; i < 4; i++ {
		x := card.X*i + i*layout.GutterPx + mx
		p.fill(image.Rect(x, my, x+layout.GutterPx, my+ch), c)
	}
	for i := 0; i < 4; i++ {
		y := card.Y*i + i*layout.GutterPx + my
		p.fill(image.Rect(mx, y, mx+cw, y+layout.GutterPx), c)
	}
}

// DrawBlankCardBorder paints an inner border in an empty card slot so the
// cut outline stays visible even without a card image.
func (p *Page) DrawBlankCardBorder(pos int, c color.RGBA) {
	r := layout.Placement(pos, p.ppi, p.paper)
	b := layout.BorderPx(p.ppi)

	p.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+b), c)      // top
	p.fill(image.Rect(r.Max.X-b, r.Min.Y+b, r.Max.X, r.Max.Y-b), c)  // right
	p.fill(image.Rect(r.Min.X, r.Max.Y-b, r.Max.X, r.Max.Y), c)      // bottom
	p.fill(image.Rect(r.Min.X, r.Min.Y+b, r.Min.X+b, r.Max.Y-b), c)  // left
}

// DrawRoundedCorners strokes the four quarter arcs marking a card's rounded
// corners.
func (p *Page) DrawRoundedCorners(pos int, c color.RGBA) {
	r := layout.Placement(pos, p.ppi, p.paper)
	radius := layout.CornerRadius(p.ppi)

	p.drawQuarterArc(r.Min.X+radius, r.Min.Y+radius, 1, c) // top-left
	p.drawQuarterArc(r.Max.X-radius, r.Min.Y+radius, 0, c) // top-right
	p.drawQuarterArc(r.Max.X-radius, r.Max.Y-radius, 3, c) // bottom-right
	p.drawQuarterArc(r.Min.X+radius, r.Max.Y-radius, 2, c) // bottom-left
}

// drawQuarterArc plots one quadrant of a circle centered at (cx, cy). The
// segment count approximates one pixel per step at the corner radius, so
// plotting the sample points is enough to form a solid line. Redrawing at
// neighboring radii gives the stroke its thickness.
func (p *Page) drawQuarterArc(cx, cy, quad int, c color.RGBA) {
	var start, end float64
	switch quad {
	case 0:
		start, end = 0, math.Pi/2
	case 1:
		start, end = math.Pi/2, math.Pi
	case 2:
		start, end = math.Pi, 3*math.Pi/2
	case 3:
		start, end = 3*math.Pi/2, 2*math.Pi
	}

	segments := layout.ArcSegments(p.ppi)
	radius := layout.CornerRadius(p.ppi)

	for i := -layout.ArcThicknessPx / 2; i <= layout.ArcThicknessPx/2; i++ {
		for j := 0; j < segments; j++ {
			angle := start + (end-start)*float64(j)/float64(segments-1)
			x := cx + int(float64(radius+i)*math.Cos(angle))
			// Subtract to adjust for inverted-y coordinates.
			y := cy - int(float64(radius+i)*math.Sin(angle))
			p.img.SetRGBA(x, y, c)
		}
	}
}

package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // register decoders for card images
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/hevi0/cardprint/internal/layout"
)

// LoadCard reads a card image from disk and scales it onto a card-sized
// surface pre-filled with the card background color. The scale stretches to
// the full card rectangle; inputs are expected to already match the card's
// aspect ratio.
func LoadCard(path string, bg color.RGBA, ppi layout.PPI) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode card image %s: %w", path, err)
	}

	size := layout.CardSize(ppi)
	card := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(card, card.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	xdraw.BiLinear.Scale(card, card.Bounds(), src, src.Bounds(), draw.Over, nil)
	return card, nil
}

// PlaceCard blits a loaded card onto its grid slot, scaling if the source is
// not already card-sized.
func (p *Page) PlaceCard(pos int, card image.Image) {
	target := layout.Placement(pos, p.ppi, p.paper)
	if card.Bounds().Dx() == target.Dx() && card.Bounds().Dy() == target.Dy() {
		draw.Draw(p.img, target, card, card.Bounds().Min, draw.Over)
		return
	}
	xdraw.BiLinear.Scale(p.img, target, card, card.Bounds(), draw.Over, nil)
}

// EncodePage serializes the page surface as a PNG stream.
func (p *Page) EncodePage() ([]byte, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, p.img); err != nil {
		return nil, fmt.Errorf("encode page: %w", err)
	}
	return out.Bytes(), nil
}

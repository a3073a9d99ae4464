// Package sheetcfg parses the line-oriented sheet configuration format.
//
// The file lists, in order and one per line: paper size (US|A4), print
// resolution (300|600|1200), the card background color and the cut-line
// color as "r g b a" byte quadruples, a rounded-corners toggle (0|1), and
// finally one card image path per line. Blank lines and lines starting with
// '#' are skipped anywhere in the file.
package sheetcfg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hevi0/cardprint/internal/layout"
)

// MaxCards caps how many card image paths a config may list. 80 pages of 9
// cards keeps the two-digit page numbering in output filenames valid.
const MaxCards = 80 * layout.CardsPerPage

// Config is a parsed sheet configuration.
type Config struct {
	Paper          layout.PaperSize
	PPI            layout.PPI
	CardBG         color.RGBA
	CutLines       color.RGBA
	RoundedCorners bool
	Cards          []string
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sheetcfg: %w", err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("sheetcfg: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a config from r.
func Parse(r io.Reader) (*Config, error) {
	lines := &lineReader{scanner: bufio.NewScanner(r)}
	cfg := &Config{}

	s, err := lines.next("paper size")
	if err != nil {
		return nil, err
	}
	if cfg.Paper, err = layout.ParsePaperSize(s); err != nil {
		return nil, fmt.Errorf("line %d: %w", lines.n, err)
	}

	if s, err = lines.next("ppi"); err != nil {
		return nil, err
	}
	if cfg.PPI, err = layout.ParsePPI(s); err != nil {
		return nil, fmt.Errorf("line %d: %w", lines.n, err)
	}

	if s, err = lines.next("card background color"); err != nil {
		return nil, err
	}
	if cfg.CardBG, err = parseColor(s); err != nil {
		return nil, fmt.Errorf("line %d: card background color: %w", lines.n, err)
	}

	if s, err = lines.next("cut line color"); err != nil {
		return nil, err
	}
	if cfg.CutLines, err = parseColor(s); err != nil {
		return nil, fmt.Errorf("line %d: cut line color: %w", lines.n, err)
	}

	if s, err = lines.next("rounded corner toggle"); err != nil {
		return nil, err
	}
	switch s {
	case "0":
		cfg.RoundedCorners = false
	case "1":
		cfg.RoundedCorners = true
	default:
		return nil, fmt.Errorf("line %d: rounded corner toggle must be 0 or 1, got %q", lines.n, s)
	}

	for {
		s, err = lines.next("")
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(cfg.Cards) == MaxCards {
			return nil, fmt.Errorf("line %d: more than %d card images", lines.n, MaxCards)
		}
		cfg.Cards = append(cfg.Cards, s)
	}
	return cfg, nil
}

// lineReader yields trimmed, non-blank, non-comment lines.
type lineReader struct {
	scanner *bufio.Scanner
	n       int
}

// next returns the next meaningful line. When want is non-empty a missing
// line is an error naming the expected value; otherwise io.EOF is returned.
func (lr *lineReader) next(want string) (string, error) {
	for lr.scanner.Scan() {
		lr.n++
		s := strings.TrimSpace(lr.scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		return s, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return "", err
	}
	if want != "" {
		return "", fmt.Errorf("missing %s: config ended at line %d", want, lr.n)
	}
	return "", io.EOF
}

// parseColor parses an "r g b a" quadruple of 0-255 values.
func parseColor(s string) (color.RGBA, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return color.RGBA{}, fmt.Errorf("want 4 values %q, got %d", "r g b a", len(fields))
	}
	var vals [4]uint8
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("value %q out of range 0-255", f)
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// Package sheet drives card sheet generation end to end: it chunks the
// configured card list into 3x3 pages, renders each page with its cutting
// aids, saves the page PNG, and stamps the print resolution into the saved
// file's density metadata.
package sheet

import (
	"fmt"

	"github.com/hevi0/cardprint/internal/compose"
	"github.com/hevi0/cardprint/internal/layout"
	"github.com/hevi0/cardprint/internal/sheetcfg"
	"github.com/hevi0/cardprint/internal/writer"
	"github.com/hevi0/cardprint/pkg/pngmeta"
)

// Options control output naming and commit behavior.
type Options struct {
	// OutputPrefix names the page files "<prefix>NN.png". Default "page".
	OutputPrefix string

	// Strategy selects how the density patch commits. Page rendering itself
	// always saves atomically.
	Strategy pngmeta.CommitStrategy

	// Logf receives progress lines. Nil disables progress output.
	Logf func(format string, args ...any)
}

func (o *Options) prefix() string {
	if o.OutputPrefix != "" {
		return o.OutputPrefix
	}
	return "page"
}

func (o *Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Result reports what a generation run produced. Warnings carry the per-page
// problems that did not stop the run: unreadable card images and failed
// density patches. Callers must inspect Warnings; a nil error alone does not
// mean every page is complete and density-tagged.
type Result struct {
	Pages    []string
	Warnings []string
}

// Generate renders all pages for cfg. Rendering or saving failures abort the
// run; a density-patch failure on a saved page is recorded as a warning and
// the run continues, since the page's pixel content is already usable.
func Generate(cfg *sheetcfg.Config, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	res := &Result{}

	pageCount := (len(cfg.Cards) + layout.CardsPerPage - 1) / layout.CardsPerPage
	opts.logf("Generating %d pages", pageCount)

	for pg := 0; pg < pageCount; pg++ {
		path := fmt.Sprintf("%s%02d.png", opts.prefix(), pg+1)
		if err := generatePage(cfg, opts, res, pg, path); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, path)

		if err := pngmeta.SetDPI(path, int(cfg.PPI), &pngmeta.Options{Strategy: opts.Strategy}); err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s: density patch failed: %v", path, err))
		}
	}
	return res, nil
}

func generatePage(cfg *sheetcfg.Config, opts *Options, res *Result, pg int, path string) error {
	page := compose.NewPage(cfg.PPI, cfg.Paper)

	// Extend the card background into the margins and mark every grid
	// boundary before any card lands on the page.
	page.DrawMarginBorder(cfg.CardBG)
	page.DrawBackgroundLines(compose.GuideGray)

	start := pg * layout.CardsPerPage
	end := min(start+layout.CardsPerPage, len(cfg.Cards))

	placed := make([]bool, layout.CardsPerPage)
	for i := start; i < end; i++ {
		pos := i % layout.CardsPerPage
		card, err := compose.LoadCard(cfg.Cards[i], cfg.CardBG, cfg.PPI)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", cfg.Cards[i], err))
			continue
		}
		opts.logf("Adding %s to page %02d", cfg.Cards[i], pg+1)
		page.PlaceCard(pos, card)
		placed[pos] = true
	}

	// Empty slots still get a cut outline.
	for pos, ok := range placed {
		if !ok {
			page.DrawBlankCardBorder(pos, cfg.CardBG)
		}
	}

	page.DrawGutterLines(cfg.CutLines)

	if cfg.RoundedCorners {
		for pos := start; pos < end; pos++ {
			page.DrawRoundedCorners(pos%layout.CardsPerPage, cfg.CutLines)
		}
	}

	data, err := page.EncodePage()
	if err != nil {
		return fmt.Errorf("page %02d: %w", pg+1, err)
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteImage(data); err != nil {
		return fmt.Errorf("page %02d: %w", pg+1, err)
	}
	return nil
}

package fontpens

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph is returned when a font has no glyph for a rune.
var ErrNoGlyph = errors.New("no glyph for rune")

func fromFixed(pt fixed.Point26_6) Point {
	// sfnt has y pointing down.
	return Point{X: float64(pt.X) / 64, Y: -float64(pt.Y) / 64}
}

// DrawSegments draws an outline loaded by [sfnt.Font.LoadGlyph] into pen.
// Every contour is closed. Coordinates are converted from 26.6 fixed point
// with y pointing down to glyph space with y pointing up, so loading the
// glyph at a size of one em per font unit yields font units.
func DrawSegments(pen Pen, segs sfnt.Segments) {
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				pen.ClosePath()
			}
			pen.MoveTo(fromFixed(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			pen.LineTo(fromFixed(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			pen.QCurveTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			pen.CurveTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]), fromFixed(seg.Args[2]))
		default:
			panic(fmt.Sprintf("invalid segment op %d", seg.Op))
		}
	}
	if open {
		pen.ClosePath()
	}
}

func loadGlyph(f *sfnt.Font, b *sfnt.Buffer, r rune) (sfnt.GlyphIndex, sfnt.Segments, error) {
	idx, err := f.GlyphIndex(b, r)
	if err != nil {
		return 0, nil, err
	}
	if idx == 0 {
		return 0, nil, fmt.Errorf("fontpens: %q: %w", r, ErrNoGlyph)
	}
	segs, err := f.LoadGlyph(b, idx, fixed.I(int(f.UnitsPerEm())), nil)
	if err != nil {
		return 0, nil, err
	}
	return idx, segs, nil
}

// DrawGlyph draws the outline of the glyph that f maps r to into pen, in font
// units.
func DrawGlyph(pen Pen, f *sfnt.Font, r rune) error {
	var b sfnt.Buffer
	_, segs, err := loadGlyph(f, &b, r)
	if err != nil {
		return err
	}
	DrawSegments(pen, segs)
	return nil
}

// LoadGlyph returns the glyph that f maps r to as a [Glyph], with its name
// and advance width in font units.
func LoadGlyph(f *sfnt.Font, r rune) (*Glyph, error) {
	var b sfnt.Buffer
	idx, segs, err := loadGlyph(f, &b, r)
	if err != nil {
		return nil, err
	}
	// segs is only valid until b is used again.
	g := &Glyph{}
	DrawSegments(g.Pen(), segs)
	adv, err := f.GlyphAdvance(&b, idx, fixed.I(int(f.UnitsPerEm())), font.HintingNone)
	if err != nil {
		return nil, err
	}
	g.Width = float64(adv) / 64
	g.Name, err = f.GlyphName(&b, idx)
	if err != nil {
		return nil, err
	}
	return g, nil
}

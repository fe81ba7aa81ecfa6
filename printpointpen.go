package fontpens

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

var _ PointPen = (*PrintPointPen)(nil)

// PrintPointPen is a [PointPen] that writes every call it receives to a
// writer, one line per call, in the form
//
//	pen.beginPath(identifier="abc123")
//	pen.addPoint((10, 10), segmentType="curve", smooth=true)
//	pen.endPath()
//
// Only metadata that is present is printed. It panics with a [*PenError] if
// a point is added outside of a contour or a component inside of one.
type PrintPointPen struct {
	out      tracer
	havePath bool
}

// NewPrintPointPen returns a PrintPointPen writing to w.
func NewPrintPointPen(w io.Writer) *PrintPointPen {
	return &PrintPointPen{out: tracer{w: w}}
}

// Err returns the first error encountered while writing, if any.
func (p *PrintPointPen) Err() error { return p.out.err }

func (p *PrintPointPen) BeginPath(identifier string) {
	p.havePath = true
	if identifier != "" {
		p.out.printf("pen.beginPath(identifier=%q)\n", identifier)
	} else {
		p.out.printf("pen.beginPath()\n")
	}
}

func (p *PrintPointPen) EndPath() {
	p.havePath = false
	p.out.printf("pen.endPath()\n")
}

func (p *PrintPointPen) AddPoint(pt Point, info PointInfo) {
	if !p.havePath {
		panic(penError("addPoint", "no open contour"))
	}
	args := []string{pt.String()}
	if info.SegmentType != SegmentOffCurve {
		args = append(args, fmt.Sprintf("segmentType=%q", info.SegmentType))
	}
	if info.Smooth {
		args = append(args, "smooth=true")
	}
	if info.Name != "" {
		args = append(args, fmt.Sprintf("name=%q", info.Name))
	}
	if info.Identifier != "" {
		args = append(args, fmt.Sprintf("identifier=%q", info.Identifier))
	}
	if len(info.Extra) > 0 {
		args = append(args, "**"+formatExtra(info.Extra))
	}
	p.out.printf("pen.addPoint(%s)\n", strings.Join(args, ", "))
}

func (p *PrintPointPen) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	if p.havePath {
		panic(penError("addComponent", "contour still open"))
	}
	if identifier != "" {
		p.out.printf("pen.addComponent(%q, %s, identifier=%q)\n", baseGlyph, formatTransform(transform), identifier)
	} else {
		p.out.printf("pen.addComponent(%q, %s)\n", baseGlyph, formatTransform(transform))
	}
}

// formatExtra prints extra metadata with its keys sorted, so that the output
// is deterministic.
func formatExtra(extra map[string]any) string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = fmt.Sprintf("%q: %#v", k, extra[k])
	}
	return "{" + strings.Join(items, ", ") + "}"
}

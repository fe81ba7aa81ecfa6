package fontpens

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// SpikeOptions configures a [SpikePen] and the filters built around it.
type SpikeOptions struct {
	// SegmentLength is the approximate distance between vertices after
	// flattening. Zero means 20. Only used by [NewSpikeFilter] and
	// [SpikeGlyph].
	SegmentLength float64
	// SpikeLength is how far vertices are moved. Negative values turn spikes
	// into dents. Zero means 40.
	SpikeLength float64
	// Pattern, if not nil, computes the spike length of the i-th vertex of a
	// contour from SpikeLength.
	Pattern func(i int, length float64) float64
}

func (opts *SpikeOptions) segmentLength() float64 {
	if opts == nil || opts.SegmentLength == 0 {
		return 20
	}
	return opts.SegmentLength
}

func (opts *SpikeOptions) spikeLength(i int) float64 {
	length := 40.0
	if opts != nil && opts.SpikeLength != 0 {
		length = opts.SpikeLength
	}
	if opts != nil && opts.Pattern != nil {
		return opts.Pattern(i, length)
	}
	return length
}

var _ Pen = (*SpikePen)(nil)

// SpikePen is a [Pen] filter that adds spikes or dents to polygons. Every
// vertex with an even index is moved by the spike length, perpendicular to
// the chord between its two neighbours.
//
// The vertices of a closed contour wrap around, and a last vertex that
// repeats the first is dropped. The first and last vertex of an open contour
// stay in place.
//
// SpikePen only understands straight lines; use [NewSpikeFilter] to flatten
// curves first.
type SpikePen struct {
	other Pen
	opts  SpikeOptions

	points    []Point
	inContour bool
}

// NewSpikePen returns a SpikePen drawing into other. opts may be nil.
func NewSpikePen(other Pen, opts *SpikeOptions) *SpikePen {
	p := &SpikePen{other: other}
	if opts != nil {
		p.opts = *opts
	}
	return p
}

func (p *SpikePen) MoveTo(pt Point) {
	p.points = append(p.points[:0], pt)
	p.inContour = true
}

func (p *SpikePen) LineTo(pt Point) {
	if !p.inContour {
		panic(penError("lineTo", "no current point"))
	}
	p.points = append(p.points, pt)
}

func (p *SpikePen) CurveTo(pts ...Point) {
	panic(penError("curveTo", "curves must be flattened before spiking"))
}

func (p *SpikePen) QCurveTo(pts ...Point) {
	panic(penError("qCurveTo", "curves must be flattened before spiking"))
}

func (p *SpikePen) ClosePath() {
	if !p.inContour {
		panic(penError("closePath", "no current point"))
	}
	if n := len(p.points); n > 1 && p.points[n-1] == p.points[0] {
		p.points = p.points[:n-1]
	}
	p.emit(true)
	p.other.ClosePath()
}

func (p *SpikePen) EndPath() {
	if !p.inContour {
		panic(penError("endPath", "no current point"))
	}
	p.emit(false)
	p.other.EndPath()
}

func (p *SpikePen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.other.AddComponent(baseGlyph, transform)
}

func (p *SpikePen) emit(closed bool) {
	pts := p.points
	n := len(pts)
	for i, pt := range pts {
		if i%2 == 0 && (closed || (i != 0 && i != n-1)) {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			pt = pt.Translate(spikeOffset(prev.Sub(next), p.opts.spikeLength(i)))
		}
		if i == 0 {
			p.other.MoveTo(pt)
		} else {
			p.other.LineTo(pt)
		}
	}
	p.points = p.points[:0]
	p.inContour = false
}

// spikeOffset returns the vector of the given length that is perpendicular
// to chord, turned counter-clockwise. A zero chord gives a vector along the
// negative x axis.
func spikeOffset(chord vec.Vec2, length float64) vec.Vec2 {
	d := math.Hypot(chord.X, chord.Y)
	if d == 0 {
		return vec.Vec2{X: -length}
	}
	return vec.Vec2{X: -chord.Y * length / d, Y: chord.X * length / d}
}

// NewSpikeFilter returns a pen that flattens everything drawn into it, with
// straight lines split as well, and then spikes the result into other.
func NewSpikeFilter(other Pen, opts *SpikeOptions) (Pen, error) {
	return NewFlattenPen(NewSpikePen(other, opts), FlattenOptions{
		ApproximateSegmentLength: opts.segmentLength(),
		SegmentLines:             true,
	})
}

// EditableGlyph is an outline that can be redrawn in place.
type EditableGlyph interface {
	Drawer
	// Clear removes all contours and components.
	Clear()
	// Pen returns a pen that draws into the glyph.
	Pen() Pen
}

// SpikeGlyph replaces the outline of g with its spiked version, see
// [NewSpikeFilter].
func SpikeGlyph(g EditableGlyph, opts *SpikeOptions) error {
	var rec RecordingPen
	filter, err := NewSpikeFilter(&rec, opts)
	if err != nil {
		return err
	}
	g.Draw(filter)
	g.Clear()
	rec.Replay(g.Pen())
	return nil
}

package fontpens_test

import (
	"fmt"
	"os"

	"github.com/robotools/fontpens"
	"seehuhn.de/go/geom/matrix"
)

func ExamplePrintPen() {
	pen := fontpens.NewPrintPen(os.Stdout)
	pen.MoveTo(fontpens.Pt(0, 0))
	pen.QCurveTo(fontpens.Pt(0, 100), fontpens.Pt(100, 100), fontpens.Pt(100, 0))
	pen.ClosePath()
	pen.AddComponent("acute", matrix.Translate(50, 500))
	// Output:
	// pen.moveTo((0, 0))
	// pen.qCurveTo((0, 100), (100, 100), (100, 0))
	// pen.closePath()
	// pen.addComponent("acute", (1, 0, 0, 1, 50, 500))
}

func ExampleSpikePen() {
	pen := fontpens.NewSpikePen(fontpens.NewPrintPen(os.Stdout), nil)
	pen.MoveTo(fontpens.Pt(10, 0))
	pen.LineTo(fontpens.Pt(30, 0))
	pen.LineTo(fontpens.Pt(50, 0))
	pen.LineTo(fontpens.Pt(70, 0))
	pen.LineTo(fontpens.Pt(90, 0))
	pen.EndPath()
	// Output:
	// pen.moveTo((10, 0))
	// pen.lineTo((30, 0))
	// pen.lineTo((50, -40))
	// pen.lineTo((70, 0))
	// pen.lineTo((90, 0))
	// pen.endPath()
}

func ExampleQuadBez_Length() {
	q := fontpens.QuadBez{P0: fontpens.Pt(0, 0), P1: fontpens.Pt(0, 100), P2: fontpens.Pt(100, 0)}
	exact, _ := q.Length(fontpens.DefaultPrecision)
	estimate, _ := q.EstimateLength(fontpens.DefaultPrecision)
	fmt.Printf("%.4f %.4f\n", exact, estimate)
	// Output:
	// 154.0298 153.6861
}

func ExampleGlyph() {
	g := fontpens.NewGlyph("square", 500)
	pen := g.Pen()
	pen.MoveTo(fontpens.Pt(100, 100))
	pen.LineTo(fontpens.Pt(100, 300))
	pen.LineTo(fontpens.Pt(300, 300))
	pen.LineTo(fontpens.Pt(300, 100))
	pen.ClosePath()

	g.DrawPoints(fontpens.NewTransformPointPen(fontpens.NewPrintPointPen(os.Stdout), matrix.Translate(-100, -100)))
	fmt.Println(fontpens.SVG(g, fontpens.SVGOptions{}))
	// Output:
	// pen.beginPath()
	// pen.addPoint((0, 0), segmentType="line")
	// pen.addPoint((0, 200), segmentType="line")
	// pen.addPoint((200, 200), segmentType="line")
	// pen.addPoint((200, 0), segmentType="line")
	// pen.endPath()
	// M100,100 L100,300 L300,300 L300,100 Z
}

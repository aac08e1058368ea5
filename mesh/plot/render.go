package plot

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	avsutils "github.com/notargets/avs/utils"
)

// RenderChart draws every polygon in buf as a closed line loop via avs's
// chart2d, mirroring DG2D/graphics_support2.go's PlotTriMesh/PlotLinesAndText.
// Like the teacher's helpers, it blocks after drawing -- avs's window has no
// programmatic close, so callers invoke this only from a CLI or manual
// debugging session, never from library code.
func RenderChart(buf *Buffer, lineColor color.RGBA) {
	xMin, xMax := float32(math.MaxFloat32), -float32(math.MaxFloat32)
	yMin, yMax := float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for _, p := range buf.Points {
		x, y := float32(p.X), float32(p.Y)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}

	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, avsutils.WHITE, avsutils.BLACK)

	for _, poly := range buf.Polygons {
		n := len(poly.PointIndices)
		line := make([]float32, 0, 4*n)
		for i := 0; i < n; i++ {
			a := buf.Points[poly.PointIndices[i]]
			b := buf.Points[poly.PointIndices[(i+1)%n]]
			line = append(line, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y))
		}
		ch.AddLine(line, lineColor)
	}
	for {
	}
}

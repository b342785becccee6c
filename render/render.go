// Package render draws seek control frames with github.com/gogpu/gg.
package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"dasa.cc/seekarc/arc"
	"dasa.cc/seekarc/ring"
	"dasa.cc/seekarc/seek"
)

// Theme holds colors and pixel widths for drawing a control.
type Theme struct {
	Background gg.RGBA
	Circle     gg.RGBA
	Progress   gg.RGBA
	Pointer    gg.RGBA
	Halo       gg.RGBA

	// HaloAlpha replaces the halo's alpha, and HaloAlphaMoving does while dragging.
	HaloAlpha, HaloAlphaMoving float64

	Style ring.Style
}

var DefaultTheme = Theme{
	Background:      gg.RGBA{},
	Circle:          gg.Hex("#444444"),
	Progress:        gg.RGBA2(74.0/255, 138.0/255, 1, 235.0/255),
	Pointer:         gg.RGBA2(74.0/255, 138.0/255, 1, 235.0/255),
	Halo:            gg.RGBA2(74.0/255, 138.0/255, 1, 135.0/255),
	HaloAlpha:       135.0 / 255,
	HaloAlphaMoving: 100.0 / 255,
	Style: ring.Style{
		StrokeWidth:     5,
		PointerRadius:   7,
		HaloWidth:       6,
		HaloBorderWidth: 2,
		MinTouchTarget:  48,
		EqualCircle:     true,
	},
}

// segment is the largest step, in degrees, used to flatten arcs.
const segment = 2.0

// ellipticalArc adds an arc along the ellipse at (cx, cy) from start through
// sweep degrees clockwise. Circles use gg's arc; gg.DrawEllipticalArc scales
// the center but not the radius, so ellipses are flattened here.
func ellipticalArc(dc *gg.Context, cx, cy, rx, ry, start, sweep float64) {
	if rx == ry {
		dc.DrawArc(cx, cy, rx, radians(start), radians(start+sweep))
		return
	}
	n := int(math.Ceil(sweep / segment))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		x, y := arc.Point(rx, ry, start+sweep*float64(i)/float64(n))
		if i == 0 {
			dc.MoveTo(cx+x, cy+y)
		} else {
			dc.LineTo(cx+x, cy+y)
		}
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Draw draws f centered on dc.
func Draw(dc *gg.Context, f seek.Frame, th Theme) error {
	cx, cy := float64(dc.Width())/2, float64(dc.Height())/2
	rx, ry := f.RadiusX(), f.RadiusY()
	st := th.Style

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(st.StrokeWidth)

	dc.ClearPath()
	ellipticalArc(dc, cx, cy, rx, ry, f.Start, f.Sweep)
	dc.SetColor(th.Circle.Color())
	if err := dc.Stroke(); err != nil {
		return err
	}

	if f.ProgressSweep > 0 {
		dc.ClearPath()
		ellipticalArc(dc, cx, cy, rx, ry, f.ProgressStart, f.ProgressSweep)
		dc.SetColor(th.Progress.Color())
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	px, py := cx+f.Pointer[0], cy+f.Pointer[1]
	halo := th.Halo
	halo.A = th.HaloAlpha
	if f.Moving {
		halo.A = th.HaloAlphaMoving
	}
	dc.ClearPath()
	dc.DrawCircle(px, py, st.PointerRadius+st.HaloWidth)
	dc.SetColor(halo.Color())
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.ClearPath()
	dc.DrawCircle(px, py, st.PointerRadius)
	dc.SetColor(th.Pointer.Color())
	if err := dc.Fill(); err != nil {
		return err
	}

	if f.Moving {
		dc.ClearPath()
		dc.DrawCircle(px, py, st.PointerRadius+st.HaloWidth+st.HaloBorderWidth/2)
		dc.SetLineWidth(st.HaloBorderWidth)
		dc.SetColor(halo.Color())
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// Image returns f drawn on a new w by h image.
func Image(w, h int, f seek.Frame, th Theme) (image.Image, error) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(th.Background)
	if err := Draw(dc, f, th); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

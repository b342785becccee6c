// Package ring measures the ring a seek control is drawn on and the band of
// radii around it that accepts touches.
package ring

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/mobile/event/size"
)

// Density represents a display density by its mdpi scale factor.
type Density float64

const (
	LDPI    Density = 0.75
	MDPI    Density = 1
	HDPI    Density = 1.5
	XHDPI   Density = 2
	XXHDPI  Density = 3
	XXXHDPI Density = 4
)

// Px converts density independent units to pixels.
func (d Density) Px(dp float64) float64 { return dp * float64(d) }

// DensityOf returns the density reported by a size event; mdpi is 160 pixels per inch.
func DensityOf(e size.Event) Density {
	if e.PixelsPerPt <= 0 {
		return MDPI
	}
	return Density(float64(e.PixelsPerPt) * 72 / 160)
}

// Style holds ring and pointer dimensions in pixels.
type Style struct {
	StrokeWidth     float64
	PointerRadius   float64
	HaloWidth       float64
	HaloBorderWidth float64

	// RadiusX and RadiusY apply only when CustomRadii is set, and only when they
	// fit inside the view.
	RadiusX, RadiusY float64
	CustomRadii      bool

	// EqualCircle keeps both radii equal to the smaller of the two.
	EqualCircle bool

	// MinTouchTarget is the smallest width of the band accepting touches.
	MinTouchTarget float64
}

// Ring is a measured ring, centered at the origin.
type Ring struct {
	RadiusX, RadiusY float64
	Style            Style
}

// inset is the room left between view edge and ring for stroke and pointer.
func (s Style) inset() float64 { return s.StrokeWidth + s.PointerRadius + s.HaloBorderWidth*1.5 }

// Measure fits a ring in a view of width by height pixels.
func Measure(width, height int, s Style) Ring {
	r := Ring{
		RadiusX: float64(width)/2 - s.inset(),
		RadiusY: float64(height)/2 - s.inset(),
		Style:   s,
	}
	if s.CustomRadii {
		if s.RadiusY-s.StrokeWidth-s.PointerRadius-s.HaloBorderWidth < r.RadiusY {
			r.RadiusY = s.RadiusY - s.inset()
		}
		if s.RadiusX-s.StrokeWidth-s.PointerRadius-s.HaloBorderWidth < r.RadiusX {
			r.RadiusX = s.RadiusX - s.inset()
		}
	}
	if s.EqualCircle {
		r.RadiusX = math.Min(r.RadiusX, r.RadiusY)
		r.RadiusY = r.RadiusX
	}
	r.RadiusX, r.RadiusY = math.Max(r.RadiusX, 0), math.Max(r.RadiusY, 0)
	return r
}

// Bounds returns the rectangle enclosing the ring as min and max corners.
func (r Ring) Bounds() (lo, hi f64.Vec2) {
	return f64.Vec2{-r.RadiusX, -r.RadiusY}, f64.Vec2{r.RadiusX, r.RadiusY}
}

// Band returns the radii accepting touches: the ring widened by half the
// stroke or half the minimum touch target, whichever is larger.
func (r Ring) Band() Band {
	add := math.Max(r.Style.StrokeWidth, r.Style.MinTouchTarget) / 2
	return Band{
		Inner: math.Min(r.RadiusX, r.RadiusY) - add,
		Outer: math.Max(r.RadiusX, r.RadiusY) + add,
	}
}

// Band is a range of distances from the ring's center.
type Band struct {
	Inner, Outer float64
}

// Unbounded accepts every radius.
var Unbounded = Band{Inner: math.Inf(-1), Outer: math.Inf(1)}

// Contains reports whether radius lies within the band.
func (b Band) Contains(radius float64) bool { return b.Inner <= radius && radius <= b.Outer }

// Within reports whether radius is no farther than the outer edge.
func (b Band) Within(radius float64) bool { return radius <= b.Outer }

package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

var monobold = mustParseTTF(gomonobold.TTF)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// LabelSize is the point size of labels at mdpi.
const LabelSize = 16

// Label draws text centered on dst in clr, sized for dpi. A dpi of zero is 72.
func Label(dst draw.Image, text string, clr color.Color, dpi float64) {
	face := truetype.NewFace(monobold, &truetype.Options{
		Size:    LabelSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	b := dst.Bounds()
	adv := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	dr := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + (b.Dx()-adv)/2),
			Y: fixed.I(b.Min.Y+b.Dy()/2) + (m.Ascent-m.Descent)/2,
		},
	}
	dr.DrawString(text)
}

// ValueLabel formats a value for Label.
func ValueLabel(v, max int) string {
	return strconv.Itoa(v) + "/" + strconv.Itoa(max)
}

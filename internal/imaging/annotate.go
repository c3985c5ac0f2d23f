package imaging

import (
	"image"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// Mark is a labeled point to draw on the annotated output, in canvas
// pixel coordinates.
type Mark struct {
	Label string
	X     int
	Y     int
}

// Annotate renders the detection overlay onto a copy of the canvas:
// vertical lines at each region boundary and a numbered marker per
// landmark, each cycle in its own color. The input image is not modified.
func Annotate(img image.Image, boundaries []int, marks []Mark) image.Image {
	dc := gg.NewContextForImage(img)
	h := float64(dc.Height())

	dc.SetRGBA(0.6, 0.6, 0.6, 0.8)
	dc.SetLineWidth(1)
	for _, b := range boundaries {
		x := float64(b)
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()
	}

	palette := colorful.FastHappyPalette(len(marks))
	dc.SetFontFace(basicfont.Face7x13)
	for i, m := range marks {
		c := palette[i]
		x, y := float64(m.X), float64(m.Y)

		dc.SetRGB(c.R, c.G, c.B)
		dc.SetLineWidth(2)
		dc.DrawCircle(x, y, 5)
		dc.Stroke()
		dc.DrawLine(x-8, y, x+8, y)
		dc.DrawLine(x, y-8, x, y+8)
		dc.Stroke()

		dc.DrawStringAnchored(m.Label, x, y-10, 0.5, 0)
	}

	return dc.Image()
}

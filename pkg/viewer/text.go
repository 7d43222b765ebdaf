package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/philipparndt/torusview/pkg/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the bitmap face used for axis and view captions
var labelFace font.Face = basicfont.Face7x13

// drawText draws text onto dst with its baseline starting at the given point
func drawText(dst draw.Image, text string, at render.Point2, col color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(round(at.X), round(at.Y)),
	}
	d.DrawString(text)
}

// textMask renders text into an alpha mask with the baseline at the origin.
// The returned offset places the mask's top-left corner relative to the
// baseline start.
func textMask(text string) (*image.Alpha, image.Point) {
	bounds, _ := font.BoundString(labelFace, text)
	rect := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: labelFace,
		Dot:  fixed.P(-rect.Min.X, -rect.Min.Y),
	}
	d.DrawString(text)
	return mask, rect.Min
}

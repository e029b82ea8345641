// Package draw renders tile coding projectors for visual inspection
package draw

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotile/projection"
	"github.com/samuelfneumann/gotile/utils/floatutils"
)

// Tilings renders the overlapping tilings of a two-dimensional
// TileCoding projector into an image of the given pixel size. The
// grid lines of each tiling are drawn in a distinct hue. If v is
// non-nil, the active tile of each tiling for input v is filled with
// a translucent patch of that tiling's hue. Only two-dimensional
// projectors can be rendered.
func Tilings(coder *projection.TileCoding, v mat.Vector, width,
	height int) (image.Image, error) {
	if coder.Dim() != 2 {
		return nil, fmt.Errorf("tilings: can only render "+
			"two-dimensional tile coders, got %d dimensions", coder.Dim())
	}
	if v != nil && v.Len() != 2 {
		return nil, fmt.Errorf("tilings: query point should have 2 "+
			"dimensions, got %d", v.Len())
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("tilings: image size must be positive: "+
			"%dx%d", width, height)
	}

	bounds := coder.Bounds()
	toPixelX := func(x float64) float64 {
		return (x - bounds[0].Min) / (bounds[0].Max - bounds[0].Min) *
			float64(width)
	}
	toPixelY := func(y float64) float64 {
		return float64(height) - (y-bounds[1].Min)/
			(bounds[1].Max-bounds[1].Min)*float64(height)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1.0, 1.0, 1.0)
	dc.Clear()

	for tiling := 0; tiling < coder.NumTilings(); tiling++ {
		// Space tiling hues evenly around the colour wheel
		hue := float64(tiling) / float64(coder.NumTilings()) * 360.0

		bins := coder.Bins(tiling)
		widths := []float64{
			(bounds[0].Max - bounds[0].Min) / float64(bins[0]),
			(bounds[1].Max - bounds[1].Min) / float64(bins[1]),
		}
		offsets := []float64{
			coder.Offset(tiling, 0),
			coder.Offset(tiling, 1),
		}

		// Fill the active tile before stroking the grid so the grid
		// lines stay visible
		if v != nil {
			cellX := activeCell(v.AtVec(0), bounds[0].Min, offsets[0],
				widths[0], bins[0])
			cellY := activeCell(v.AtVec(1), bounds[1].Min, offsets[1],
				widths[1], bins[1])

			x := bounds[0].Min - offsets[0] + float64(cellX)*widths[0]
			y := bounds[1].Min - offsets[1] + float64(cellY)*widths[1]

			dc.DrawRectangle(toPixelX(x), toPixelY(y+widths[1]),
				widths[0]/(bounds[0].Max-bounds[0].Min)*float64(width),
				widths[1]/(bounds[1].Max-bounds[1].Min)*float64(height))
			setHSV(dc, hue, 0.6, 0.9, 0.35)
			dc.Fill()
		}

		// Vertical grid lines. Cell boundaries sit at
		// min - offset + k*width for integer k.
		setHSV(dc, hue, 0.7, 0.8, 1.0)
		dc.SetLineWidth(1.5)
		for k := -1; k <= bins[0]+1; k++ {
			x := bounds[0].Min - offsets[0] + float64(k)*widths[0]
			dc.DrawLine(toPixelX(x), 0, toPixelX(x), float64(height))
		}

		// Horizontal grid lines
		for k := -1; k <= bins[1]+1; k++ {
			y := bounds[1].Min - offsets[1] + float64(k)*widths[1]
			dc.DrawLine(0, toPixelY(y), float64(width), toPixelY(y))
		}
		dc.Stroke()
	}

	// Mark the query point
	if v != nil {
		dc.SetRGB(0.0, 0.0, 0.0)
		dc.DrawCircle(toPixelX(v.AtVec(0)), toPixelY(v.AtVec(1)), 4.0)
		dc.Fill()
	}

	return dc.Image(), nil
}

// SaveTilings renders the tilings of coder as Tilings does and writes
// the image to a PNG file at path
func SaveTilings(coder *projection.TileCoding, v mat.Vector, width,
	height int, path string) error {
	img, err := Tilings(coder, v, width, height)
	if err != nil {
		return err
	}

	dc := gg.NewContextForImage(img)
	return dc.SavePNG(path)
}

// activeCell returns the clipped cell index containing x in a tiling
// with the given offset, tile width, and bin count
func activeCell(x, min, offset, width float64, bins int) int {
	cell := math.Floor((x + offset - min) / width)
	return int(floatutils.Clip(cell, 0.0, float64(bins-1)))
}

// setHSV sets the drawing colour from hue, saturation, and value
// components plus an alpha channel
func setHSV(dc *gg.Context, h, s, v, a float64) {
	c := v * s
	x := c * (1.0 - math.Abs(math.Mod(h/60.0, 2.0)-1.0))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60.0:
		r, g, b = c, x, 0
	case h < 120.0:
		r, g, b = x, c, 0
	case h < 180.0:
		r, g, b = 0, c, x
	case h < 240.0:
		r, g, b = 0, x, c
	case h < 300.0:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	dc.SetRGBA(r+m, g+m, b+m, a)
}

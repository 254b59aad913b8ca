package toggle

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// RenderImage rasterises g in software, without a GPU or a running game
// loop. The image is sized to the track.
func RenderImage(g Geometry) *image.RGBA {
	w := max(1, int(math.Ceil(g.Track.Width)))
	h := max(1, int(math.Ceil(g.Track.Height)))
	dc := gg.NewContext(w, h)
	PaintGeometry(dc, g, 0, 0)
	return dc.Image().(*image.RGBA)
}

// PaintGeometry draws g into a gg context with its origin at (ox, oy), in the
// same order as DrawGeometry.
func PaintGeometry(dc *gg.Context, g Geometry, ox, oy float64) {
	dc.Push()
	defer dc.Pop()

	r := math.Min(g.TrackRadius, math.Min(g.Track.Width, g.Track.Height)/2)
	dc.DrawRoundedRectangle(ox+g.Track.X, oy+g.Track.Y, g.Track.Width, g.Track.Height, r)
	dc.SetColor(g.TrackColor.RGBA())
	dc.Fill()

	for _, ring := range shadowRings(g) {
		dc.DrawCircle(ox+g.Shadow.X, oy+g.Shadow.Y, ring.radius)
		dc.SetColor(ring.color.RGBA())
		dc.Fill()
	}

	dc.DrawCircle(ox+g.ThumbCenter.X, oy+g.ThumbCenter.Y, g.ThumbRadius)
	dc.SetColor(g.ThumbColor.RGBA())
	dc.Fill()

	if g.ShowCheckmark {
		dc.SetLineWidth(g.CheckmarkWidth)
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		dc.SetColor(g.CheckmarkColor.RGBA())
		dc.MoveTo(ox+g.Checkmark[0].X, oy+g.Checkmark[0].Y)
		dc.LineTo(ox+g.Checkmark[1].X, oy+g.Checkmark[1].Y)
		dc.LineTo(ox+g.Checkmark[2].X, oy+g.Checkmark[2].Y)
		dc.Stroke()
	}
}

// Snapshot renders the switch's current frame in software.
func (sw *Switch) Snapshot() *image.RGBA {
	return RenderImage(sw.Geometry())
}

// SavePNG encodes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

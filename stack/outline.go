package stack

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OutlineConfig controls silhouette outlining for one rendered object.
// Instances sharing a LayerSet can still carry different outline settings.
type OutlineConfig struct {
	Enabled   bool
	Color     color.NRGBA
	Thickness float32

	// OffsetRatio shifts the outline down by this fraction of the slice
	// height, compensating for the visual weight of the stacked shape sitting
	// lower than its bounding-box center. Asset dependent.
	OffsetRatio float64
}

// ComposeSilhouette flattens every layer, rotated and tilted with the same
// per-layer placement the stack draw uses, onto one scratch mask. The result
// is the coverage of the whole pseudo-3D shape as seen at this rotation.
// Returns the mask and the canvas center the placements were relative to.
func ComposeSilhouette(ls *LayerSet, rotation, tilt, tiltMultiplier float64) (*Mask, image.Point) {
	totalH := int(math.Ceil(ls.TotalStackHeight()))
	padding := maxInt(ls.Width(), totalH) + 20
	tempW := ls.Width() + padding*2
	tempH := totalH + padding*2
	if tempW <= 0 || tempH <= 0 {
		return nil, image.Point{}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, tempW, tempH))
	center := image.Pt(tempW/2, tempH/2)

	n := ls.NumLayers()
	for _, p := range Placements(n, ls.LayerOffset(), tilt, tiltMultiplier) {
		layer := ls.Layer(p.Index)
		if layer == nil {
			continue
		}
		// Each distinct layer is rotated once per compose; negated because
		// imaging rotates counter-clockwise for positive angles.
		rotated := imaging.Rotate(layer, -rotation, color.NRGBA{})
		stampSilhouette(canvas, rotated,
			center.X+int(math.Round(p.DX))-rotated.Bounds().Dx()/2,
			center.Y+int(math.Round(p.DY))-rotated.Bounds().Dy()/2)
	}
	return MaskFromAlpha(canvas), center
}

// drawOutline strokes the contour of the flattened stack silhouette onto the
// screen, aligned with the visual centroid of the stack.
func (r *Renderer) drawOutline(screen *ebiten.Image, st RenderState) {
	ls := r.set
	mask, center := ComposeSilhouette(ls, st.Rotation, clampTilt(st.Tilt), r.tiltMultiplier)
	if mask == nil {
		return
	}

	contour := TraceContour(mask)
	if len(contour) < 2 {
		// Common for tiny or fully transparent sprites; worth one note in
		// case it points at a broken asset.
		if !r.degenerateLogged {
			r.degenerateLogged = true
			logDegenerateOutline(len(contour))
		}
		return
	}

	// The outline canvas center sits at the geometric center of the stack's
	// vertical extent, nudged down by the configured ratio of slice height.
	verticalCenter := float64(ls.NumLayers()-1) * ls.LayerOffset() / 2
	adjust := float64(ls.Height()) * r.outline.OffsetRatio
	originX := st.X - float64(center.X)
	originY := st.Y - verticalCenter + adjust - float64(center.Y)

	thickness := r.outline.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	if len(contour) == 2 {
		strokeSegment(screen, contour[0], contour[1], originX, originY, thickness, r.outline.Color)
		return
	}
	for i := range contour {
		strokeSegment(screen, contour[i], contour[(i+1)%len(contour)], originX, originY, thickness, r.outline.Color)
	}
}

func strokeSegment(dst *ebiten.Image, a, b image.Point, originX, originY float64, width float32, clr color.NRGBA) {
	vector.StrokeLine(dst,
		float32(originX+float64(a.X)), float32(originY+float64(a.Y)),
		float32(originX+float64(b.X)), float32(originY+float64(b.Y)),
		width, clr, false)
}

package stack

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ShadowConfig tunes shadow generation for one asset category.
type ShadowConfig struct {
	// LengthFactor is the shadow length constant k: shadows stretch up to
	// k * stack height with the sun at the horizon.
	LengthFactor float64

	// BaseAlpha is the opacity with the sun at the horizon; FadeFactor is how
	// much of it is lost with the sun overhead. FadeFactor < 1 keeps shadows
	// from vanishing entirely.
	BaseAlpha  uint8
	FadeFactor float64

	// Color of the silhouette pixels (alpha comes from BaseAlpha/FadeFactor).
	Color color.NRGBA

	// MaxFullLayers is the stack size up to which every layer is composited.
	// Larger stacks are sampled down to roughly SampleTarget layers.
	MaxFullLayers int
	SampleTarget  int

	// CanvasScale sizes the shadow canvas relative to the slice footprint,
	// generous enough that long shadows do not clip.
	CanvasScale float64
}

// DefaultShadowConfig mirrors the tuning used by the vehicle demos.
func DefaultShadowConfig() ShadowConfig {
	return ShadowConfig{
		LengthFactor:  2.0,
		BaseAlpha:     200,
		FadeFactor:    0.4,
		Color:         color.NRGBA{0, 0, 0, 255},
		MaxFullLayers: 8,
		SampleTarget:  5,
		CanvasScale:   3.5,
	}
}

// ShadowSample records where one sampled layer's silhouette landed, relative
// to the shadow canvas center.
type ShadowSample struct {
	Index   int
	OffsetX float64
	OffsetY float64
}

// SampleIndices picks which layer indices contribute silhouettes. Stacks of
// maxFull layers or fewer use every index; larger stacks take every
// ceil(n/target)-th index so at least target representative layers
// contribute. Index 0 is always included since it anchors the shadow.
func SampleIndices(n, maxFull, target int) []int {
	if n <= 0 {
		return nil
	}
	if maxFull <= 0 {
		maxFull = 8
	}
	if target <= 0 || n <= maxFull {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	step := (n + target - 1) / target
	var idx []int
	for i := 0; i < n; i += step {
		idx = append(idx, i)
	}
	return idx
}

// ComposeShadow flattens the sampled, rotated layer silhouettes into a single
// shadow image. Each sampled layer's silhouette is displaced along the sun's
// cast direction by its position-in-stack fraction of the full shadow length,
// so the bottom layer stays anchored directly under the object while higher
// layers fan outward.
//
// The returned image is meant to be blitted centered exactly on the object's
// world position; the per-layer displacement is already baked in. A nil
// result means shadows are disabled or there is nothing to cast.
func ComposeShadow(ls *LayerSet, rotation float64, sun *Sun, cfg ShadowConfig, quality Quality) (*image.NRGBA, []ShadowSample) {
	if sun == nil || !sun.ShadowsEnabled || ls == nil || ls.NumLayers() == 0 {
		return nil, nil
	}

	n := ls.NumLayers()
	target := quality.shadowSampleTarget(cfg.SampleTarget)
	indices := SampleIndices(n, cfg.MaxFullLayers, target)

	length := sun.ShadowLength(ls.TotalStackHeight(), cfg.LengthFactor)
	dirX, dirY := sun.Direction()

	scale := cfg.CanvasScale
	if scale <= 0 {
		scale = 3.5
	}
	side := int(math.Ceil(scale * float64(maxInt(ls.Width(), ls.Height()))))
	if side <= 0 {
		return nil, nil
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	cx, cy := float64(side)/2, float64(side)/2

	samples := make([]ShadowSample, 0, len(indices))
	drawn := false
	for _, i := range indices {
		layer := ls.Layer(i)
		if layer == nil {
			continue
		}
		// imaging rotates counter-clockwise for positive angles; screen
		// rotation is clockwise-positive, hence the negation.
		rotated := imaging.Rotate(layer, -rotation, color.NRGBA{})

		layerFactor := 0.0
		if n > 1 {
			layerFactor = float64(i) / float64(n-1)
		}
		offX := length * dirX * layerFactor
		offY := length * dirY * layerFactor
		samples = append(samples, ShadowSample{Index: i, OffsetX: offX, OffsetY: offY})

		if stampSilhouette(canvas, rotated,
			int(math.Round(cx+offX))-rotated.Bounds().Dx()/2,
			int(math.Round(cy+offY))-rotated.Bounds().Dy()/2) {
			drawn = true
		}
	}
	if !drawn {
		return nil, samples
	}

	colorizeMask(canvas, cfg.Color, sun.ShadowAlpha(cfg.BaseAlpha, cfg.FadeFactor))
	return canvas, samples
}

// stampSilhouette marks every opaque source pixel in the canvas alpha
// channel. Overlapping silhouettes union rather than accumulate, keeping the
// shadow a uniform tone. Reports whether any pixel was set.
func stampSilhouette(dst *image.NRGBA, src *image.NRGBA, atX, atY int) bool {
	b := src.Bounds()
	set := false
	for y := 0; y < b.Dy(); y++ {
		dy := atY + y
		if dy < 0 || dy >= dst.Rect.Dy() {
			continue
		}
		srcRow := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dx := atX + x
			if dx < 0 || dx >= dst.Rect.Dx() {
				continue
			}
			if srcRow[(x+b.Min.X-src.Rect.Min.X)*4+3] > 0 {
				dst.Pix[dy*dst.Stride+dx*4+3] = 255
				set = true
			}
		}
	}
	return set
}

// colorizeMask rewrites every marked pixel to the uniform shadow color.
func colorizeMask(img *image.NRGBA, c color.NRGBA, alpha uint8) {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] > 0 {
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = alpha
		}
	}
}

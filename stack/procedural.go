package stack

import (
	"image"
	"image/color"
)

// ProceduralKind selects the placeholder generator used when no usable image
// asset exists. Placeholder art is cosmetic; only the layer count and
// dimensions matter to the renderer.
type ProceduralKind int

const (
	KindGeneric ProceduralKind = iota
	KindCar
	KindSubmarine
	KindKelp
	KindRock
)

// ProceduralLayers generates n flat placeholder slices of the given footprint.
// Layers get lighter toward the top of the stack, which reads as simple
// directional shading once stacked.
func ProceduralLayers(kind ProceduralKind, n, w, h int) []*image.NRGBA {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	switch kind {
	case KindCar:
		return carLayers(n, w, h)
	case KindSubmarine:
		return hullLayers(n, w, h, color.NRGBA{220, 190, 40, 255})
	case KindKelp:
		return hullLayers(n, w, h, color.NRGBA{40, 140, 60, 255})
	case KindRock:
		return hullLayers(n, w, h, color.NRGBA{110, 105, 95, 255})
	default:
		return genericLayers(n, w, h)
	}
}

// genericLayers draws a centered rectangle per slice on a light-to-dark
// gradient, darkest at the bottom.
func genericLayers(n, w, h int) []*image.NRGBA {
	layers := make([]*image.NRGBA, n)
	for i := 0; i < n; i++ {
		shade := gradientShade(i, n, 40, 180)
		layer := image.NewNRGBA(image.Rect(0, 0, w, h))
		rw, rh := w*8/10, h*8/10
		fillRect(layer, (w-rw)/2, (h-rh)/2, rw, rh, color.NRGBA{shade, shade, uint8(int(shade) + 20), 255})
		layers[i] = layer
	}
	return layers
}

// carLayers draws a top-down car cross-section per slice: body, wheels, and a
// windshield band on the upper half of the stack.
func carLayers(n, w, h int) []*image.NRGBA {
	layers := make([]*image.NRGBA, n)
	for i := 0; i < n; i++ {
		shade := gradientShade(i, n, 60, 200)
		layer := image.NewNRGBA(image.Rect(0, 0, w, h))

		bodyW, bodyH := w*7/10, h*6/10
		fillRect(layer, (w-bodyW)/2, (h-bodyH)/2, bodyW, bodyH,
			color.NRGBA{shade, uint8(int(shade) * 2 / 5), uint8(int(shade) * 2 / 5), 255})

		wheelR := h * 18 / 100
		wheelY := h * 78 / 100
		fillCircle(layer, w/4, wheelY, wheelR, color.NRGBA{30, 30, 30, 255})
		fillCircle(layer, w*3/4, wheelY, wheelR, color.NRGBA{30, 30, 30, 255})

		// Windshield on the upper layers only.
		if i >= n/2 {
			winW, winH := w*4/10, h*35/100
			fillRect(layer, (w-winW)/2, h*15/100, winW, winH, color.NRGBA{100, 200, 255, 255})
		}
		layers[i] = layer
	}
	return layers
}

// hullLayers draws a rounded blob per slice in the given base color, shrinking
// slightly toward the top of the stack.
func hullLayers(n, w, h int, base color.NRGBA) []*image.NRGBA {
	layers := make([]*image.NRGBA, n)
	for i := 0; i < n; i++ {
		// Taper: top slices are a little narrower.
		taper := 1.0 - 0.4*float64(i)/float64(maxInt(1, n-1))
		rw := maxInt(1, int(float64(w)*taper))
		rh := maxInt(1, int(float64(h)*taper))

		shade := gradientShade(i, n, 60, 100)
		c := color.NRGBA{
			clampU8(int(base.R) + int(shade) - 60),
			clampU8(int(base.G) + int(shade) - 60),
			clampU8(int(base.B) + int(shade) - 60),
			255,
		}
		layer := image.NewNRGBA(image.Rect(0, 0, w, h))
		fillEllipse(layer, w/2, h/2, rw/2, rh/2, c)
		layers[i] = layer
	}
	return layers
}

// gradientShade interpolates from lo at the bottom layer to hi at the top.
func gradientShade(i, n int, lo, hi int) uint8 {
	if n <= 1 {
		return uint8(hi)
	}
	return uint8(lo + (hi-lo)*i/(n-1))
}

func fillRect(dst *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if image.Pt(px, py).In(dst.Rect) {
				dst.SetNRGBA(px, py, c)
			}
		}
	}
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	fillEllipse(dst, cx, cy, r, r, c)
}

func fillEllipse(dst *image.NRGBA, cx, cy, rx, ry int, c color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 && image.Pt(px, py).In(dst.Rect) {
				dst.SetNRGBA(px, py, c)
			}
		}
	}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package stack

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Quality is the caller's performance hint. It only changes how densely the
// shadow samples layers; the visible stack always draws every layer.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// shadowSampleTarget maps the hint onto the sampled-layer target. High
// composites every layer, Low roughly halves the configured target.
func (q Quality) shadowSampleTarget(base int) int {
	if base <= 0 {
		base = 5
	}
	switch q {
	case QualityLow:
		return (base + 1) / 2
	case QualityHigh:
		return 0
	default:
		return base
	}
}

// RenderState is the per-draw-call input, recomputed each frame from the
// owning entity's physics state.
type RenderState struct {
	X, Y     float64
	Rotation float64 // degrees, positive = clockwise on screen
	Tilt     float64 // lean amount in [-1, 1]

	DrawShadow  bool
	DrawOutline bool
	Quality     Quality
}

// Placement is the center offset of one layer relative to the object's world
// anchor, before rotation of the layer image itself.
type Placement struct {
	Index  int
	DX, DY float64
}

// Placements computes the per-layer draw offsets: each layer rises
// layerOffset pixels above the previous one, and tilt shifts layers
// horizontally in proportion to their position in the stack, so the top
// leans furthest.
func Placements(n int, layerOffset, tilt, tiltMultiplier float64) []Placement {
	ps := make([]Placement, n)
	for i := range ps {
		factor := 0.0
		if n > 1 {
			factor = float64(i) / float64(n-1)
		}
		ps[i] = Placement{
			Index: i,
			DX:    tilt * factor * tiltMultiplier,
			DY:    -float64(i) * layerOffset,
		}
	}
	return ps
}

// DefaultTiltMultiplier is the horizontal shift in pixels of the top layer at
// full tilt.
const DefaultTiltMultiplier = 4.0

// Renderer draws one LayerSet as a sprite stack. The LayerSet may be shared
// between renderers; textures, shadow cache and outline settings are
// per-renderer.
type Renderer struct {
	set            *LayerSet
	shadow         ShadowConfig
	outline        OutlineConfig
	tiltMultiplier float64

	textures      []*ebiten.Image
	missingLogged []bool

	shadowKey shadowCacheKey
	shadowTex *ebiten.Image

	degenerateLogged bool

	drawOp ebiten.DrawImageOptions
}

type shadowCacheKey struct {
	rotation   float64 // quantized
	horizontal float64
	vertical   float64
	quality    Quality
	valid      bool
}

// NewRenderer creates a renderer over the given (possibly shared) LayerSet.
func NewRenderer(set *LayerSet, shadow ShadowConfig, outline OutlineConfig) *Renderer {
	return &Renderer{
		set:            set,
		shadow:         shadow,
		outline:        outline,
		tiltMultiplier: DefaultTiltMultiplier,
		textures:       make([]*ebiten.Image, set.NumLayers()),
		missingLogged:  make([]bool, set.NumLayers()),
	}
}

// LayerSet returns the shared layer data this renderer draws.
func (r *Renderer) LayerSet() *LayerSet { return r.set }

// Outline returns the current outline settings.
func (r *Renderer) Outline() OutlineConfig { return r.outline }

// SetOutline reconfigures outlining; returns the renderer for chaining.
func (r *Renderer) SetOutline(cfg OutlineConfig) *Renderer {
	r.outline = cfg
	return r
}

// SetTiltMultiplier overrides the top-layer shift at full tilt.
func (r *Renderer) SetTiltMultiplier(px float64) *Renderer {
	r.tiltMultiplier = px
	return r
}

// Draw blits the shadow, the layer stack bottom-to-top, and the outline onto
// screen at the given state. The sun is passed explicitly so every object in
// a frame reacts to the same light. Missing layers are skipped, never fatal.
func (r *Renderer) Draw(screen *ebiten.Image, st RenderState, sun *Sun) {
	if r.set.NumLayers() == 0 {
		return
	}
	tilt := clampTilt(st.Tilt)

	if st.DrawShadow {
		r.drawShadow(screen, st, sun)
	}

	// Bottom to top: later draws occlude earlier ones, which is what sells
	// the solidity of the stack.
	rad := st.Rotation * math.Pi / 180 // GeoM rotation is clockwise-positive on screen
	for _, p := range Placements(r.set.NumLayers(), r.set.LayerOffset(), tilt, r.tiltMultiplier) {
		tex := r.texture(p.Index)
		if tex == nil {
			if !r.missingLogged[p.Index] {
				r.missingLogged[p.Index] = true
				log.Printf("Warning: skipping missing stack layer %d", p.Index)
			}
			continue
		}
		w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
		op := &r.drawOp
		op.GeoM.Reset()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(rad)
		op.GeoM.Translate(st.X+p.DX, st.Y+p.DY)
		screen.DrawImage(tex, op)
	}

	if st.DrawOutline && r.outline.Enabled {
		r.drawOutline(screen, st)
	}
}

func (r *Renderer) drawShadow(screen *ebiten.Image, st RenderState, sun *Sun) {
	if sun == nil || !sun.ShadowsEnabled {
		return
	}

	// The CPU composite is cheap for small sprites but the GPU upload is
	// not, so reuse the texture until rotation or light changes.
	key := shadowCacheKey{
		rotation:   math.Round(st.Rotation),
		horizontal: sun.HorizontalAngle(),
		vertical:   sun.VerticalAngle(),
		quality:    st.Quality,
		valid:      true,
	}
	if key != r.shadowKey {
		img, _ := ComposeShadow(r.set, key.rotation, sun, r.shadow, st.Quality)
		r.shadowKey = key
		if img == nil {
			r.shadowTex = nil
		} else {
			r.shadowTex = ebiten.NewImageFromImage(img)
		}
	}
	if r.shadowTex == nil {
		return
	}

	w, h := r.shadowTex.Bounds().Dx(), r.shadowTex.Bounds().Dy()
	op := &r.drawOp
	op.GeoM.Reset()
	// Per-layer displacement is baked into the canvas; center it on the
	// object's anchor.
	op.GeoM.Translate(st.X-float64(w)/2, st.Y-float64(h)/2)
	screen.DrawImage(r.shadowTex, op)
}

// texture lazily uploads layer i, keeping LayerSet construction GPU-free.
func (r *Renderer) texture(i int) *ebiten.Image {
	if i < 0 || i >= len(r.textures) {
		return nil
	}
	if r.textures[i] == nil {
		layer := r.set.Layer(i)
		if layer == nil {
			return nil
		}
		r.textures[i] = ebiten.NewImageFromImage(layer)
	}
	return r.textures[i]
}

func clampTilt(t float64) float64 {
	return math.Max(-1, math.Min(1, t))
}

func logDegenerateOutline(points int) {
	log.Printf("outline contour has %d points, skipping (flat or empty sprite?)", points)
}

package factory

import (
	"github.com/automoto/stackdrive/assets"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/stack"
)

// layerSets caches slice data per sprite type; every prop of a type shares
// one immutable LayerSet while keeping its own renderer.
var layerSets = map[string]*stack.LayerSet{}

func layerSetFor(name string) *stack.LayerSet {
	if ls, ok := layerSets[name]; ok {
		return ls
	}
	def := cfg.Stack(name)
	ls := stack.Load(assets.ImageFS(), def.Image, stack.Options{
		NumLayers:       def.Layers,
		LayerOffset:     def.LayerOffset,
		LayerFilePrefix: def.LayerFilePrefix,
		Kind:            proceduralKind(def.Kind),
	})
	layerSets[name] = ls
	return ls
}

func proceduralKind(name string) stack.ProceduralKind {
	switch name {
	case "car":
		return stack.KindCar
	case "submarine":
		return stack.KindSubmarine
	case "kelp":
		return stack.KindKelp
	case "rock":
		return stack.KindRock
	default:
		return stack.KindGeneric
	}
}

// newStackRenderer builds a renderer for one sprite type, merging its
// stacks.yaml definition with the global shadow and outline defaults.
func newStackRenderer(name string) *stack.Renderer {
	def := cfg.Stack(name)

	shadow := stack.ShadowConfig{
		LengthFactor:  cfg.Shadow.LengthFactor,
		BaseAlpha:     cfg.Shadow.BaseAlpha,
		FadeFactor:    cfg.Shadow.FadeFactor,
		Color:         cfg.Black,
		MaxFullLayers: cfg.Shadow.MaxFullLayers,
		SampleTarget:  cfg.Shadow.SampleTarget,
		CanvasScale:   cfg.Shadow.CanvasScale,
	}
	if def.Shadow.LengthFactor > 0 {
		shadow.LengthFactor = def.Shadow.LengthFactor
	}

	outline := stack.OutlineConfig{
		Enabled:     def.Outline.Enabled,
		Color:       cfg.HexColor(def.Outline.Color, cfg.Outline.Color),
		Thickness:   def.Outline.Thickness,
		OffsetRatio: def.Outline.OffsetRatio,
	}
	if outline.Thickness <= 0 {
		outline.Thickness = cfg.Outline.Thickness
	}
	if outline.OffsetRatio == 0 {
		outline.OffsetRatio = cfg.Outline.OffsetRatio
	}

	r := stack.NewRenderer(layerSetFor(name), shadow, outline)
	if def.TiltMultiplier > 0 {
		r.SetTiltMultiplier(def.TiltMultiplier)
	}
	return r
}

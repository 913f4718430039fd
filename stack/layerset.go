// Package stack implements sprite-stacking rendering: pseudo-3D objects
// built from a sequence of horizontal image slices drawn bottom-to-top with
// an incremental vertical offset, whole-object rotation, per-layer tilt,
// sun-relative shadows and silhouette outlines.
package stack

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // stack sheets and layer files are PNG
	"io/fs"
	"log"
)

// LayerSet is an ordered, bottom-to-top sequence of slice images. Index 0 is
// the ground-contact slice. A LayerSet is immutable after construction and is
// safe to share between every entity that renders the same sprite type.
//
// Entries may be nil when a per-file load skipped a missing layer; indices are
// never compacted because shadow and tilt math use the index as a
// position-in-stack fraction.
type LayerSet struct {
	layers      []*image.NRGBA
	layerOffset float64
	width       int
	height      int
}

// Options controls LayerSet loading.
type Options struct {
	NumLayers   int
	LayerOffset float64 // vertical pixels between layers, must be >= 0

	// Fallback dimensions when no image asset is available.
	DefaultWidth  int
	DefaultHeight int

	// Procedural generator used for the final fallback tier.
	Kind ProceduralKind

	// Prefix for the per-file tier: {prefix}{i}.png next to the source image.
	LayerFilePrefix string
}

func (o *Options) applyDefaults() {
	if o.NumLayers <= 0 {
		o.NumLayers = 8
	}
	if o.LayerOffset < 0 {
		o.LayerOffset = 0
	}
	if o.DefaultWidth <= 0 {
		o.DefaultWidth = 32
	}
	if o.DefaultHeight <= 0 {
		o.DefaultHeight = 32
	}
	if o.LayerFilePrefix == "" {
		o.LayerFilePrefix = "layer"
	}
}

// Load builds a LayerSet from the given source image path inside fsys.
//
// Tiers, in order: slice a single composite bitmap; load pre-sliced
// {prefix}{i}.png files from the image's directory; generate procedural
// placeholder layers. Load never fails: every decode error is logged and
// demotes the load to the next tier, so the worst case is a procedural set.
func Load(fsys fs.FS, path string, opts Options) *LayerSet {
	opts.applyDefaults()

	var layers []*image.NRGBA
	if path != "" {
		var err error
		layers, err = sliceImageFile(fsys, path, opts.NumLayers)
		if err != nil {
			log.Printf("Warning: could not slice %s: %v", path, err)
			dir := fsPathDir(path)
			layers = loadLayerFiles(fsys, dir, opts.LayerFilePrefix, opts.NumLayers)
		}
	}

	if countLayers(layers) == 0 {
		layers = ProceduralLayers(opts.Kind, opts.NumLayers, opts.DefaultWidth, opts.DefaultHeight)
	}

	return NewLayerSet(layers, opts.LayerOffset)
}

// NewLayerSet wraps an already-built slice sequence. Nominal width and height
// come from the bottom-most non-nil layer.
func NewLayerSet(layers []*image.NRGBA, layerOffset float64) *LayerSet {
	if layerOffset < 0 {
		layerOffset = 0
	}
	ls := &LayerSet{layers: layers, layerOffset: layerOffset}
	for _, l := range layers {
		if l != nil {
			ls.width = l.Bounds().Dx()
			ls.height = l.Bounds().Dy()
			break
		}
	}
	return ls
}

// NumLayers returns the stack size including nil placeholders.
func (ls *LayerSet) NumLayers() int { return len(ls.layers) }

// Layer returns the slice at stack index i, or nil if it is missing or out of
// range.
func (ls *LayerSet) Layer(i int) *image.NRGBA {
	if i < 0 || i >= len(ls.layers) {
		return nil
	}
	return ls.layers[i]
}

// LayerOffset is the vertical pixel delta applied per stack index.
func (ls *LayerSet) LayerOffset() float64 { return ls.layerOffset }

// Width is the nominal slice width, taken from the bottom layer.
func (ls *LayerSet) Width() int { return ls.width }

// Height is the nominal slice height, taken from the bottom layer.
func (ls *LayerSet) Height() int { return ls.height }

// TotalStackHeight is the full visual extent of the stack on screen:
// height + (N-1) * layerOffset.
func (ls *LayerSet) TotalStackHeight() float64 {
	if len(ls.layers) == 0 {
		return 0
	}
	return float64(ls.height) + float64(len(ls.layers)-1)*ls.layerOffset
}

// SliceImage splits a composite bitmap of size WxH into n layers of height
// H/n (integer division; remainder rows at the top of the source are
// dropped). Layer 0 is the bottom-most horizontal band of the source so that
// index 0 stays the ground-contact slice.
func SliceImage(src image.Image, n int) ([]*image.NRGBA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("layer count must be positive, got %d", n)
	}
	b := src.Bounds()
	layerHeight := b.Dy() / n
	if layerHeight == 0 {
		return nil, fmt.Errorf("image height %d is too small for %d layers", b.Dy(), n)
	}

	layers := make([]*image.NRGBA, n)
	for i := 0; i < n; i++ {
		yStart := b.Min.Y + b.Dy() - (i+1)*layerHeight
		layer := image.NewNRGBA(image.Rect(0, 0, b.Dx(), layerHeight))
		draw.Draw(layer, layer.Bounds(), src, image.Pt(b.Min.X, yStart), draw.Src)
		layers[i] = layer
	}
	return layers, nil
}

func sliceImageFile(fsys fs.FS, path string, n int) ([]*image.NRGBA, error) {
	img, err := decodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return SliceImage(img, n)
}

// loadLayerFiles loads {prefix}{i}.png for i in [0, n). Missing or corrupt
// files leave a nil placeholder at their index so that stack positions stay
// aligned; the caller treats an all-nil result as a failed tier.
func loadLayerFiles(fsys fs.FS, dir, prefix string, n int) []*image.NRGBA {
	layers := make([]*image.NRGBA, n)
	loaded := 0
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%d.png", prefix, i)
		if dir != "" {
			name = dir + "/" + name
		}
		img, err := decodeImage(fsys, name)
		if err != nil {
			log.Printf("Warning: layer image %s not loaded: %v", name, err)
			continue
		}
		layers[i] = toNRGBA(img)
		loaded++
	}
	if loaded == 0 {
		return nil
	}
	return layers
}

func countLayers(layers []*image.NRGBA) int {
	n := 0
	for _, l := range layers {
		if l != nil {
			n++
		}
	}
	return n
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// fsPathDir is path.Dir for fs.FS paths, with "." collapsed to "".
func fsPathDir(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return ""
}

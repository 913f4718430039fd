package stack

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// rowTaggedImage builds a WxH image whose red channel encodes the source row,
// so tests can verify exactly which rows each slice came from.
func rowTaggedImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y), A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSliceImage(t *testing.T) {
	const w, h, n = 32, 240, 24
	layers, err := SliceImage(rowTaggedImage(w, h), n)
	if err != nil {
		t.Fatalf("SliceImage: %v", err)
	}
	if len(layers) != n {
		t.Fatalf("expected %d layers, got %d", n, len(layers))
	}

	layerHeight := h / n
	for i, layer := range layers {
		if got := layer.Bounds().Dy(); got != layerHeight {
			t.Errorf("layer %d height = %d, want %d", i, got, layerHeight)
		}
		if got := layer.Bounds().Dx(); got != w {
			t.Errorf("layer %d width = %d, want %d", i, got, w)
		}
		// Layer i must hold source rows [h-(i+1)*lh, h-i*lh).
		wantTopRow := uint8(h - (i+1)*layerHeight)
		if got := layer.NRGBAAt(0, 0).R; got != wantTopRow {
			t.Errorf("layer %d first row = %d, want %d", i, got, wantTopRow)
		}
	}

	// Bottom band: layer 0 is rows [230, 240), layer 23 is rows [0, 10).
	if got := layers[0].NRGBAAt(0, 0).R; got != 230 {
		t.Errorf("layer 0 starts at row %d, want 230", got)
	}
	if got := layers[n-1].NRGBAAt(0, 0).R; got != 0 {
		t.Errorf("layer %d starts at row %d, want 0", n-1, got)
	}
}

func TestSliceImageDropsRemainderRows(t *testing.T) {
	// 25 rows over 8 layers: layer height 3, the single leftover row at the
	// top of the source is dropped.
	layers, err := SliceImage(rowTaggedImage(4, 25), 8)
	if err != nil {
		t.Fatalf("SliceImage: %v", err)
	}
	if got := layers[7].NRGBAAt(0, 0).R; got != 1 {
		t.Errorf("top layer starts at row %d, want 1 (row 0 dropped)", got)
	}
	if got := layers[0].NRGBAAt(0, 0).R; got != 22 {
		t.Errorf("bottom layer starts at row %d, want 22", got)
	}
}

func TestSliceImageErrors(t *testing.T) {
	tests := []struct {
		name string
		h    int
		n    int
	}{
		{"zero layers", 16, 0},
		{"negative layers", 16, -1},
		{"image shorter than layer count", 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SliceImage(rowTaggedImage(4, tt.h), tt.n); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSingleImage(t *testing.T) {
	fsys := fstest.MapFS{
		"images/tower.png": &fstest.MapFile{Data: encodePNG(t, rowTaggedImage(32, 240))},
	}
	ls := Load(fsys, "images/tower.png", Options{NumLayers: 24, LayerOffset: 2})
	if ls.NumLayers() != 24 {
		t.Fatalf("NumLayers = %d, want 24", ls.NumLayers())
	}
	if ls.Width() != 32 || ls.Height() != 10 {
		t.Errorf("dimensions = %dx%d, want 32x10", ls.Width(), ls.Height())
	}
	if want := 10.0 + 23*2; ls.TotalStackHeight() != want {
		t.Errorf("TotalStackHeight = %v, want %v", ls.TotalStackHeight(), want)
	}
}

func TestLoadLayerFilesPreservesIndexAlignment(t *testing.T) {
	layerPNG := encodePNG(t, rowTaggedImage(8, 8))
	fsys := fstest.MapFS{
		// No composite sheet; only pre-sliced files with index 1 missing.
		"images/kelp-layer0.png": &fstest.MapFile{Data: layerPNG},
		"images/kelp-layer2.png": &fstest.MapFile{Data: layerPNG},
	}
	ls := Load(fsys, "images/kelp.png", Options{NumLayers: 3, LayerFilePrefix: "kelp-layer"})

	if ls.NumLayers() != 3 {
		t.Fatalf("NumLayers = %d, want 3", ls.NumLayers())
	}
	if ls.Layer(0) == nil || ls.Layer(2) == nil {
		t.Error("expected layers 0 and 2 to load")
	}
	if ls.Layer(1) != nil {
		t.Error("missing layer 1 must stay nil, not be compacted away")
	}
}

func TestLoadFallsBackToProceduralLayers(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing path", "images/nothing-here.png"},
		{"empty path", ""},
		{"undecodable file", "images/garbage.png"},
	}
	fsys := fstest.MapFS{
		"images/garbage.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := Load(fsys, tt.path, Options{NumLayers: 6, DefaultWidth: 16, DefaultHeight: 12})
			if ls.NumLayers() != 6 {
				t.Fatalf("NumLayers = %d, want 6", ls.NumLayers())
			}
			for i := 0; i < 6; i++ {
				if ls.Layer(i) == nil {
					t.Errorf("procedural layer %d is nil", i)
				}
			}
			if ls.Width() != 16 || ls.Height() != 12 {
				t.Errorf("dimensions = %dx%d, want 16x12", ls.Width(), ls.Height())
			}
		})
	}
}

func TestProceduralLayersKinds(t *testing.T) {
	for _, kind := range []ProceduralKind{KindGeneric, KindCar, KindSubmarine, KindKelp, KindRock} {
		layers := ProceduralLayers(kind, 8, 24, 16)
		if len(layers) != 8 {
			t.Fatalf("kind %d: got %d layers, want 8", kind, len(layers))
		}
		for i, l := range layers {
			if l == nil {
				t.Fatalf("kind %d: layer %d is nil", kind, i)
			}
			if MaskFromAlpha(l).Count() == 0 {
				t.Errorf("kind %d: layer %d is fully transparent", kind, i)
			}
		}
	}
}

package stack

import (
	"math"
	"testing"
)

func TestSampleIndices(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		maxFull int
		target  int
		want    []int
	}{
		{"small stack keeps all", 8, 8, 5, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"target zero keeps all", 24, 8, 0, allIndices(24)},
		{"sampled stack", 24, 8, 5, []int{0, 5, 10, 15, 20}},
		{"even division", 10, 8, 5, []int{0, 2, 4, 6, 8}},
		{"empty", 0, 8, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleIndices(tt.n, tt.maxFull, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func testLayerSet(t *testing.T, n int) *LayerSet {
	t.Helper()
	return NewLayerSet(ProceduralLayers(KindGeneric, n, 16, 12), 1)
}

func TestComposeShadowAnchorsBottomLayer(t *testing.T) {
	ls := testLayerSet(t, 12)
	for _, h := range []float64{0, 45, 135, 270} {
		sun := NewSun(h, 30)
		img, samples := ComposeShadow(ls, 25, sun, DefaultShadowConfig(), QualityMedium)
		if img == nil {
			t.Fatalf("sun at %v: no shadow composed", h)
		}
		if len(samples) == 0 {
			t.Fatalf("sun at %v: no samples", h)
		}
		first := samples[0]
		if first.Index != 0 {
			t.Fatalf("sun at %v: first sample is layer %d, want 0", h, first.Index)
		}
		if first.OffsetX != 0 || first.OffsetY != 0 {
			t.Errorf("sun at %v: bottom layer displaced by (%v, %v), want anchored at origin",
				h, first.OffsetX, first.OffsetY)
		}
	}
}

func TestComposeShadowOffsetsFollowSunDirection(t *testing.T) {
	ls := testLayerSet(t, 12)
	sun := NewSun(90, 20) // sun east, shadows cast west
	_, samples := ComposeShadow(ls, 0, sun, DefaultShadowConfig(), QualityHigh)
	for _, s := range samples[1:] {
		if s.OffsetX >= 0 {
			t.Errorf("layer %d: offset x = %v, want negative (cast west)", s.Index, s.OffsetX)
		}
		if math.Abs(s.OffsetY) > 1e-9 {
			t.Errorf("layer %d: offset y = %v, want 0", s.Index, s.OffsetY)
		}
	}
	// Higher layers fan further out.
	for i := 1; i < len(samples); i++ {
		if math.Abs(samples[i].OffsetX) <= math.Abs(samples[i-1].OffsetX) {
			t.Errorf("offsets not increasing with stack position: %v then %v",
				samples[i-1].OffsetX, samples[i].OffsetX)
		}
	}
}

func TestComposeShadowDisabled(t *testing.T) {
	ls := testLayerSet(t, 6)
	sun := NewSun(135, 45)
	sun.ShadowsEnabled = false
	if img, _ := ComposeShadow(ls, 0, sun, DefaultShadowConfig(), QualityMedium); img != nil {
		t.Error("expected nil shadow with shadows disabled")
	}
	if img, _ := ComposeShadow(ls, 0, nil, DefaultShadowConfig(), QualityMedium); img != nil {
		t.Error("expected nil shadow with nil sun")
	}
}

func TestComposeShadowCanvasSize(t *testing.T) {
	ls := testLayerSet(t, 6)
	cfg := DefaultShadowConfig()
	img, _ := ComposeShadow(ls, 0, NewSun(135, 45), cfg, QualityMedium)
	if img == nil {
		t.Fatal("no shadow composed")
	}
	want := int(math.Ceil(cfg.CanvasScale * float64(ls.Width())))
	if img.Bounds().Dx() != want || img.Bounds().Dy() != want {
		t.Errorf("canvas = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), want, want)
	}
}

func TestComposeShadowUniformTone(t *testing.T) {
	ls := testLayerSet(t, 12)
	cfg := DefaultShadowConfig()
	sun := NewSun(135, 45)
	img, _ := ComposeShadow(ls, 0, sun, cfg, QualityHigh)
	if img == nil {
		t.Fatal("no shadow composed")
	}
	wantAlpha := sun.ShadowAlpha(cfg.BaseAlpha, cfg.FadeFactor)
	for i := 3; i < len(img.Pix); i += 4 {
		if a := img.Pix[i]; a != 0 && a != wantAlpha {
			t.Fatalf("overlapping silhouettes accumulated: alpha %d, want 0 or %d", a, wantAlpha)
		}
	}
}

func TestQualityShadowSampleCounts(t *testing.T) {
	ls := testLayerSet(t, 24)
	cfg := DefaultShadowConfig()
	sun := NewSun(135, 30)

	counts := map[Quality]int{}
	for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh} {
		_, samples := ComposeShadow(ls, 0, sun, cfg, q)
		counts[q] = len(samples)
	}
	if counts[QualityHigh] != 24 {
		t.Errorf("high quality sampled %d layers, want all 24", counts[QualityHigh])
	}
	if counts[QualityLow] >= counts[QualityMedium] {
		t.Errorf("low quality (%d) should sample fewer layers than medium (%d)",
			counts[QualityLow], counts[QualityMedium])
	}
	if counts[QualityMedium] >= counts[QualityHigh] {
		t.Errorf("medium quality (%d) should sample fewer layers than high (%d)",
			counts[QualityMedium], counts[QualityHigh])
	}
}

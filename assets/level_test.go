package assets

import (
	"testing"

	"github.com/aquilax/go-perlin"
	"github.com/lafriks/go-tiled"
)

func loadArena(t *testing.T) *tiled.Map {
	t.Helper()
	m, err := tiled.LoadFile(levelPath("arena.tmx"), tiled.WithFileSystem(levelFS))
	if err != nil {
		t.Fatalf("load arena.tmx: %v", err)
	}
	return m
}

func TestLevelPathUsesSlashSeparators(t *testing.T) {
	if got := levelPath("arena.tmx"); got != "levels/arena.tmx" {
		t.Errorf("levelPath = %q, want %q", got, "levels/arena.tmx")
	}
	// fs.FS rejects backslash paths, so the join must stay slash based even
	// when the name carries a subdirectory.
	if got := levelPath("packs/arena.tmx"); got != "levels/packs/arena.tmx" {
		t.Errorf("levelPath = %q, want %q", got, "levels/packs/arena.tmx")
	}
	if _, err := levelFS.Open(levelPath("arena.tmx")); err != nil {
		t.Errorf("embedded open: %v", err)
	}
}

func TestParseLevelArena(t *testing.T) {
	info := ParseLevel(loadArena(t), "arena.tmx")

	if info.Width != 640 || info.Height != 480 {
		t.Errorf("map size = %dx%d, want 640x480", info.Width, info.Height)
	}
	if len(info.Walls) != 4 {
		t.Errorf("got %d walls, want 4 border walls", len(info.Walls))
	}
	if len(info.PlayerSpawns) != 1 {
		t.Fatalf("got %d player spawns, want 1", len(info.PlayerSpawns))
	}
	if s := info.PlayerSpawns[0]; s.X != 320 || s.Y != 240 {
		t.Errorf("player spawn at (%v, %v), want (320, 240)", s.X, s.Y)
	}

	types := map[string]int{}
	for _, p := range info.Props {
		types[p.Type]++
	}
	if types["rock"] != 2 {
		t.Errorf("got %d rock props, want 2", types["rock"])
	}
	if types["submarine"] != 1 || types["kelp"] != 1 {
		t.Errorf("prop type counts = %v", types)
	}

	var solid int
	for _, p := range info.Props {
		if p.Solid {
			solid++
		}
	}
	if solid != 2 {
		t.Errorf("got %d solid props, want the 2 rocks", solid)
	}

	if len(info.Scatter) != 2 {
		t.Fatalf("got %d scatter regions, want 2", len(info.Scatter))
	}
	for _, r := range info.Scatter {
		if r.Width <= 0 || r.Height <= 0 {
			t.Errorf("scatter region %q has empty area", r.Type)
		}
	}
}

func TestParseLevelPropRotation(t *testing.T) {
	info := ParseLevel(loadArena(t), "arena.tmx")
	var rotated bool
	for _, p := range info.Props {
		if p.Type == "submarine" && p.Rotation == 115 {
			rotated = true
		}
	}
	if !rotated {
		t.Error("submarine prop did not keep its rotation property")
	}
}

func TestScatterPoints(t *testing.T) {
	noise := perlin.NewPerlin(2, 2, 3, 1337)
	region := Rect{X: 48, Y: 288, Width: 160, Height: 144}

	a := ScatterPoints(region, noise, 24, -1, 0)
	b := ScatterPoints(region, noise, 24, -1, 0)
	if len(a) == 0 {
		t.Fatal("no scatter points produced")
	}
	if len(a) != len(b) {
		t.Fatalf("scatter not deterministic: %d vs %d points", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("scatter not deterministic at point %d: %v vs %v", i, a[i], b[i])
		}
	}

	margin := 48.0 // jitter stays within a couple of cells
	for _, p := range a {
		if p.X < region.X-margin || p.X > region.X+region.Width+margin ||
			p.Y < region.Y-margin || p.Y > region.Y+region.Height+margin {
			t.Errorf("point %v strays outside region %v", p, region)
		}
	}

	// Raising the threshold can only thin the field.
	loose := ScatterPoints(region, noise, 24, -0.2, 0)
	tight := ScatterPoints(region, noise, 24, 0.2, 0)
	if len(tight) > len(loose) {
		t.Errorf("higher threshold produced more points: %d > %d", len(tight), len(loose))
	}
}

func TestScatterPointsRespectsCap(t *testing.T) {
	noise := perlin.NewPerlin(2, 2, 3, 1337)
	region := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	points := ScatterPoints(region, noise, 10, -1, 7) // threshold -1 accepts everything
	if len(points) != 7 {
		t.Errorf("got %d points, want cap of 7", len(points))
	}
}

func TestScatterPointsDegenerateInputs(t *testing.T) {
	noise := perlin.NewPerlin(2, 2, 3, 1)
	if got := ScatterPoints(Rect{Width: 0, Height: 10}, noise, 10, 0, 5); got != nil {
		t.Errorf("empty region produced %v", got)
	}
	if got := ScatterPoints(Rect{Width: 10, Height: 10}, noise, 0, 0, 5); got != nil {
		t.Errorf("zero cell size produced %v", got)
	}
	if got := ScatterPoints(Rect{Width: 10, Height: 10}, nil, 10, 0, 5); got != nil {
		t.Errorf("nil noise produced %v", got)
	}
}

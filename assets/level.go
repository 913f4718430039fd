package assets

import (
	"fmt"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Rect is an axis-aligned region in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Spawn marks where the player's vehicle starts.
type Spawn struct {
	X, Y     float64
	Rotation float64 // initial facing in compass degrees
}

// PropSpawn places one static stacked prop.
type PropSpawn struct {
	X, Y     float64
	Type     string // stack definition name: kelp, rock, ...
	Rotation float64
	Solid    bool
}

// ScatterRegion is an area filled procedurally with props of one type.
type ScatterRegion struct {
	Rect
	Type string
}

// Info is the gameplay data parsed from a map, with no GPU resources so it
// can be inspected headlessly.
type Info struct {
	Name         string
	Width        int
	Height       int
	Walls        []Rect
	PlayerSpawns []Spawn
	Props        []PropSpawn
	Scatter      []ScatterRegion
}

// Level is a fully loaded map: parsed gameplay data plus the pre-rendered
// background texture.
type Level struct {
	Info
	Background *ebiten.Image
}

// ParseLevel extracts gameplay data from a loaded map.
func ParseLevel(m *tiled.Map, name string) Info {
	info := Info{
		Name:   name,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				info.Walls = append(info.Walls, Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				info.PlayerSpawns = append(info.PlayerSpawns, Spawn{
					X:        o.X,
					Y:        o.Y,
					Rotation: o.Properties.GetFloat("rotation"),
				})
			}
		case "Props":
			for _, o := range og.Objects {
				propType := o.Class
				if propType == "" {
					propType = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if propType == "" {
					propType = o.Properties.GetString("propType")
				}
				if propType == "" {
					continue
				}
				info.Props = append(info.Props, PropSpawn{
					X:        o.X,
					Y:        o.Y,
					Type:     propType,
					Rotation: o.Properties.GetFloat("rotation"),
					Solid:    o.Properties.GetBool("solid"),
				})
			}
		case "ScatterRegions":
			for _, o := range og.Objects {
				scatterType := o.Class
				if scatterType == "" {
					scatterType = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if scatterType == "" {
					scatterType = o.Properties.GetString("propType")
				}
				if scatterType == "" || o.Width <= 0 || o.Height <= 0 {
					continue
				}
				info.Scatter = append(info.Scatter, ScatterRegion{
					Rect: Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Type: scatterType,
				})
			}
		}
	}

	return info
}

// MustLoadLevel loads a TMX map from the embedded levels directory, parses
// its gameplay data and renders its background layers.
func MustLoadLevel(name string) *Level {
	levelMap, err := tiled.LoadFile(levelPath(name), tiled.WithFileSystem(levelFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}

	level := &Level{Info: ParseLevel(levelMap, name)}
	level.Background = renderBackground(levelMap)
	return level
}

// levelPath resolves a map name inside the embedded levels directory. io/fs
// paths are always slash separated, on every platform.
func levelPath(name string) string {
	return path.Join("levels", name)
}

// renderBackground flattens every tile layer carrying the "render" custom
// property into one texture.
func renderBackground(m *tiled.Map) *ebiten.Image {
	background := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(m, levelFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	for i, layer := range m.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d: %v", i, err)
			continue
		}
		opacity := layer.Opacity
		if opacity <= 0 {
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background
}

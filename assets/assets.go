package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ImageFS exposes the embedded sprite images for the layer-stack loaders,
// which slice them on the CPU.
func ImageFS() fs.FS {
	return imageFS
}

type imageLoader struct {
	cache map[string]*ebiten.Image
}

var loader = &imageLoader{cache: make(map[string]*ebiten.Image)}

func (l *imageLoader) mustLoad(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img
	return img
}

// MustLoadImage returns the cached GPU texture for an embedded image path.
func MustLoadImage(path string) *ebiten.Image {
	return loader.mustLoad(path)
}

package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s failed to parse: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// LoadDefaults registers the faces the HUD and menus use.
func LoadDefaults() {
	LoadFontWithSize(HUD, goregular.TTF, 12)
	LoadFontWithSize(Title, goregular.TTF, 24)
	LoadFontWithSize(Small, goregular.TTF, 9)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

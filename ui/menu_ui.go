package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/stackdrive/config"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnExit  func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu UI
func NewMenuUI(onStart, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnExit:  onExit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit the 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(mui.rgba(cfg.Menu.BackgroundColor))),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(int(cfg.Menu.ButtonSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: mui.rgba(cfg.Menu.TitleColor),
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.button("Drive", mui.OnStart))
	contentContainer.AddChild(mui.button("Exit", mui.OnExit))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Arrows drive, Space fires, JL/IK move the sun, 1/2/3 toggle shadows, outlines, quality",
			&mui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 190, 255},
			}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(cfg.Menu.ButtonWidth), int(cfg.Menu.ButtonHeight))),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 180, 255},
			Pressed: color.RGBA{200, 180, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

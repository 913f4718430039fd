package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/stackdrive/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		},
		func() {
			os.Exit(0)
		},
	)
}

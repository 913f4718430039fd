package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrive/assets"
	"github.com/automoto/stackdrive/components"
	cfg "github.com/automoto/stackdrive/config"
	"github.com/automoto/stackdrive/systems"
	"github.com/automoto/stackdrive/systems/factory"
)

// WorldScene runs the driving arena.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates the arena scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.pauseRequested() {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) pauseRequested() bool {
	entry, ok := components.Input.First(ws.ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Action(cfg.ActionPause).JustPressed
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateVehicle)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateBubbles)
	e.AddSystem(systems.UpdateSun)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Background, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawBubbles)
	e.AddRenderer(cfg.Default, systems.DrawStacks)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)

	ws.ecs = e

	// Level data first: the collision space and camera need its dimensions.
	level := assets.MustLoadLevel(cfg.World.LevelPath)
	factory.CreateLevel(e, level)
	factory.CreateSpace(e, level.Width, level.Height, 16, 16)
	factory.CreateInput(e)
	factory.CreateSun(e)
	factory.CreateBubbleTrail(e)

	for _, wall := range level.Walls {
		factory.CreateWall(e, wall.X, wall.Y, wall.Width, wall.Height)
	}
	for _, prop := range level.Props {
		factory.CreateProp(e, prop)
	}
	factory.CreateScatteredProps(e, level)

	if len(level.PlayerSpawns) == 0 {
		panic("no player spawn points defined in map")
	}
	spawn := level.PlayerSpawns[0]
	factory.CreateVehicle(e, spawn.X, spawn.Y, spawn.Rotation)

	// Snap the camera to the spawn so the first frame does not pan in from
	// the map origin.
	factory.CreateCamera(e, spawn.X, spawn.Y)
}

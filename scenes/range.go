package scenes

import (
	"image/color"
	"sync"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/systems"
	"github.com/Vynokris/CannonWarfare2/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RangeScene is the firing range: one cannon, ballistic cannonballs,
// particles, and the HUD.
type RangeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewRangeScene(sc SceneChanger) *RangeScene {
	return &RangeScene{sceneChanger: sc}
}

func (rs *RangeScene) Update() {
	rs.once.Do(rs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		systems.ToggleTrajectoryDisplay(rs.ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		systems.DestroyAllProjectiles(rs.ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger))
		return
	}

	rs.ecs.Update()
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	// Always clear to avoid flashes from the OS window background.
	screen.Fill(color.RGBA{24, 28, 38, 255})

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RangeScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateCannons)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.SaveStatsIfDirty)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawTrajectories)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawCannons)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	rs.ecs = e

	levelEntry := factory.CreateLevel(e)
	level := components.Level.Get(levelEntry)
	factory.CreateSpace(e, level.Current)

	factory.CreateShake(e)
	factory.CreateStats(e)
	if saved, _ := systems.LoadStats(); saved != nil {
		systems.ApplySavedStats(e, saved)
	}

	showTrajectory := true
	if settings, _ := systems.LoadSettings(); settings != nil {
		showTrajectory = settings.ShowTrajectory
	}
	factory.CreateCannon(e, level.Current.CannonSpawn, showTrajectory)
}

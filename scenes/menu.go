package scenes

import (
	"os"

	"github.com/Vynokris/CannonWarfare2/systems"
	"github.com/Vynokris/CannonWarfare2/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{sceneChanger: sc}

	showTrajectory := true
	if settings, _ := systems.LoadSettings(); settings != nil {
		showTrajectory = settings.ShowTrajectory
	}

	ms.menuUI = ui.NewMenuUI(
		showTrajectory,
		func() {
			sc.ChangeScene(NewRangeScene(sc))
		},
		func() bool {
			show := true
			if settings, _ := systems.LoadSettings(); settings != nil {
				show = settings.ShowTrajectory
			}
			show = !show
			_ = systems.SaveSettings(&systems.SavedSettings{
				ShowTrajectory: show,
				Fullscreen:     ebiten.IsFullscreen(),
			})
			return show
		},
		func() {
			os.Exit(0)
		},
	)

	return ms
}

func (ms *MenuScene) Update() {
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	ms.menuUI.UI.Draw(screen)
}

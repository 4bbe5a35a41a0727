package main

import (
	"log"

	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/fonts"
	"github.com/Vynokris/CannonWarfare2/scenes"
	"github.com/Vynokris/CannonWarfare2/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Label, goregular.TTF, cfg.HUD.LabelFontSize)
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)

	cfg.LoadTuning("tuning.yaml")

	if err := systems.InitPersistence(); err == nil {
		if settings, _ := systems.LoadSettings(); settings != nil {
			ebiten.SetFullscreen(settings.Fullscreen)
		}
	}

	g := &Game{}
	g.scene = scenes.NewMenuScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

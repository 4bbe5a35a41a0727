package systems

import (
	"fmt"
	"math"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudFontFace font.Face

// DrawHUD renders the power bar, aim readout, session stats, and key help
// in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if hudFontFace == nil {
		hudFontFace = fonts.HUD.Get()
	}

	margin := cfg.HUD.Margin

	cannonEntry, ok := components.Cannon.First(e.World)
	if !ok {
		return
	}
	c := components.Cannon.Get(cannonEntry)

	// Power bar.
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(cfg.HUD.PowerBarWidth), float32(cfg.HUD.PowerBarHeight),
		cfg.HUD.BarBackground, false)

	ratio := (c.Power - cfg.Cannon.MinPower) / (cfg.Cannon.MaxPower - cfg.Cannon.MinPower)
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(cfg.HUD.PowerBarWidth*ratio), float32(cfg.HUD.PowerBarHeight),
		cfg.HUD.BarFill, false)

	y := int(margin + cfg.HUD.PowerBarHeight + 16)
	line := func(s string) {
		text.Draw(screen, s, hudFontFace, int(margin), y, cfg.HUD.TextColor)
		y += 16
	}

	line(fmt.Sprintf("power %.0f", c.Power))
	line(fmt.Sprintf("angle %.0f deg", -c.Angle*180/math.Pi))

	if statsEntry, ok := components.Stats.First(e.World); ok {
		stats := components.Stats.Get(statsEntry)
		line(fmt.Sprintf("shots %d  bounces %d", stats.ShotsFired, stats.Bounces))
		line(fmt.Sprintf("longest flight %.2fs", stats.LongestAirTime))
	}

	line("LMB fire / wheel power / T trajectory / C clear / ESC menu")
}

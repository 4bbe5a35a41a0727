package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ProjectileData holds the cannonball's lifecycle state. Kinematics live in
// TransformData, the flight-path snapshot in TrajectoryData.
type ProjectileData struct {
	Radius       float64
	Elasticity   float64 // fraction of speed kept after a bounce
	GroundHeight float64 // world y of the ground plane

	Landed     bool
	AirTime    float64 // seconds from launch to first ground contact
	LaunchedAt time.Time

	Color color.RGBA

	// Soft destroy: a linear 255->0 fade over DestroyDuration. The entity
	// stays in the world until the fade finishes; removal is the update
	// system's job.
	DestroyDuration float64
	fade            *gween.Tween
	fadeDone        bool
}

// Destroy arms the fade-out countdown. Calling it again restarts the fade.
func (p *ProjectileData) Destroy() {
	p.fade = gween.New(255, 0, float32(p.DestroyDuration), ease.Linear)
	p.fadeDone = false
}

// Destroying reports whether a destroy sequence has been started.
func (p *ProjectileData) Destroying() bool {
	return p.fade != nil
}

// TickFade advances an active fade and applies it to the color's alpha.
func (p *ProjectileData) TickFade(dt float64) {
	if p.fade == nil || p.fadeDone {
		return
	}
	alpha, done := p.fade.Update(float32(dt))
	p.Color.A = uint8(alpha)
	if done {
		p.Color.A = 0
		p.fadeDone = true
	}
}

// Finished reports whether the fade has run out and the entity can be
// removed by its host.
func (p *ProjectileData) Finished() bool {
	return p.fadeDone
}

var Projectile = donburi.NewComponentType[ProjectileData]()

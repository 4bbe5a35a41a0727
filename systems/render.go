package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Vynokris/CannonWarfare2/components"
	cfg "github.com/Vynokris/CannonWarfare2/config"
	"github.com/Vynokris/CannonWarfare2/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	groundColor = color.RGBA{46, 38, 32, 255}
	wallColor   = color.RGBA{70, 62, 54, 255}
	crateColor  = color.RGBA{140, 104, 58, 255}

	labelFontFace font.Face

	pathVs []ebiten.Vertex
	pathIs []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawLevel paints the firing range: ground slab, side walls, and crates.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	r := components.Level.Get(entry).Current
	ox, oy := shakeOffset(e)

	vector.DrawFilledRect(screen,
		float32(ox), float32(r.GroundY+oy),
		float32(r.Width), float32(float64(r.Height)-r.GroundY),
		groundColor, false)

	for _, w := range r.Walls {
		vector.DrawFilledRect(screen,
			float32(w.X+ox), float32(w.Y+oy),
			float32(w.W), float32(w.H),
			wallColor, false)
	}
	for _, c := range r.Crates {
		vector.DrawFilledRect(screen,
			float32(c.X+ox), float32(c.Y+oy),
			float32(c.W), float32(c.H),
			crateColor, false)
	}
}

// DrawProjectiles renders each cannonball as a filled disc with a colored
// outline, plus its air-time label centered above. Read-only on entity
// state.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	if labelFontFace == nil {
		labelFontFace = fonts.Label.Get()
	}
	ox, oy := shakeOffset(e)

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		tr := components.Transform.Get(entry)
		traj := components.Trajectory.Get(entry)

		cx := float32(tr.Position.X + ox)
		cy := float32(tr.Position.Y + oy)
		radius := float32(p.Radius * cfg.Physics.PixelScale)

		vector.DrawFilledCircle(screen, cx, cy, radius, fadeColor(color.RGBA{0, 0, 0, 255}, float64(p.Color.A)/255), true)
		vector.StrokeCircle(screen, cx, cy, radius, 1, p.Color, true)

		// Air-time label, alpha capped by both the trajectory fade and the
		// ball's own (possibly fading) alpha.
		labelAlpha := math.Min(traj.Alpha*255, float64(p.Color.A))
		if labelAlpha <= 0 {
			return
		}
		label := fmt.Sprintf("%.2fs", p.AirTime)
		bounds := text.BoundString(labelFontFace, label) //nolint:staticcheck // TODO: migrate to text/v2
		tx := int(tr.Position.X+ox) - bounds.Dx()/2
		ty := int(tr.Position.Y+oy) - int(radius) - 10
		text.Draw(screen, label, labelFontFace, tx, ty, fadeColor(p.Color, labelAlpha))
	})
}

// DrawTrajectories strokes the quadratic approximation of each flight
// path and a small heading marker at its end point.
func DrawTrajectories(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		traj := components.Trajectory.Get(entry)

		alpha := math.Min(traj.Alpha*255, float64(p.Color.A))
		if alpha <= 0 {
			return
		}
		clr := fadeColor(p.Color, alpha)

		var path vector.Path
		path.MoveTo(float32(traj.StartPos.X+ox), float32(traj.StartPos.Y+oy))
		path.QuadTo(
			float32(traj.ControlPoint.X+ox), float32(traj.ControlPoint.Y+oy),
			float32(traj.EndPos.X+ox), float32(traj.EndPos.Y+oy),
		)
		strokePath(screen, &path, cfg.Trajectory.LineWidth, clr)

		// Heading marker: small polygon at the end point, nose along the
		// arrival direction.
		rotation := traj.EndVel.Angle() - math.Pi/2
		fillPolygon(screen,
			float32(traj.EndPos.X+ox), float32(traj.EndPos.Y+oy),
			cfg.Trajectory.MarkerRadius, cfg.Trajectory.MarkerSides, rotation, clr)
	})
}

// DrawParticles renders every particle with age-faded alpha.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		pt := components.Particle.Get(entry)

		life := 1 - pt.Age/pt.Lifetime
		if life <= 0 {
			return
		}
		clr := fadeColor(pt.Color, life*float64(pt.Color.A))

		cx := float32(pt.Position.X + ox)
		cy := float32(pt.Position.Y + oy)
		size := float32(pt.Size)

		if pt.Sides < 3 {
			vector.DrawFilledCircle(screen, cx, cy, size/2, clr, true)
			return
		}
		fillPolygon(screen, cx, cy, size/2, pt.Sides, pt.Velocity.Angle(), clr)
	})
}

// fillPolygon draws a filled regular polygon of the given circumradius.
func fillPolygon(dst *ebiten.Image, cx, cy, radius float32, sides int, rotation float64, clr color.RGBA) {
	var path vector.Path
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		px := cx + radius*float32(math.Cos(angle))
		py := cy + radius*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	pathVs, pathIs = path.AppendVerticesAndIndicesForFilling(pathVs[:0], pathIs[:0])
	drawPathTriangles(dst, clr)
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	pathVs, pathIs = path.AppendVerticesAndIndicesForStroke(pathVs[:0], pathIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	drawPathTriangles(dst, clr)
}

func drawPathTriangles(dst *ebiten.Image, clr color.RGBA) {
	for i := range pathVs {
		pathVs[i].ColorR = float32(clr.R) / 255
		pathVs[i].ColorG = float32(clr.G) / 255
		pathVs[i].ColorB = float32(clr.B) / 255
		pathVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(pathVs, pathIs, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// fadeColor scales a color to the given 0..255 alpha, keeping channels
// premultiplied.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 255 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	k := alpha / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(alpha),
	}
}

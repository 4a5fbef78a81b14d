package main

import (
	"image/color"

	"orbit-defense/internal/app"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// viewport centres the 2D playfield on the 3D origin.
type viewport struct {
	cx, cy float64
}

func newViewport(width, height float64) viewport {
	return viewport{cx: width / 2, cy: height / 2}
}

func (v viewport) toScene(x, y float64) rl.Vector3 {
	return rl.NewVector3(float32((x-v.cx)*coordScale), 0, float32((y-v.cy)*coordScale))
}

func (v viewport) toWorld(p rl.Vector3) (float64, float64) {
	return float64(p.X)/coordScale + v.cx, float64(p.Z)/coordScale + v.cy
}

// groundPoint intersects a ray with the y=0 plane.
func groundPoint(ray rl.Ray) (rl.Vector3, bool) {
	if ray.Direction.Y == 0 {
		return rl.Vector3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t <= 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func withAlpha(c color.RGBA, f float64) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, uint8(float64(c.A)*max(0, min(1, f))))
}

func drawLane(v viewport, path *defs.Path) {
	rl.DrawGrid(40, 10)
	wps := path.Waypoints
	for i := 1; i < len(wps); i++ {
		a := v.toScene(wps[i-1].X, wps[i-1].Y)
		b := v.toScene(wps[i].X, wps[i].Y)
		mid := Vector3Lerp(a, b, 0.5)
		w := max(abs32(b.X-a.X), config.PathWidth*coordScale)
		l := max(abs32(b.Z-a.Z), config.PathWidth*coordScale)
		rl.DrawCube(mid, w, 0.2, l, toRL(config.PathColor))
		rl.DrawLine3D(a, b, toRL(config.PathCenterColor))
	}
	end := path.End()
	rl.DrawCylinder(v.toScene(end.X, end.Y), 4, 5, 3, 16, toRL(config.BaseColor))
}

func drawSnapshot(v viewport, snap *app.Snapshot) {
	for _, t := range snap.Towers {
		pos := v.toScene(t.X, t.Y)
		if t.Trap {
			rl.DrawCube(pos, 3, 0.6, 3, toRL(t.Color))
			continue
		}
		rl.DrawCylinder(pos, 2.5, 3.5, 6, 12, toRL(t.Color))
	}
	for _, e := range snap.Enemies {
		r := float32(e.Radius * coordScale)
		pos := v.toScene(e.X, e.Y)
		pos.Y = r
		rl.DrawSphere(pos, r, toRL(e.Color))
		if e.Slowed {
			rl.DrawSphereWires(pos, r*1.3, 6, 6, toRL(config.SlowRingColor))
		}
		if e.MaxHP > 0 {
			bar := pos
			bar.Y += r + 1.5
			rl.DrawCube(bar, 6*float32(e.HP/e.MaxHP), 0.5, 0.5, toRL(config.HealthFillColor))
		}
	}
	for _, p := range snap.Projectiles {
		pos := v.toScene(p.X, p.Y)
		pos.Y = 3
		rl.DrawSphere(pos, config.ProjectileRadius*coordScale, toRL(p.Color))
	}
	for _, b := range snap.Beams {
		from, to := v.toScene(b.X1, b.Y1), v.toScene(b.X2, b.Y2)
		from.Y, to.Y = 5, 2
		rl.DrawLine3D(from, to, withAlpha(config.BeamColor, float64(b.Life)/config.BeamLifetime))
	}
	for _, p := range snap.Particles {
		pos := v.toScene(p.X, p.Y)
		pos.Y = 1
		rl.DrawCube(pos, 0.8, 0.8, 0.8, withAlpha(p.Color, p.Life))
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

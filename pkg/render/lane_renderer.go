package render

import (
	"image/color"

	"orbit-defense/internal/app"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	starCount     = 120
	starSeed      = 7
	healthBarW    = 24
	healthBarH    = 4
	baseRadius    = 18
	baseGlowScale = 1.8
)

var starSizes = []float64{0.6, 1.0, 1.6}

// LaneRenderer рисует поле и всё, что на нём, по снимку сессии
type LaneRenderer struct {
	path     *defs.Path
	colors   LaneColors
	width    int
	height   int
	fillImg  *ebiten.Image
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	mapImage *ebiten.Image // статичный фон, рисуется один раз
}

func NewLaneRenderer(path *defs.Path, colors LaneColors, width, height int) *LaneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &LaneRenderer{
		path:     path,
		colors:   colors,
		width:    width,
		height:   height,
		fillImg:  fillImg,
		strokeVs: make([]ebiten.Vertex, 0, 256),
		strokeIs: make([]uint16, 0, 256),
		mapImage: ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает статичный фон. Вызывать заново после смены пути.
func (r *LaneRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.Background)

	stars := utils.NewPRNGService(starSeed)
	for i := 0; i < starCount; i++ {
		x := float32(stars.Float64() * float64(r.width))
		y := float32(stars.Float64() * float64(r.height))
		// Три размера звёзд, яркость случайная.
		size := float32(starSizes[stars.Intn(len(starSizes))])
		vector.DrawFilledCircle(r.mapImage, x, y, size, Fade(r.colors.Star, 0.3+stars.Float64()*0.7), true)
	}

	r.strokePath(r.mapImage, r.colors.PathWidth, r.colors.Path)
	r.strokePath(r.mapImage, 2, r.colors.PathCenter)

	end := r.path.End()
	vector.DrawFilledCircle(r.mapImage, float32(end.X), float32(end.Y), baseRadius*baseGlowScale, r.colors.BaseGlow, true)
	vector.DrawFilledCircle(r.mapImage, float32(end.X), float32(end.Y), baseRadius, r.colors.Base, true)
}

func (r *LaneRenderer) strokePath(target *ebiten.Image, width float32, clr color.RGBA) {
	var p vector.Path
	for i, wp := range r.path.Waypoints {
		if i == 0 {
			p.MoveTo(float32(wp.X), float32(wp.Y))
		} else {
			p.LineTo(float32(wp.X), float32(wp.Y))
		}
	}

	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(clr.R) / 255
		r.strokeVs[i].ColorG = float32(clr.G) / 255
		r.strokeVs[i].ColorB = float32(clr.B) / 255
		r.strokeVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw рисует один кадр сессии
func (r *LaneRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.DrawImage(r.mapImage, nil)

	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, p.Color, true)
	}
	for _, b := range snap.Beams {
		alpha := float64(b.Life) / config.BeamLifetime
		vector.StrokeLine(screen, float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2), 2, Fade(config.BeamColor, alpha), true)
	}
	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.X)-1.5, float32(p.Y)-1.5, 3, 3, Fade(p.Color, p.Life), false)
	}
}

func (r *LaneRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := float32(t.X), float32(t.Y)
	if t.Trap {
		// Ловушка лежит на земле, кольцо показывает радиус срабатывания
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, Fade(t.Color, 0.4), true)
		vector.DrawFilledRect(screen, x-7, y-7, 14, 14, t.Color, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius+3, DarkenColor(t.Color), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, t.Color, true)
}

func (r *LaneRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, float32(e.Radius), e.Color, true)
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, float32(e.Radius)+2, 2, config.SlowRingColor, true)
	}

	top := y - float32(e.Radius) - 10
	vector.DrawFilledRect(screen, x-healthBarW/2, top, healthBarW, healthBarH, config.HealthBackColor, false)
	if e.MaxHP > 0 {
		vector.DrawFilledRect(screen, x-healthBarW/2, top, healthBarW*float32(e.HP/e.MaxHP), healthBarH, config.HealthFillColor, false)
	}
}

// DrawRange рисует радиус: превью постройки и выбранная башня
func DrawRange(screen *ebiten.Image, x, y, radius float64, valid bool) {
	clr := config.RangeColor
	if !valid {
		clr = Fade(config.WarnColor, 0.5)
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), Fade(clr, 0.5), true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1, clr, true)
}

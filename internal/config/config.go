// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 576 // игровое поле, мировые координаты совпадают с экранными
	HUDHeight    = 96  // полоса палитры под игровым полем
	WindowHeight = ScreenHeight + HUDHeight
	WindowTitle  = "Orbit Defense"

	TicksPerSecond = 60

	StartingMoney = 450
	StartingLives = 20
	StartingWave  = 1

	ScorePerReward   = 10  // score granted per point of reward
	HPScalePerWave   = 0.2 // maxHp = baseHp * (1 + wave*HPScalePerWave)
	SlowSpeedFactor  = 0.5
	NextWaveDelay    = 2000 * time.Millisecond
	PathMargin       = 25.0 // no tower closer than this to a path segment
	MinTowerSpacing  = 40.0
	InspectEnemyPad  = 10.0 // enemy pick radius = enemy radius + pad
	InspectTowerDist = 20.0

	BeamLifetime          = 10 // ticks
	ParticleLifeDecay     = 0.05
	ParticleSpread        = 4.0
	DeathParticles        = 5
	ImpactParticles       = 5
	TrapParticles         = 10
	TrapParticleSpeedMult = 3.0

	ProjectileRadius = 5.0
	TowerRadius      = 14.0
	PathWidth        = 40.0

	ClickCooldown = 150 * time.Millisecond
	MusicNoteGap  = 600 * time.Millisecond
)

// SpeedMultipliers — тиков за кадр для каждого состояния кнопки скорости
var SpeedMultipliers = []int{1, 2, 4}

var (
	BackgroundColor = color.RGBA{5, 6, 20, 255}
	StarColor       = color.RGBA{200, 210, 255, 255}
	PathColor       = color.RGBA{0, 150, 255, 60}
	PathCenterColor = color.RGBA{0, 200, 255, 160}
	BaseColor       = color.RGBA{30, 110, 220, 255}
	BaseGlowColor   = color.RGBA{80, 170, 255, 70}
	BeamColor       = color.RGBA{255, 255, 170, 230}
	SlowRingColor   = color.RGBA{0, 255, 255, 255}
	HealthBackColor = color.RGBA{200, 0, 0, 255}
	HealthFillColor = color.RGBA{0, 255, 0, 255}
	RangeColor      = color.RGBA{255, 255, 255, 40}
	ExplosionColor  = color.RGBA{255, 165, 0, 255}
	TrapBlastColor  = color.RGBA{255, 85, 0, 255}
	HUDColor        = color.RGBA{15, 18, 40, 240}
	HUDBorderColor  = color.RGBA{90, 110, 200, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 170, 255}
	WarnColor       = color.RGBA{255, 90, 90, 255}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 170}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)

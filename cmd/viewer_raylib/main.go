package main

import (
	"flag"
	"fmt"
	"log"

	"orbit-defense/internal/app"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	coordScale   = 0.25 // world pixels -> 3D units
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	speed := flag.Int("speed", 1, "simulation ticks per frame")
	flag.Parse()

	lib, err := defs.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	game := app.NewGame(lib, app.Options{Seed: *seed})
	view := newViewport(float64(config.ScreenWidth), float64(config.ScreenHeight))

	rl.InitWindow(screenWidth, screenHeight, "Orbit Defense | Space - Start, 1-5 - Tower, Q/E - Rotate, R - Restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(0, 160, 170)
	topDownPos := rl.NewVector3(0, 300, 0.1)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.5)

	selected := 0

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = min(0.99, max(0, cameraAngleT+wheel*0.05))
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = rl.NewVector3(0, 0, 0)
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive} {
			if rl.IsKeyPressed(key) && i < len(lib.TowerOrder) {
				selected = i
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			game.Start()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			game.Restart()
		}

		// Курсор на плоскости земли
		cursor, onGround := groundPoint(rl.GetMouseRay(rl.GetMousePosition(), camera))
		wx, wy := view.toWorld(cursor)
		if onGround && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			game.PlaceTower(lib.TowerOrder[selected], wx, wy)
		}

		game.Update(*speed)
		snap := game.Snapshot()

		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))

		rl.BeginMode3D(camera)
		drawLane(view, &lib.Path)
		drawSnapshot(view, &snap)
		if onGround {
			kind := lib.TowerOrder[selected]
			clr := rl.NewColor(255, 255, 255, 90)
			if !game.IsValidPlacement(wx, wy) {
				clr = rl.NewColor(255, 90, 90, 120)
			}
			rl.DrawCircle3D(cursor, float32(lib.Towers[kind].Range*coordScale), rl.NewVector3(1, 0, 0), 90, clr)
		}
		rl.EndMode3D()

		drawStatus(&snap, lib.Towers[lib.TowerOrder[selected]].Name)
		rl.EndDrawing()
	}
}

func drawStatus(snap *app.Snapshot, towerName string) {
	status := fmt.Sprintf("Money %d   Lives %d   Wave %d   Enemies %d   Score %d", snap.Money, snap.Lives, snap.Wave, snap.EnemiesLeft, snap.Score)
	rl.DrawText(status, 16, 16, 20, rl.RayWhite)
	rl.DrawText("Tower: "+towerName, 16, 42, 20, rl.Gold)
	switch {
	case snap.Over:
		rl.DrawText("GAME OVER - press R", screenWidth/2-140, screenHeight/2-20, 32, rl.Red)
	case !snap.Active:
		rl.DrawText("Press Space to start", screenWidth/2-140, screenHeight/2-20, 32, rl.RayWhite)
	}
	rl.DrawFPS(screenWidth-100, 16)
}

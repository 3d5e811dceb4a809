package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toVector2(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.ShowTrail {
		a.drawTrails()
	}
	a.drawBodies()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawBodies() {
	for _, s := range a.Scene.Shapes() {
		rl.DrawCircleV(toVector2(s.Position[0], s.Position[1]), float32(s.Radius), toColor(s.Color))
	}
}

func (a *App) drawTrails() {
	shapes := a.Scene.Shapes()
	for i, trail := range a.Trails {
		if i >= len(shapes) || len(trail) < 2 {
			continue
		}
		col := rl.ColorAlpha(toColor(shapes[i].Color), 0.4)
		for j := 1; j < len(trail); j++ {
			rl.DrawLineV(trail[j-1], trail[j], col)
		}
	}
}

func (a *App) DrawHUD() {
	rl.DrawText(a.Name, 10, 10, 20, ColSelect)
	rl.DrawText(fmt.Sprintf("tick %d  t=%.1f", a.Sim.TickCount(), a.Sim.Time()), 10, 34, 14, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, WindowWidth-90, 10, 16, col)

	rl.DrawText("[SPACE] PAUSE  [R] RESET  [T] TRAILS  [Q] QUIT", 10, WindowHeight-24, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), WindowWidth-70, WindowHeight-24, 14, ColTextDim)
}

// Package gui shows a running simulation in a raylib window. Every body is
// drawn as a filled circle of its scene radius and color.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/scene"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Gravity Simulation"
	maxTrail     = 240
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Sim       *dynamo.Simulator
	Scene     *scene.Scene
	Name      string
	FPS       int32
	Running   bool
	ShowTrail bool

	// Trails[i] holds recent positions of body i, oldest first.
	Trails [][]rl.Vector2

	logger hclog.Logger
}

func NewApp(sim *dynamo.Simulator, sc *scene.Scene, name string, fps int, logger hclog.Logger) *App {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &App{
		Sim:     sim,
		Scene:   sc,
		Name:    name,
		FPS:     int32(fps),
		Running: true,
		Trails:  make([][]rl.Vector2, sc.Len()),
		logger:  logger.Named("gui"),
	}
}

func (a *App) initWindow() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(WindowWidth, WindowHeight, WindowTitle)
	rl.SetTargetFPS(a.FPS)
	rl.SetExitKey(rl.KeyEscape)
}

// Run opens the window and advances one tick per frame until it is closed.
func (a *App) Run() {
	a.initWindow()
	defer rl.CloseWindow()
	a.logger.Info("window opened", "scene", a.Name, "bodies", a.Sim.Len(), "fps", a.FPS)

	a.RunLoop()
	a.logger.Info("window closed", "ticks", a.Sim.TickCount())
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		a.clearTrails()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.ShowTrail = !a.ShowTrail
		a.clearTrails()
	}

	if !a.Running {
		return
	}
	a.Sim.Tick()
	if a.ShowTrail {
		a.recordTrails()
	}
}

func (a *App) recordTrails() {
	for i, s := range a.Scene.Shapes() {
		if i >= len(a.Trails) {
			break
		}
		t := append(a.Trails[i], toVector2(s.Position[0], s.Position[1]))
		if len(t) > maxTrail {
			t = t[len(t)-maxTrail:]
		}
		a.Trails[i] = t
	}
}

func (a *App) clearTrails() {
	for i := range a.Trails {
		a.Trails[i] = a.Trails[i][:0]
	}
}

package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splat/audio"
	"github.com/lixenwraith/splat/config"
	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/game"
	"github.com/lixenwraith/splat/input"
	"github.com/lixenwraith/splat/parameter"
	"github.com/lixenwraith/splat/render"
	"github.com/lixenwraith/splat/stage"
	"github.com/lixenwraith/splat/status"
	"github.com/lixenwraith/splat/vmath"
)

var (
	stageStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// App owns the screen and runs the fixed-tick loop
type App struct {
	cfg     *config.Config
	screen  tcell.Screen
	frame   *render.Frame
	cam     render.Camera
	stage   *stage.Stage
	player  *game.Player
	input   *input.Input
	stepper *engine.Stepper
	status  *render.StatusLine
	metrics *status.Registry
	cues    *audio.Cues
}

// NewApp wires the simulation to an initialized screen
func NewApp(cfg *config.Config, screen tcell.Screen, st *stage.Stage, cues *audio.Cues) *App {
	clock := engine.NewWallClock()

	spawn, ok := st.Spawn()
	if !ok {
		w, h := st.Size()
		spawn = vmath.ToWorld(vmath.C(w/2, h/2))
		log.Printf("stage has no spawn marker, using %v", spawn)
	}

	metrics := status.NewRegistry()
	player := game.NewPlayer(spawn, cfg.Tuning())
	player.SetEvents(game.MultiEvents{logEvents{}, status.NewTracker(metrics), cues})

	a := &App{
		cfg:     cfg,
		screen:  screen,
		frame:   render.NewFrame(0, 0),
		stage:   st,
		player:  player,
		input:   input.New(),
		stepper: engine.NewStepper(clock, cfg.TickInterval(), parameter.MaxCatchUpTicks),
		status:  render.NewStatusLine(clock),
		metrics: metrics,
		cues:    cues,
	}
	a.resize()
	a.cam.Center(player.Pos)
	return a
}

// resize fits the frame and camera window to the screen, keeping the player in view
func (a *App) resize() {
	w, h := a.screen.Size()
	a.frame.Resize(w, h)

	a.cam.Frame = vmath.C(parameter.BorderWidth, parameter.BorderWidth)
	a.cam.Width = max(w-2*parameter.BorderWidth, 0)
	a.cam.Height = max(h-2*parameter.BorderWidth-parameter.StatusRows, 0)
	a.cam.Center(a.player.Pos)
	a.screen.Sync()
}

// Run polls events on a goroutine and ticks until quit
func (a *App) Run() {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.resize()
				continue
			}
			a.input.HandleEvent(ev)
			if a.input.Pressed(input.ButtonQuit) {
				log.Printf("quit requested")
				return
			}

		case <-ticker.C:
			a.update()
			a.draw()
		}
	}
}

// update runs the owed simulation ticks, each consuming one input snapshot
func (a *App) update() {
	ticks := a.stepper.Step()
	for i := 0; i < ticks; i++ {
		if a.input.PressedThisFrame(input.ButtonMute) {
			log.Printf("muted: %v", a.cues.ToggleMute())
		}
		a.player.Update(a.input.Intent(&a.cam), a.stage)
		a.input.Advance()
	}

	if a.cfg.Camera.Follow {
		a.cam.Follow(a.player.Pos, a.cfg.Camera.DeadZoneX, a.cfg.Camera.DeadZoneY)
	}

	a.metrics.SetFloat(status.KeyTickRate, a.stepper.Rate())
	a.metrics.SetFloat(status.KeySpeed, a.player.Vel.Mag())
}

func (a *App) draw() {
	a.frame.Clear()

	a.frame.SetStyle(stageStyle)
	a.cam.PaintSprite(a.frame, a.stage.Rows(), vmath.Zero)

	a.frame.SetStyle(playerStyle)
	a.player.Draw(&a.cam, a.frame)

	a.frame.SetStyle(borderStyle)
	render.DrawBorder(a.frame, &a.cam, render.LineRounded)

	w, h := a.frame.Size()
	a.frame.SetStyle(statusStyle)
	a.status.Draw(a.frame, h-1, w, a.player.Phase().String()+" "+a.metrics.Summary())

	a.frame.Flush(a.screen)
}

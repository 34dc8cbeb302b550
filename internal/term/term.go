// Package term drives a game.Session from a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/game"
	"torus-life/internal/render"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Driver owns the session on behalf of the terminal.
type Driver struct {
	screen  tcell.Screen
	session *game.Session
	buttons tcell.ButtonMask
}

// New returns a driver painting session onto an initialised screen.
func New(screen tcell.Screen, session *game.Session) *Driver {
	return &Driver{screen: screen, session: session}
}

// Run polls input and advances the session every frame until ctx is done or
// the user quits. The caller keeps ownership of the screen.
func (d *Driver) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := d.Handle(ev)
			if err != nil || quit {
				return err
			}
		case now := <-ticker.C:
			if _, err := d.session.Advance(now); err != nil {
				return err
			}
		}
		d.Draw()
	}
}

// Handle applies one input event and reports whether the user asked to quit.
func (d *Driver) Handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		return false, d.handleMouse(ev)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false, nil
}

func (d *Driver) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		d.session.Faster()
	case tcell.KeyDown:
		d.session.Slower()
	case tcell.KeyEnter:
		d.session.Restart()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			d.session.TogglePause()
		case 'r':
			d.session.Randomize()
		case 'c':
			d.session.Clear()
		case 'n':
			if d.session.Paused() {
				_, err := d.session.Step()
				return false, err
			}
		}
	}
	return false, nil
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) error {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && d.buttons&tcell.Button1 == 0
	d.buttons = buttons
	if !pressed {
		return nil
	}
	px, py := ev.Position()
	size := d.session.Size()
	x, y, ok := render.CellAt(px/cellWidth, py, 1, size.W, size.H)
	if !ok {
		return nil
	}
	return d.session.ToggleCell(x, y)
}

// Draw paints the board and a status line below it.
func (d *Driver) Draw() {
	d.screen.Clear()
	grid := d.session.Grid()
	size := grid.Size()
	cells := grid.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style, r := deadStyle, ' '
			if cells[grid.Index(x, y)] != 0 {
				style, r = liveStyle, '█'
			}
			for i := 0; i < cellWidth; i++ {
				d.screen.SetContent(x*cellWidth+i, y, r, nil, style)
			}
		}
	}

	style := statusStyle
	if d.session.Over() {
		style = overStyle
	}
	d.drawText(0, size.H, style, d.statusLine())
	d.drawText(0, size.H+1, statusStyle, "space pause  r random  c clear  n step  up/down speed  enter restart  q quit")
	d.screen.Show()
}

func (d *Driver) statusLine() string {
	s := d.session
	line := fmt.Sprintf("gen %d  live %d  every %v  %s", s.Generation(), s.Grid().LiveCount(), s.Interval(), s.Status())
	if s.Over() {
		line = "Game over! " + line
	}
	return line
}

func (d *Driver) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

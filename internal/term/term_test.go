package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/game"
)

func newDriver(t *testing.T) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 6, 6
	cfg.Density = 0
	cfg.StartPaused = true
	session, err := game.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(screen, session), screen
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[row*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func click(d *Driver, x, y int) error {
	if _, err := d.Handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)); err != nil {
		return err
	}
	_, err := d.Handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	return err
}

func TestClickTogglesCell(t *testing.T) {
	d, _ := newDriver(t)
	if err := click(d, 5, 2); err != nil {
		t.Fatal(err)
	}
	if alive, _ := d.session.Grid().Get(2, 2); !alive {
		t.Fatal("click on column 5 should toggle cell (2,2)")
	}
	if err := click(d, 30, 2); err != nil {
		t.Fatal(err)
	}
	if d.session.Grid().LiveCount() != 1 {
		t.Fatal("clicks outside the board are ignored")
	}
}

func TestHeldButtonTogglesOnce(t *testing.T) {
	d, _ := newDriver(t)
	for i := 0; i < 3; i++ {
		d.Handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	}
	if d.session.Grid().LiveCount() != 1 {
		t.Fatalf("held button toggled %d cells", d.session.Grid().LiveCount())
	}
}

func TestKeys(t *testing.T) {
	d, _ := newDriver(t)
	key := func(k tcell.Key, r rune) bool {
		quit, err := d.Handle(tcell.NewEventKey(k, r, tcell.ModNone))
		if err != nil {
			t.Fatal(err)
		}
		return quit
	}

	key(tcell.KeyRune, ' ')
	if d.session.Paused() {
		t.Fatal("space should resume")
	}
	key(tcell.KeyUp, 0)
	if d.session.Interval() != 400*time.Millisecond {
		t.Fatalf("up should speed up, interval = %v", d.session.Interval())
	}
	key(tcell.KeyDown, 0)
	key(tcell.KeyDown, 0)
	if d.session.Interval() != 600*time.Millisecond {
		t.Fatalf("down should slow down, interval = %v", d.session.Interval())
	}
	key(tcell.KeyRune, 'c')
	if !d.session.Paused() || !d.session.Grid().Empty() {
		t.Fatal("c should clear and pause")
	}
	key(tcell.KeyRune, 'n')
	if d.session.Generation() != 1 || !d.session.Over() {
		t.Fatal("n should single-step the empty board into extinction")
	}
	if !key(tcell.KeyRune, 'q') || !key(tcell.KeyEscape, 0) {
		t.Fatal("q and escape quit")
	}
}

func TestDrawShowsBoardAndStatus(t *testing.T) {
	d, screen := newDriver(t)
	d.session.ToggleCell(1, 0)
	d.Draw()

	if row := rowText(screen, 0); !strings.HasPrefix(row, "  ██  ") {
		t.Fatalf("row 0 = %q", row)
	}
	if status := rowText(screen, 6); !strings.Contains(status, "gen 0") || !strings.Contains(status, "paused") {
		t.Fatalf("status = %q", status)
	}

	d.session.Clear()
	d.session.Step()
	d.Draw()
	if status := rowText(screen, 6); !strings.HasPrefix(status, "Game over!") {
		t.Fatalf("status after extinction = %q", status)
	}
}

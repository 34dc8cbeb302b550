package life

import (
	"testing"

	"torus-life/internal/core"
)

func gridWith(t *testing.T, w, h int, live ...[2]int) *core.Grid {
	t.Helper()
	g := core.MustGrid(w, h)
	for _, c := range live {
		if err := g.Set(c[0], c[1], true); err != nil {
			t.Fatalf("seed (%d,%d): %v", c[0], c[1], err)
		}
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, live ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range live {
		want[c] = true
	}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive, _ := g.Get(x, y)
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbours: got %v want %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbours: got %v want %v", n, got, want)
		}
	}
}

func TestStepEmptyStaysEmpty(t *testing.T) {
	g := core.MustGrid(7, 5)
	gen := NewEngine(CountEvaluated).Step(g)
	if !gen.Grid.Empty() {
		t.Fatal("empty grid must stay empty")
	}
	if gen.Evaluated != 35 {
		t.Fatalf("evaluated = %d, want every cell (35)", gen.Evaluated)
	}
	if NewEngine(CountChanged).Step(g).Evaluated != 0 {
		t.Fatal("nothing changes on an empty grid")
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	block := gridWith(t, 6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	gen := NewEngine(CountChanged).Step(block)
	if eq, _ := gen.Grid.Equal(block); !eq {
		t.Fatal("block should be a still life")
	}
	if gen.Evaluated != 0 {
		t.Fatalf("changed count = %d, want 0", gen.Evaluated)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	blinker := gridWith(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	engine := NewEngine(CountChanged)

	first := engine.Step(blinker)
	expectCells(t, first.Grid, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if first.Evaluated != 4 {
		t.Fatalf("changed count = %d, want 4", first.Evaluated)
	}
	if eq, _ := first.Grid.Equal(blinker); eq {
		t.Fatal("blinker must differ after one step")
	}

	second := engine.Step(first.Grid)
	if eq, _ := second.Grid.Equal(blinker); !eq {
		t.Fatal("blinker must return after two steps")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	blinker := gridWith(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := blinker.Clone()
	NewEngine(CountEvaluated).Step(blinker)
	if eq, _ := blinker.Equal(before); !eq {
		t.Fatal("Step must not write into the current grid")
	}
}

func TestStepWrapsAcrossEdges(t *testing.T) {
	// A blinker straddling the corner only survives if neighbours wrap.
	g := gridWith(t, 5, 5, [2]int{4, 0}, [2]int{0, 0}, [2]int{1, 0})
	gen := NewEngine(CountEvaluated).Step(g)
	expectCells(t, gen.Grid, [2]int{0, 4}, [2]int{0, 0}, [2]int{0, 1})
}

func TestSingleCellDies(t *testing.T) {
	g := gridWith(t, 5, 5, [2]int{2, 2})
	gen := NewEngine(CountChanged).Step(g)
	if !gen.Grid.Empty() {
		t.Fatal("isolated cell should die")
	}
	if gen.Evaluated != 1 {
		t.Fatalf("changed count = %d, want 1", gen.Evaluated)
	}
}

func TestParseCountMode(t *testing.T) {
	if m, ok := ParseCountMode("changed"); !ok || m != CountChanged {
		t.Fatalf("ParseCountMode(changed) = %v, %v", m, ok)
	}
	if m, ok := ParseCountMode("evaluated"); !ok || m != CountEvaluated {
		t.Fatalf("ParseCountMode(evaluated) = %v, %v", m, ok)
	}
	if _, ok := ParseCountMode("bogus"); ok {
		t.Fatal("unknown mode should be rejected")
	}
	if CountChanged.String() != "changed" {
		t.Fatalf("String() = %q", CountChanged.String())
	}
}

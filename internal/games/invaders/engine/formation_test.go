package engine

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// fakeRoller returns scripted rolls in order.
type fakeRoller struct {
	rolls []int
	calls int
}

func (f *fakeRoller) Intn(n int) int {
	if f.calls >= len(f.rolls) {
		return n - 1
	}
	v := f.rolls[f.calls]
	f.calls++
	return v
}

func TestFormationLayout(t *testing.T) {
	f := NewFormation(config.DefaultInvadersConfig())

	if f.Len() != 50 {
		t.Fatalf("Len() = %d, expected 50", f.Len())
	}

	i := 0
	f.Units().Each(func(_ ID, e *Enemy) bool {
		row, col := i/10, i%10
		wantX := 50 + float64(col)*60
		wantY := 50 + float64(row)*50
		if e.Row != row || e.Col != col || e.Bounds.X != wantX || e.Bounds.Y != wantY {
			t.Errorf("unit %d at row %d col %d (%v, %v), expected row %d col %d (%v, %v)",
				i, e.Row, e.Col, e.Bounds.X, e.Bounds.Y, row, col, wantX, wantY)
		}
		if e.Direction != 1 {
			t.Errorf("unit %d direction = %v, expected 1", i, e.Direction)
		}
		i++
		return true
	})
}

func TestFormationSynchronizedDrop(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemy.Rows = 2
	cfg.Enemy.Cols = 2
	f := NewFormation(cfg)

	// Rightmost unit starts at x=110 and touches the edge at x=760
	drops := 0
	dropTick := 0
	for tick := 1; tick <= 700; tick++ {
		if f.Advance() {
			drops++
			if dropTick == 0 {
				dropTick = tick
			}
		}
	}

	if dropTick != 650 {
		t.Errorf("first drop at tick %d, expected 650", dropTick)
	}
	if drops != 1 {
		t.Errorf("drops = %d, expected 1", drops)
	}

	f.Units().Each(func(_ ID, e *Enemy) bool {
		wantY := 50 + float64(e.Row)*50 + 20
		if e.Bounds.Y != wantY {
			t.Errorf("unit row %d col %d y = %v, expected %v", e.Row, e.Col, e.Bounds.Y, wantY)
		}
		if e.Direction != -1 {
			t.Errorf("unit row %d col %d did not reverse", e.Row, e.Col)
		}
		return true
	})
}

func TestFormationDropsOnceWhenManyUnitsAtEdge(t *testing.T) {
	f := NewFormation(config.DefaultInvadersConfig())
	f.Units().Reset()
	f.Units().Insert(Enemy{Bounds: core.NewRect(759, 50, 40, 30), Direction: 1})
	f.Units().Insert(Enemy{Bounds: core.NewRect(759, 100, 40, 30), Direction: 1})
	f.Units().Insert(Enemy{Bounds: core.NewRect(300, 150, 40, 30), Direction: 1})

	if !f.Advance() {
		t.Fatal("formation should drop when a unit reaches the edge")
	}

	want := []float64{70, 120, 170}
	i := 0
	f.Units().Each(func(_ ID, e *Enemy) bool {
		if e.Bounds.Y != want[i] {
			t.Errorf("unit %d y = %v, expected %v", i, e.Bounds.Y, want[i])
		}
		i++
		return true
	})

	// Next tick moves everyone left, away from the edge
	if f.Advance() {
		t.Error("formation should not drop again right after reversing")
	}
}

func TestFormationLeftEdge(t *testing.T) {
	f := NewFormation(config.DefaultInvadersConfig())
	f.Units().Reset()
	f.Units().Insert(Enemy{Bounds: core.NewRect(1, 50, 40, 30), Direction: -1})

	if !f.Advance() {
		t.Fatal("x <= 0 should count as the left edge")
	}
	_, e, _ := f.Units().Nth(0)
	if e.Direction != 1 || e.Bounds.Y != 70 {
		t.Errorf("unit direction %v y %v, expected 1 and 70", e.Direction, e.Bounds.Y)
	}
}

func TestFormationMaybeFire(t *testing.T) {
	cfg := config.DefaultInvadersConfig()

	t.Run("roll misses", func(t *testing.T) {
		f := NewFormation(cfg)
		r := &fakeRoller{rolls: []int{5}}
		if _, ok := f.MaybeFire(r); ok {
			t.Error("roll 5 should not fire at 1% chance")
		}
		if r.calls != 1 {
			t.Errorf("rolls = %d, expected 1", r.calls)
		}
	})

	t.Run("roll hits", func(t *testing.T) {
		f := NewFormation(cfg)
		r := &fakeRoller{rolls: []int{0, 2}}
		p, ok := f.MaybeFire(r)
		if !ok {
			t.Fatal("roll 0 should fire")
		}
		// Unit at row 0 col 2 spans x 170..210, bottom 80
		if p.Bounds.X != 188 || p.Bounds.Y != 80 {
			t.Errorf("shot at (%v, %v), expected (188, 80)", p.Bounds.X, p.Bounds.Y)
		}
		if p.Speed != -7 || !p.Hostile() {
			t.Errorf("shot speed = %v, expected -7", p.Speed)
		}
	})

	t.Run("empty formation", func(t *testing.T) {
		f := NewFormation(cfg)
		f.Units().Reset()
		r := &fakeRoller{rolls: []int{0, 0}}
		if _, ok := f.MaybeFire(r); ok {
			t.Error("empty formation must not fire")
		}
		if r.calls != 0 {
			t.Error("empty formation should not consume rolls")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		c := cfg
		c.Enemy.FireChance = 0
		f := NewFormation(c)
		if _, ok := f.MaybeFire(&fakeRoller{rolls: []int{0, 0}}); ok {
			t.Error("zero fire chance must never fire")
		}
	})
}

func TestFormationReached(t *testing.T) {
	f := NewFormation(config.DefaultInvadersConfig())

	// Bottom row ends at 280
	if !f.Reached(280) {
		t.Error("bottom edge equal to the threshold counts as reached")
	}
	if f.Reached(280.5) {
		t.Error("threshold below the bottom row should not be reached")
	}
}

func TestStarfield(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	sf := NewStarfield(cfg, NewSimpleRNG(7))

	stars := sf.Stars()
	if len(stars) != 100 {
		t.Fatalf("stars = %d, expected 100", len(stars))
	}
	for i, s := range stars {
		if s.X < 0 || s.X >= 800 || s.Y < 0 || s.Y >= 600 {
			t.Errorf("star %d at (%v, %v) outside the screen", i, s.X, s.Y)
		}
		if s.Speed < 0.5 || s.Speed >= 3.0 {
			t.Errorf("star %d speed %v outside 0.5..3.0", i, s.Speed)
		}
		if s.Brightness < 100 || s.Brightness > 255 {
			t.Errorf("star %d brightness %d outside 100..255", i, s.Brightness)
		}
	}

	stars[0].Y = 599.9
	stars[0].Speed = 1
	sf.Advance()
	if sf.Stars()[0].Y != 0 {
		t.Errorf("star past the bottom should wrap to y=0, got %v", sf.Stars()[0].Y)
	}

	sf.Populate()
	if len(sf.Stars()) != 100 {
		t.Error("Populate should regenerate the same number of stars")
	}
}

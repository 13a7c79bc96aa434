package invaders

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
)

func renderFresh(t *testing.T, w, h int) (*core.Screen, engine.Snapshot) {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	snap := engine.New(cfg, 1).Snapshot()
	dst := core.NewScreen(w, h)
	RenderSnapshot(dst, snap, cfg.Screen, false)
	return dst, snap
}

func TestRenderPlayfield(t *testing.T) {
	dst, _ := renderFresh(t, 80, 24)
	out := dst.String()

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "Enemies: 50") {
		t.Errorf("HUD row = %q, expected enemy count", dst.Row(0))
	}
	if !strings.ContainsRune(out, ShipChar) {
		t.Error("ship should be drawn")
	}
	for _, g := range []rune{'W', 'M', 'A'} {
		if !strings.ContainsRune(out, g) {
			t.Errorf("enemy glyph %q missing", g)
		}
	}

	// Ship spans x 375..425 of 800 on an 80 column screen
	shipRow := -1
	for y := 0; y < dst.Height(); y++ {
		if dst.Get(40, y) == ShipChar {
			shipRow = y
		}
	}
	if shipRow < 0 {
		t.Fatal("ship should cover column 40")
	}
	if c := dst.GetCell(40, shipRow).Color; c != core.ColorBrightGreen {
		t.Errorf("unbuffed ship color = %v, expected bright green", c)
	}
}

func TestRenderGameOverBoxes(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	tests := []struct {
		name    string
		victory bool
		want    string
	}{
		{"victory", true, "VICTORY!"},
		{"defeat", false, "GAME OVER"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := engine.New(cfg, 1).Snapshot()
			snap.Phase = engine.PhaseGameOver
			snap.Victory = tc.victory
			snap.Score = 120

			dst := core.NewScreen(80, 24)
			RenderSnapshot(dst, snap, cfg.Screen, false)
			out := dst.String()
			if !strings.Contains(out, tc.want) {
				t.Errorf("screen should contain %q", tc.want)
			}
			if !strings.Contains(out, "Score: 120") {
				t.Error("final score should be shown")
			}
		})
	}
}

func TestRenderPaused(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	dst := core.NewScreen(80, 24)
	RenderSnapshot(dst, engine.New(cfg, 1).Snapshot(), cfg.Screen, true)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused box should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	dst, _ := renderFresh(t, 30, 10)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("small window notice expected")
	}
}

func TestBuffText(t *testing.T) {
	snap := engine.Snapshot{Buff: engine.BuffTripleShot, BuffRemaining: 9300 * time.Millisecond}
	if got := BuffText(snap); got != "TRIPLE SHOT: 9.3s" {
		t.Errorf("BuffText() = %q", got)
	}
	if BuffText(engine.Snapshot{}) != "" {
		t.Error("no buff should render no text")
	}
}

func TestRenderShieldAndShots(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	snap := engine.New(cfg, 1).Snapshot()
	snap.Buff = engine.BuffShield
	snap.BuffRemaining = 5 * time.Second
	snap.Shots = []engine.ProjectileView{{Bounds: core.NewRect(398, 300, 4, 10)}}
	snap.EnemyShots = []engine.ProjectileView{{Bounds: core.NewRect(200, 400, 4, 10), Hostile: true}}

	dst := core.NewScreen(80, 24)
	RenderSnapshot(dst, snap, cfg.Screen, false)
	out := dst.String()

	for _, r := range []rune{'(', ')', ShotChar, EnemyShotChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("screen should contain %q", r)
		}
	}
	if !strings.Contains(dst.Row(0), "SHIELD: 5.0s") {
		t.Errorf("HUD = %q, expected shield timer", dst.Row(0))
	}
}

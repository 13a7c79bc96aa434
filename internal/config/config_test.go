package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML("invaders"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig():\n got %+v\nwant %+v", cfg, DefaultInvadersConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no embedded YAML")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultInvadersConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.PlayerY() != 550 {
		t.Errorf("PlayerY() = %v, expected 550", cfg.PlayerY())
	}
	// 50 + 9*60 + 40
	if cfg.GridRight() != 630 {
		t.Errorf("GridRight() = %v, expected 630", cfg.GridRight())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero screen width", func(c *InvadersConfig) { c.Screen.Width = 0 }},
		{"negative player speed", func(c *InvadersConfig) { c.Player.Speed = -1 }},
		{"zero cooldown", func(c *InvadersConfig) { c.Player.Cooldown = 0 }},
		{"zero buff duration", func(c *InvadersConfig) { c.PowerUp.Duration = 0 }},
		{"empty grid", func(c *InvadersConfig) { c.Enemy.Rows = 0 }},
		{"grid wider than screen", func(c *InvadersConfig) { c.Enemy.Cols = 14 }},
		{"fire chance above 100", func(c *InvadersConfig) { c.Enemy.FireChance = 101 }},
		{"negative drop chance", func(c *InvadersConfig) { c.PowerUp.DropChance = -5 }},
		{"inverted star speeds", func(c *InvadersConfig) { c.Starfield.MinSpeed = 4 }},
		{"brightness above 255", func(c *InvadersConfig) { c.Starfield.MaxBrightness = 300 }},
		{"player wider than screen", func(c *InvadersConfig) { c.Player.Width = 900 }},
		{"no hold ticks", func(c *InvadersConfig) { c.Controls.HoldTicks = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateAllowsDisabledRandomness(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Enemy.FireChance = 0
	cfg.PowerUp.DropChance = 0
	cfg.Starfield.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero chances and no stars should be valid: %v", err)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInvadersFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := ResolveInvaders("")
	if err != nil {
		t.Fatalf("ResolveInvaders failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("embedded config should equal the built-in defaults")
	}
}

func TestResolveInvadersCustomPartialFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "fast.yaml")
	writeFile(t, path, "player:\n  cooldown: 50ms\nenemy:\n  fire_chance: 0\n")

	cfg, src, err := ResolveInvaders(path)
	if err != nil {
		t.Fatalf("ResolveInvaders failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Player.Cooldown != 50*time.Millisecond {
		t.Errorf("cooldown = %v, expected 50ms", cfg.Player.Cooldown)
	}
	if cfg.Enemy.FireChance != 0 {
		t.Errorf("fire chance = %d, expected 0", cfg.Enemy.FireChance)
	}
	// Untouched keys keep defaults
	if cfg.Player.RapidCooldown != 100*time.Millisecond || cfg.Enemy.Rows != 5 {
		t.Error("missing keys should keep their default values")
	}
}

func TestResolveInvadersCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, _, err := ResolveInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "player: [not, a, map")
	if _, _, err := ResolveInvaders(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "enemy:\n  rows: 0\n")
	_, _, err := ResolveInvaders(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalid", err)
	}
}

func TestResolveInvadersSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", invadersFile), "scoring:\n  enemy_points: 20\n")
	cfg, src, err := ResolveInvaders("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceLocal || cfg.Scoring.EnemyPoints != 20 {
		t.Errorf("expected local config, got source %q points %d", src, cfg.Scoring.EnemyPoints)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", invadersFile), "scoring:\n  enemy_points: 30\n")
	cfg, src, err = ResolveInvaders("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceUser || cfg.Scoring.EnemyPoints != 30 {
		t.Errorf("user config should win over local, got source %q points %d", src, cfg.Scoring.EnemyPoints)
	}
}

func TestResolveInvadersSkipsInvalidUserFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", invadersFile), "enemy:\n  cols: 0\n")

	_, src, err := ResolveInvaders("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded {
		t.Errorf("invalid user config should be skipped, got source %q", src)
	}
}

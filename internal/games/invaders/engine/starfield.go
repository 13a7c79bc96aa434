package engine

import "github.com/vovakirdan/tui-invaders/internal/config"

// Star is a background particle. Stars never collide with anything.
type Star struct {
	X, Y       float64
	Speed      float64
	Brightness int
}

// Starfield scrolls stars downward, wrapping them back to the top.
// It draws from its own RNG so cosmetics never perturb gameplay rolls.
type Starfield struct {
	stars  []Star
	rules  config.InvadersStarfield
	width  float64
	height float64
	rng    *SimpleRNG
}

// NewStarfield creates a populated starfield.
func NewStarfield(cfg config.InvadersConfig, rng *SimpleRNG) *Starfield {
	sf := &Starfield{
		stars:  make([]Star, 0, cfg.Starfield.Count),
		rules:  cfg.Starfield,
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
		rng:    rng,
	}
	sf.Populate()
	return sf
}

// Populate scatters a fresh set of stars over the whole screen.
func (sf *Starfield) Populate() {
	sf.stars = sf.stars[:0]
	for i := 0; i < sf.rules.Count; i++ {
		sf.stars = append(sf.stars, Star{
			X:          sf.rng.Range(0, sf.width),
			Y:          sf.rng.Range(0, sf.height),
			Speed:      sf.rng.Range(sf.rules.MinSpeed, sf.rules.MaxSpeed),
			Brightness: sf.rules.MinBrightness + sf.rng.Intn(sf.rules.MaxBrightness-sf.rules.MinBrightness+1),
		})
	}
}

// Advance moves every star down by its speed.
func (sf *Starfield) Advance() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y += s.Speed
		if s.Y > sf.height {
			s.Y = 0
			s.X = sf.rng.Range(0, sf.width)
		}
	}
}

// Stars returns the live star slice. Callers must not retain it across ticks.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}

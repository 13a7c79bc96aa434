package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Cue describes the tone played for one event.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Cues maps gameplay events to their tones.
var Cues = map[core.Event]Cue{
	core.EventShotFired:        {Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare},
	core.EventEnemyHit:         {Freq: 220, Duration: 200 * time.Millisecond, Wave: WaveSquare},
	core.EventShieldBlocked:    {Freq: 220, Duration: 200 * time.Millisecond, Wave: WaveSine},
	core.EventPowerUpCollected: {Freq: 660, Duration: 300 * time.Millisecond, Wave: WaveSine},
	core.EventGameEnded:        {Freq: 110, Duration: 500 * time.Millisecond, Wave: WaveSine},
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 30 * time.Millisecond
)

// Stream builds the streamer for an event's cue at the given volume.
func (c Cue) Stream(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(Tone(c.Freq, c.Duration, c.Wave, rate, cueAttack, cueRelease), vol)
}

// Options configures a Player.
type Options struct {
	Muted  bool
	Volume float64 // Linear gain, 1 is full scale
}

// Player plays event cues. A muted Player, or one whose speaker failed to
// initialise, accepts events and drops them.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	active bool
}

var speakerOnce sync.Once
var speakerErr error

// NewPlayer creates a player and opens the speaker unless muted. On speaker
// failure it returns a silent player together with the error.
func NewPlayer(opts Options) (*Player, error) {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: opts.Volume,
	}
	if opts.Muted {
		return p, nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return p, fmt.Errorf("audio: speaker init: %w", speakerErr)
	}

	speaker.Play(p.mixer)
	p.active = true
	return p, nil
}

// Active reports whether cues reach the speaker.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Play queues the cue for e. Events without a cue are ignored.
func (p *Player) Play(e core.Event) {
	cue, ok := Cues[e]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	speaker.Lock()
	p.mixer.Add(cue.Stream(SampleRate, p.volume))
	speaker.Unlock()
}

// Close stops playback. The speaker stays open for later players.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.active = false
}

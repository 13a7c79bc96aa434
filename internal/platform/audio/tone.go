// Package audio turns gameplay events into short synthesized tones played
// through the beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq    float64
	wave    Wave
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// Tone returns a streamer that plays freq Hz for d, shaped by attack and
// release ramps. Ramps longer than the tone are shortened to fit.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, attack, release time.Duration) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total/2)
	rel := min(rate.N(release), total-att)
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		v := t.sample() * t.gain()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	if t.wave == WaveSquare {
		if t.phase < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * t.phase)
}

func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

// withVolume scales a streamer linearly; zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

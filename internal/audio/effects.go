// Package audio synthesizes the game's sound effects with beep.
// Every effect is generated on the fly; there are no sample files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave. The frequency may slide
// linearly from freq to freq+slide over the duration.
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates an oscillator at a constant frequency.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		slide:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(from*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an oscillator shaped by a short attack and a release.
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(from, to, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Shot is a short falling square blip.
func Shot(rate beep.SampleRate) beep.Streamer {
	return tone(1200, 600, 70*time.Millisecond, WaveSquare, rate)
}

// Explosion is a burst of noise over a low rumble.
func Explosion(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
	rumble := tone(90, 40, d, WaveSine, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
}

// Shield is a two-partial metallic ding.
func Shield(rate beep.SampleRate) beep.Streamer {
	d := 200 * time.Millisecond
	return beep.Mix(
		newVolume(tone(660, 660, d, WaveSine, rate), 0.7),
		newVolume(tone(1320, 1320, d, WaveSine, rate), 0.3),
	)
}

// GameOver is a descending three-note saw phrase.
func GameOver(rate beep.SampleRate) beep.Streamer {
	note := 180 * time.Millisecond
	return beep.Seq(
		tone(392, 392, note, WaveSaw, rate),
		tone(311.13, 311.13, note, WaveSaw, rate),
		tone(261.63, 196, 2*note, WaveSaw, rate),
	)
}

// PowerUp is a rising two-note chime.
func PowerUp(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(987.77, 987.77, 60*time.Millisecond, WaveSquare, rate),
		tone(1318.51, 1318.51, 120*time.Millisecond, WaveSquare, rate),
	)
}

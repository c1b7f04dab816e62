package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/galaxy-wars/internal/event"
)

// DefaultSampleRate is used when Config.SampleRate is zero.
const DefaultSampleRate = beep.SampleRate(44100)

// maxVoices bounds how many effects may overlap in the mixer.
const maxVoices = 16

// device is the process-wide speaker. beep's speaker can be initialized
// only once, so every Player plays through the first one opened.
var device struct {
	mu   sync.Mutex
	open bool
	rate beep.SampleRate
}

// openDevice initializes the speaker. Tests replace it.
var openDevice = func(rate beep.SampleRate) error {
	return speaker.Init(rate, rate.N(50*time.Millisecond))
}

// openSpeaker opens the speaker on first use. Later calls succeed when they
// ask for the same sample rate.
func openSpeaker(rate beep.SampleRate) error {
	device.mu.Lock()
	defer device.mu.Unlock()

	if device.open {
		if rate != device.rate {
			return fmt.Errorf("audio: speaker already open at %d Hz, cannot play at %d Hz", device.rate, rate)
		}
		return nil
	}
	if err := openDevice(rate); err != nil {
		return err
	}
	device.open = true
	device.rate = rate
	return nil
}

// Config holds audio settings.
type Config struct {
	SampleRate beep.SampleRate
	Volume     float64 // 0 mutes, 1 is unity gain
}

// DefaultConfig returns full volume at the default rate.
func DefaultConfig() Config {
	return Config{SampleRate: DefaultSampleRate, Volume: 1}
}

// Player turns gameplay events into sound effects. It is safe to call
// OnEvent from the game loop: effects are queued into a mixer that the
// speaker drains on its own goroutine, so nothing ever waits on audio.
type Player struct {
	mu       sync.Mutex
	cfg      Config
	mixer    *beep.Mixer
	speaking bool
	started  bool
}

// NewPlayer creates a silent player. Call Start to open the speaker.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Start opens the audio device, unless another Player already did, and
// begins playing the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := openSpeaker(p.cfg.SampleRate); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.speaking = true
	p.started = true
	return nil
}

// Close silences all queued effects.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.started = false
}

// SetVolume changes the volume of effects queued from now on.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Volume = v
}

// Subscribe registers the player for the events it has sounds for.
func (p *Player) Subscribe(d *event.Dispatcher) {
	for t := range sounds {
		d.Subscribe(t, p)
	}
}

// Unsubscribe stops listening to d, typically when its game is discarded.
func (p *Player) Unsubscribe(d *event.Dispatcher) {
	for t := range sounds {
		d.Unsubscribe(t, p)
	}
}

var sounds = map[event.EventType]func(beep.SampleRate) beep.Streamer{
	event.ShotFired:        Shot,
	event.EnemyDestroyed:   Explosion,
	event.ShieldHit:        Shield,
	event.PlayerDestroyed:  GameOver,
	event.PowerUpCollected: PowerUp,
	event.TripleShotGained: PowerUp,
}

// OnEvent queues the effect for e, if any.
func (p *Player) OnEvent(e event.Event) {
	gen, ok := sounds[e.Type]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.cfg.Volume <= 0 {
		return
	}

	s := newVolume(gen(p.cfg.SampleRate), p.cfg.Volume)
	p.lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	p.unlock()
}

// lock guards the mixer against the speaker goroutine.
func (p *Player) lock() {
	if p.speaking {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.speaking {
		speaker.Unlock()
	}
}

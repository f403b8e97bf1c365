package chime

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

const (
	SampleRate = beep.SampleRate(44100)
	RingSize   = 4096
)

// Tone is a short sine blip with an exponential decay.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// ShapeTones pitches each formation a major third apart.
var ShapeTones = map[swarm.Shape]Tone{
	swarm.ShapeCircle:   {Freq: 523.25, Duration: 180 * time.Millisecond, Volume: 0.3},
	swarm.ShapeSquare:   {Freq: 659.25, Duration: 180 * time.Millisecond, Volume: 0.3},
	swarm.ShapeTriangle: {Freq: 783.99, Duration: 180 * time.Millisecond, Volume: 0.3},
}

func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.Duration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			tsec := float64(pos) / float64(sr)
			env := math.Exp(-6 * float64(pos) / float64(total))
			v := t.Volume * env * math.Sin(2*math.Pi*t.Freq*tsec)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Player mixes tones into a single tapped output stream. Output is meant to
// be handed to the speaker once; Play can then be called from the game loop.
type Player struct {
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	tap   *Tap
	lock  sync.Locker
	sr    beep.SampleRate
}

// NewPlayer builds a player. lock must be the lock guarding the consumer
// of Output, e.g. the speaker's.
func NewPlayer(sr beep.SampleRate, lock sync.Locker, muted bool) *Player {
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer, Paused: muted}
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &Player{
		mixer: mixer,
		ctrl:  ctrl,
		tap:   NewTap(ctrl, RingSize),
		lock:  lock,
		sr:    sr,
	}
}

func (p *Player) Output() beep.Streamer { return p.tap }

func (p *Player) Muted() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.ctrl.Paused
}

// ToggleMute flips the mute state and returns the new one. Muting drops
// tones still playing.
func (p *Player) ToggleMute() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ctrl.Paused = !p.ctrl.Paused
	if p.ctrl.Paused {
		p.mixer.Clear()
	}
	return p.ctrl.Paused
}

// Play queues the tone for shape. It does nothing when muted.
func (p *Player) Play(shape swarm.Shape) {
	tone, ok := ShapeTones[shape]
	if !ok {
		return
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.ctrl.Paused {
		return
	}
	p.mixer.Add(tone.Streamer(p.sr))
}

// Level reports the loudness of roughly the last frame of audio.
func (p *Player) Level() float64 {
	return p.tap.Level(p.sr.N(time.Second / 60))
}

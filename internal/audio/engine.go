// Package audio turns simulation events into synthesized sound effects and plays a
// quiet background arpeggio while a session runs.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"orbit-defense/internal/config"
	"orbit-defense/internal/event"
	"orbit-defense/internal/utils"
)

const SampleRate = 44100

// Effects maps the events the engine listens to onto their sounds.
var Effects = map[event.EventType]Tone{
	event.Shoot:     {Wave: WaveSquare, FreqStart: 400, FreqEnd: 100, GainStart: 0.1, GainEnd: 0.01, Duration: 100 * time.Millisecond},
	event.Explosion: {Wave: WaveSaw, FreqStart: 100, FreqEnd: 10, GainStart: 0.2, GainEnd: 0.01, Duration: 300 * time.Millisecond},
	event.Hit:       {Wave: WaveTriangle, FreqStart: 200, FreqEnd: 200, GainStart: 0.05, GainEnd: 0.01, Duration: 50 * time.Millisecond},
	event.Build:     {Wave: WaveSine, FreqStart: 600, FreqEnd: 1200, GainStart: 0.1, GainEnd: 0.01, Duration: 100 * time.Millisecond},
	event.GameOver:  {Wave: WaveSaw, FreqStart: 300, FreqEnd: 50, GainStart: 0.2, GainEnd: 0, Duration: time.Second, Ramp: RampLinear},
}

// MusicNotes is the C major arpeggio the background loop cycles through.
var MusicNotes = []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63}

func musicTone(freq float64) Tone {
	return Tone{Wave: WaveSine, FreqStart: freq, FreqEnd: freq, GainStart: 0.02, GainEnd: 0.001, Duration: 500 * time.Millisecond}
}

// Output plays a buffer of 16-bit stereo PCM at SampleRate.
type Output interface {
	Play(pcm []byte)
}

// ebitenOutput plays through the process-wide ebiten audio context.
type ebitenOutput struct {
	ctx *audio.Context
}

func (o *ebitenOutput) Play(pcm []byte) {
	o.ctx.NewPlayerFromBytes(pcm).Play()
}

// NewEbitenOutput opens the ebiten audio context. Only one may exist per process.
func NewEbitenOutput() (o Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to open audio context: %v", r)
		}
	}()
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &ebitenOutput{ctx: ctx}, nil
}

// Engine renders each effect once and replays the cached PCM on every event.
type Engine struct {
	out       Output
	clock     utils.Clock
	effects   map[event.EventType][]byte
	notes     [][]byte
	noteIndex int
	lastNote  time.Time
	subs      []event.Subscription
}

// NewEngine renders every sound at the given master volume. A nil clock uses wall time.
func NewEngine(out Output, clock utils.Clock, volume float64) *Engine {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	e := &Engine{
		out:     out,
		clock:   clock,
		effects: make(map[event.EventType][]byte, len(Effects)),
	}
	rate := beep.SampleRate(SampleRate)
	for t, tone := range Effects {
		e.effects[t] = Render(withVolume(tone.Streamer(rate), volume))
	}
	for _, f := range MusicNotes {
		e.notes = append(e.notes, Render(withVolume(musicTone(f).Streamer(rate), volume)))
	}
	return e
}

var audible = []event.EventType{event.Shoot, event.Explosion, event.Hit, event.Build, event.GameOver}

// Attach subscribes the engine to every event it has a sound for.
func (e *Engine) Attach(d *event.Dispatcher) {
	e.subs = d.SubscribeAll(e, audible...)
}

// Detach undoes Attach.
func (e *Engine) Detach(d *event.Dispatcher) {
	for i, sub := range e.subs {
		d.Unsubscribe(audible[i], sub)
	}
	e.subs = nil
}

func (e *Engine) OnEvent(ev event.Event) {
	pcm, ok := e.effects[ev.Type]
	if !ok {
		return
	}
	e.out.Play(pcm)
}

// Update plays the next background note when one is due. Music only plays while the
// session is active, so it stops on game over.
func (e *Engine) Update(sessionActive bool) {
	if !sessionActive {
		return
	}
	now := e.clock.Now()
	if !e.lastNote.IsZero() && now.Sub(e.lastNote) < config.MusicNoteGap {
		return
	}
	e.lastNote = now
	e.out.Play(e.notes[e.noteIndex%len(e.notes)])
	e.noteIndex++
}

// Effect returns the rendered PCM for an event type.
func (e *Engine) Effect(t event.EventType) []byte {
	return e.effects[t]
}

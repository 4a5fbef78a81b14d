package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform is an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Ramp selects how a parameter travels from its start to its end value.
type Ramp int

const (
	RampExponential Ramp = iota
	RampLinear
)

// Tone is a single oscillator with a pitch sweep and a gain envelope.
type Tone struct {
	Wave      Waveform
	FreqStart float64
	FreqEnd   float64
	GainStart float64
	GainEnd   float64
	Duration  time.Duration
	Ramp      Ramp
}

// tone streams a Tone sample by sample.
type tone struct {
	t        Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// Streamer returns a beep streamer that plays t once.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &tone{t: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.t.ramp(s.t.FreqStart, s.t.FreqEnd, progress)
		gain := s.t.ramp(s.t.GainStart, s.t.GainEnd, progress)

		val := oscillate(s.t.Wave, s.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *tone) Err() error { return nil }

func (t Tone) ramp(from, to, progress float64) float64 {
	// Exponential ramps cannot reach or cross zero.
	if t.Ramp == RampLinear || from <= 0 || to <= 0 {
		return from + (to-from)*progress
	}
	return from * math.Pow(to/from, progress)
}

func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// withVolume scales a streamer by a linear factor.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Render drains s into signed 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = max(-1, min(1, v))
	return int16(v * math.MaxInt16)
}

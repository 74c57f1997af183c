// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма сигнала осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite oscillator. freqEnd != freq gives a linear glide.
type tone struct {
	freq, freqEnd float64
	wave          Wave
	phase         float64
	pos, length   int
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewTone returns a streamer that plays wave for d, gliding from freq to freqEnd.
func NewTone(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		freqEnd: freqEnd,
		wave:    wave,
		length:  rate.N(d),
		rate:    rate,
		rng:     rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		progress := float64(t.pos) / float64(t.length)
		freq := t.freq + (t.freqEnd-t.freq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade shapes a finite streamer with a linear attack and release.
type fade struct {
	s               beep.Streamer
	pos, total      int
	attack, release int
}

func newFade(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, total: rate.N(total), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			vol = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// withVolume scales s linearly; vol <= 0 is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newFade(NewTone(freq, freqEnd, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Synth builds the streamer for cue at the given rate and linear volume.
func Synth(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueBind:
		s = beep.Seq(
			shaped(330, 330, 80*time.Millisecond, WaveSine, rate),
			shaped(495, 495, 120*time.Millisecond, WaveSine, rate),
		)
	case CueUnbind:
		s = shaped(495, 220, 180*time.Millisecond, WaveSine, rate)
	case CuePower:
		s = beep.Mix(
			withVolume(shaped(140, 60, 400*time.Millisecond, WaveSaw, rate), 0.6),
			withVolume(shaped(0, 0, 400*time.Millisecond, WaveNoise, rate), 0.3),
		)
	case CueAnchor:
		s = shaped(90, 180, 300*time.Millisecond, WaveSquare, rate)
	case CueScare:
		s = shaped(660, 520, 90*time.Millisecond, WaveSine, rate)
	case CueFlee:
		s = shaped(900, 1400, 350*time.Millisecond, WaveSaw, rate)
	case CueHaunt:
		s = withVolume(shaped(0, 0, 250*time.Millisecond, WaveNoise, rate), 0.5)
	case CuePickup:
		s = beep.Mix(
			withVolume(shaped(880, 880, 200*time.Millisecond, WaveSine, rate), 0.7),
			withVolume(shaped(1760, 1760, 120*time.Millisecond, WaveSine, rate), 0.3),
		)
	case CueObjective:
		s = beep.Seq(
			shaped(523, 523, 100*time.Millisecond, WaveSine, rate),
			shaped(659, 659, 100*time.Millisecond, WaveSine, rate),
			shaped(784, 784, 200*time.Millisecond, WaveSine, rate),
		)
	case CueMissionComplete:
		s = beep.Seq(
			shaped(392, 392, 150*time.Millisecond, WaveSquare, rate),
			shaped(523, 523, 150*time.Millisecond, WaveSquare, rate),
			shaped(784, 784, 400*time.Millisecond, WaveSquare, rate),
		)
	case CueMissionFailed:
		s = shaped(220, 110, 600*time.Millisecond, WaveSaw, rate)
	default:
		return nil
	}
	return withVolume(s, volume)
}

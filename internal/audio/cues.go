// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/event"
)

// Cue — звуковой сигнал игрового события
type Cue int

const (
	CueBind Cue = iota
	CueUnbind
	CuePower
	CueAnchor
	CueScare
	CueFlee
	CueHaunt
	CuePickup
	CueObjective
	CueMissionComplete
	CueMissionFailed
)

// DefaultSampleRate is used when the device is opened by the game binary.
const DefaultSampleRate = beep.SampleRate(44100)

// Минимальный интервал между одинаковыми сигналами: полтергейст пугает пачками.
const repeatGap = 120 * time.Millisecond

// CueFor maps a game event to its sound. Events without a sound return false.
func CueFor(e event.Event) (Cue, bool) {
	switch data := e.Data.(type) {
	case event.GhostBound:
		return CueBind, true
	case event.GhostUnbound:
		return CueUnbind, true
	case event.PowerActivated:
		return CuePower, true
	case event.AnchorTriggered:
		return CueAnchor, true
	case event.MortalFeared:
		return CueScare, data.Amount > 0
	case event.MortalFled:
		return CueFlee, true
	case event.HauntStarted:
		return CueHaunt, true
	case event.PlasmCollected:
		return CuePickup, true
	case event.ObjectiveCompleted:
		return CueObjective, true
	case event.MissionComplete:
		return CueMissionComplete, true
	case event.MissionFailed:
		return CueMissionFailed, true
	}
	return 0, false
}

// Output plays finished streamers, normally the speaker mixer.
type Output interface {
	Play(s beep.Streamer)
}

// Sink turns game events into sounds on an Output.
type Sink struct {
	out    Output
	rate   beep.SampleRate
	volume float64
	now    func() time.Time
	last   map[Cue]time.Time
}

func NewSink(out Output, rate beep.SampleRate, volume float64) *Sink {
	return &Sink{
		out:    out,
		rate:   rate,
		volume: volume,
		now:    time.Now,
		last:   make(map[Cue]time.Time),
	}
}

// Attach subscribes the sink to every event type of d.
func (s *Sink) Attach(d *event.Dispatcher) {
	d.SubscribeAll(s)
}

// OnEvent реализует интерфейс event.Listener.
func (s *Sink) OnEvent(e event.Event) {
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	now := s.now()
	if last, played := s.last[cue]; played && now.Sub(last) < repeatGap {
		return
	}
	s.last[cue] = now

	streamer := Synth(cue, s.rate, s.volume)
	if streamer == nil {
		return
	}
	log.Trace().Str("event", e.Type.String()).Int("cue", int(cue)).Msg("sound cue")
	s.out.Play(streamer)
}

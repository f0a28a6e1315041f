package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sounder plays the cues for reach and bingo.
type Sounder interface {
	Reach()
	Bingo()
	Close()
}

// Silent is a Sounder that plays nothing.
type Silent struct{}

func (Silent) Reach() {}
func (Silent) Bingo() {}
func (Silent) Close() {}

// Speaker plays sine-tone cues on the default audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker opens the audio device. Callers fall back to Silent on error.
func NewSpeaker() (*Speaker, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{rate: rate}, nil
}

func (s *Speaker) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return beep.Silence(0)
	}
	return beep.Take(s.rate.N(d), sine)
}

func (s *Speaker) Reach() {
	speaker.Play(s.tone(660, 120*time.Millisecond))
}

// Bingo plays a rising C-E-G arpeggio.
func (s *Speaker) Bingo() {
	speaker.Play(beep.Seq(
		s.tone(523.25, 120*time.Millisecond),
		s.tone(659.25, 120*time.Millisecond),
		s.tone(783.99, 240*time.Millisecond),
	))
}

func (s *Speaker) Close() { speaker.Close() }

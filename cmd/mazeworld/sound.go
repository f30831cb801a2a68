package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays short sine tones on game events.
type chime struct{}

func newChime() (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chime{}, nil
}

func (c *chime) tone(freq float64, d time.Duration) {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// built sounds when construction finishes.
func (c *chime) built() { c.tone(440, 80*time.Millisecond) }

// found sounds when the exit is reached.
func (c *chime) found() { c.tone(880, 120*time.Millisecond) }

func (c *chime) close() {
	if c != nil {
		speaker.Close()
	}
}

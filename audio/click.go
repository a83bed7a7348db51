package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 40 * time.Millisecond

	// Distinct pitches so up and down are tellable by ear
	incrementHz = 880
	decrementHz = 440
)

// Clicker plays a short tone per counter change, like a mechanical
// tally clicker.
type Clicker struct {
	enabled bool
}

// NewClicker initializes the speaker. On error the clicker is still
// usable and stays silent; the tool runs fine without sound.
func NewClicker() (*Clicker, error) {
	c := &Clicker{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled = true
	return c, nil
}

// Increment plays the up tone.
func (c *Clicker) Increment() { c.play(incrementHz) }

// Decrement plays the down tone.
func (c *Clicker) Decrement() { c.play(decrementHz) }

func (c *Clicker) play(freq float64) {
	if !c.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), tone))
}

// Close shuts the speaker down. Safe on a silent clicker.
func (c *Clicker) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}

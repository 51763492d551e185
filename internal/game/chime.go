package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFrequency  = 880
	chimeLength     = 180 * time.Millisecond
)

// toneStreamer is a beep.Streamer producing a sine tone that fades out
// linearly over its length.
type toneStreamer struct {
	freq   float64
	rate   beep.SampleRate
	pos    int
	length int
}

func newToneStreamer(freq float64, rate beep.SampleRate, d time.Duration) *toneStreamer {
	return &toneStreamer{
		freq:   freq,
		rate:   rate,
		length: rate.N(d),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		envelope := 1 - float64(t.pos)/float64(t.length)
		v := envelope * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error { return nil }

// chime plays a short tone when a reveal run completes. A disabled chime is a
// no-op.
type chime struct {
	volume float64
	ready  bool
}

func newChime(enabled bool, volume float64) (*chime, error) {
	c := &chime{volume: volume}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return c, nil
}

func (c *chime) play() {
	if !c.ready {
		return
	}
	tone := &effects.Volume{
		Streamer: newToneStreamer(chimeFrequency, chimeSampleRate, chimeLength),
		Base:     2,
		Volume:   c.volume,
	}
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		log.Println("chime played")
	})))
}

package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"retry-snake/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short sound effect
type Cue int

const (
	CueEat Cue = iota
	CueCrash
	CueGameOver
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue][]tone{
	CueEat:      {{freq: 880, duration: 50 * time.Millisecond}},
	CueCrash:    {{freq: 220, duration: 150 * time.Millisecond}},
	CueGameOver: {{freq: 440, duration: 150 * time.Millisecond}, {freq: 330, duration: 150 * time.Millisecond}, {freq: 220, duration: 300 * time.Millisecond}},
}

// AudioCues turns status changes into sounds. It implements manager.StatusSink.
type AudioCues struct {
	mu           sync.Mutex
	lastScore    int
	lastFailures int
	play         func(Cue)
}

// NewAudioCues opens the speaker. The caller keeps running without sound
// when it fails.
func NewAudioCues() (*AudioCues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &AudioCues{play: playCue}, nil
}

func (a *AudioCues) Status(st manager.Status) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case st.State == manager.Ended && st.Failures > a.lastFailures:
		a.play(CueGameOver)
	case st.Failures > a.lastFailures:
		a.play(CueCrash)
	case st.Score > a.lastScore:
		a.play(CueEat)
	}

	a.lastScore = st.Score
	a.lastFailures = st.Failures
}

func (a *AudioCues) Close() {
	speaker.Close()
}

func playCue(cue Cue) {
	var parts []beep.Streamer
	for _, t := range cueTones[cue] {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}

	// Keep the sine waves well below clipping
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	})
}

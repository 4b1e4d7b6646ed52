package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	clickTime  = 60 * time.Millisecond
	volume     = 0.25
)

// Player gives audible feedback for taps
type Player interface {
	Click(j game.Judgement)
	Close()
}

// Nop is used when muted or when no audio device is available
type Nop struct{}

func (Nop) Click(game.Judgement) {}
func (Nop) Close()               {}

var clickFrequencies = map[game.Judgement]float64{
	game.Perfect: 880,
	game.Good:    660,
	game.Okay:    523.25,
	game.Miss:    196,
}

type DefaultPlayer struct{}

// NewDefaultPlayer opens the speaker
func NewDefaultPlayer() (*DefaultPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &DefaultPlayer{}, nil
}

func (p *DefaultPlayer) Click(j game.Judgement) {
	speaker.Play(Tone(SampleRate, clickFrequencies[j], clickTime))
}

func (p *DefaultPlayer) Close() {
	speaker.Clear()
}

// Tone is a sine wave with a linear fade out, so clicks do not pop
func Tone(sr beep.SampleRate, frequency float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			fade := 1 - float64(pos)/float64(total)
			if fade < 0 {
				fade = 0
			}
			v := volume * fade * math.Sin(2*math.Pi*frequency*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}

package pattern

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
)

const (
	// Duration is the length of a session in seconds
	Duration = 30

	baseNotes     = 60
	extraNotes    = 20
	leadIn        = 2.0
	tailOut       = 6
	jitter        = 1.5
	earliest      = 1.0
	burstChance   = 0.2
	burstSpacing  = 0.15
	burstLength   = 2
	burstHeadroom = 3
)

// Generate builds the note chart for a date. The same date and frequency always
// produce identical notes, ids included.
func Generate(date time.Time, frequency float64) *game.Chart {
	seed := Seed(date)
	r := NewRandom(seed)

	base := int(math.Floor(baseNotes * frequency))
	count := base + int(math.Floor(r.Float64()*extraNotes))
	if count < 1 {
		count = 1
	}

	notes := make([]*game.Note, 0, count)
	for i := 0; i < count; i++ {
		slot := leadIn + float64(i*(Duration-tailOut))/float64(count)
		t := math.Max(earliest, slot+(r.Float64()-0.5)*jitter)
		lane := int(math.Floor(r.Float64() * game.Lanes))

		notes = append(notes, &game.Note{Lane: lane, Time: t, Kind: game.KindTap})

		// The burst draw happens for every note, even when there is no room for one
		if r.Float64() < burstChance && i < count-burstHeadroom {
			for j := 1; j <= burstLength; j++ {
				notes = append(notes, &game.Note{
					Lane: (lane + j) % game.Lanes,
					Time: t + float64(j)*burstSpacing,
					Kind: game.KindTap,
				})
			}
			i += burstLength
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	for i, n := range notes {
		n.ID = i
	}

	log.Printf("generated %v notes for seed %v (frequency %v, base count %v, count %v)\n", len(notes), seed, frequency, base, count)

	return &game.Chart{
		Seed:      seed,
		Date:      date,
		Frequency: frequency,
		Notes:     notes,
	}
}

// Daily generates the chart for the calendar day now falls on in loc
func Daily(now time.Time, loc *time.Location, frequency float64) *game.Chart {
	return Generate(Today(now, loc), frequency)
}

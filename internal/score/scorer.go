package score

import (
	"database/sql"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
)

type Scorer interface {
	Init(db *sql.DB) error

	// Save the taps of this performance
	Save(chart *game.Chart, inputs []game.Input) error

	// Load up previous performances of the chart
	Load(chart *game.Chart) []History

	Score(chart *game.Chart, history *History) game.Buckets
	ApplyInputToChart(chart *game.Chart, input *game.Input, onHit func(note *game.Note, judgement game.Judgement, distance float64)) (*game.Note, game.Judgement, float64)

	Offset(note *game.Note, elapsed float64) float64
}

type History struct {
	ID     int64
	Sum    string
	Inputs []game.Input
}

// Positioned is a live note and where it currently is in the field
type Positioned struct {
	Note   *game.Note
	Offset float64
}

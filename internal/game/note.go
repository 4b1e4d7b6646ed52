package game

type Kind string

const KindTap Kind = "tap"

// Lanes is the number of parallel tracks notes fall through
const Lanes = 4

type Note struct {
	ID   int     `json:"id"`
	Lane int     `json:"lane"` // The track, 0 to Lanes-1
	Time float64 `json:"time"` // Seconds into the session the note is scheduled for
	Kind Kind    `json:"kind"`

	// This is state
	Hit bool `json:"hit"` // Only ever goes from false to true
}

// MarkHit reports whether the note changed, a hit note stays hit
func (note *Note) MarkHit() bool {
	if note.Hit {
		return false
	}
	note.Hit = true
	return true
}

// Input is a single lane press, Time is elapsed session seconds
type Input struct {
	Lane int     `json:"lane"`
	Time float64 `json:"time"`
}

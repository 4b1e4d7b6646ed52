package game

import "time"

type Chart struct {
	Seed      int
	Date      time.Time
	Frequency float64
	Notes     []*Note
}

func (c *Chart) NoteCount() int {
	return len(c.Notes)
}

// Reset clears the hit state of every note so the chart can be played again
func (c *Chart) Reset() {
	for _, n := range c.Notes {
		n.Hit = false
	}
}

// Lane returns the notes in one lane, in time order
func (c *Chart) Lane(lane int) []*Note {
	notes := []*Note{}
	for _, n := range c.Notes {
		if n.Lane == lane {
			notes = append(notes, n)
		}
	}
	return notes
}

// Copy returns a chart with its own notes, so it can be mutated independently
func (c *Chart) Copy() *Chart {
	nn := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		nnn := *n
		nn[i] = &nnn
	}
	return &Chart{
		Seed:      c.Seed,
		Date:      c.Date,
		Frequency: c.Frequency,
		Notes:     nn,
	}
}

package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
)

type DefaultScorer struct {
	Field Field

	db *sql.DB
}

type InputsCompact struct {
	Lane  int
	Times []float64
}

func compactInputs(inputs []game.Input) []InputsCompact {
	laneCount := 0
	for _, i := range inputs {
		if i.Lane+1 > laneCount {
			laneCount = i.Lane + 1
		}
	}
	ins := make([]InputsCompact, laneCount)
	for i := range ins {
		ins[i].Lane = i
		ins[i].Times = []float64{}
	}
	for _, i := range inputs {
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
	}
	return ins
}

// uncompactInputs restores the taps ordered by time, lane order breaks ties
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t})
		}
	}
	sortInputs(ins)
	return ins
}

func sortInputs(ins []game.Input) {
	// Insertion sort keeps equal times in lane order
	for i := 1; i < len(ins); i++ {
		for j := i; j > 0 && ins[j].Time < ins[j-1].Time; j-- {
			ins[j], ins[j-1] = ins[j-1], ins[j]
		}
	}
}

func (s *DefaultScorer) Init(db *sql.DB) error {
	initStatement := `
	create table if not exists scores 
	  (
		  id integer not null primary key, 
		  sum text,
		  seed integer,
		  frequency real,
		  inputs blob
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

// hashChart keys histories on the exact notes of a chart
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%s", c.Seed, strconv.FormatFloat(c.Frequency, 'g', -1, 64))
	for _, n := range c.Notes {
		fmt.Fprintf(h, ";%d@%s", n.Lane, strconv.FormatFloat(n.Time, 'g', -1, 64))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, inputs []game.Input) error {
	if nil == s.db {
		return nil
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	_, err = s.db.Exec("insert into scores(sum, seed, frequency, inputs) values(?, ?, ?, ?)", s.hashChart(c), c.Seed, c.Frequency, data)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	histories := []History{}
	if nil == s.db {
		return histories
	}
	rows, err := s.db.Query("select id, sum, inputs from scores where sum = ? order by id", s.hashChart(c))
	if nil != err {
		log.Println("unable to load scores", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var sum string
		var data []byte
		if err := rows.Scan(&id, &sum, &data); nil != err {
			log.Println("unable to scan score row", err)
			continue
		}
		var ns []InputsCompact
		if err := json.Unmarshal(data, &ns); nil != err {
			log.Println("unable to unmarshal input history", err)
			continue
		}
		histories = append(histories, History{
			ID:     id,
			Sum:    sum,
			Inputs: uncompactInputs(ns),
		})
	}
	return histories
}

// Offset is how far a note has travelled down its lane at the given elapsed time
func (s *DefaultScorer) Offset(n *game.Note, elapsed float64) float64 {
	return (elapsed - n.Time) * s.Field.Speed
}

// Live notes can still be seen and tapped. A note that leaves the field unhit is
// simply dropped, it is not counted as a miss.
func (s *DefaultScorer) Live(n *game.Note, elapsed float64) bool {
	return !n.Hit && s.Offset(n, elapsed) < s.Field.Length+s.Field.Margin
}

// LiveNotes returns the notes a presenter should draw, those inside the field
func (s *DefaultScorer) LiveNotes(chart *game.Chart, elapsed float64) []Positioned {
	live := []Positioned{}
	for _, n := range chart.Notes {
		if !s.Live(n, elapsed) {
			continue
		}
		o := s.Offset(n, elapsed)
		if o < 0 {
			// Notes are sorted, everything after this has not entered yet
			break
		}
		live = append(live, Positioned{Note: n, Offset: o})
	}
	return live
}

func (s *DefaultScorer) ApplyHistoryToChart(ch *game.Chart, history *History) (*game.Chart, game.Buckets) {
	chart := ch.Copy()
	chart.Reset()
	var buckets game.Buckets
	for _, input := range history.Inputs {
		in := input
		s.ApplyInputToChart(chart, &in, func(note *game.Note, judgement game.Judgement, distance float64) {
			buckets.Add(judgement)
		})
	}
	return chart, buckets
}

// ApplyInputToChart resolves a tap against the closest live note in its lane.
// With no candidate, or a candidate outside every window, the result is a Miss
// and nothing is mutated. onHit only runs for Perfect, Good and Okay.
func (s *DefaultScorer) ApplyInputToChart(chart *game.Chart, input *game.Input, onHit func(note *game.Note, judgement game.Judgement, distance float64)) (*game.Note, game.Judgement, float64) {
	var closestNote *game.Note
	distance := math.Inf(1)

	for _, note := range chart.Notes {
		if note.Lane != input.Lane || !s.Live(note, input.Time) {
			continue
		}
		d := math.Abs(s.Offset(note, input.Time) - s.Field.TapLine)
		if d < distance {
			distance = d
			closestNote = note
		}
	}

	if nil == closestNote {
		return nil, game.Miss, distance
	}

	judgement := game.Judge(distance)
	if judgement == game.Miss {
		return closestNote, judgement, distance
	}

	closestNote.MarkHit()
	if nil != onHit {
		onHit(closestNote, judgement, distance)
	}
	return closestNote, judgement, distance
}

// Score replays a stored performance against a fresh copy of the chart
func (s *DefaultScorer) Score(chart *game.Chart, history *History) game.Buckets {
	_, buckets := s.ApplyHistoryToChart(chart, history)
	return buckets
}

package score

import (
	"testing"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/testdata"
)

func newScorer() *DefaultScorer {
	return &DefaultScorer{Field: DefaultField()}
}

func chart(t *testing.T) *game.Chart {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal("unable to parse chart", err)
	}
	return chart
}

// at returns the elapsed time at which the note is the given distance past the tap line
func at(s *DefaultScorer, noteTime, distance float64) float64 {
	return s.Field.DueAt(noteTime) + distance/s.Field.Speed
}

func TestOffset(t *testing.T) {
	s := newScorer()
	n := &game.Note{Time: 2}
	if o := s.Offset(n, 3); o != 450 {
		t.Fatalf("offset = %v, expected 450", o)
	}
	if o := s.Offset(n, 1); o != -450 {
		t.Fatalf("offset = %v, expected -450", o)
	}
	if !s.Live(n, 2.9) {
		t.Fatal("note inside the field should be live")
	}
	if s.Live(n, 3) {
		t.Fatal("note past length plus margin should not be live")
	}
	n.Hit = true
	if s.Live(n, 2.5) {
		t.Fatal("hit note should not be live")
	}
}

func TestTapWithNoCandidate(t *testing.T) {
	s := newScorer()
	c := chart(t)
	input := game.Input{Lane: 2, Time: 2.5}
	called := false
	note, judgement, _ := s.ApplyInputToChart(c, &input, func(*game.Note, game.Judgement, float64) { called = true })
	if nil != note || judgement != game.Miss || called {
		t.Fatalf("expected a miss with no note, got %v %v %v", note, judgement, called)
	}
	for _, n := range c.Notes {
		if n.Hit {
			t.Fatalf("note %v was mutated", n.ID)
		}
	}
}

var distanceTests = []struct {
	distance  float64
	judgement game.Judgement
	hit       bool
}{
	{0, game.Perfect, true},
	{10, game.Perfect, true},
	{-10, game.Perfect, true},
	{20, game.Good, true},
	{-30, game.Okay, true},
	{40, game.Miss, false},
	{-40, game.Miss, false},
}

func TestTapDistance(t *testing.T) {
	s := newScorer()
	for _, test := range distanceTests {
		c := chart(t)
		target := c.Notes[4] // alone in lane 3
		input := game.Input{Lane: 3, Time: at(s, target.Time, test.distance)}
		var hitJudgement game.Judgement = -1
		note, judgement, distance := s.ApplyInputToChart(c, &input, func(n *game.Note, j game.Judgement, d float64) {
			hitJudgement = j
		})
		if note != target {
			t.Fatalf("distance %v: resolved against %v", test.distance, note)
		}
		if judgement != test.judgement {
			t.Errorf("distance %v (measured %v): judged %v, expected %v", test.distance, distance, judgement, test.judgement)
		}
		if target.Hit != test.hit {
			t.Errorf("distance %v: hit = %v, expected %v", test.distance, target.Hit, test.hit)
		}
		if test.hit && hitJudgement != test.judgement {
			t.Errorf("distance %v: onHit got %v", test.distance, hitJudgement)
		}
		if !test.hit && hitJudgement != -1 {
			t.Errorf("distance %v: onHit called for a miss", test.distance)
		}
	}
}

func TestMissedNoteCanStillBeHit(t *testing.T) {
	s := newScorer()
	c := chart(t)
	target := c.Notes[4] // alone in lane 3

	early := game.Input{Lane: 3, Time: at(s, target.Time, -40)}
	note, judgement, _ := s.ApplyInputToChart(c, &early, nil)
	if note != target || judgement != game.Miss {
		t.Fatalf("early tap resolved to %v judged %v", note, judgement)
	}
	if target.Hit {
		t.Fatal("a miss marked the note hit")
	}

	hits := 0
	closer := game.Input{Lane: 3, Time: at(s, target.Time, 10)}
	note, judgement, _ = s.ApplyInputToChart(c, &closer, func(n *game.Note, j game.Judgement, d float64) {
		hits++
	})
	if note != target || judgement != game.Perfect {
		t.Fatalf("closer tap resolved to %v judged %v", note, judgement)
	}
	if !target.Hit || hits != 1 {
		t.Fatalf("hit = %v after %v onHit calls", target.Hit, hits)
	}
}

func TestTapPicksClosest(t *testing.T) {
	s := newScorer()
	c := chart(t)
	input := game.Input{Lane: 1, Time: s.Field.DueAt(2.1)}

	note, judgement, _ := s.ApplyInputToChart(c, &input, nil)
	if nil == note || note.ID != 3 || judgement != game.Perfect {
		t.Fatalf("expected perfect on note 3, got %v %v", note, judgement)
	}

	// Note 3 is hit and ignored, note 2 is 45 units past the line
	note, judgement, distance := s.ApplyInputToChart(c, &input, nil)
	if nil == note || note.ID != 2 || judgement != game.Miss {
		t.Fatalf("expected miss on note 2, got %v %v (%v)", note, judgement, distance)
	}
	if c.Notes[2].Hit {
		t.Fatal("a miss must not mark the note hit")
	}
}

func TestHitIsIdempotent(t *testing.T) {
	s := newScorer()
	c := chart(t)
	input := game.Input{Lane: 3, Time: s.Field.DueAt(3)}
	hits := 0
	onHit := func(*game.Note, game.Judgement, float64) { hits++ }
	s.ApplyInputToChart(c, &input, onHit)
	note, judgement, _ := s.ApplyInputToChart(c, &input, onHit)
	if hits != 1 {
		t.Fatalf("note judged %v times", hits)
	}
	if nil != note || judgement != game.Miss {
		t.Fatalf("second tap should find nothing, got %v %v", note, judgement)
	}
}

func TestLiveNotes(t *testing.T) {
	s := newScorer()
	c := chart(t)
	live := s.LiveNotes(c, 2.4)
	ids := []int{}
	for _, p := range live {
		ids = append(ids, p.Note.ID)
		if p.Offset < 0 || p.Offset >= s.Field.Length+s.Field.Margin {
			t.Errorf("note %v offset %v outside the field", p.Note.ID, p.Offset)
		}
	}
	// note 0 has left, notes 4 and 5 have not entered
	expected := []int{1, 2, 3}
	if len(ids) != len(expected) {
		t.Fatalf("live = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("live = %v, expected %v", ids, expected)
		}
	}
}

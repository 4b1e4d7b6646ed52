package session

import (
	"log"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/clock"
	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/pattern"
	"github.com/Derek-Wen/daily-rhythm/internal/score"
	"github.com/Derek-Wen/daily-rhythm/internal/store"
)

type State int

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

const dateLayout = "2006-01-02"

// Tap is the outcome of one lane press, Note is nil when nothing was in reach
type Tap struct {
	Lane      int
	Judgement game.Judgement
	Note      *game.Note
	Distance  float64
}

type Options struct {
	Scorer   *score.DefaultScorer
	Store    store.Store
	Messages *MessagePicker
	Generate func() *game.Chart
	Duration float64

	// CountMisses records every Miss tap in the miss bucket. Off, a Miss is only feedback.
	CountMisses bool

	OnFinish func(Result)
}

// Controller owns one player's session. All methods must be called from the same
// goroutine, the host loop that also renders.
type Controller struct {
	scorer      *score.DefaultScorer
	store       store.Store
	messages    *MessagePicker
	generate    func() *game.Chart
	countMisses bool
	onFinish    func(Result)

	state   State
	chart   *game.Chart
	clock   *clock.Driver
	buckets game.Buckets
	inputs  []game.Input
	result  *Result
	streak  int
}

func New(o Options) *Controller {
	if nil == o.Store {
		o.Store = store.NewMemory()
	}
	if nil == o.Scorer {
		o.Scorer = &score.DefaultScorer{Field: score.DefaultField()}
	}
	if nil == o.Messages {
		o.Messages = NewMessagePicker(DefaultBank, o.Store)
	}
	if o.Duration <= 0 {
		o.Duration = pattern.Duration
	}
	if nil == o.Generate {
		o.Generate = func() *game.Chart {
			loc, err := pattern.Location(pattern.ReferenceZone)
			if nil != err {
				log.Println(err)
			}
			return pattern.Daily(time.Now(), loc, game.DefaultFrequency)
		}
	}
	c := &Controller{
		scorer:      o.Scorer,
		store:       o.Store,
		messages:    o.Messages,
		generate:    o.Generate,
		countMisses: o.CountMisses,
		onFinish:    o.OnFinish,
		streak:      store.Int(o.Store, store.KeyStreak, 0),
	}
	c.clock = clock.NewDriver(o.Duration, c.finish)
	c.chart = c.generate()
	return c
}

// Start begins a session on the current chart with every note unhit
func (c *Controller) Start() {
	if c.state == Running {
		return
	}
	c.chart.Reset()
	c.buckets = game.Buckets{}
	c.inputs = []game.Input{}
	c.result = nil
	c.state = Running
	c.clock.Start()
}

// Advance moves the session forward by dt seconds
func (c *Controller) Advance(dt float64) {
	if c.state != Running {
		return
	}
	c.clock.Advance(dt)
}

// Tap resolves a press in a lane at the current game time. Outside a running
// session it does nothing and reports false.
func (c *Controller) Tap(lane int) (Tap, bool) {
	if c.state != Running || lane < 0 || lane >= game.Lanes {
		return Tap{}, false
	}
	input := game.Input{Lane: lane, Time: c.clock.Elapsed()}
	c.inputs = append(c.inputs, input)

	note, judgement, distance := c.scorer.ApplyInputToChart(c.chart, &input, func(note *game.Note, judgement game.Judgement, distance float64) {
		c.buckets.Add(judgement)
	})
	if judgement == game.Miss && c.countMisses {
		c.buckets.Add(game.Miss)
	}
	return Tap{Lane: lane, Judgement: judgement, Note: note, Distance: distance}, true
}

func (c *Controller) finish() {
	snapshot := c.buckets
	r := NewResult(snapshot, c.chart.NoteCount())
	r.MessageIndex, r.Message = c.messages.Pick()

	if r.Win {
		c.streak++
		if err := store.SetInt(c.store, store.KeyStreak, c.streak); nil != err {
			log.Println("unable to save streak", err)
		}
		if err := c.store.Set(store.KeyLastWin, c.chart.Date.Format(dateLayout)); nil != err {
			log.Println("unable to save last win", err)
		}
	}
	r.Streak = c.streak

	if err := c.scorer.Save(c.chart, c.inputs); nil != err {
		log.Println(err)
	}

	log.Printf("session finished: %+v score %v/%v accuracy %.2f%% hit rate %.2f%% win %v\n",
		snapshot, r.Score, r.MaxScore, r.Accuracy, r.HitRate, r.Win)

	c.result = &r
	c.state = Finished
	if nil != c.onFinish {
		c.onFinish(r)
	}
}

// Reset abandons or clears the session and regenerates the chart
func (c *Controller) Reset() {
	c.clock.Reset()
	c.buckets = game.Buckets{}
	c.inputs = []game.Input{}
	c.result = nil
	c.chart = c.generate()
	c.state = Idle
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Chart() *game.Chart {
	return c.chart
}

func (c *Controller) Buckets() game.Buckets {
	return c.buckets
}

func (c *Controller) Inputs() []game.Input {
	return c.inputs
}

func (c *Controller) Elapsed() float64 {
	return c.clock.Elapsed()
}

func (c *Controller) Progress() float64 {
	return c.clock.Progress()
}

func (c *Controller) Remaining() float64 {
	return c.clock.Remaining()
}

// Result is nil until the session finishes
func (c *Controller) Result() *Result {
	return c.result
}

func (c *Controller) Streak() int {
	return c.streak
}

func (c *Controller) Field() score.Field {
	return c.scorer.Field
}

// Live returns the notes inside the field at the current game time
func (c *Controller) Live() []score.Positioned {
	return c.scorer.LiveNotes(c.chart, c.clock.Elapsed())
}

// WonToday reports whether a win was already recorded for the chart's date
func (c *Controller) WonToday() bool {
	v, ok, err := c.store.Get(store.KeyLastWin)
	if nil != err || !ok {
		return false
	}
	return v == c.chart.Date.Format(dateLayout)
}

// Message returns a message to show outside of a finished session
func (c *Controller) Message() string {
	return c.messages.Any()
}

// Best replays the stored performances of the current chart and returns the highest score
func (c *Controller) Best() (Result, bool) {
	var best Result
	found := false
	for _, h := range c.scorer.Load(c.chart) {
		history := h
		r := NewResult(c.scorer.Score(c.chart, &history), c.chart.NoteCount())
		if !found || r.Score > best.Score {
			best = r
			found = true
		}
	}
	return best, found
}

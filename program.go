package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/audio"
	"github.com/Derek-Wen/daily-rhythm/internal/clock"
	"github.com/Derek-Wen/daily-rhythm/internal/config"
	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/input"
	"github.com/Derek-Wen/daily-rhythm/internal/pattern"
	"github.com/Derek-Wen/daily-rhythm/internal/render"
	"github.com/Derek-Wen/daily-rhythm/internal/score"
	"github.com/Derek-Wen/daily-rhythm/internal/session"
	"github.com/Derek-Wen/daily-rhythm/internal/store"
	"github.com/Derek-Wen/daily-rhythm/internal/theme"
	"github.com/Derek-Wen/daily-rhythm/internal/weather"
)

const (
	feedbackFrames = 24
	pressFrames    = 6
	columnSpacing  = 6
	fieldTop       = 4
)

var progressColor = color.RGBA{236, 72, 153, 255}

type Program struct {
	Config   *config.Config
	Scorer   *score.DefaultScorer
	Store    *store.SQLite
	Theme    theme.Theme
	Renderer render.Renderer
	Audio    audio.Player

	Controller *session.Controller

	location *time.Location
	day      time.Time
	now      func() time.Time

	weather  *weather.Reading
	forecast <-chan weather.Reading

	showHelp bool
	greeting string
	pressed  [game.Lanes]int
	results  []session.Result

	rows, columns int
	middle        int
	hitRow        int
	sideCol       int
}

func (p *Program) Init() error {
	p.Scorer = &score.DefaultScorer{Field: p.Config.Field()}
	p.Theme = &theme.DefaultTheme{}
	if nil == p.now {
		p.now = time.Now
	}

	loc, err := p.Config.Location()
	if nil != err {
		log.Println(err)
	}
	p.location = loc
	p.day, err = p.Config.Day(p.now(), loc)
	if nil != err {
		return err
	}

	p.Store, err = store.Open(p.Config.Database)
	if nil != err {
		return err
	}
	if err := p.Scorer.Init(p.Store.DB()); nil != err {
		return err
	}

	p.Controller = session.New(session.Options{
		Scorer:      p.Scorer,
		Store:       p.Store,
		CountMisses: p.Config.CountMisses,
		Generate: func() *game.Chart {
			return pattern.Generate(p.day, p.Config.Frequency)
		},
		OnFinish: func(r session.Result) {
			p.results = append(p.results, r)
		},
	})

	p.greeting = p.Controller.Message()

	first, err := store.FirstVisit(p.Store, store.KeyVisitedGame)
	if nil != err {
		log.Println(err)
	}
	p.showHelp = first

	p.Audio = audio.Nop{}
	if !p.Config.Mute {
		player, err := audio.NewDefaultPlayer()
		if nil != err {
			log.Println(err)
		} else {
			p.Audio = player
		}
	}

	if !p.Config.NoWeather {
		p.forecast = p.Config.Weather().Watch(context.Background())
	}

	return nil
}

func (p *Program) Deinit() {
	if nil != p.Audio {
		p.Audio.Close()
	}
	if nil != p.Store {
		if err := p.Store.Close(); nil != err {
			log.Println("unable to close database", err)
		}
	}
}

// Run owns the terminal until the player quits. Key events are collected by a
// reader goroutine but only ever applied here, on the tick.
func (p *Program) Run(ctx context.Context) error {
	if nil == p.Renderer {
		p.Renderer = render.NewDefaultRenderer()
	}
	if err := p.Renderer.Init(); nil != err {
		return fmt.Errorf("unable to prepare terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	actions := make(chan input.Action, 128)
	closeInput, err := input.ReadInput(p.Config.Lanes(), actions)
	if nil != err {
		return err
	}
	defer func() {
		if err := closeInput(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	loop := clock.NewLoop(p.Config.TickRate)
	loop.Run(ctx, func(dt time.Duration) bool {
		for i := len(actions); i > 0; i-- {
			if !p.Update(<-actions) {
				return false
			}
		}
		p.Tick(dt)
		p.Render()
		return true
	})
	loop.Stop()
	return nil
}

// Tick advances game time and picks up the forecast once it arrives
func (p *Program) Tick(dt time.Duration) {
	p.Controller.Advance(dt.Seconds())
	for i := range p.pressed {
		if p.pressed[i] > 0 {
			p.pressed[i]--
		}
	}
	if nil != p.forecast {
		select {
		case r := <-p.forecast:
			p.weather = &r
			p.forecast = nil
		default:
		}
	}
}

// Update applies one action, false means quit
func (p *Program) Update(a input.Action) bool {
	c := p.Controller
	switch a.Kind {
	case input.Quit:
		return false
	case input.Help:
		p.showHelp = !p.showHelp
	case input.Start:
		p.showHelp = false
		if c.State() != session.Running {
			if c.State() == session.Finished {
				c.Reset()
			}
			c.Start()
		}
	case input.Reset:
		c.Reset()
	case input.Tap:
		p.pressed[a.Lane] = pressFrames
		tap, ok := c.Tap(a.Lane)
		if !ok {
			break
		}
		p.Audio.Click(tap.Judgement)
		col := p.laneColumn(a.Lane)
		p.Renderer.AddDecoration(col-2, p.hitRow+1, p.Theme.RenderJudgement(tap.Judgement), feedbackFrames)
	}
	return true
}

func (p *Program) laneColumn(lane int) int {
	return p.middle + (2*lane-3)*columnSpacing/2
}

// rowFor maps a field offset to a terminal row, the tap line sits on hitRow
func (p *Program) rowFor(offset float64, field score.Field) int {
	scale := float64(p.hitRow-fieldTop) / field.TapLine
	return fieldTop + int(math.Round(offset*scale))
}

func (p *Program) resize() {
	p.rows, p.columns = p.Renderer.Size()
	p.middle = p.columns / 2
	p.hitRow = p.rows - 5
	p.sideCol = p.laneColumn(0) - 30
	if p.sideCol < 2 {
		p.sideCol = 2
	}
}

func (p *Program) Render() {
	r := p.Renderer
	c := p.Controller
	p.resize()
	r.Clear()

	p.RenderHeader()

	switch {
	case p.showHelp:
		p.RenderHelp()
	case c.State() == session.Finished:
		p.RenderResult(c.Result())
	default:
		p.RenderField()
	}

	if err := r.Flush(); nil != err {
		log.Println("unable to draw frame", err)
	}
}

// puzzleNumber follows the day being played, which a date override can move
func (p *Program) puzzleNumber() int64 {
	return pattern.PuzzleNumber(p.day)
}

func (p *Program) RenderHeader() {
	r := p.Renderer
	c := p.Controller
	title := fmt.Sprintf("%v  ·  Puzzle #%v", pattern.FormatDate(p.day), p.puzzleNumber())
	r.Fill(1, max(1, p.middle-len(title)/2), title)

	info := fmt.Sprintf("Streak: %v  |  Next puzzle: %v", c.Streak(), pattern.FormatCountdown(pattern.UntilNext(p.now(), p.location)))
	if nil != p.weather {
		info += fmt.Sprintf("  |  Weather: %v", p.weather)
	}
	r.Fill(2, max(1, p.middle-len(info)/2), info)

	width := p.columns - 2
	filled := int(c.Progress() * float64(width))
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "━"
		} else {
			bar += "─"
		}
	}
	r.FillColor(3, 2, progressColor, bar)
}

func (p *Program) RenderField() {
	r := p.Renderer
	c := p.Controller
	field := c.Field()

	// Lane edges and the hit bar
	bottom := p.rowFor(field.Length, field)
	if bottom > p.rows-1 {
		bottom = p.rows - 1
	}
	for row := fieldTop; row <= bottom; row++ {
		r.Fill(row, p.laneColumn(0)-3, p.Theme.RenderLaneEdge())
		r.Fill(row, p.laneColumn(game.Lanes-1)+3, p.Theme.RenderLaneEdge())
	}
	for i := 0; i < game.Lanes; i++ {
		r.Fill(p.hitRow, p.laneColumn(i)-1, p.Theme.RenderHitField(i, p.pressed[i] > 0))
		r.Fill(bottom, p.laneColumn(i), string(p.Config.Lanes()[i]))
	}

	for _, live := range c.Live() {
		row := p.rowFor(live.Offset, field)
		if row < fieldTop || row > bottom {
			continue
		}
		r.Fill(row, p.laneColumn(live.Note.Lane)-1, p.Theme.RenderNote(live.Note.Lane))
	}

	b := c.Buckets()
	for i, w := range game.Judgements {
		r.Fill(fieldTop+2+i, p.sideCol, fmt.Sprintf("%v %4v", p.Theme.RenderJudgement(w.Judgement), b.Count(w.Judgement)))
	}
	r.Fill(fieldTop+7, p.sideCol, fmt.Sprintf("Notes   %4v", c.Chart().NoteCount()))
	r.Fill(fieldTop+8, p.sideCol, fmt.Sprintf("Speed   %4.0f", field.Speed))
	r.Fill(fieldTop+9, p.sideCol, fmt.Sprintf("Freq    %4.1fx", c.Chart().Frequency))

	switch c.State() {
	case session.Idle:
		msg := "Press space to begin today's rhythm challenge"
		if c.WonToday() {
			msg = "You already won today, space to play again"
		}
		r.Fill(p.rows-2, max(1, p.middle-len(msg)/2), msg)
		r.Fill(p.rows-1, max(1, p.middle-len(p.greeting)/2), p.greeting)
	case session.Running:
		msg := fmt.Sprintf("%vs", int(math.Ceil(c.Remaining())))
		r.Fill(p.rows-2, p.middle-1, msg)
	}
}

func (p *Program) RenderResult(res *session.Result) {
	if nil == res {
		return
	}
	r := p.Renderer
	row := fieldTop + 2
	lines := []string{
		fmt.Sprintf("Score      %v / %v", res.Score, res.MaxScore),
		fmt.Sprintf("Accuracy   %v%%", math.Round(res.Accuracy)),
		fmt.Sprintf("Notes hit  %v%%", math.Round(res.HitRate)),
		"",
	}
	if res.Win {
		lines = append(lines, fmt.Sprintf("You won! Streak %v", res.Streak))
	} else {
		lines = append(lines, "Not quite, try again")
	}
	lines = append(lines, "", res.Message, "", "space to play again, q to quit")
	for i, l := range lines {
		r.Fill(row+i, max(1, p.middle-len(l)/2), l)
	}
	for i, w := range game.Judgements {
		r.Fill(row+len(lines)+1+i, p.middle-6, fmt.Sprintf("%v %4v", p.Theme.RenderJudgement(w.Judgement), res.Buckets.Count(w.Judgement)))
	}
}

func (p *Program) RenderHelp() {
	keys := p.Config.Lanes()
	lines := []string{
		"How to play",
		"",
		"Watch the notes fall down the four lanes",
		fmt.Sprintf("Press %c %c %c %c when a note reaches the bar", keys[0], keys[1], keys[2], keys[3]),
		"Perfect ±15 (100)  Good ±25 (70)  Okay ±35 (40)",
		"Win with 75% accuracy and half the notes hit",
		"Come back daily for a new pattern and keep your streak",
		"",
		"space start   r reset   h help   q quit",
	}
	for i, l := range lines {
		p.Renderer.Fill(fieldTop+2+i, max(1, p.middle-len(l)/2), l)
	}
}

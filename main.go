package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/config"
	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/pattern"
	"github.com/Derek-Wen/daily-rhythm/internal/score"
	"github.com/Derek-Wen/daily-rhythm/internal/session"
	"github.com/Derek-Wen/daily-rhythm/internal/store"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if nil != err {
		return err
	}

	if cfg.SaveSettings {
		if err := os.MkdirAll(filepath.Dir(cfg.Settings), 0755); nil != err {
			return fmt.Errorf("unable to create settings directory: %w", err)
		}
		if err := cfg.Current().Save(cfg.Settings); nil != err {
			return err
		}
	}

	switch cfg.Command {
	case config.CommandPattern:
		return printPattern(cfg)
	case config.CommandHistory:
		return printHistory(cfg)
	}
	return play(cfg)
}

func play(cfg *config.Config) error {
	// The game owns the terminal, so logs go to a file
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	p := &Program{Config: cfg}
	defer p.Deinit()
	if err := p.Init(); nil != err {
		return err
	}

	first, err := store.FirstVisit(p.Store, store.KeyVisited)
	if nil != err {
		log.Println(err)
	}

	if err := p.Run(ctx); nil != err {
		return err
	}

	printSummary(p, first)
	return nil
}

func printSummary(p *Program, first bool) {
	printer := message.NewPrinter(language.English)
	title := color.New(color.FgMagenta, color.Bold)

	if first {
		title.Println("Welcome to daily rhythm!")
	}
	if len(p.results) == 0 {
		fmt.Println("No round finished today.")
	} else {
		title.Printf("Rounds played: %v\n", len(p.results))
		for i, r := range p.results {
			printResult(printer, i+1, r)
		}
	}
	if best, ok := p.Controller.Best(); ok {
		printer.Printf("Best today: %d of %d\n", best.Score, best.MaxScore)
	}
	color.New(color.FgHiBlack).Printf("Next puzzle in %v\n", pattern.FormatCountdown(pattern.UntilNext(time.Now(), p.location)))
}

func printResult(printer *message.Printer, n int, r session.Result) {
	outcome := color.New(color.FgRed).Sprint("try again")
	if r.Win {
		outcome = color.New(color.FgGreen, color.Bold).Sprintf("win, streak %v", r.Streak)
	}
	printer.Printf("%2d. %d / %d  accuracy %.1f%%  hit %.1f%%  %v\n",
		n, r.Score, r.MaxScore, r.Accuracy, r.HitRate, outcome)
	printBuckets(r.Buckets)
	if r.Message != "" {
		color.New(color.Italic).Printf("    %v\n", r.Message)
	}
}

func printBuckets(b game.Buckets) {
	colors := map[game.Judgement]*color.Color{
		game.Perfect: color.New(color.FgYellow),
		game.Good:    color.New(color.FgGreen),
		game.Okay:    color.New(color.FgBlue),
		game.Miss:    color.New(color.FgRed),
	}
	fmt.Print("   ")
	for _, w := range game.Judgements {
		colors[w.Judgement].Printf(" %v %v", w.Judgement, b.Count(w.Judgement))
	}
	fmt.Println()
}

func today(cfg *config.Config) (time.Time, error) {
	loc, err := cfg.Location()
	if nil != err {
		log.Println(err)
	}
	return cfg.Day(time.Now(), loc)
}

func printPattern(cfg *config.Config) error {
	day, err := today(cfg)
	if nil != err {
		return err
	}
	chart := pattern.Generate(day, cfg.Frequency)
	field := cfg.Field()
	keys := cfg.Lanes()

	color.New(color.FgMagenta, color.Bold).Printf("%v  seed %v  %v notes\n", pattern.FormatDate(day), chart.Seed, chart.NoteCount())
	header := color.New(color.FgHiBlack)
	header.Printf("%4v  %4v  %8v  %8v\n", "id", "lane", "time", "tap at")
	laneColors := []*color.Color{
		color.New(color.FgHiMagenta),
		color.New(color.FgMagenta),
		color.New(color.FgHiRed),
		color.New(color.FgRed),
	}
	for _, n := range chart.Notes {
		laneColors[n.Lane%len(laneColors)].Printf("%4v  %4c  %8.3f  %8.3f\n", n.ID, keys[n.Lane], n.Time, field.DueAt(n.Time))
	}
	return nil
}

func printHistory(cfg *config.Config) error {
	day, err := today(cfg)
	if nil != err {
		return err
	}
	db, err := store.Open(cfg.Database)
	if nil != err {
		return err
	}
	defer db.Close()

	scorer := &score.DefaultScorer{Field: cfg.Field()}
	if err := scorer.Init(db.DB()); nil != err {
		return err
	}

	chart := pattern.Generate(day, cfg.Frequency)
	histories := scorer.Load(chart)
	printer := message.NewPrinter(language.English)

	color.New(color.FgMagenta, color.Bold).Printf("%v  %v stored performances\n", pattern.FormatDate(day), len(histories))
	streak := store.Int(db, store.KeyStreak, 0)
	printer.Printf("Streak %d\n", streak)
	for i := range histories {
		r := session.NewResult(scorer.Score(chart, &histories[i]), chart.NoteCount())
		printResult(printer, int(histories[i].ID), r)
	}
	return nil
}

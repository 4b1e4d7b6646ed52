package session

import "github.com/Derek-Wen/daily-rhythm/internal/game"

const (
	WinAccuracy = 75.0
	WinHitRate  = 50.0
)

type Result struct {
	Buckets      game.Buckets
	TotalNotes   int
	Score        int // Weighted score
	MaxScore     int
	Accuracy     float64 // Percent of MaxScore
	HitRate      float64 // Percent of notes hit
	Win          bool
	Message      string
	MessageIndex int
	Streak       int
}

// NewResult computes the end of session figures from a bucket snapshot
func NewResult(b game.Buckets, totalNotes int) Result {
	r := Result{
		Buckets:      b,
		TotalNotes:   totalNotes,
		Score:        b.Weighted(),
		MaxScore:     totalNotes * game.Perfect.Points(),
		MessageIndex: -1,
	}
	if r.MaxScore > 0 {
		r.Accuracy = float64(r.Score) / float64(r.MaxScore) * 100
	}
	if totalNotes > 0 {
		r.HitRate = float64(b.Hits()) / float64(totalNotes) * 100
	}
	r.Win = IsWin(r.Accuracy, r.HitRate)
	return r
}

func IsWin(accuracy, hitRate float64) bool {
	return accuracy >= WinAccuracy && hitRate >= WinHitRate
}

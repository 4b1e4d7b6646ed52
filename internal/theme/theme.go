package theme

import "github.com/Derek-Wen/daily-rhythm/internal/game"

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int, pressed bool) string
	RenderJudgement(j game.Judgement) string
	RenderLaneEdge() string
}

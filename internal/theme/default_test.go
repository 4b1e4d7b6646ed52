package theme

import (
	"strings"
	"testing"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
)

func TestRenderJudgement(t *testing.T) {
	var th Theme = &DefaultTheme{}
	for _, j := range []game.Judgement{game.Perfect, game.Good, game.Okay, game.Miss} {
		s := th.RenderJudgement(j)
		if !strings.Contains(s, j.String()) || !strings.HasSuffix(s, "\033[0m") {
			t.Errorf("%v rendered as %q", j, s)
		}
	}
}

func TestLaneColors(t *testing.T) {
	if getLaneColor(-1) != (Color{255, 255, 255}) || getLaneColor(4) != (Color{255, 255, 255}) {
		t.Fatal("out of range lanes should be white")
	}
	th := &DefaultTheme{}
	if th.RenderNote(0) == th.RenderNote(3) {
		t.Fatal("lanes should be distinguishable")
	}
	if th.RenderHitField(1, false) != barSym {
		t.Fatal("idle hit field should be plain")
	}
}

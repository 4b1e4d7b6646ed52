package theme

import (
	"fmt"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return paint(getLaneColor(lane), noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int, pressed bool) string {
	if pressed {
		return paint(getLaneColor(lane), pressedSym)
	}
	return barSym
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	color, ok := judgementColors[j]
	if !ok {
		return j.String()
	}
	return fmt.Sprintf("\033[1;38;2;%v;%v;%vm%-7v\033[0m", color.R, color.G, color.B, j.String())
}

func (t *DefaultTheme) RenderLaneEdge() string {
	return "\033[38;2;120;60;90m│\033[0m"
}

const (
	noteSym    = "▆▆▆"
	barSym     = "───"
	pressedSym = "███"
)

var (
	laneColors = [...]Color{
		{236, 72, 153},  // pink
		{244, 114, 182}, // light pink
		{219, 39, 119},  // deep pink
		{190, 24, 93},   // rose
	}
	judgementColors = map[game.Judgement]Color{
		game.Perfect: {202, 138, 4}, // yellow
		game.Good:    {22, 163, 74}, // green
		game.Okay:    {37, 99, 235}, // blue
		game.Miss:    {220, 38, 38}, // red
	}
)

func paint(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func getLaneColor(lane int) Color {
	if lane < 0 || lane >= len(laneColors) {
		return Color{255, 255, 255}
	}
	return laneColors[lane]
}

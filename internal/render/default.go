package render

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out *os.File

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func NewDefaultRenderer() *DefaultRenderer {
	return &DefaultRenderer{Out: os.Stdout}
}

func (r *DefaultRenderer) fd() int {
	return int(r.Out.Fd())
}

func (r *DefaultRenderer) Init() error {
	if term.IsTerminal(r.fd()) {
		state, err := term.MakeRaw(r.fd())
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[2J")     // Clear the screen
	return r.Flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	if err := r.Flush(); nil != err {
		return err
	}
	if nil == r.restoreState {
		return nil
	}
	state := r.restoreState
	r.restoreState = nil
	return term.Restore(r.fd(), state)
}

// Size falls back to 24x80 when the output is not a terminal
func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(r.fd())
	if nil != err || rows <= 0 || columns <= 0 {
		return 24, 80
	}
	return rows, columns
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[H\033[2J")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

// Flush draws pending decorations on top of the frame and writes it out
func (r *DefaultRenderer) Flush() error {
	r.tickDecorations()
	return r.flushTo(r.Out)
}

func (r *DefaultRenderer) flushTo(w io.Writer) error {
	_, err := io.WriteString(w, r.buffer.String())
	r.buffer.Reset()
	return err
}

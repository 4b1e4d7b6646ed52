package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestFill(t *testing.T) {
	r := &DefaultRenderer{}
	r.Fill(3, 14, "x")
	r.FillColor(1, 2, color.RGBA{R: 10, G: 20, B: 30}, "y")
	var out bytes.Buffer
	if err := r.flushTo(&out); nil != err {
		t.Fatal(err)
	}
	expected := "\033[3;14Hx\033[1;2H\033[38;2;10;20;30my\033[0m"
	if out.String() != expected {
		t.Fatalf("got %q, expected %q", out.String(), expected)
	}
	if r.buffer.Len() != 0 {
		t.Fatal("buffer not reset")
	}
}

func TestDecorationsExpire(t *testing.T) {
	r := &DefaultRenderer{}
	r.AddDecoration(5, 6, "Perfect", 2)
	frames := []string{}
	for i := 0; i < 4; i++ {
		r.tickDecorations()
		var out bytes.Buffer
		r.flushTo(&out)
		frames = append(frames, out.String())
	}
	for i, f := range frames {
		drawn := strings.Contains(f, "Perfect")
		if drawn != (i < 2) {
			t.Errorf("frame %v drawn = %v", i, drawn)
		}
	}
	if len(r.decorations) != 0 {
		t.Fatalf("%v decorations left", len(r.decorations))
	}
}

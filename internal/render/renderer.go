package render

import "image/color"

type Renderer interface {
	Init() error
	Deinit() error
	Size() (rows, columns int)
	AddDecoration(col, row int, content string, frames int)
	Clear()
	Fill(row, column int, message string)
	FillColor(row, column int, color color.RGBA, message string)
	Flush() error
}

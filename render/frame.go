package render

import "github.com/gdamore/tcell/v2"

// Frame is a rune buffer the simulation paints into, flushed to a tcell screen once per frame
// Writes outside the buffer are ignored
type Frame struct {
	cells  []rune
	styles []tcell.Style
	width  int
	height int
	style  tcell.Style
}

// NewFrame creates a cleared frame
func NewFrame(width, height int) *Frame {
	f := &Frame{style: tcell.StyleDefault}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]rune, size)
		f.styles = make([]tcell.Style, size)
	} else {
		f.cells = f.cells[:size]
		f.styles = f.styles[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear blanks every cell
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = ' '
		f.styles[i] = tcell.StyleDefault
	}
}

// SetStyle selects the style applied by subsequent Paint calls
func (f *Frame) SetStyle(style tcell.Style) {
	f.style = style
}

// Paint implements Painter
func (f *Frame) Paint(x, y int, r rune) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	idx := y*f.width + x
	f.cells[idx] = r
	f.styles[idx] = f.style
}

// Get returns the rune at a cell, space outside bounds
func (f *Frame) Get(x, y int) rune {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ' '
	}
	return f.cells[y*f.width+x]
}

// Size returns frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Row returns one line of the frame as a string, used by tests and logs
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	return string(f.cells[y*f.width : (y+1)*f.width])
}

// Flush copies the frame to screen and shows it
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			idx := y*f.width + x
			screen.SetContent(x, y, f.cells[idx], nil, f.styles[idx])
		}
	}
	screen.Show()
}

package render

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// DrawBorder frames the camera window with a one-cell box just outside it
func DrawBorder(p Painter, cam *Camera, line LineType) {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	left, top := cam.Frame.X-1, cam.Frame.Y-1
	right, bottom := cam.Frame.X+cam.Width, cam.Frame.Y+cam.Height

	p.Paint(left, top, chars[boxTL])
	p.Paint(right, top, chars[boxTR])
	p.Paint(left, bottom, chars[boxBL])
	p.Paint(right, bottom, chars[boxBR])

	for x := left + 1; x < right; x++ {
		p.Paint(x, top, chars[boxH])
		p.Paint(x, bottom, chars[boxH])
	}
	for y := top + 1; y < bottom; y++ {
		p.Paint(left, y, chars[boxV])
		p.Paint(right, y, chars[boxV])
	}
}

// DrawText paints s left to right starting at (x, y)
func DrawText(p Painter, x, y int, s string) {
	for i, r := range []rune(s) {
		p.Paint(x+i, y, r)
	}
}

// DrawTextRight paints s so its last rune lands on column right
func DrawTextRight(p Painter, right, y int, s string) {
	runes := []rune(s)
	DrawText(p, right-len(runes)+1, y, s)
}

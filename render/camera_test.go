package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/vmath"
)

type paintCall struct {
	x, y int
	r    rune
}

type recordPainter struct {
	calls []paintCall
}

func (p *recordPainter) Paint(x, y int, r rune) {
	p.calls = append(p.calls, paintCall{x, y, r})
}

func (p *recordPainter) at(x, y int) (rune, bool) {
	for _, c := range p.calls {
		if c.x == x && c.y == y {
			return c.r, true
		}
	}
	return 0, false
}

func TestPaintDotInsideAndOutside(t *testing.T) {
	cam := Camera{Pos: vmath.V(10, 20), Frame: vmath.C(1, 1), Width: 5, Height: 3}
	p := &recordPainter{}

	// World (12, 22) is cell (12, 11), camera cell (10, 10): relative (2, 1)
	cam.PaintDot(p, '*', vmath.V(12, 22))
	if r, ok := p.at(3, 2); !ok || r != '*' {
		t.Fatalf("expected dot at screen (3,2), got %+v", p.calls)
	}

	outside := []vmath.Vec{
		vmath.V(9, 20),  // left of window
		vmath.V(15, 20), // x == width
		vmath.V(10, 18), // above
		vmath.V(10, 26), // y == height
	}
	for _, pos := range outside {
		before := len(p.calls)
		cam.PaintDot(p, '*', pos)
		if len(p.calls) != before {
			t.Errorf("dot at %v should be clipped", pos)
		}
	}
}

func TestPaintSpriteClipping(t *testing.T) {
	cam := Camera{Pos: vmath.Zero, Frame: vmath.C(2, 1), Width: 4, Height: 2}
	sprite := engine.SpriteFromStrings(
		"abc",
		"de",
		"fgh",
	)

	p := &recordPainter{}
	// Top-left of sprite at cell (-1, 0): column 'a','d','f' falls left of the window
	cam.PaintSprite(p, sprite, vmath.V(-1, 0))

	want := map[[2]int]rune{
		{2, 1}: 'b', {3, 1}: 'c',
		{2, 2}: 'e',
	}
	if len(p.calls) != len(want) {
		t.Fatalf("painted %d cells, want %d: %+v", len(p.calls), len(want), p.calls)
	}
	for pos, r := range want {
		if got, ok := p.at(pos[0], pos[1]); !ok || got != r {
			t.Errorf("screen %v = %q, want %q", pos, got, r)
		}
	}
}

func TestPaintSpriteRightAndBottomEdges(t *testing.T) {
	cam := Camera{Pos: vmath.Zero, Width: 3, Height: 2}
	sprite := engine.SpriteFromStrings("wxyz", "wxyz", "wxyz")

	p := &recordPainter{}
	cam.PaintSprite(p, sprite, vmath.V(1, 2)) // cell (1, 1)

	// Only row 0 of the sprite fits (screen row 1), columns 1..2
	if len(p.calls) != 2 {
		t.Fatalf("painted %+v, want two cells", p.calls)
	}
	if r, _ := p.at(1, 1); r != 'w' {
		t.Errorf("screen (1,1) = %q, want w", r)
	}
	if r, _ := p.at(2, 1); r != 'x' {
		t.Errorf("screen (2,1) = %q, want x", r)
	}
}

func TestPaintSpriteFullyOutside(t *testing.T) {
	cam := Camera{Pos: vmath.Zero, Width: 3, Height: 3}
	p := &recordPainter{}
	cam.PaintSprite(p, engine.SpriteFromStrings("##", "##"), vmath.V(50, 50))
	cam.PaintSprite(p, engine.SpriteFromStrings("##", "##"), vmath.V(-50, -50))
	cam.PaintSprite(p, nil, vmath.Zero)
	if len(p.calls) != 0 {
		t.Errorf("expected nothing painted, got %+v", p.calls)
	}
}

func TestScreenToWorld(t *testing.T) {
	cam := Camera{Pos: vmath.V(4, 6), Frame: vmath.C(1, 1), Width: 20, Height: 10}
	got := cam.ScreenToWorld(3, 4)
	if want := vmath.V(6, 12); !got.Equal(want) {
		t.Errorf("ScreenToWorld(3,4) = %v, want %v", got, want)
	}

	// Inverse of PaintDot placement
	p := &recordPainter{}
	cam.PaintDot(p, '+', got)
	if _, ok := p.at(3, 4); !ok {
		t.Errorf("dot at converted position landed at %+v", p.calls)
	}
}

func TestFollowDeadZone(t *testing.T) {
	cam := Camera{Width: 20, Height: 10}

	// Inside dead zone: no movement
	cam.Follow(vmath.ToWorld(vmath.C(10, 5)), 4, 2)
	if !cam.Pos.IsZero() {
		t.Fatalf("camera moved inside dead zone: %v", cam.Pos)
	}

	// Past right margin by 3 cells
	cam.Follow(vmath.ToWorld(vmath.C(18, 5)), 4, 2)
	if want := vmath.ToWorld(vmath.C(3, 0)); !cam.Pos.Equal(want) {
		t.Errorf("after right shift Pos = %v, want %v", cam.Pos, want)
	}

	// Above top margin
	cam.Follow(vmath.ToWorld(vmath.C(12, -1)), 4, 2)
	if want := vmath.ToWorld(vmath.C(3, -3)); !cam.Pos.Equal(want) {
		t.Errorf("after up shift Pos = %v, want %v", cam.Pos, want)
	}
}

func TestDrawBorder(t *testing.T) {
	f := NewFrame(6, 4)
	cam := Camera{Frame: vmath.C(1, 1), Width: 4, Height: 2}
	DrawBorder(f, &cam, LineSingle)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range want {
		if got := f.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestFrameFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	f := NewFrame(4, 2)
	f.Paint(1, 0, 'O')
	f.Paint(3, 1, '#')
	f.Paint(9, 9, 'X') // ignored
	f.Flush(screen)

	if r, _, _, _ := screen.GetContent(1, 0); r != 'O' {
		t.Errorf("screen (1,0) = %q, want O", r)
	}
	if r, _, _, _ := screen.GetContent(3, 1); r != '#' {
		t.Errorf("screen (3,1) = %q, want #", r)
	}

	f.Clear()
	if f.Get(1, 0) != ' ' {
		t.Error("Clear must blank cells")
	}
}

func TestStatusLine(t *testing.T) {
	clock := engine.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	line := NewStatusLine(clock)
	clock.Advance(1530 * time.Millisecond)

	f := NewFrame(20, 1)
	line.Draw(f, 0, 20, "deaths:3")

	if got, want := f.Row(0), "deaths:3        1.5s"; got != want {
		t.Errorf("status row = %q, want %q", got, want)
	}
}

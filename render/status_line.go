package render

import (
	"time"

	"github.com/lixenwraith/splat/engine"
)

// StatusLine draws a left-aligned message and the elapsed run time on one screen row
type StatusLine struct {
	clock engine.Clock
	start time.Time
}

// NewStatusLine starts the run timer at the clock's current time
func NewStatusLine(clock engine.Clock) *StatusLine {
	return &StatusLine{clock: clock, start: clock.Now()}
}

// Restart resets the run timer
func (s *StatusLine) Restart() {
	s.start = s.clock.Now()
}

// Elapsed returns time since the last restart truncated to tenths of a second
func (s *StatusLine) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start).Truncate(100 * time.Millisecond)
}

// Draw paints msg from the left and the timer flush right across width cells of row y
func (s *StatusLine) Draw(p Painter, y, width int, msg string) {
	timer := s.Elapsed().String()
	room := width - len(timer) - 1
	runes := []rune(msg)
	if len(runes) > room {
		runes = runes[:max(room, 0)]
	}
	DrawText(p, 0, y, string(runes))
	DrawTextRight(p, width-1, y, timer)
}

package engine

import "time"

// Sprite is a block of glyph rows, rows may be ragged
type Sprite = [][]rune

// SpriteFromStrings converts text rows into a Sprite
func SpriteFromStrings(rows ...string) Sprite {
	s := make(Sprite, len(rows))
	for i, r := range rows {
		s[i] = []rune(r)
	}
	return s
}

// Animation steps through sprite frames at a fixed frame time
// One-shot animations hold their last frame and report Done once it has been shown for a full frame time
type Animation struct {
	frames    []Sprite
	frameTime time.Duration
	elapsed   time.Duration
	oneShot   bool
}

// NewAnimation creates an animation, frameTime must be positive and frames non-empty
func NewAnimation(frames []Sprite, frameTime time.Duration, oneShot bool) Animation {
	return Animation{
		frames:    frames,
		frameTime: frameTime,
		oneShot:   oneShot,
	}
}

// Update advances the animation clock by dt
func (a *Animation) Update(dt time.Duration) {
	if len(a.frames) == 0 || a.frameTime <= 0 {
		return
	}
	a.elapsed += dt

	total := a.frameTime * time.Duration(len(a.frames))
	if a.oneShot {
		if a.elapsed > total {
			a.elapsed = total
		}
		return
	}
	a.elapsed %= total
}

// Index returns the current frame index
func (a *Animation) Index() int {
	if len(a.frames) == 0 || a.frameTime <= 0 {
		return 0
	}
	return min(int(a.elapsed/a.frameTime), len(a.frames)-1)
}

// Frame returns the current sprite, nil for an empty animation
func (a *Animation) Frame() Sprite {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.Index()]
}

// Done reports whether a one-shot animation has finished its last frame
func (a *Animation) Done() bool {
	return a.oneShot && a.elapsed >= a.frameTime*time.Duration(len(a.frames))
}

// Duration returns the length of one full cycle
func (a *Animation) Duration() time.Duration {
	return a.frameTime * time.Duration(len(a.frames))
}

// Reset rewinds to the first frame
func (a *Animation) Reset() {
	a.elapsed = 0
}

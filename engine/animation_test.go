package engine

import (
	"testing"
	"time"
)

func TestAnimationOneShot(t *testing.T) {
	frames := []Sprite{
		SpriteFromStrings("a"),
		SpriteFromStrings("b"),
		SpriteFromStrings("c"),
	}
	anim := NewAnimation(frames, 100*time.Millisecond, true)

	if got := string(anim.Frame()[0]); got != "a" {
		t.Fatalf("initial frame = %q, want a", got)
	}

	anim.Update(150 * time.Millisecond)
	if got := anim.Index(); got != 1 {
		t.Errorf("after 150ms index = %d, want 1", got)
	}
	if anim.Done() {
		t.Error("one-shot must not be done mid-sequence")
	}

	anim.Update(140 * time.Millisecond)
	if got := anim.Index(); got != 2 {
		t.Errorf("after 290ms index = %d, want 2", got)
	}
	if anim.Done() {
		t.Error("last frame has not been shown for a full frame time yet")
	}

	anim.Update(10 * time.Millisecond)
	if !anim.Done() {
		t.Error("expected done after 300ms")
	}

	// Holds last frame
	anim.Update(time.Second)
	if got := anim.Index(); got != 2 {
		t.Errorf("finished one-shot index = %d, want 2", got)
	}

	anim.Reset()
	if anim.Done() || anim.Index() != 0 {
		t.Error("reset must rewind to first frame")
	}
}

func TestAnimationLoops(t *testing.T) {
	frames := []Sprite{SpriteFromStrings("a"), SpriteFromStrings("b")}
	anim := NewAnimation(frames, 10*time.Millisecond, false)

	anim.Update(25 * time.Millisecond)
	if got := anim.Index(); got != 0 {
		t.Errorf("looping index after 25ms = %d, want 0", got)
	}
	if anim.Done() {
		t.Error("looping animation is never done")
	}
}

func TestStepperFixedTicks(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewStepper(clock, 10*time.Millisecond, 5)

	clock.Advance(25 * time.Millisecond)
	if got := s.Step(); got != 2 {
		t.Errorf("25ms: ticks = %d, want 2", got)
	}

	// 5ms carried over
	clock.Advance(5 * time.Millisecond)
	if got := s.Step(); got != 1 {
		t.Errorf("carry: ticks = %d, want 1", got)
	}

	clock.Advance(time.Second)
	if got := s.Step(); got != 5 {
		t.Errorf("stall: ticks = %d, want cap 5", got)
	}

	// Excess dropped after a capped frame
	clock.Advance(5 * time.Millisecond)
	if got := s.Step(); got != 0 {
		t.Errorf("after cap: ticks = %d, want 0", got)
	}
}

func TestStepperRate(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewStepper(clock, 10*time.Millisecond, 10)

	for i := 0; i < 100; i++ {
		clock.Advance(10 * time.Millisecond)
		s.Step()
	}
	if r := s.Rate(); r < 99 || r > 101 {
		t.Errorf("rate = %.2f, want ~100", r)
	}
}

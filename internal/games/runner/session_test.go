package runner

import (
	"testing"

	"github.com/vovakirdan/braille-runner/internal/core"
)

func TestSessionInitialState(t *testing.T) {
	s := NewSession(testOptions(5, emptySource()), Callbacks{})

	if s.Score() != 0 || s.Crashed() {
		t.Fatalf("new session: score=%d crashed=%v", s.Score(), s.Crashed())
	}
	if s.Stance() != Standing {
		t.Errorf("stance = %v, expected Standing", s.Stance())
	}
	for i, slot := range s.Track() {
		if slot != Empty {
			t.Errorf("slot %d = %v, expected Empty", i, slot)
		}
	}
	if s.Frame() != "⠗____" {
		t.Errorf("initial frame = %q, expected %q", s.Frame(), "⠗____")
	}
}

func TestSessionCrashOnUnavoidedObstacle(t *testing.T) {
	var scores []int
	var frames []string
	var crashes []core.GameState

	src := &scriptedSource{draws: []int{0}}
	s := NewSession(testOptions(5, src), Callbacks{
		OnScore: func(score int) { scores = append(scores, score) },
		OnFrame: func(frame string) { frames = append(frames, frame) },
		OnCrash: func(state core.GameState) { crashes = append(crashes, state) },
	})

	ticks := 0
	for s.Tick() {
		ticks++
		if ticks > 10 {
			t.Fatal("session should have crashed by tick 5")
		}
	}

	expectedFrames := []string{
		"⠗____⠛",
		"⠗___⠛_",
		"⠗__⠛__",
		"⠗_⠛___",
		"💥____",
	}
	if len(frames) != len(expectedFrames) {
		t.Fatalf("got %d frames, expected %d: %q", len(frames), len(expectedFrames), frames)
	}
	for i := range expectedFrames {
		if frames[i] != expectedFrames[i] {
			t.Errorf("frame %d = %q, expected %q", i+1, frames[i], expectedFrames[i])
		}
	}

	for i, score := range scores {
		if score != i+1 {
			t.Errorf("score callback %d = %d, expected %d", i, score, i+1)
		}
	}
	if len(scores) != 5 {
		t.Errorf("got %d score callbacks, expected 5", len(scores))
	}

	if len(crashes) != 1 {
		t.Fatalf("OnCrash fired %d times, expected 1", len(crashes))
	}
	if crashes[0].Score != 5 || !crashes[0].Crashed {
		t.Errorf("crash state = %+v, expected score 5 crashed", crashes[0])
	}
}

func TestSessionFrozenAfterCrash(t *testing.T) {
	calls := 0
	s := NewSession(testOptions(1, &scriptedSource{draws: []int{1}}), Callbacks{
		OnScore: func(int) { calls++ },
	})

	if s.Tick() {
		t.Fatal("bottom obstacle on a 1-slot track should crash on the first tick")
	}
	frame := s.Frame()

	if s.Tick() {
		t.Error("Tick after crash should return false")
	}
	if s.Input(core.ActionJump) {
		t.Error("Input after crash should be ignored")
	}
	if calls != 1 || s.Score() != 1 {
		t.Errorf("crashed session advanced: calls=%d score=%d", calls, s.Score())
	}
	if s.Frame() != frame {
		t.Errorf("frame changed after crash: %q -> %q", frame, s.Frame())
	}
}

func TestSessionJumpOverBottomObstacle(t *testing.T) {
	s := NewSession(testOptions(5, &scriptedSource{draws: []int{1}}), Callbacks{})

	for i := 0; i < 4; i++ {
		if !s.Tick() {
			t.Fatalf("crashed early on tick %d", i+1)
		}
	}
	if s.Track()[1] != ObstacleBottom {
		t.Fatalf("obstacle should be one slot away, track=%v", s.Track())
	}

	if !s.Input(core.ActionJump) {
		t.Fatal("jump should be accepted")
	}
	if !s.Tick() {
		t.Fatalf("jumping over a bottom obstacle should not crash, frame=%q", s.Frame())
	}
	if s.Frame() != "⣭____" {
		t.Errorf("frame = %q, expected %q", s.Frame(), "⣭____")
	}
}

func TestSessionDuckUnderTopObstacle(t *testing.T) {
	s := NewSession(testOptions(5, &scriptedSource{draws: []int{0}}), Callbacks{})

	// Duck two ticks early: the pose holds for three evaluations
	for i := 0; i < 2; i++ {
		s.Tick()
	}
	s.Input(core.ActionDuck)
	for i := 0; i < 3; i++ {
		if !s.Tick() {
			t.Fatalf("crashed on tick %d, frame=%q", i+3, s.Frame())
		}
	}
	if s.Frame() != "⣛____" {
		t.Errorf("frame = %q, expected %q", s.Frame(), "⣛____")
	}

	// Pose reverted; the track is clear so play continues
	if s.Stance() != Standing {
		t.Errorf("stance = %v, expected Standing", s.Stance())
	}
}

func TestSessionWrongMoveCrashes(t *testing.T) {
	s := NewSession(testOptions(5, &scriptedSource{draws: []int{0}}), Callbacks{})

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	s.Input(core.ActionJump)
	if s.Tick() {
		t.Fatal("jumping into a top obstacle should crash")
	}
	if s.Frame() != "💥____" {
		t.Errorf("frame = %q, expected %q", s.Frame(), "💥____")
	}
}

func TestSessionNilCallbacks(t *testing.T) {
	s := NewSession(testOptions(3, &scriptedSource{draws: []int{0}}), Callbacks{})
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if !s.Crashed() {
		t.Error("session should crash without callbacks wired")
	}
}

func TestSessionClampsPosition(t *testing.T) {
	opts := testOptions(5, emptySource())
	opts.Position = 9
	s := NewSession(opts, Callbacks{})
	if s.Position() != 0 {
		t.Errorf("position = %d, expected 0 for out-of-range option", s.Position())
	}

	opts.Position = 2
	s = NewSession(opts, Callbacks{})
	if s.Frame() != "__⠗__" {
		t.Errorf("frame = %q, expected %q", s.Frame(), "__⠗__")
	}
}

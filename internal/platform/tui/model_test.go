package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/braille-runner/internal/config"
	"github.com/vovakirdan/braille-runner/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelRecordsRunUnderAppliedPreset(t *testing.T) {
	tests := []struct {
		name       string
		preset     config.DifficultyPreset
		wantPreset config.DifficultyPreset
		wantLevel  int
	}{
		{"no preset plays normal", "", config.DifficultyNormal, 3},
		{"easy", config.DifficultyEasy, config.DifficultyEasy, 0},
		{"normal", config.DifficultyNormal, config.DifficultyNormal, 3},
		{"hard", config.DifficultyHard, config.DifficultyHard, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			m := NewModel(GameConfig{
				Runner: config.DefaultRunnerConfig(),
				Preset: tt.preset,
				Seed:   1,
			}, store, nil)

			state := m.State()
			if state.Level != tt.wantLevel {
				t.Errorf("start level = %d, want %d", state.Level, tt.wantLevel)
			}

			state.Score = 7
			m.play.onCrash(state)
			m.Close()

			runs, err := store.TopRuns(string(tt.wantPreset), 10)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != 1 {
				t.Fatalf("got %d runs under %q, want 1", len(runs), tt.wantPreset)
			}
			if runs[0].Level != tt.wantLevel {
				t.Errorf("saved level = %d, want %d", runs[0].Level, tt.wantLevel)
			}
		})
	}
}

// Run with -race: a dropped SSH session shuts the game down while the update
// loop is still running queued ramp and tick callbacks.
func TestActiveGameCloseDuringEvents(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Speed.RampInterval = time.Millisecond

	m := NewModel(GameConfig{Runner: cfg, Preset: config.DifficultyEasy, Seed: 1}, nil, nil)
	active := &activeGame{}
	active.set(m.play)
	m.Init()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case fn := <-m.play.sched.Events():
				m.Update(SchedulerMsg(fn))
			case <-m.play.sched.Done():
				return
			}
		}
	}()

	time.Sleep(20 * time.Millisecond)
	active.close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("update loop did not stop after close")
	}

	if m.play.loop.Running() {
		t.Error("loop still running after close")
	}

	// Events after shutdown are dropped
	ran := false
	m.Update(SchedulerMsg(func() { ran = true }))
	if ran {
		t.Error("callback ran after shutdown")
	}
}

package runner

// scriptedSource replays fixed draws, then always draws the last outcome
// (empty space for any policy with bias units).
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	defer func() { s.calls++ }()
	if s.calls < len(s.draws) {
		return s.draws[s.calls] % n
	}
	return n - 1
}

// emptySource never spawns an obstacle.
func emptySource() *scriptedSource {
	return &scriptedSource{}
}

// testOptions returns default options with the given length and source.
func testOptions(length int, src Source) Options {
	opts := DefaultOptions()
	opts.Runtime.TrackLength = length
	opts.Runtime.Seed = 1
	opts.Source = src
	return opts
}

package combat

import "math/rand"

// Source supplies the uniform draws used by the decision policy and the
// encounter generator. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n).
	Intn(n int) int
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a seeded *rand.Rand.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptedSource replays fixed draws in order. Once a script runs out it keeps
// returning the fallback values, which by default never trigger a special
// outcome (0.99 for floats, 0 for ints).
type ScriptedSource struct {
	Floats        []float64
	Ints          []int
	FallbackFloat float64
	FallbackInt   int

	floatDraws int
	intDraws   int
}

// NewScriptedSource creates a source that replays floats, then falls back to 0.99.
func NewScriptedSource(floats ...float64) *ScriptedSource {
	return &ScriptedSource{Floats: floats, FallbackFloat: 0.99}
}

// Float64 returns the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	s.floatDraws++
	if len(s.Floats) == 0 {
		return s.FallbackFloat
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn returns the next scripted int reduced into [0,n).
func (s *ScriptedSource) Intn(n int) int {
	s.intDraws++
	v := s.FallbackInt
	if len(s.Ints) > 0 {
		v = s.Ints[0]
		s.Ints = s.Ints[1:]
	}
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// FloatDraws reports how many floats have been drawn.
func (s *ScriptedSource) FloatDraws() int { return s.floatDraws }

// IntDraws reports how many ints have been drawn.
func (s *ScriptedSource) IntDraws() int { return s.intDraws }

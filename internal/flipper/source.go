package flipper

import "math/rand/v2"

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandSource returns a source seeded from the runtime's random generator.
func NewRandSource() Source {
	return NewSeededSource(rand.Uint64())
}

// ConstSource always returns the same draw.
type ConstSource float64

func (c ConstSource) Float64() float64 { return float64(c) }

// SequenceSource replays a fixed list of draws, wrapping around at the end.
type SequenceSource struct {
	Draws []float64
	pos   int
}

func (s *SequenceSource) Float64() float64 {
	v := s.Draws[s.pos%len(s.Draws)]
	s.pos++
	return v
}

package engine

import (
	"math/rand/v2"
	"sync"
	"unicode/utf16"

	"excuses/internal/corpus"
)

// StickyProbability is the chance that Select returns the hash-derived
// excuse instead of a uniformly random one.
const StickyProbability = 0.7

// Source supplies randomness to a Selector. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Selector picks one excuse from a pool, favouring the same excuse for the
// same seed. Not cryptographic, not uniform.
type Selector struct {
	mu  sync.Mutex
	src Source
}

// NewSelector creates a Selector. A nil source uses the global generator.
func NewSelector(src Source) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// Hash is a 32-bit rolling hash (h = h*31 + c) over the UTF-16 code units
// of seed, wrapping on overflow.
func Hash(seed string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(seed)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// BaseIndex returns |Hash(seed)| mod n. n must be positive.
func BaseIndex(seed string, n int) int {
	h := int64(Hash(seed))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// Select returns pool[BaseIndex(seed)] with StickyProbability and a
// uniformly chosen element otherwise. pool must be non-empty.
func (s *Selector) Select(pool []string, seed string) string {
	base := BaseIndex(seed, len(pool))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.src.Float64() < StickyProbability {
		return pool[base]
	}
	return pool[s.src.IntN(len(pool))]
}

// Pick classifies the situation and selects an excuse from the matching pool.
// The seed is the raw situation text.
func (s *Selector) Pick(c *corpus.Corpus, situation string) (string, Classification) {
	cl := Classify(c, situation)
	return s.Select(Pool(c, cl), situation), cl
}

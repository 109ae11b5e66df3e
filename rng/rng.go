// Package rng generates shuffled bags of piece kinds from an injected
// uniform random source, mirroring the teacher's pattern of taking a
// *rand.Rand (engine/zobrist.go, engine/attack.go) rather than reaching
// for the global math/rand functions.
package rng

import "github.com/s-shin/stacker-core/piece"

// Source is the minimal uniform PRNG surface this package needs;
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Uint64() uint64
}

// BagGenerator produces one independent uniform shuffle of the seven
// piece kinds per Generate call (a "7-bag"), per SPEC_FULL.md's random
// piece generator component.
type BagGenerator struct {
	src Source
}

// NewBagGenerator wraps src.
func NewBagGenerator(src Source) *BagGenerator {
	return &BagGenerator{src: src}
}

// Generate returns the next bag: a Fisher-Yates shuffle of all seven
// kinds.
func (g *BagGenerator) Generate() []piece.Kind {
	bag := make([]piece.Kind, piece.NumKinds)
	for i := range bag {
		bag[i] = piece.Kind(i)
	}
	for i := len(bag) - 1; i > 0; i-- {
		j := int(g.src.Uint64() % uint64(i+1))
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag
}

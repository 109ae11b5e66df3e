package rng

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-shin/stacker-core/piece"
)

func TestBagGeneratorProducesAPermutationOfAllKinds(t *testing.T) {
	gen := NewBagGenerator(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		bag := gen.Generate()
		assert.ElementsMatch(t, piece.AllKinds[:], bag)
	}
}

func TestBagGeneratorVariesAcrossCalls(t *testing.T) {
	gen := NewBagGenerator(rand.New(rand.NewSource(7)))
	first := gen.Generate()
	same := true
	for i := 0; i < 50 && same; i++ {
		next := gen.Generate()
		for j := range next {
			if next[j] != first[j] {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "50 consecutive bags were all identical to the first")
}

package movesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

func emptyConfig(k piece.Kind) Config {
	o, pos := piece.Default.SpawnPlacement(k)
	return Config{
		Playfield: tetris.NewPlayfield(),
		Kind:      k,
		Source:    tetris.NewPlacement(o, pos),
		Rules:     tetris.DefaultRules,
	}
}

// TestBruteForceIsClosedUnderTheMoveSet is spec.md §8's reachability
// closure invariant: for every found placement, every unit move that
// CanPut accepts from it must already be in found.
func TestBruteForceIsClosedUnderTheMoveSet(t *testing.T) {
	cfg := emptyConfig(piece.T)
	reach := BruteForce(cfg)
	for _, p := range reach.Placements() {
		for _, move := range unitMoves {
			next, ok := tetris.TryMove(cfg.Kind, p, move, cfg.Playfield, cfg.Rules)
			if !ok {
				continue
			}
			assert.True(t, reach.Has(next), "move %v from %v produced %v, not in found", move, p, next)
		}
	}
}

// TestSearchResultGetReconstructsAReplayablePath is spec.md §8: get(dst)
// is defined iff dst was found, and the reconstructed path, replayed
// from source, ends at dst.
func TestSearchResultGetReconstructsAReplayablePath(t *testing.T) {
	cfg := emptyConfig(piece.T)
	reach := BruteForce(cfg)

	for _, dst := range reach.Placements() {
		path, ok := reach.Get(dst)
		require.True(t, ok)
		assert.Equal(t, dst, path.Final())
		assert.Equal(t, cfg.Source, path.Initial)

		cur := cfg.Source
		for _, item := range path.Items {
			next, ok := tetris.TryMove(cfg.Kind, cur, item.Move, cfg.Playfield, cfg.Rules)
			require.True(t, ok)
			cur = next
		}
		assert.Equal(t, dst, cur)
	}
}

func TestSearchResultGetFailsForAnUnreachedPlacement(t *testing.T) {
	cfg := emptyConfig(piece.T)
	reach := BruteForce(cfg)
	far := tetris.NewPlacement(cfg.Source.Orientation, cfg.Source.Position.Add(grid.Pos(1000, 1000)))
	_, ok := reach.Get(far)
	assert.False(t, ok)
}

// TestBruteForceIPieceOnEmptyFieldFindsAtLeast34Placements is spec.md
// §8 scenario 5's lower bound: brute-force on an empty field with piece
// I returns at least 34 reachable placements.
func TestBruteForceIPieceOnEmptyFieldFindsAtLeast34Placements(t *testing.T) {
	cfg := emptyConfig(piece.I)
	reach := BruteForce(cfg)
	assert.GreaterOrEqual(t, len(reach.Placements()), 34)
}

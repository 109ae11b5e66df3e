package movesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// TestAStarPathReplaysToDestination checks that the path AStar returns,
// applied move by move from cfg.Source via TryMove, actually lands on
// dst — the same replayability property bruteforce_test.go checks for
// SearchResult.Get.
func TestAStarPathReplaysToDestination(t *testing.T) {
	cfg := emptyConfig(piece.T)
	reach := BruteForce(cfg)

	var dst tetris.Placement
	found := false
	for _, p := range reach.Placements() {
		if p != cfg.Source {
			dst = p
			found = true
			break
		}
	}
	require.True(t, found, "brute force must find at least one non-source placement on an empty field")

	path, ok := AStar(cfg, dst)
	require.True(t, ok)
	assert.Equal(t, dst, path.Final())

	cur := cfg.Source
	for _, item := range path.Items {
		next, ok := tetris.TryMove(cfg.Kind, cur, item.Move, cfg.Playfield, cfg.Rules)
		require.True(t, ok, "move %v from %v must be legal", item.Move, cur)
		assert.Equal(t, item.Result, next)
		cur = next
	}
	assert.Equal(t, dst, cur)
}

func TestAStarFailsForAnUnreachablePlacement(t *testing.T) {
	cfg := emptyConfig(piece.T)
	far := tetris.NewPlacement(cfg.Source.Orientation, cfg.Source.Position.Add(grid.Pos(1000, 1000)))
	_, ok := AStar(cfg, far)
	assert.False(t, ok)
}

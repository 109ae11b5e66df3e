package movesearch

import "github.com/s-shin/stacker-core/tetris"

// noop represents "skip this stage" within a plan's candidate list.
func noop(kind tetris.MoveKind) tetris.Move { return tetris.Move{Kind: kind, N: 0} }

func shiftToWallStage() []tetris.Move {
	return []tetris.Move{noop(tetris.MoveShift), tetris.ShiftToWall(-1), tetris.ShiftToWall(1)}
}

func rotateStage() []tetris.Move {
	return []tetris.Move{noop(tetris.MoveRotate), tetris.Rotate(1), tetris.Rotate(-1), tetris.Rotate(2)}
}

// fingerShiftStage covers the small interior adjustments a player makes
// after DAS-ing to a wall, without the full brute-force wiggle search.
func fingerShiftStage() []tetris.Move {
	moves := make([]tetris.Move, 0, 9)
	for n := -4; n <= 4; n++ {
		moves = append(moves, tetris.Shift(n))
	}
	return moves
}

func dropStage() []tetris.Move {
	return []tetris.Move{tetris.FirmDropMove}
}

func dasStages() [][]tetris.Move {
	return [][]tetris.Move{shiftToWallStage(), rotateStage(), fingerShiftStage(), dropStage(), rotateStage()}
}

func edgeStages() [][]tetris.Move {
	return [][]tetris.Move{rotateStage(), shiftToWallStage(), dropStage(), rotateStage()}
}

// runPlan executes the Cartesian product of stages from cfg.Source,
// recording every intermediate placement reached into result. A
// no-op (N==0) candidate skips its stage without consuming a move.
func runPlan(cfg Config, result *SearchResult, stages [][]tetris.Move) {
	var rec func(cur tetris.Placement, stageIdx int)
	rec = func(cur tetris.Placement, stageIdx int) {
		if stageIdx == len(stages) {
			return
		}
		for _, mv := range stages[stageIdx] {
			if mv.N == 0 {
				rec(cur, stageIdx+1)
				continue
			}
			next, ok := tetris.TryMove(cfg.Kind, cur, mv, cfg.Playfield, cfg.Rules)
			if !ok {
				continue
			}
			result.record(next, mv, cur)
			rec(next, stageIdx+1)
		}
	}
	rec(cfg.Source, 0)
}

// HumanlyOptimized runs the DAS plan (shift-to-wall, rotate,
// finger-shift, drop, finish-rotate) and the edge plan (rotate,
// shift-to-wall, drop, finish-rotate), recording every placement either
// reaches. Fast, but misses placements that require an interior wiggle
// no finger-shift offset covers.
func HumanlyOptimized(cfg Config) *SearchResult {
	result := newSearchResult(cfg.Source)
	runPlan(cfg, result, dasStages())
	runPlan(cfg, result, edgeStages())
	return result
}

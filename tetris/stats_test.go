package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsRecordLockTalliesLinesByCountAndTSpin(t *testing.T) {
	var s Statistics
	s.RecordLock(LineClear{NumLines: 0})
	s.RecordLock(LineClear{NumLines: 2})
	s.RecordLock(LineClear{NumLines: 2, TSpin: TSpinRegular})

	assert.Equal(t, 3, s.Locks)
	assert.Equal(t, 1, s.LineClears[1][TSpinNone])
	assert.Equal(t, 1, s.LineClears[1][TSpinRegular])
}

func TestStatisticsNoteMaxTracksThePeak(t *testing.T) {
	var s Statistics
	s.NoteCombo(2)
	s.NoteCombo(5)
	s.NoteCombo(1)
	assert.Equal(t, 5, s.MaxCombo)

	s.NoteBackToBack(1)
	s.NoteBackToBack(0)
	assert.Equal(t, 1, s.MaxBackToBack)
}

func TestStatisticsSubIsComponentWiseAndNonNegativeForMonotonicInputs(t *testing.T) {
	before := Statistics{Locks: 2, Holds: 1}
	after := before
	after.RecordLock(LineClear{NumLines: 1})
	after.RecordHold()
	after.NotePerfectClear()
	after.NoteCombo(1)

	delta := after.Sub(before)
	assert.Equal(t, 1, delta.Locks)
	assert.Equal(t, 1, delta.Holds)
	assert.Equal(t, 1, delta.PerfectClears)
	assert.Equal(t, 1, delta.LineClears[0][TSpinNone])
	assert.GreaterOrEqual(t, delta.MaxCombo, 0)
	assert.GreaterOrEqual(t, delta.Locks, 0)
}

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStates(t *testing.T) {
	b, _ := mustLayout(t, []string{
		"*..",
		"...",
		"..*",
	}, Config{Lives: 1, DefuseKits: 1})

	require.True(t, b.ToggleFlag(0, 2))
	require.True(t, b.Reveal(0, 0))
	require.True(t, b.Reveal(1, 1))

	s := b.Snapshot()
	assert.Equal(t, GridInfo{
		DefusedBomb, Unknown, Flagged,
		Unknown, 2, Unknown,
		Unknown, Unknown, Unknown,
	}, s.Grid)
	assert.Equal(t, 3, s.Width)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, 1, s.Flags)
	assert.Equal(t, 1, s.RemainingBombs)
	assert.Equal(t, 6, s.SafeRemaining)
	assert.Equal(t, 0, s.DefuseKits)
	assert.Equal(t, InProgress, s.Outcome.Status)

	assert.Equal(t, "d   * \n  2   \n      \n", b.String())
}

func TestSnapshotAfterLoss(t *testing.T) {
	b, _ := mustLayout(t, []string{
		"*..",
		"...",
		"..*",
	}, Config{Lives: 1})

	require.True(t, b.Reveal(2, 2))
	s := b.Snapshot()
	assert.Equal(t, ExposedBomb, s.Grid[0])
	assert.Equal(t, ExplodedBomb, s.Grid[8])
	assert.Equal(t, Unknown, s.Grid[1])
	assert.Equal(t, Lost, s.Outcome.Status)
}

func TestSnapshotShowsFlaggedBombsAfterLoss(t *testing.T) {
	b, _ := mustLayout(t, []string{
		"*..",
		"...",
		"..*",
	}, Config{Lives: 1})

	require.True(t, b.ToggleFlag(0, 0))
	require.True(t, b.ToggleFlag(0, 1))
	require.True(t, b.Reveal(2, 2))

	s := b.Snapshot()
	assert.Equal(t, CorrectFlag, s.Grid[0])
	assert.Equal(t, Flagged, s.Grid[1], "a wrong flag stays a flag")
	assert.Equal(t, ExplodedBomb, s.Grid[8])
	assert.Equal(t, "B *   \n", b.String()[:7])
}

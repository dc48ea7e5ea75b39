package adventure

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

var tiny = Settings{
	Waves:       2,
	Width:       3,
	Height:      3,
	BaseBombs:   1,
	BombsStep:   1,
	Lives:       1,
	Scrap:       10,
	ScrapReward: 5,
	RerollCost:  2,
	ShopSize:    6,
}

func newRun(t *testing.T, class Class, settings Settings) *Run {
	t.Helper()
	return New(class, settings, rand.New(rand.NewPCG(1, 2)))
}

// clearWave opens every safe tile until the board is decided.
func clearWave(t *testing.T, b *board.Board) {
	t.Helper()
	for r := range b.Rows() {
		for c := range b.Cols() {
			tile, _ := b.Tile(r, c)
			if !b.Locked() && !tile.IsBomb() && !tile.Revealed() {
				b.Reveal(r, c)
			}
		}
	}
	require.Equal(t, board.Won, b.Outcome().Status)
}

func hitBomb(t *testing.T, b *board.Board) {
	t.Helper()
	for r := range b.Rows() {
		for c := range b.Cols() {
			if tile, _ := b.Tile(r, c); tile.IsBomb() && !tile.Revealed() {
				require.True(t, b.Reveal(r, c))
				return
			}
		}
	}
	t.Fatal("no hidden bomb")
}

func TestParseClass(t *testing.T) {
	c, err := ParseClass("knight")
	require.NoError(t, err)
	assert.Equal(t, Knight, c)
	assert.Equal(t, abilities.Counts{Shields: 3}, c.Charges())

	c, err = ParseClass("")
	require.NoError(t, err)
	assert.Equal(t, Investigator, c)
	assert.Equal(t, abilities.Counts{Scans: 3}, c.Charges())

	_, err = ParseClass("bard")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestBombsForWave(t *testing.T) {
	r := newRun(t, Investigator, DefaultSettings)
	assert.Equal(t, 10, r.BombsForWave(1))
	assert.Equal(t, 12, r.BombsForWave(2))
	assert.Equal(t, 28, r.BombsForWave(10))

	crowded := tiny
	crowded.BombsStep = 5
	r = newRun(t, Investigator, crowded)
	assert.Equal(t, 6, r.BombsForWave(2))
	assert.Equal(t, 8, r.BombsForWave(3), "capped at tiles-1")
}

func TestRunToCompletion(t *testing.T) {
	r := newRun(t, Investigator, tiny)
	assert.Equal(t, Ready, r.Phase())
	assert.NotEqual(t, uuid.Nil, r.ID)

	b, _, err := r.StartWave()
	require.NoError(t, err)
	assert.Equal(t, Playing, r.Phase())
	assert.Equal(t, 1, b.BombsTotal())
	assert.False(t, r.Abilities().Locked())

	_, _, err = r.StartWave()
	assert.ErrorIs(t, err, ErrWrongPhase)

	clearWave(t, b)
	assert.Equal(t, Shopping, r.Phase())
	assert.Equal(t, 2, r.Wave())
	assert.Equal(t, 15, r.Scrap())
	assert.Len(t, r.Offer(), 6)
	assert.True(t, r.Abilities().Locked())

	b, _, err = r.StartWave()
	require.NoError(t, err)
	assert.Equal(t, 2, b.BombsTotal())
	clearWave(t, b)
	assert.Equal(t, Complete, r.Phase())
	assert.Equal(t, 15, r.Scrap(), "the last wave pays nothing")

	_, _, err = r.StartWave()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestRunFailsOnLoss(t *testing.T) {
	r := newRun(t, Investigator, tiny)
	b, _, err := r.StartWave()
	require.NoError(t, err)

	hitBomb(t, b)
	assert.Equal(t, Failed, r.Phase())
	assert.Equal(t, 0, r.LivesLeft())
	assert.ErrorIs(t, r.Buy(Catalog[0].Key), ErrShopClosed)
}

func TestLivesCarryOver(t *testing.T) {
	settings := tiny
	settings.Lives = 2
	settings.BaseBombs = 2
	settings.Width, settings.Height = 4, 4
	r := newRun(t, Investigator, settings)

	b, _, err := r.StartWave()
	require.NoError(t, err)
	hitBomb(t, b)
	assert.Equal(t, 1, r.LivesLeft())
	clearWave(t, b)
	require.Equal(t, Shopping, r.Phase())

	b, _, err = r.StartWave()
	require.NoError(t, err)
	assert.Equal(t, 2, b.LivesTotal())
	assert.Equal(t, 1, b.LivesLeft())
}

func TestKnightShieldsCarryOver(t *testing.T) {
	settings := tiny
	settings.Width, settings.Height = 4, 4
	r := newRun(t, Knight, settings)

	b, _, err := r.StartWave()
	require.NoError(t, err)
	require.NoError(t, r.Abilities().UseShield())
	require.NoError(t, r.Abilities().UseShield())
	assert.Equal(t, 2, b.ShieldsLeft())

	hitBomb(t, b)
	assert.Equal(t, 1, r.State().Shields)
	assert.Equal(t, 1, r.LivesLeft())
	clearWave(t, b)

	b, _, err = r.StartWave()
	require.NoError(t, err)
	assert.Equal(t, 1, b.ShieldsLeft())
	assert.Equal(t, 1, r.Abilities().Counts().Shields)
}

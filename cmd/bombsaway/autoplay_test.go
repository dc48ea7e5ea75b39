package main

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/adventure"
	"github.com/vancomm/bombsaway/internal/board"
)

func TestAutoplayDecidesBoard(t *testing.T) {
	for i := range uint64(20) {
		rnd := rand.New(rand.NewPCG(i, 0))
		bus := board.NewEventBus()
		b, err := board.New(board.Config{Width: 9, Height: 9, Bombs: 10, Lives: 2}, rnd, bus)
		require.NoError(t, err)
		m := abilities.NewManager(abilities.Counts{Scans: 1, Reveals: 1, Flags: 1, Shields: 1, Echoes: 1}, 0)
		m.Attach(b, bus)

		require.NoError(t, autoplay(context.Background(), b, m, rnd))
		assert.True(t, b.Locked())
		assert.NotEqual(t, board.InProgress, b.Outcome().Status)
		assert.Equal(t, 0, m.Counts().Scans, "scan is spent on the opening move")
	}
}

func TestAutoplayStopsOnCancel(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	b, err := board.New(board.Config{Width: 9, Height: 9, Bombs: 10, Lives: 1}, rnd, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, autoplay(ctx, b, abilities.NewManager(abilities.Counts{}, 0), rnd), context.Canceled)
}

func TestPlayRunEnds(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 3))
	run := adventure.New(adventure.Knight, adventure.DefaultSettings, rnd)
	require.NoError(t, playRun(context.Background(), run, rnd))
	assert.Contains(t, []adventure.Phase{adventure.Complete, adventure.Failed}, run.Phase())
}

func TestShopBuysCheapestFirst(t *testing.T) {
	settings := adventure.DefaultSettings
	settings.Width, settings.Height, settings.BaseBombs = 4, 4, 1
	rnd := rand.New(rand.NewPCG(5, 5))
	run := adventure.New(adventure.Investigator, settings, rnd)

	b, _, err := run.StartWave()
	require.NoError(t, err)
	for r := range b.Rows() {
		for c := range b.Cols() {
			if tile, _ := b.Tile(r, c); !tile.IsBomb() && !b.Locked() {
				b.Reveal(r, c)
			}
		}
	}
	require.Equal(t, adventure.Shopping, run.Phase())
	before := run.Scrap()

	shop(run)
	assert.Less(t, run.Scrap(), before)
	for _, it := range run.Offer() {
		if !run.Purchased(it.Key) {
			assert.Greater(t, it.Cost, run.Scrap(), "%s was affordable", it.Key)
		}
	}
}

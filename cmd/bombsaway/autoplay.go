package main

import (
	"context"
	"math/rand/v2"

	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
)

// autoplay drives a board to an outcome: abilities first while they have a
// target, otherwise a random closed tile.
func autoplay(ctx context.Context, b *board.Board, m *abilities.Manager, rnd *rand.Rand) error {
	for !b.Locked() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if useAbility(b, m) {
			continue
		}
		var closed []board.Point
		for r := range b.Rows() {
			for c := range b.Cols() {
				if t, _ := b.Tile(r, c); !t.Revealed() && !t.Flagged() {
					closed = append(closed, board.Point{Row: r, Col: c})
				}
			}
		}
		if len(closed) == 0 {
			break
		}
		p := closed[rnd.IntN(len(closed))]
		b.Reveal(p.Row, p.Col)
	}
	return nil
}

func useAbility(b *board.Board, m *abilities.Manager) bool {
	switch {
	case m.Available(abilities.Scan) && !b.Started():
		return m.UseScan() == nil
	case m.Available(abilities.Shield) && b.ShieldsLeft() == 0:
		return m.UseShield() == nil
	case m.Available(abilities.Flag):
		return m.UseFlag() == nil
	case m.Available(abilities.Reveal):
		return m.UseReveal() == nil
	case m.Available(abilities.Scan):
		return m.UseScan() == nil
	}
	return false
}

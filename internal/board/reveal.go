package board

import "github.com/sirupsen/logrus"

// Reveal opens the tile at r, c. Flagged, revealed and out-of-range tiles and
// locked boards are left untouched and Reveal reports false.
func (b *Board) Reveal(r, c int) bool {
	return b.run("reveal", func() bool {
		return b.reveal(r, c)
	})
}

func (b *Board) reveal(r, c int) bool {
	if b.locked || !b.InBounds(r, c) {
		return false
	}
	t := b.at(r, c)
	if t.flagged || t.revealed {
		return false
	}

	if !b.firstRevealDone {
		b.firstRevealDone = true
		b.emit(Event{Kind: FirstReveal})
	}

	if t.kind == Bomb {
		b.hitBomb(r, c)
		return true
	}

	b.flood(r, c)
	b.evaluate()
	return true
}

// hitBomb spends a defuse kit, then a shield, then a life.
func (b *Board) hitBomb(r, c int) {
	t := b.at(r, c)
	t.open(0)
	b.revealedBombs++
	b.lastBombHit = &Point{r, c}

	var spent string
	switch {
	case b.defuseKits > 0:
		b.defuseKits--
		t.defused = true
		spent = "defuse_kit"
		b.emit(Event{Kind: DefuseChanged, Left: b.defuseKits})
	case b.shieldsLeft > 0:
		b.shieldsLeft--
		spent = "shield"
		b.emit(Event{Kind: ShieldChanged, Left: b.shieldsLeft})
	default:
		b.livesLeft--
		spent = "life"
		b.emit(Event{Kind: LivesChanged, Left: b.livesLeft})
	}
	b.emitFlags()

	Log.WithFields(logrus.Fields{
		"at":         Point{r, c},
		"spent":      spent,
		"lives_left": b.livesLeft,
	}).Debug("bomb hit")

	switch {
	case b.safeRemaining == 0:
		if b.livesLeft > 0 {
			b.win(true, false)
		} else {
			b.lose()
		}
	case b.livesLeft <= 0:
		b.lose()
	default:
		b.evaluate()
	}
}

type floodStep struct {
	Point
	depth int
}

// flood opens r, c and spreads from every empty tile it reaches into the
// non-bomb neighbours. Flagged tiles stop the spread, revealed ones are
// skipped.
func (b *Board) flood(r, c int) {
	queue := []floodStep{{Point{r, c}, 0}}
	for len(queue) > 0 {
		step := queue[0]
		queue = queue[1:]

		t := b.at(step.Row, step.Col)
		if t.flagged || t.revealed {
			continue
		}
		t.open(step.depth)
		b.safeRemaining--

		if t.kind != Empty {
			continue
		}
		b.forNeighbors(step.Row, step.Col, func(rr, cc int) {
			n := b.at(rr, cc)
			if n.kind == Bomb || n.revealed || n.flagged {
				return
			}
			queue = append(queue, floodStep{Point{rr, cc}, step.depth + 1})
		})
	}
}

package board

import "github.com/sirupsen/logrus"

// evaluate applies the win rules after a mutation. The two scan-based rules
// overlap; both are checked on purpose because flags and revealed bombs are
// counted separately.
func (b *Board) evaluate() {
	if b.locked {
		return
	}
	if b.safeRemaining == 0 {
		b.win(false, false)
		return
	}

	correctFlags, accountedBombs := b.bombTally()
	if correctFlags == b.bombsTotal && b.flagCount == b.bombsTotal {
		b.win(false, true)
	}
	if accountedBombs == b.bombsTotal {
		b.win(false, true)
	}
}

func (b *Board) bombTally() (correctFlags, accountedBombs int) {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.kind != Bomb {
			continue
		}
		if t.flagged {
			correctFlags++
		}
		if t.flagged || t.revealed {
			accountedBombs++
		}
	}
	return
}

func (b *Board) win(scraped, revealSafe bool) {
	if b.locked {
		return
	}
	flagsBefore := b.flagCount
	if revealSafe {
		b.revealAllSafe()
	}
	b.locked = true
	b.outcome = Outcome{Status: Won, Scraped: scraped}
	b.flagAllBombs()
	if b.flagCount != flagsBefore {
		b.emitFlags()
	}

	Log.WithFields(logrus.Fields{
		"scraped":    scraped,
		"lives_left": b.livesLeft,
	}).Debug("board won")

	b.emit(Event{Kind: Win, Scraped: scraped})
}

// revealAllSafe opens every remaining safe tile. A wrongly flagged safe tile
// loses its flag when it is opened.
func (b *Board) revealAllSafe() {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.kind == Bomb || t.revealed {
			continue
		}
		if t.flagged {
			t.flagged = false
			b.flagCount--
		}
		t.open(0)
		b.safeRemaining--
	}
}

func (b *Board) flagAllBombs() {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.kind == Bomb && !t.flagged {
			t.flagged = true
			b.flagCount++
		}
	}
}

// lose locks the board and exposes every bomb for display. Counters are not
// touched.
func (b *Board) lose() {
	if b.locked {
		return
	}
	b.locked = true
	b.outcome = Outcome{Status: Lost}
	for i := range b.tiles {
		if b.tiles[i].kind == Bomb {
			b.tiles[i].exposed = true
		}
	}

	Log.WithField("revealed_bombs", b.revealedBombs).Debug("board lost")

	b.emit(Event{Kind: Loss})
}

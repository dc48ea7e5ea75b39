package board

// place marks bombsTotal distinct tiles as bombs by sampling coordinates and
// skipping ones already taken. Config validation guarantees a safe tile
// remains, so the loop terminates.
func (b *Board) place() {
	attempts := 0
	for placed := 0; placed < b.bombsTotal; {
		attempts++
		r, c := b.rnd.IntN(b.rows), b.rnd.IntN(b.cols)
		if t := b.at(r, c); t.kind != Bomb {
			t.kind = Bomb
			placed++
		}
	}
	Log.WithField("attempts", attempts).Debug("bombs placed")
}

func (b *Board) computeAdjacency() {
	for r := range b.rows {
		for c := range b.cols {
			t := b.at(r, c)
			if t.kind == Bomb {
				continue
			}
			n := 0
			b.forNeighbors(r, c, func(rr, cc int) {
				if b.at(rr, cc).kind == Bomb {
					n++
				}
			})
			t.adjacent = n
			if n > 0 {
				t.kind = Number
			} else {
				t.kind = Empty
			}
		}
	}
}

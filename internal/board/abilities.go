package board

import (
	"cmp"
	"slices"
)

// revealTarget reports whether a tile may be opened by an ability.
func (t *Tile) revealTarget() bool {
	return t.kind != Bomb && !t.revealed && !t.flagged
}

func (t *Tile) inEmptyCluster() bool {
	return t.kind == Empty && !t.revealed && !t.flagged
}

func (b *Board) HasEmptyClusters() bool {
	return slices.ContainsFunc(b.tiles, func(t Tile) bool { return t.inEmptyCluster() })
}

func (b *Board) HasRevealTargets() bool {
	return slices.ContainsFunc(b.tiles, func(t Tile) bool { return t.revealTarget() })
}

func (b *Board) HasFlagTargets() bool {
	return slices.ContainsFunc(b.tiles, func(t Tile) bool {
		return t.kind == Bomb && !t.flagged && !t.revealed
	})
}

func (b *Board) HasEchoTargets() bool {
	return slices.ContainsFunc(b.tiles, func(t Tile) bool {
		return !t.revealed && !t.flagged
	})
}

// largestEmptyClusters returns every maximal cluster of unopened empty tiles
// of the largest size found. Bombs, numbers, flags and revealed tiles all act
// as walls.
func (b *Board) largestEmptyClusters() [][]Point {
	var (
		visited = make([]bool, len(b.tiles))
		best    [][]Point
		size    int
	)
	for i := range b.tiles {
		if visited[i] || !b.tiles[i].inEmptyCluster() {
			continue
		}
		start := b.point(i)
		cluster := []Point{start}
		visited[i] = true
		for head := 0; head < len(cluster); head++ {
			cur := cluster[head]
			b.forNeighbors(cur.Row, cur.Col, func(rr, cc int) {
				j := rr*b.cols + cc
				if visited[j] || !b.tiles[j].inEmptyCluster() {
					return
				}
				visited[j] = true
				cluster = append(cluster, Point{rr, cc})
			})
		}

		switch {
		case len(cluster) > size:
			size = len(cluster)
			best = [][]Point{cluster}
		case len(cluster) == size:
			best = append(best, cluster)
		}
	}
	return best
}

// ScanLargestCluster opens one of the largest empty clusters, chosen
// uniformly among clusters of equal size.
func (b *Board) ScanLargestCluster() bool {
	return b.run("scan", func() bool {
		if b.locked {
			return false
		}
		clusters := b.largestEmptyClusters()
		if len(clusters) == 0 {
			return false
		}
		seed := pick(b.rnd, clusters)[0]
		return b.reveal(seed.Row, seed.Col)
	})
}

// RevealHighestNumber opens the safe tile with the most bomb neighbours,
// chosen uniformly among ties.
func (b *Board) RevealHighestNumber() bool {
	return b.run("reveal_highest", func() bool {
		if b.locked {
			return false
		}
		var (
			candidates []Point
			best       = -1
		)
		for i := range b.tiles {
			t := &b.tiles[i]
			if !t.revealTarget() {
				continue
			}
			switch {
			case t.adjacent > best:
				best = t.adjacent
				candidates = append(candidates[:0], b.point(i))
			case t.adjacent == best:
				candidates = append(candidates, b.point(i))
			}
		}
		if len(candidates) == 0 {
			return false
		}
		p := pick(b.rnd, candidates)
		return b.reveal(p.Row, p.Col)
	})
}

// RevealRandomSafeTile opens a uniformly chosen safe tile.
func (b *Board) RevealRandomSafeTile() bool {
	return b.run("reveal_random", func() bool {
		if b.locked {
			return false
		}
		candidates := b.collect(func(t *Tile) bool { return t.revealTarget() })
		if len(candidates) == 0 {
			return false
		}
		p := pick(b.rnd, candidates)
		return b.reveal(p.Row, p.Col)
	})
}

// FlagRandomBomb flags a uniformly chosen bomb that is neither flagged nor
// revealed.
func (b *Board) FlagRandomBomb() bool {
	return b.run("flag_random", func() bool {
		if b.locked {
			return false
		}
		bombs := b.collect(func(t *Tile) bool {
			return t.kind == Bomb && !t.flagged && !t.revealed
		})
		if len(bombs) == 0 {
			return false
		}
		p := pick(b.rnd, bombs)
		b.at(p.Row, p.Col).flagged = true
		b.flagCount++
		b.emitFlags()
		b.evaluate()
		return true
	})
}

// EchoCross lists the in-grid cells of the plus shape centred on r, c.
func (b *Board) EchoCross(r, c int) []Point {
	cells := make([]Point, 0, 5)
	for _, p := range []Point{{r, c}, {r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}} {
		if b.InBounds(p.Row, p.Col) {
			cells = append(cells, p)
		}
	}
	return cells
}

// ProbeEchoCross counts the bombs in the plus shape centred on an unopened,
// unflagged tile. It does not change the board.
func (b *Board) ProbeEchoCross(r, c int) (bombs int, ok bool) {
	if b.locked || b.busy || !b.InBounds(r, c) {
		return 0, false
	}
	if t := b.at(r, c); t.revealed || t.flagged {
		return 0, false
	}
	for _, p := range b.EchoCross(r, c) {
		if b.at(p.Row, p.Col).kind == Bomb {
			bombs++
		}
	}
	return bombs, true
}

// AddShield arms one more shield.
func (b *Board) AddShield() bool {
	if b.busy {
		Log.WithField("command", "shield").Warn("reentrant board command ignored")
		return false
	}
	if b.locked {
		return false
	}
	b.shieldsLeft++
	b.busy = true
	defer func() { b.busy = false }()
	b.emit(Event{Kind: ShieldChanged, Left: b.shieldsLeft})
	return true
}

// HighlightDangerTiles returns the max(1, n) safe unopened tiles with the
// highest adjacency counts, ties in random order. It does not change the
// board.
func (b *Board) HighlightDangerTiles(n int) []Point {
	if b.locked {
		return nil
	}
	candidates := b.collect(func(t *Tile) bool { return t.revealTarget() })
	if len(candidates) == 0 {
		return nil
	}
	b.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	slices.SortStableFunc(candidates, func(p, q Point) int {
		return cmp.Compare(b.at(q.Row, q.Col).adjacent, b.at(p.Row, p.Col).adjacent)
	})
	return candidates[:min(max(1, n), len(candidates))]
}

func (b *Board) collect(keep func(*Tile) bool) []Point {
	var points []Point
	for i := range b.tiles {
		if keep(&b.tiles[i]) {
			points = append(points, b.point(i))
		}
	}
	return points
}

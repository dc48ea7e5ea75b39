package board

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Point struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Outcome struct {
	Status  Status `json:"status"`
	Scraped bool   `json:"scraped,omitempty"`
}

// Board is a single minesweeper round. It is not safe for concurrent use:
// callers that share a board between goroutines must serialise commands.
type Board struct {
	rows, cols int
	tiles      []Tile

	bombsTotal  int
	livesTotal  int
	livesLeft   int
	shieldsLeft int
	defuseKits  int

	flagCount     int
	revealedBombs int
	safeRemaining int

	locked          bool
	firstRevealDone bool
	outcome         Outcome
	lastBombHit     *Point

	rnd  *rand.Rand
	bus  *EventBus
	busy bool
}

// NewRand returns a generator seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New validates cfg, places the bombs using rnd and computes adjacency.
// rnd may be nil, in which case a freshly seeded generator is used; bus may
// be nil when nobody listens.
func New(cfg Config, rnd *rand.Rand, bus *EventBus) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(cfg, rnd, bus)
	b.place()
	b.computeAdjacency()

	Log.WithFields(logrus.Fields{
		"config": cfg.Key(),
		"lives":  cfg.Lives,
	}).Debug("board ready")

	return b, nil
}

func newBoard(cfg Config, rnd *rand.Rand, bus *EventBus) *Board {
	if rnd == nil {
		rnd = NewRand()
	}
	livesLeft := cfg.Lives
	if cfg.LivesLeft > 0 {
		livesLeft = cfg.LivesLeft
	}
	return &Board{
		rows:          cfg.Height,
		cols:          cfg.Width,
		tiles:         make([]Tile, cfg.Cells()),
		bombsTotal:    cfg.Bombs,
		livesTotal:    cfg.Lives,
		livesLeft:     livesLeft,
		shieldsLeft:   cfg.Shields,
		defuseKits:    cfg.DefuseKits,
		safeRemaining: cfg.Cells() - cfg.Bombs,
		rnd:           rnd,
		bus:           bus,
	}
}

func (b *Board) Rows() int          { return b.rows }
func (b *Board) Cols() int          { return b.cols }
func (b *Board) BombsTotal() int    { return b.bombsTotal }
func (b *Board) LivesTotal() int    { return b.livesTotal }
func (b *Board) LivesLeft() int     { return b.livesLeft }
func (b *Board) ShieldsLeft() int   { return b.shieldsLeft }
func (b *Board) DefuseKits() int    { return b.defuseKits }
func (b *Board) FlagCount() int     { return b.flagCount }
func (b *Board) RevealedBombs() int { return b.revealedBombs }
func (b *Board) SafeRemaining() int { return b.safeRemaining }
func (b *Board) Locked() bool       { return b.locked }
func (b *Board) Outcome() Outcome   { return b.outcome }

// Started reports whether a tile has been opened yet.
func (b *Board) Started() bool { return b.firstRevealDone }

// LastBombHit is the most recently detonated or defused bomb, if any.
func (b *Board) LastBombHit() (Point, bool) {
	if b.lastBombHit == nil {
		return Point{}, false
	}
	return *b.lastBombHit, true
}

// RemainingBombs is the bomb count shown next to the flag counter.
func (b *Board) RemainingBombs() int {
	return max(b.bombsTotal-b.revealedBombs, 0)
}

func (b *Board) InBounds(r, c int) bool {
	return 0 <= r && r < b.rows && 0 <= c && c < b.cols
}

// Tile returns a copy of the tile at r, c.
func (b *Board) Tile(r, c int) (Tile, bool) {
	if !b.InBounds(r, c) {
		return Tile{}, false
	}
	return b.tiles[r*b.cols+c], true
}

func (b *Board) at(r, c int) *Tile {
	return &b.tiles[r*b.cols+c]
}

func (b *Board) point(i int) Point {
	return Point{i / b.cols, i % b.cols}
}

// forNeighbors calls fn for each in-grid 8-neighbour of r, c.
func (b *Board) forNeighbors(r, c int, fn func(rr, cc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if rr, cc := r+dr, c+dc; b.InBounds(rr, cc) {
				fn(rr, cc)
			}
		}
	}
}

func (b *Board) emit(e Event) {
	b.bus.Emit(e)
}

func (b *Board) emitFlags() {
	b.emit(Event{
		Kind:           FlagsChanged,
		Flags:          b.flagCount,
		RemainingBombs: b.RemainingBombs(),
	})
}

// run executes a mutating command. Commands issued from inside an event
// handler are rejected. A successful command ends with BoardChanged.
func (b *Board) run(name string, op func() bool) bool {
	if b.busy {
		Log.WithField("command", name).Warn("reentrant board command ignored")
		return false
	}
	b.busy = true
	defer func() { b.busy = false }()

	if !op() {
		Log.WithField("command", name).Debug("command not applied")
		return false
	}
	b.emit(Event{Kind: BoardChanged})
	return true
}

// ToggleFlag flags or unflags an unrevealed tile.
func (b *Board) ToggleFlag(r, c int) bool {
	return b.run("flag", func() bool {
		if b.locked || !b.InBounds(r, c) {
			return false
		}
		t := b.at(r, c)
		if !t.toggleFlag() {
			return false
		}
		if t.flagged {
			b.flagCount++
		} else {
			b.flagCount--
		}
		b.emitFlags()
		b.evaluate()
		return true
	})
}

// pick returns a uniformly chosen element of items.
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

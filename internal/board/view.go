package board

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	DefusedBomb  CellState = 64
	ExplodedBomb CellState = 65
	CorrectFlag  CellState = 66 // flagged bomb, shown after the game was lost
	ExposedBomb  CellState = 67 // shown after the game was lost
	// 0-8 for an opened safe tile with the given number of bomb neighbours
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return " "
	case Flagged:
		return "*"
	case DefusedBomb:
		return "d"
	case ExplodedBomb, CorrectFlag, ExposedBomb:
		return "B"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (t Tile) State() CellState {
	switch {
	case t.exposed && t.kind == Bomb && t.flagged && !t.revealed:
		return CorrectFlag
	case t.flagged && !t.revealed:
		return Flagged
	case !t.Exposed():
		return Unknown
	case t.kind == Bomb && t.defused:
		return DefusedBomb
	case t.kind == Bomb && t.revealed:
		return ExplodedBomb
	case t.kind == Bomb:
		return ExposedBomb
	default:
		return CellState(t.adjacent)
	}
}

type GridInfo []CellState

func (g GridInfo) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Snapshot is the player-visible state of a board.
type Snapshot struct {
	Grid           GridInfo `json:"grid"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Bombs          int      `json:"bombs"`
	Flags          int      `json:"flags"`
	RemainingBombs int      `json:"remaining_bombs"`
	SafeRemaining  int      `json:"safe_remaining"`
	LivesTotal     int      `json:"lives_total"`
	LivesLeft      int      `json:"lives_left"`
	ShieldsLeft    int      `json:"shields_left"`
	DefuseKits     int      `json:"defuse_kits"`
	Outcome        Outcome  `json:"outcome"`
}

func (b *Board) Snapshot() Snapshot {
	grid := make(GridInfo, len(b.tiles))
	for i, t := range b.tiles {
		grid[i] = t.State()
	}
	return Snapshot{
		Grid:           grid,
		Width:          b.cols,
		Height:         b.rows,
		Bombs:          b.bombsTotal,
		Flags:          b.flagCount,
		RemainingBombs: b.RemainingBombs(),
		SafeRemaining:  b.safeRemaining,
		LivesTotal:     b.livesTotal,
		LivesLeft:      b.livesLeft,
		ShieldsLeft:    b.shieldsLeft,
		DefuseKits:     b.defuseKits,
		Outcome:        b.outcome,
	}
}

// [Board] implements [fmt.Stringer]
func (b *Board) String() string {
	return b.Snapshot().Grid.ToString(b.cols)
}

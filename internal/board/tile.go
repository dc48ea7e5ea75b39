package board

type Kind int8

const (
	Empty Kind = iota
	Number
	Bomb
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Bomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Tile is one cell of the grid. Its kind and adjacency count are fixed once
// the board is built; only the revealed/flagged marks change during play.
type Tile struct {
	kind     Kind
	adjacent int
	revealed bool
	flagged  bool
	defused  bool
	exposed  bool // set on loss for display, never counted
	depth    int
}

func (t Tile) Kind() Kind     { return t.kind }
func (t Tile) IsBomb() bool   { return t.kind == Bomb }
func (t Tile) Adjacent() int  { return t.adjacent }
func (t Tile) Revealed() bool { return t.revealed }
func (t Tile) Flagged() bool  { return t.flagged }
func (t Tile) Defused() bool  { return t.defused }

// Exposed reports whether the tile should be drawn open: it was revealed
// during play or it is a bomb shown after the game was lost.
func (t Tile) Exposed() bool { return t.revealed || t.exposed }

// FloodDepth is the distance in flood steps from the tile the player opened.
// Zero for directly opened tiles.
func (t Tile) FloodDepth() int { return t.depth }

func (t *Tile) toggleFlag() bool {
	if t.revealed {
		return false
	}
	t.flagged = !t.flagged
	return true
}

func (t *Tile) open(depth int) {
	t.revealed = true
	t.depth = depth
}

func (t Tile) String() string {
	return t.State().String()
}

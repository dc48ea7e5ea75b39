package abilities

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/bombsaway/internal/board"
)

var Log = logrus.New()

var (
	ErrLocked      = errors.New("abilities are locked")
	ErrNoCharges   = errors.New("no charges left")
	ErrNotApplied  = errors.New("ability had no effect")
	ErrNotArmed    = errors.New("echo is not armed")
	ErrUnknownKind = errors.New("unknown ability")
)

type Kind string

const (
	Scan   Kind = "scans"
	Reveal Kind = "reveals"
	Flag   Kind = "flags"
	Shield Kind = "shields"
	Echo   Kind = "echoes"
)

var Kinds = []Kind{Scan, Reveal, Flag, Shield, Echo}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Counts holds the charges left for each ability.
type Counts struct {
	Scans   int `json:"scans"`
	Reveals int `json:"reveals"`
	Flags   int `json:"flags"`
	Shields int `json:"shields"`
	Echoes  int `json:"echoes"`
}

func (c *Counts) of(kind Kind) *int {
	switch kind {
	case Scan:
		return &c.Scans
	case Reveal:
		return &c.Reveals
	case Flag:
		return &c.Flags
	case Shield:
		return &c.Shields
	case Echo:
		return &c.Echoes
	default:
		return nil
	}
}

// Get returns the charges of kind, zero for unknown kinds.
func (c Counts) Get(kind Kind) int {
	if p := c.of(kind); p != nil {
		return *p
	}
	return 0
}

// registry says when an ability has something to act on.
var registry = map[Kind]func(*board.Board) bool{
	Scan:   (*board.Board).HasEmptyClusters,
	Reveal: (*board.Board).HasRevealTargets,
	Flag:   (*board.Board).HasFlagTargets,
	Shield: func(*board.Board) bool { return true },
	Echo:   (*board.Board).HasEchoTargets,
}

package adventure

import (
	"fmt"

	"github.com/vancomm/bombsaway/internal/abilities"
)

type Class string

const (
	Investigator Class = "investigator"
	Knight       Class = "knight"
)

func ParseClass(s string) (Class, error) {
	switch c := Class(s); c {
	case Investigator, Knight:
		return c, nil
	case "":
		return Investigator, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}

// Charges is the starting loadout of the class.
func (c Class) Charges() abilities.Counts {
	if c == Knight {
		return abilities.Counts{Shields: 3}
	}
	return abilities.Counts{Scans: 3}
}

package board

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// ParseLayout reads a fixed bomb layout: one string per row, '*' for a bomb
// and '.' for a safe tile.
func ParseLayout(layout []string) (width, height int, bombs []Point, err error) {
	height = len(layout)
	if height == 0 {
		return 0, 0, nil, fmt.Errorf("%w: empty layout", ErrInvalidConfig)
	}
	width = utf8.RuneCountInString(layout[0])
	for r, line := range layout {
		row := []rune(line)
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf(
				"%w: layout row %d has %d cells, want %d",
				ErrInvalidConfig, r, len(row), width,
			)
		}
		for c, ch := range row {
			switch ch {
			case '*':
				bombs = append(bombs, Point{r, c})
			case '.':
			default:
				return 0, 0, nil, fmt.Errorf(
					"%w: unexpected %q at %d:%d", ErrInvalidConfig, ch, r, c,
				)
			}
		}
	}
	return width, height, bombs, nil
}

// FromLayout builds a board with the bombs at fixed positions instead of
// random ones. Width, Height and Bombs of cfg are taken from the layout.
// rnd still drives the abilities that pick at random.
func FromLayout(layout []string, cfg Config, rnd *rand.Rand, bus *EventBus) (*Board, error) {
	w, h, bombs, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	cfg.Width, cfg.Height, cfg.Bombs = w, h, len(bombs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(cfg, rnd, bus)
	for _, p := range bombs {
		b.at(p.Row, p.Col).kind = Bomb
	}
	b.computeAdjacency()
	return b, nil
}

// Layout renders the bomb positions in the format read by ParseLayout.
func (b *Board) Layout() []string {
	rows := make([]string, b.rows)
	for r := range b.rows {
		var sb strings.Builder
		for c := range b.cols {
			if b.at(r, c).kind == Bomb {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

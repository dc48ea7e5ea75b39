package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
)

var ErrUnknownPreset = errors.New("unknown preset")

// BoardParams is a board setup plus the starting ability charges. Shields
// counts shield charges; Armed shields are active from the first move.
type BoardParams struct {
	Width      int `schema:"width,required"`
	Height     int `schema:"height,required"`
	Bombs      int `schema:"bombs,required"`
	Lives      int `schema:"lives,required"`
	DefuseKits int `schema:"defuse_kits"`
	Armed      int `schema:"armed_shields"`
	Scans      int `schema:"scans"`
	Reveals    int `schema:"reveals"`
	Flags      int `schema:"flags"`
	Shields    int `schema:"shields"`
	Echoes     int `schema:"echoes"`
}

func ParseBoardParams(src map[string][]string) (BoardParams, error) {
	var params BoardParams
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&params, src); err != nil {
		return params, fmt.Errorf("unable to decode board params: %w", err)
	}
	return params, params.Validate()
}

func (p BoardParams) Validate() error {
	if err := p.Board().Validate(); err != nil {
		return err
	}
	charges := p.Charges()
	for _, kind := range abilities.Kinds {
		if n := charges.Get(kind); n < 0 {
			return board.ConfigError{Field: string(kind), Value: n, Reason: "must not be negative"}
		}
	}
	return nil
}

// ParseBoardQuery decodes params written as a query string, e.g.
// "width=9&height=9&bombs=10&lives=1".
func ParseBoardQuery(query string) (BoardParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return BoardParams{}, fmt.Errorf("unable to parse board query: %w", err)
	}
	return ParseBoardParams(values)
}

func (p BoardParams) Board() board.Config {
	return board.Config{
		Width:      p.Width,
		Height:     p.Height,
		Bombs:      p.Bombs,
		Lives:      p.Lives,
		Shields:    p.Armed,
		DefuseKits: p.DefuseKits,
	}
}

func (p BoardParams) Charges() abilities.Counts {
	return abilities.Counts{
		Scans:   p.Scans,
		Reveals: p.Reveals,
		Flags:   p.Flags,
		Shields: p.Shields,
		Echoes:  p.Echoes,
	}
}

var presets = map[string]BoardParams{
	"classic": {
		Width: 10, Height: 10, Bombs: 10, Lives: 1,
		Scans: 1, Reveals: 1, Flags: 1, Shields: 1, Echoes: 1,
	},
	"beginner":     {Width: 9, Height: 9, Bombs: 10, Lives: 1},
	"intermediate": {Width: 16, Height: 16, Bombs: 40, Lives: 1},
	"expert":       {Width: 30, Height: 16, Bombs: 99, Lives: 1},
}

func Preset(name string) (BoardParams, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return BoardParams{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

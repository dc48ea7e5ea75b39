package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
)

func TestParseBoardQuery(t *testing.T) {
	p, err := ParseBoardQuery("width=9&height=8&bombs=10&lives=2&defuse_kits=1&scans=2&echoes=1&theme=dark")
	require.NoError(t, err)
	assert.Equal(t, board.Config{Width: 9, Height: 8, Bombs: 10, Lives: 2, DefuseKits: 1}, p.Board())
	assert.Equal(t, abilities.Counts{Scans: 2, Echoes: 1}, p.Charges())
}

func TestParseBoardQueryErrors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		invalid bool
	}{
		{"missing lives", "width=9&height=9&bombs=10", false},
		{"not a number", "width=nine&height=9&bombs=10&lives=1", false},
		{"bad escape", "width=%zz", false},
		{"no safe tile", "width=1&height=1&bombs=1&lives=1", true},
		{"negative charges", "width=3&height=3&bombs=1&lives=1&echoes=-1", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBoardQuery(test.query)
			require.Error(t, err)
			assert.Equal(t, test.invalid, errors.Is(err, board.ErrInvalidConfig))
		})
	}
}

func TestPreset(t *testing.T) {
	p, err := Preset("Classic")
	require.NoError(t, err)
	assert.Equal(t, board.Config{Width: 10, Height: 10, Bombs: 10, Lives: 1}, p.Board())
	assert.Equal(t, abilities.Counts{Scans: 1, Reveals: 1, Flags: 1, Shields: 1, Echoes: 1}, p.Charges())

	for _, name := range PresetNames() {
		p, err := Preset(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
	}

	_, err = Preset("nightmare")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestSeed(t *testing.T) {
	t.Setenv("BOMBSAWAY_SEED", "42")
	seed, err := Seed()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), seed)

	t.Setenv("BOMBSAWAY_SEED", "-1")
	_, err = Seed()
	assert.Error(t, err)
}

func TestNewLogFile(t *testing.T) {
	t.Setenv("LOG_FILE", "bombsaway.log")
	t.Setenv("LOG_MAX_SIZE", "")
	t.Setenv("LOG_MAX_BACKUPS", "5")
	cfg, err := NewLogFile()
	require.NoError(t, err)
	assert.Equal(t, &LogFile{Filename: "bombsaway.log", MaxSize: 10, MaxBackups: 5, MaxAge: 28}, cfg)

	t.Setenv("LOG_MAX_AGE", "a week")
	_, err = NewLogFile()
	assert.Error(t, err)
}

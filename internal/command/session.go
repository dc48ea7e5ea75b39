package command

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
)

var Log = logrus.New()

var (
	ErrOutOfBounds = errors.New("invalid square coordinates")
	ErrNotApplied  = errors.New("command had no effect")
)

// Session owns one board and its abilities. Commands are serialised, so a
// session may be shared between goroutines.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	board     *board.Board
	abilities *abilities.Manager
	pending   []board.Event
}

func NewSession(cfg board.Config, charges abilities.Counts, rnd *rand.Rand) (*Session, error) {
	bus := board.NewEventBus()
	b, err := board.New(cfg, rnd, bus)
	if err != nil {
		return nil, err
	}
	return newSession(b, bus, abilities.NewManager(charges, 0)), nil
}

func newSession(b *board.Board, bus *board.EventBus, m *abilities.Manager) *Session {
	s := &Session{
		ID:        uuid.New(),
		board:     b,
		abilities: m,
	}
	m.Attach(b, bus)
	bus.OnAny(func(e board.Event) {
		s.pending = append(s.pending, e)
	})
	Log.WithFields(logrus.Fields{
		"session": s.ID,
		"board":   b.Rows() * b.Cols(),
	}).Debug("session created")
	return s
}

// Result is what a command did and the board it left behind.
type Result struct {
	Session   uuid.UUID        `json:"session"`
	Command   string           `json:"command"`
	OK        bool             `json:"ok"`
	Error     string           `json:"error,omitempty"`
	Echo      *int             `json:"echo,omitempty"`
	Danger    []board.Point    `json:"danger,omitempty"`
	Events    []board.Event    `json:"events"`
	Board     board.Snapshot   `json:"board"`
	Charges   abilities.Counts `json:"charges"`
	EchoArmed bool             `json:"echo_armed"`
}

// Execute parses and runs one command line. The returned result is filled
// even when the command fails.
func (s *Session) Execute(line string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := Result{Session: s.ID, Command: line}
	cmd, err := Parse(line)
	if err == nil {
		res.Command = cmd.String()
		err = s.execute(cmd, &res)
	}
	if err != nil {
		res.Error = err.Error()
		Log.WithFields(logrus.Fields{
			"session": s.ID,
			"command": line,
		}).Debug(err)
	}
	res.OK = err == nil
	res.Events = append([]board.Event{}, s.pending...)
	s.pending = s.pending[:0]
	res.Board = s.board.Snapshot()
	res.Charges = s.abilities.Counts()
	res.EchoArmed = s.abilities.EchoArmed()
	return res, err
}

func (s *Session) execute(cmd Command, res *Result) error {
	switch cmd.Name {
	case "g":
		return nil
	case "o":
		return s.onTile(cmd.Args, s.board.Reveal)
	case "f":
		return s.onTile(cmd.Args, s.board.ToggleFlag)
	case "s":
		return s.abilities.UseScan()
	case "h":
		return s.abilities.UseReveal()
	case "b":
		return s.abilities.UseFlag()
	case "d":
		return s.abilities.UseShield()
	case "a":
		return s.abilities.ArmEcho()
	case "e":
		r, c := parseRC(cmd.Args)
		if !s.board.InBounds(r, c) {
			return ErrOutOfBounds
		}
		n, err := s.abilities.UseEcho(r, c)
		if err != nil {
			return err
		}
		res.Echo = &n
		return nil
	case "x":
		if !s.board.RevealRandomSafeTile() {
			return ErrNotApplied
		}
		return nil
	case "n":
		res.Danger = s.board.HighlightDangerTiles(cmd.Args[0])
		return nil
	}
	return ErrUnknownCommand
}

func (s *Session) onTile(args []int, op func(r, c int) bool) error {
	r, c := parseRC(args)
	if !s.board.InBounds(r, c) {
		return ErrOutOfBounds
	}
	if !op(r, c) {
		return ErrNotApplied
	}
	return nil
}

func (s *Session) Snapshot() board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

// Done reports whether the board has been won or lost.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Locked()
}

package adventure

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/vancomm/bombsaway/internal/board"
	"github.com/zyedidia/generic/mapset"
)

var Log = logrus.New()

var (
	ErrUnknownClass   = errors.New("unknown class")
	ErrWrongPhase     = errors.New("not allowed in the current phase")
	ErrShopClosed     = errors.New("shop is closed")
	ErrNotOffered     = errors.New("item is not on offer")
	ErrSoldOut        = errors.New("item already bought")
	ErrNotEnoughScrap = errors.New("not enough scrap")
)

type Phase int8

const (
	Ready Phase = iota
	Playing
	Shopping
	Complete
	Failed
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Shopping:
		return "shopping"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// [Phase] implements [encoding.TextMarshaler]
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Settings struct {
	Waves       int
	Width       int
	Height      int
	BaseBombs   int
	BombsStep   int
	Lives       int
	Scrap       int
	ScrapReward int
	RerollCost  int
	ShopSize    int
}

var DefaultSettings = Settings{
	Waves:       10,
	Width:       9,
	Height:      9,
	BaseBombs:   10,
	BombsStep:   2,
	Lives:       3,
	Scrap:       10,
	ScrapReward: 5,
	RerollCost:  2,
	ShopSize:    6,
}

// Run is a sequence of waves on fresh boards sharing lives, charges and
// scrap. Like a board, a run has a single owner.
type Run struct {
	ID    uuid.UUID
	Class Class

	settings Settings
	phase    Phase
	wave     int

	livesLeft  int
	shields    int
	defuseKits int

	scrap           int
	rerolls         int
	scrapBonus      int
	scoutReveals    int
	bombSense       int
	overclockNext   bool
	overclockActive bool

	abilities *abilities.Manager
	board     *board.Board
	danger    []board.Point

	offer     []Item
	purchased mapset.Set[string]

	rnd *rand.Rand
}

func New(class Class, settings Settings, rnd *rand.Rand) *Run {
	if rnd == nil {
		rnd = board.NewRand()
	}
	r := &Run{
		ID:        uuid.New(),
		Class:     class,
		settings:  settings,
		phase:     Ready,
		wave:      1,
		livesLeft: settings.Lives,
		scrap:     settings.Scrap,
		abilities: abilities.NewManager(class.Charges(), 0),
		purchased: mapset.New[string](),
		rnd:       rnd,
	}
	r.log().Debug("run created")
	return r
}

func (r *Run) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"run":  r.ID,
		"wave": r.wave,
	})
}

func (r *Run) Phase() Phase                  { return r.phase }
func (r *Run) Wave() int                     { return r.wave }
func (r *Run) Scrap() int                    { return r.scrap }
func (r *Run) LivesLeft() int                { return r.livesLeft }
func (r *Run) Abilities() *abilities.Manager { return r.abilities }
func (r *Run) Board() *board.Board           { return r.board }

// Danger lists the tiles highlighted by bomb sense at the start of the wave.
func (r *Run) Danger() []board.Point { return r.danger }

// BombsForWave grows the bomb count by BombsStep per wave, leaving at least
// one safe tile.
func (r *Run) BombsForWave(wave int) int {
	bombs := r.settings.BaseBombs + (wave-1)*r.settings.BombsStep
	return min(bombs, r.settings.Width*r.settings.Height-1)
}

// StartWave builds the board for the current wave and applies the wave-start
// perks. The board reports back into the run through bus events.
func (r *Run) StartWave() (*board.Board, *board.EventBus, error) {
	if r.phase != Ready && r.phase != Shopping {
		return nil, nil, ErrWrongPhase
	}

	r.overclockActive = r.overclockNext
	r.overclockNext = false
	bombs := r.BombsForWave(r.wave)
	if r.overclockActive {
		bombs = min(bombs+2, r.settings.Width*r.settings.Height-1)
	}

	bus := board.NewEventBus()
	b, err := board.New(board.Config{
		Width:      r.settings.Width,
		Height:     r.settings.Height,
		Bombs:      bombs,
		Lives:      r.settings.Lives,
		LivesLeft:  r.livesLeft,
		Shields:    r.shields,
		DefuseKits: r.defuseKits,
	}, r.rnd, bus)
	if err != nil {
		return nil, nil, err
	}

	bus.On(board.LivesChanged, func(e board.Event) { r.livesLeft = e.Left })
	bus.On(board.ShieldChanged, func(e board.Event) { r.shields = e.Left })
	bus.On(board.DefuseChanged, func(e board.Event) { r.defuseKits = e.Left })
	bus.On(board.Win, func(board.Event) { r.finish(b.Outcome()) })
	bus.On(board.Loss, func(board.Event) { r.finish(b.Outcome()) })

	r.board = b
	r.phase = Playing
	r.abilities.Attach(b, bus)

	r.log().WithFields(logrus.Fields{
		"bombs":     bombs,
		"overclock": r.overclockActive,
	}).Info("wave started")

	for range r.scoutReveals {
		b.RevealRandomSafeTile()
	}
	r.danger = nil
	if r.bombSense > 0 {
		r.danger = b.HighlightDangerTiles(3 + r.bombSense - 1)
	}
	return b, bus, nil
}

func (r *Run) finish(outcome board.Outcome) {
	if r.phase != Playing {
		return
	}
	switch {
	case outcome.Status == board.Lost:
		r.phase = Failed
		r.log().Info("run failed")
	case r.wave >= r.settings.Waves:
		r.phase = Complete
		r.log().Info("run complete")
	default:
		earned := r.settings.ScrapReward + r.scrapBonus
		if r.overclockActive {
			earned *= 2
		}
		r.scrap += earned
		r.overclockActive = false
		r.log().WithField("earned", earned).Info("wave cleared")
		r.wave++
		r.phase = Shopping
		r.drawOffer()
	}
}

// State is a read-only summary of the run.
type State struct {
	ID           uuid.UUID        `json:"id"`
	Class        Class            `json:"class"`
	Phase        Phase            `json:"phase"`
	Wave         int              `json:"wave"`
	Waves        int              `json:"waves"`
	LivesLeft    int              `json:"lives_left"`
	Shields      int              `json:"shields"`
	DefuseKits   int              `json:"defuse_kits"`
	Scrap        int              `json:"scrap"`
	Rerolls      int              `json:"rerolls"`
	ScrapBonus   int              `json:"scrap_bonus"`
	ScoutReveals int              `json:"scout_reveals"`
	BombSense    int              `json:"bomb_sense"`
	Overclock    bool             `json:"overclock"`
	Charges      abilities.Counts `json:"charges"`
	ScanUpgrade  int              `json:"scan_upgrade"`
}

func (r *Run) State() State {
	return State{
		ID:           r.ID,
		Class:        r.Class,
		Phase:        r.phase,
		Wave:         r.wave,
		Waves:        r.settings.Waves,
		LivesLeft:    r.livesLeft,
		Shields:      r.shields,
		DefuseKits:   r.defuseKits,
		Scrap:        r.scrap,
		Rerolls:      r.rerolls,
		ScrapBonus:   r.scrapBonus,
		ScoutReveals: r.scoutReveals,
		BombSense:    r.bombSense,
		Overclock:    r.overclockActive || r.overclockNext,
		Charges:      r.abilities.Counts(),
		ScanUpgrade:  r.abilities.ScanUpgrade(),
	}
}

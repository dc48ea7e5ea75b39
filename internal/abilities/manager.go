package abilities

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/bombsaway/internal/board"
)

// Manager spends ability charges against the board it is attached to. It
// locks itself when the board is won or lost.
type Manager struct {
	board       *board.Board
	counts      Counts
	scanUpgrade int
	locked      bool
	echoArmed   bool
	off         []func()
}

func NewManager(counts Counts, scanUpgrade int) *Manager {
	return &Manager{
		counts:      counts,
		scanUpgrade: max(scanUpgrade, 0),
		locked:      true,
	}
}

// Attach points the manager at a new board and unlocks it. Subscriptions to
// the previous bus are dropped.
func (m *Manager) Attach(b *board.Board, bus *board.EventBus) {
	m.Detach()
	m.board = b
	m.locked = b == nil || b.Locked()
	m.echoArmed = false
	if bus == nil {
		return
	}
	m.off = append(m.off,
		bus.On(board.Win, func(board.Event) { m.Lock(true) }),
		bus.On(board.Loss, func(board.Event) { m.Lock(true) }),
		bus.On(board.BoardChanged, func(board.Event) { m.refreshEcho() }),
	)
}

func (m *Manager) Detach() {
	for _, off := range m.off {
		off()
	}
	m.off = nil
}

func (m *Manager) Lock(locked bool) {
	m.locked = locked
	if locked {
		m.echoArmed = false
	}
}

func (m *Manager) Locked() bool        { return m.locked }
func (m *Manager) EchoArmed() bool     { return m.echoArmed }
func (m *Manager) ScanUpgrade() int    { return m.scanUpgrade }
func (m *Manager) Counts() Counts      { return m.counts }
func (m *Manager) Board() *board.Board { return m.board }

// CanUse reports whether kind has a target on the current board. Charges
// and the lock are not considered.
func (m *Manager) CanUse(kind Kind) bool {
	canUse, ok := registry[kind]
	return ok && m.board != nil && canUse(m.board)
}

// Available reports whether kind can be used right now.
func (m *Manager) Available(kind Kind) bool {
	return !m.locked && m.counts.Get(kind) > 0 && m.CanUse(kind)
}

func (m *Manager) AddCharges(kind Kind, amount int) error {
	n := m.counts.of(kind)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	*n += amount
	return nil
}

func (m *Manager) UpgradeScan(levels int) {
	m.scanUpgrade += levels
}

func (m *Manager) ready(kind Kind) error {
	if m.locked || m.board == nil {
		return ErrLocked
	}
	if m.counts.Get(kind) <= 0 {
		return fmt.Errorf("%w: %s", ErrNoCharges, kind)
	}
	return nil
}

func (m *Manager) spend(kind Kind) {
	*m.counts.of(kind)--
	Log.WithFields(logrus.Fields{
		"ability": kind,
		"left":    m.counts.Get(kind),
	}).Debug("charge spent")
}

// UseScan opens up to 1+upgrade of the largest empty clusters, stopping at
// the first one that cannot be opened. One charge is spent if anything
// opened.
func (m *Manager) UseScan() error {
	if err := m.ready(Scan); err != nil {
		return err
	}
	opened := 0
	for range 1 + m.scanUpgrade {
		if !m.board.ScanLargestCluster() {
			break
		}
		opened++
	}
	if opened == 0 {
		return ErrNotApplied
	}
	m.spend(Scan)
	return nil
}

func (m *Manager) UseReveal() error {
	if err := m.ready(Reveal); err != nil {
		return err
	}
	if !m.board.RevealHighestNumber() {
		return ErrNotApplied
	}
	m.spend(Reveal)
	return nil
}

func (m *Manager) UseFlag() error {
	if err := m.ready(Flag); err != nil {
		return err
	}
	if !m.board.FlagRandomBomb() {
		return ErrNotApplied
	}
	m.spend(Flag)
	return nil
}

func (m *Manager) UseShield() error {
	if err := m.ready(Shield); err != nil {
		return err
	}
	if !m.board.AddShield() {
		return ErrNotApplied
	}
	m.spend(Shield)
	return nil
}

// ArmEcho toggles the echo probe. It stays disarmed without charges or
// targets.
func (m *Manager) ArmEcho() error {
	if err := m.ready(Echo); err != nil {
		return err
	}
	if !m.board.HasEchoTargets() {
		return ErrNotApplied
	}
	m.echoArmed = !m.echoArmed
	return nil
}

// UseEcho probes the plus shape centred on r, c and returns its bomb count.
// The echo must be armed first. A successful probe spends a charge and
// disarms the echo.
func (m *Manager) UseEcho(r, c int) (int, error) {
	if err := m.ready(Echo); err != nil {
		return 0, err
	}
	if !m.echoArmed {
		return 0, ErrNotArmed
	}
	bombs, ok := m.board.ProbeEchoCross(r, c)
	if !ok {
		return 0, ErrNotApplied
	}
	m.spend(Echo)
	m.echoArmed = false
	return bombs, nil
}

func (m *Manager) refreshEcho() {
	if m.counts.Echoes <= 0 || m.board == nil || !m.board.HasEchoTargets() {
		m.echoArmed = false
	}
}

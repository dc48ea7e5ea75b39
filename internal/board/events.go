package board

import "encoding/json"

type EventKind int

const (
	FirstReveal EventKind = iota
	BoardChanged
	FlagsChanged
	LivesChanged
	ShieldChanged
	DefuseChanged
	Win
	Loss
)

var eventNames = [...]string{
	FirstReveal:   "first_reveal",
	BoardChanged:  "board_changed",
	FlagsChanged:  "flags_changed",
	LivesChanged:  "lives_changed",
	ShieldChanged: "shield_changed",
	DefuseChanged: "defuse_changed",
	Win:           "win",
	Loss:          "loss",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// [EventKind] implements [encoding.TextMarshaler]
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is a notification produced by a board command. Only the fields that
// belong to Kind are meaningful:
//
//   - FlagsChanged: Flags, RemainingBombs
//   - LivesChanged, ShieldChanged, DefuseChanged: Left
//   - Win: Scraped
type Event struct {
	Kind           EventKind `json:"kind"`
	Flags          int       `json:"flags,omitempty"`
	RemainingBombs int       `json:"remaining_bombs,omitempty"`
	Left           int       `json:"left,omitempty"`
	Scraped        bool      `json:"scraped,omitempty"`
}

// MarshalJSON writes the kind and exactly the payload fields of that kind,
// zero values included.
func (e Event) MarshalJSON() ([]byte, error) {
	type payload struct {
		Kind           EventKind `json:"kind"`
		Flags          *int      `json:"flags,omitempty"`
		RemainingBombs *int      `json:"remaining_bombs,omitempty"`
		Left           *int      `json:"left,omitempty"`
		Scraped        *bool     `json:"scraped,omitempty"`
	}
	p := payload{Kind: e.Kind}
	switch e.Kind {
	case FlagsChanged:
		p.Flags, p.RemainingBombs = &e.Flags, &e.RemainingBombs
	case LivesChanged, ShieldChanged, DefuseChanged:
		p.Left = &e.Left
	case Win:
		p.Scraped = &e.Scraped
	}
	return json.Marshal(p)
}

type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// EventBus fans board events out to registered handlers in registration
// order. Handlers observe only; they must not issue board commands.
type EventBus struct {
	handlers map[EventKind][]subscription
	any      []subscription
	nextId   int
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventKind][]subscription)}
}

// On registers h for events of the given kind and returns a function that
// removes it again.
func (b *EventBus) On(kind EventKind, h Handler) (off func()) {
	b.nextId++
	id := b.nextId
	b.handlers[kind] = append(b.handlers[kind], subscription{id, h})
	return func() {
		b.handlers[kind] = without(b.handlers[kind], id)
	}
}

// OnAny registers h for every event kind.
func (b *EventBus) OnAny(h Handler) (off func()) {
	b.nextId++
	id := b.nextId
	b.any = append(b.any, subscription{id, h})
	return func() {
		b.any = without(b.any, id)
	}
}

func (b *EventBus) Emit(e Event) {
	if b == nil {
		return
	}
	for _, s := range b.handlers[e.Kind] {
		s.handler(e)
	}
	for _, s := range b.any {
		s.handler(e)
	}
}

func without(subs []subscription, id int) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}

package player

import (
	"errors"
	"fmt"

	"github.com/danmuck/calckit/internal/buffer"
)

var ErrUnknownEventKind = errors.New("player: unknown event kind")

// EventKind selects how an event mutates HP.
type EventKind string

const (
	EventDamage EventKind = "damage"
	EventHeal   EventKind = "heal"
)

// Event is one HP mutation in a scenario.
type Event struct {
	Kind   EventKind
	Amount int
}

// Scenario applies a fixed event order to a starting player.
type Scenario struct {
	Start  Player
	Events []Event
}

// Result holds the final player state and the HP journal, one entry per
// applied event.
type Result struct {
	Final   Player
	Journal *buffer.LogBuffer
}

// Run applies every event in order, journaling HP after each one.
func Run(s Scenario) (Result, error) {
	p := s.Start
	journal := buffer.New(len(s.Events))
	for i, ev := range s.Events {
		switch ev.Kind {
		case EventDamage:
			p.Damage(ev.Amount)
		case EventHeal:
			p.Heal(ev.Amount)
		default:
			return Result{}, fmt.Errorf("event[%d]: %w: %q", i, ErrUnknownEventKind, ev.Kind)
		}
		journal.Append(int64(p.HP))
	}
	return Result{Final: p, Journal: journal}, nil
}

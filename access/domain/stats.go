package domain

import (
	"context"
	"time"
)

// EventKind classifica um evento do portão.
type EventKind uint8

const (
	EventAdmitted EventKind = iota
	EventDenied
	EventLeft
	EventSpuriousExit
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventAdmitted:
		return "admitted"
	case EventDenied:
		return "denied"
	case EventLeft:
		return "left"
	case EventSpuriousExit:
		return "spurious_exit"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// StatsEvent representa uma decisão ou mudança no portão.
//
// Occupancy é a ocupação logo após o evento. Em EventReset, Drained guarda
// quantos ocupantes foram removidos.
type StatsEvent struct {
	Kind      EventKind
	Occupancy int
	Drained   int

	At time.Time
}

// StatsStore é a estratégia de registro de estatísticas.
// Os serviços tratam erro como best-effort (nunca bloqueiam a admissão).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

package domain

import "context"

// ResetState é o estado do controlador de reset.
type ResetState uint32

const (
	ResetIdle ResetState = iota
	ResetDraining
	ResetRestoring
)

func (s ResetState) String() string {
	switch s {
	case ResetIdle:
		return "idle"
	case ResetDraining:
		return "draining"
	case ResetRestoring:
		return "restoring"
	default:
		return "unknown"
	}
}

// ResetSource entrega pedidos de reset vindos da interrupção.
//
// Wait bloqueia até haver um pedido ou o ctx encerrar. Depois de consumir um
// pedido a fonte fica desarmada: pedidos novos são descartados até Rearm.
type ResetSource interface {
	Wait(ctx context.Context) error
	Rearm()
}

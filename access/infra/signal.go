package infra

import (
	"context"
	"sync/atomic"

	"controle-acesso/access/domain"
)

// Signal é o sinal de reset entre a interrupção e a tarefa de reset.
//
// Raise só posta no canal (buffer 1) sem bloquear; disparos extras enquanto
// há um pendente são fundidos. Depois que Wait consome um pedido o sinal fica
// desarmado, e tudo que chegar até Rearm é descartado.
type Signal struct {
	ch    chan struct{}
	armed atomic.Bool
}

var _ domain.ResetSource = (*Signal)(nil)

func NewSignal() *Signal {
	s := &Signal{ch: make(chan struct{}, 1)}
	s.armed.Store(true)
	return s
}

// Raise é seguro para o contexto de interrupção: não bloqueia, não aloca.
// Retorna true se o pedido ficou pendente.
func (s *Signal) Raise() bool {
	if !s.armed.Load() {
		return false
	}
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		s.armed.Store(false)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Rearm descarta o que chegou durante o serviço e volta a aceitar pedidos.
func (s *Signal) Rearm() {
	select {
	case <-s.ch:
	default:
	}
	s.armed.Store(true)
}

// Pending informa se há um pedido aguardando.
func (s *Signal) Pending() bool { return len(s.ch) > 0 }

package application

import (
	"context"
	"errors"
	"time"

	"controle-acesso/access/domain"
)

// ErrSurfaceBusy indica que o lock do display não foi obtido a tempo.
var ErrSurfaceBusy = errors.New("display busy")

// Arbiter concentra a regra de aquisição/liberação do recurso exclusivo com timeout,
// sem saber nada sobre o display.
type Arbiter struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
}

// Acquire tenta adquirir o recurso.
// - Se `AcquireTimeout <= 0`, espera indefinidamente (até ctx cancelar).
// - Se `AcquireTimeout > 0`, espera até o timeout.
// Retorna (release, ok). Se ok=false, nada foi adquirido.
func (a Arbiter) Acquire(ctx context.Context) (func(), bool) {
	if a.Pool == nil {
		return func() {}, true
	}

	if a.AcquireTimeout <= 0 {
		return a.Pool.Acquire(ctx)
	}

	acqCtx, cancel := context.WithTimeout(ctx, a.AcquireTimeout)
	defer cancel()
	return a.Pool.Acquire(acqCtx)
}

// Display é o display compartilhado com acesso arbitrado.
// Qualquer número de clientes pode chamar Render.
type Display struct {
	Surface domain.Surface
	Arbiter Arbiter
}

// Render executa clear -> draw -> flush como uma unidade sob o lock.
// O lock é liberado sempre, inclusive se draw entrar em pânico.
func (d Display) Render(ctx context.Context, draw func(domain.Canvas)) error {
	if d.Surface == nil {
		return nil
	}

	release, ok := d.Arbiter.Acquire(ctx)
	if !ok {
		return ErrSurfaceBusy
	}
	defer release()

	d.Surface.Clear()
	draw(d.Surface)
	return d.Surface.Flush()
}

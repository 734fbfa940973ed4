package infra

import (
	"context"

	"controle-acesso/access/domain"
)

type chanPool struct {
	sem chan struct{}
}

// NewChanPool cria um pool simples baseado em channel com capacidade `max`.
// Com max == 1 vira o lock exclusivo do display.
func NewChanPool(max int) domain.SlotPool {
	if max < 1 {
		max = 1
	}
	return &chanPool{sem: make(chan struct{}, max)}
}

// NewSurfaceLock é o lock do display compartilhado.
func NewSurfaceLock() domain.SlotPool { return NewChanPool(1) }

func (p *chanPool) Acquire(ctx context.Context) (func(), bool) {
	// ctx já encerrado nunca adquire, mesmo com vaga livre.
	if ctx.Err() != nil {
		return nil, false
	}
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}

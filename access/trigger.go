package access

import (
	"context"
	"time"

	"controle-acesso/access/domain"
)

// Trigger detecta a borda solto->pressionado de um botão lido por polling.
// Não é seguro para uso concorrente: cada gatilho pertence a uma tarefa.
type Trigger struct {
	Key     domain.Key
	Button  domain.Button
	Limiter domain.Limiter
	OnPress func(ctx context.Context)

	wasPressed bool
}

// Sample lê o botão uma vez. Retorna true se o disparo foi aceito.
func (t *Trigger) Sample(ctx context.Context) bool {
	pressed := t.Button.Pressed()
	edge := pressed && !t.wasPressed
	t.wasPressed = pressed
	if !edge {
		return false
	}
	if t.Limiter != nil && !t.Limiter.Allow() {
		return false
	}
	if t.OnPress != nil {
		t.OnPress(ctx)
	}
	return true
}

// runEvery chama fn imediatamente e depois a cada `every`, até ctx encerrar.
func runEvery(ctx context.Context, every time.Duration, fn func()) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		fn()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

package application

import (
	"context"
	"sync"
	"time"

	"controle-acesso/access/domain"
)

// Step mantém o buzzer num nível por um tempo.
type Step struct {
	Level uint8
	For   time.Duration
}

// Pattern é uma sequência de passos; ao final o buzzer volta ao silêncio.
type Pattern []Step

// DenyPattern é o bipe curto de entrada negada.
func DenyPattern(level uint8, on time.Duration) Pattern {
	return Pattern{{Level: level, For: on}}
}

// ResetPattern é o bipe duplo de confirmação do reset.
func ResetPattern(level uint8, on, off time.Duration) Pattern {
	return Pattern{
		{Level: level, For: on},
		{Level: 0, For: off},
		{Level: level, For: on},
	}
}

// Beeper toca padrões no buzzer, um por vez.
type Beeper struct {
	mu   sync.Mutex
	tone domain.Tone
}

func NewBeeper(tone domain.Tone) *Beeper {
	return &Beeper{tone: tone}
}

// Play toca o padrão inteiro. Se ctx encerrar no meio, interrompe e silencia.
func (b *Beeper) Play(ctx context.Context, p Pattern) {
	if b == nil || b.tone == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	defer b.tone.SetTone(0)

	for _, st := range p {
		b.tone.SetTone(st.Level)
		if !sleep(ctx, st.For) {
			return
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

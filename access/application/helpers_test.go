package application

import (
	"context"
	"sync"

	"controle-acesso/access/domain"
)

type recordingTone struct {
	mu     sync.Mutex
	levels []uint8
}

func (t *recordingTone) SetTone(level uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.levels = append(t.levels, level)
}

func (t *recordingTone) Levels() []uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]uint8(nil), t.levels...)
}

type recordingLight struct {
	calls []domain.Color
}

func (l *recordingLight) SetRGB(r, g, b uint8) {
	l.calls = append(l.calls, domain.Color{R: r, G: g, B: b})
}

// fakeGate é um portão mínimo para testes (sem concorrência).
type fakeGate struct {
	capacity  int
	occupancy int
}

func (g *fakeGate) TryAdmit() bool {
	if g.occupancy >= g.capacity {
		return false
	}
	g.occupancy++
	return true
}

func (g *fakeGate) Leave() bool {
	if g.occupancy == 0 {
		return false
	}
	g.occupancy--
	return true
}

func (g *fakeGate) Drain() int {
	prior := g.occupancy
	g.occupancy = 0
	return prior
}

func (g *fakeGate) Snapshot() domain.Snapshot {
	return domain.Snapshot{Occupancy: g.occupancy, Available: g.capacity - g.occupancy, Capacity: g.capacity}
}

type memStats struct {
	mu     sync.Mutex
	events []domain.StatsEvent
}

func (s *memStats) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memStats) Kinds() []domain.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EventKind, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Kind)
	}
	return out
}

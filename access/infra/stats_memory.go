package infra

import (
	"context"
	"sync"

	"controle-acesso/access/domain"
)

type Counters struct {
	Admitted      int64
	Denied        int64
	Left          int64
	SpuriousExits int64
	Resets        int64
	Drained       int64
}

// MemoryStatsStore é uma implementação simples em memória.
// Não há persistência: os contadores somem quando o processo termina.
type MemoryStatsStore struct {
	mu    sync.Mutex
	total Counters
	peak  int
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{}
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case domain.EventAdmitted:
		s.total.Admitted++
	case domain.EventDenied:
		s.total.Denied++
	case domain.EventLeft:
		s.total.Left++
	case domain.EventSpuriousExit:
		s.total.SpuriousExits++
	case domain.EventReset:
		s.total.Resets++
		s.total.Drained += int64(ev.Drained)
	}
	if ev.Occupancy > s.peak {
		s.peak = ev.Occupancy
	}
	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Peak é a maior ocupação observada.
func (s *MemoryStatsStore) Peak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}

package infra

import (
	"sync"
	"time"

	"controle-acesso/access/domain"

	"golang.org/x/time/rate"
)

// DebounceStore mantém um token bucket (x/time/rate) por gatilho com burst 1:
// depois de um disparo aceito, o próximo só passa após `spacing`.
type DebounceStore struct {
	mu      sync.Mutex
	entries map[domain.Key]*rate.Limiter
	spacing time.Duration
}

func NewDebounceStore(spacing time.Duration) *DebounceStore {
	return &DebounceStore{
		entries: make(map[domain.Key]*rate.Limiter),
		spacing: spacing,
	}
}

func (s *DebounceStore) Spacing() time.Duration { return s.spacing }

// Get implementa domain.LimiterStore.
func (s *DebounceStore) Get(key domain.Key) domain.Limiter {
	return s.limiter(key)
}

func (s *DebounceStore) limiter(key domain.Key) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lim, ok := s.entries[key]; ok {
		return lim
	}

	// spacing <= 0 desliga o debounce.
	limit := rate.Inf
	if s.spacing > 0 {
		limit = rate.Every(s.spacing)
	}
	lim := rate.NewLimiter(limit, 1)
	s.entries[key] = lim
	return lim
}

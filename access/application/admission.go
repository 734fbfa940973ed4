package application

import (
	"context"
	"time"

	"controle-acesso/access/domain"

	"go.uber.org/zap"
)

// Decision é o resultado de uma tentativa de entrada.
type Decision struct {
	Allowed  bool
	Snapshot domain.Snapshot
}

// AdmissionService concentra as regras de entrada e saída.
//
// Negação não é erro: vira só o bipe curto. Saída com ocupação zero é
// ignorada em silêncio.
type AdmissionService struct {
	Gate        domain.Gate
	Stats       domain.StatsStore
	Beeper      *Beeper
	DenyPattern Pattern
	Log         *zap.Logger
}

func (s *AdmissionService) Enter(ctx context.Context) Decision {
	if s.Gate == nil {
		return Decision{Allowed: true}
	}

	allowed := s.Gate.TryAdmit()
	snap := s.Gate.Snapshot()

	kind := domain.EventAdmitted
	if allowed {
		logger(s.Log).Debug("entrada admitida", zap.Int("ocupacao", snap.Occupancy), zap.Int("capacidade", snap.Capacity))
	} else {
		kind = domain.EventDenied
		logger(s.Log).Debug("entrada negada: lotado", zap.Int("capacidade", snap.Capacity))
		// fora da seção crítica do portão
		s.Beeper.Play(ctx, s.DenyPattern)
	}
	s.record(ctx, domain.StatsEvent{Kind: kind, Occupancy: snap.Occupancy})

	return Decision{Allowed: allowed, Snapshot: snap}
}

// Exit retorna false para saída espúria (ninguém dentro).
func (s *AdmissionService) Exit(ctx context.Context) bool {
	if s.Gate == nil {
		return false
	}

	left := s.Gate.Leave()
	snap := s.Gate.Snapshot()

	kind := domain.EventLeft
	if left {
		logger(s.Log).Debug("saida registrada", zap.Int("ocupacao", snap.Occupancy))
	} else {
		kind = domain.EventSpuriousExit
		logger(s.Log).Debug("saida ignorada: ocupacao zero")
	}
	s.record(ctx, domain.StatsEvent{Kind: kind, Occupancy: snap.Occupancy})
	return left
}

func (s *AdmissionService) record(ctx context.Context, ev domain.StatsEvent) {
	if s.Stats == nil {
		return
	}
	ev.At = time.Now()
	if err := s.Stats.Record(ctx, ev); err != nil {
		logger(s.Log).Warn("stats record failed", zap.Stringer("kind", ev.Kind), zap.Error(err))
	}
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

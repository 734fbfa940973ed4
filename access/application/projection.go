package application

import (
	"context"

	"controle-acesso/access/domain"

	"go.uber.org/zap"
)

// As projeções leem a ocupação e guardam o último valor exibido para evitar
// renderizações repetidas. Cada uma é usada por uma única tarefa.

// IndicatorService mantém o LED RGB na cor da faixa atual.
// Um SetRGB por transição de faixa.
type IndicatorService struct {
	Reader domain.OccupancyReader
	Light  domain.Light
	Log    *zap.Logger

	rendered bool
	last     domain.Tier
}

// Refresh retorna true se o LED foi atualizado.
func (s *IndicatorService) Refresh() bool {
	if s.Reader == nil || s.Light == nil {
		return false
	}

	tier := s.Reader.Snapshot().Tier()
	if s.rendered && tier == s.last {
		return false
	}

	c := tier.Color()
	s.Light.SetRGB(c.R, c.G, c.B)
	s.rendered, s.last = true, tier
	logger(s.Log).Debug("led atualizado", zap.Stringer("status", tier))
	return true
}

// DisplayService redesenha o display quando a ocupação muda.
type DisplayService struct {
	Reader  domain.OccupancyReader
	Display Display
	Log     *zap.Logger

	rendered bool
	last     int
}

// Refresh retorna true se um quadro novo foi enviado. Se a renderização
// falhar o valor não é marcado como exibido e a próxima chamada tenta de novo.
func (s *DisplayService) Refresh(ctx context.Context) (bool, error) {
	if s.Reader == nil {
		return false, nil
	}

	snap := s.Reader.Snapshot()
	if s.rendered && snap.Occupancy == s.last {
		return false, nil
	}

	err := s.Display.Render(ctx, func(c domain.Canvas) {
		DrawStatus(c, snap)
	})
	if err != nil {
		return false, err
	}

	s.rendered, s.last = true, snap.Occupancy
	logger(s.Log).Debug("display atualizado", zap.Int("ocupacao", snap.Occupancy))
	return true, nil
}

// DrawStatus desenha a tela de status. Coordenadas do painel 128x64.
func DrawStatus(c domain.Canvas, snap domain.Snapshot) {
	c.DrawString(titleLine, 0, 0)
	c.DrawString(occupantsLine(snap.Occupancy, snap.Capacity), 0, 20)
	c.DrawString(availableLine(snap.Available), 0, 30)
	c.DrawString(statusLine(snap.Tier().Label()), 0, 40)
	c.DrawString(instructionsLine, 0, 55)
}

package application

import (
	"context"
	"sync/atomic"
	"time"

	"controle-acesso/access/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResetController atende os pedidos de reset vindos da interrupção.
//
// Ciclo: Idle -> Draining (bipe duplo) -> Restoring (Gate.Drain) -> Idle.
// Um pedido por vez; o que chegar durante o ciclo é descartado pela fonte.
type ResetController struct {
	Gate    domain.Gate
	Source  domain.ResetSource
	Beeper  *Beeper
	Pattern Pattern
	Stats   domain.StatsStore
	Log     *zap.Logger

	// TraceID gera o id de cada ciclo nos logs. Padrão: uuid.NewString.
	TraceID func() string

	state  atomic.Uint32
	served atomic.Int64
}

// Run bloqueia esperando pedidos até ctx encerrar. Retorna nil no encerramento.
func (c *ResetController) Run(ctx context.Context) error {
	for {
		if err := c.Source.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.Serve(ctx)
	}
}

// Serve executa um ciclo completo e retorna quantos ocupantes foram removidos.
//
// Restoring roda mesmo que ctx encerre durante o bipe: o portão nunca fica
// com fichas e ocupação divergentes.
func (c *ResetController) Serve(ctx context.Context) int {
	trace := c.traceID()
	log := logger(c.Log).With(zap.String("trace", trace))

	c.setState(domain.ResetDraining)
	log.Info("reset solicitado")
	c.Beeper.Play(ctx, c.Pattern)

	c.setState(domain.ResetRestoring)
	prior := c.Gate.Drain()
	c.served.Add(1)

	if c.Stats != nil {
		ev := domain.StatsEvent{Kind: domain.EventReset, Drained: prior, At: time.Now()}
		if err := c.Stats.Record(context.WithoutCancel(ctx), ev); err != nil {
			log.Warn("stats record failed", zap.Error(err))
		}
	}
	log.Info("reset concluido", zap.Int("removidos", prior))

	c.setState(domain.ResetIdle)
	if c.Source != nil {
		c.Source.Rearm()
	}
	return prior
}

func (c *ResetController) State() domain.ResetState {
	return domain.ResetState(c.state.Load())
}

// Served é o número de ciclos concluídos.
func (c *ResetController) Served() int64 { return c.served.Load() }

func (c *ResetController) setState(s domain.ResetState) {
	c.state.Store(uint32(s))
}

func (c *ResetController) traceID() string {
	if c.TraceID != nil {
		return c.TraceID()
	}
	return uuid.NewString()
}

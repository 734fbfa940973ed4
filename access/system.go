package access

import (
	"context"
	"errors"
	"time"

	"controle-acesso/access/application"
	"controle-acesso/access/domain"
	"controle-acesso/access/infra"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	KeyEntry domain.Key = "entrada"
	KeyExit  domain.Key = "saida"
)

type Options struct {
	Capacity int

	// PollInterval é o período das tarefas de polling. Padrão: 100ms.
	PollInterval time.Duration
	// Debounce é o espaçamento mínimo entre disparos do mesmo botão.
	// Padrão: 200ms; negativo desliga.
	Debounce time.Duration

	BeepLevel uint8         // padrão 50
	BeepOn    time.Duration // padrão 100ms
	BeepOff   time.Duration // padrão 100ms

	// DisplayTimeout limita a espera pelo lock do display; 0 espera sempre.
	DisplayTimeout time.Duration

	Entry   domain.Button
	Exit    domain.Button
	Tone    domain.Tone
	Light   domain.Light
	Surface domain.Surface
	Stats   domain.StatsStore
	Log     *zap.Logger
}

// System é o controle de acesso montado: portão, sinal de reset e tarefas.
type System struct {
	log  *zap.Logger
	poll time.Duration

	gate   *infra.Gate
	signal *infra.Signal

	admission *application.AdmissionService
	reset     *application.ResetController
	indicator *application.IndicatorService
	display   *application.DisplayService

	entry *Trigger
	exit  *Trigger
}

func New(opts Options) (*System, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Debounce == 0 {
		opts.Debounce = 200 * time.Millisecond
	}
	if opts.BeepLevel == 0 {
		opts.BeepLevel = 50
	}
	if opts.BeepOn <= 0 {
		opts.BeepOn = 100 * time.Millisecond
	}
	if opts.BeepOff <= 0 {
		opts.BeepOff = 100 * time.Millisecond
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	gate, err := infra.NewGate(opts.Capacity)
	if err != nil {
		return nil, err
	}

	s := &System{
		log:    opts.Log,
		poll:   opts.PollInterval,
		gate:   gate,
		signal: infra.NewSignal(),
	}

	beeper := application.NewBeeper(opts.Tone)
	s.admission = &application.AdmissionService{
		Gate:        gate,
		Stats:       opts.Stats,
		Beeper:      beeper,
		DenyPattern: application.DenyPattern(opts.BeepLevel, opts.BeepOn),
		Log:         opts.Log.Named("admissao"),
	}
	s.reset = &application.ResetController{
		Gate:    gate,
		Source:  s.signal,
		Beeper:  beeper,
		Pattern: application.ResetPattern(opts.BeepLevel, opts.BeepOn, opts.BeepOff),
		Stats:   opts.Stats,
		Log:     opts.Log.Named("reset"),
	}
	s.indicator = &application.IndicatorService{
		Reader: gate,
		Light:  opts.Light,
		Log:    opts.Log.Named("led"),
	}
	s.display = &application.DisplayService{
		Reader: gate,
		Display: application.Display{
			Surface: opts.Surface,
			Arbiter: application.Arbiter{
				Pool:           infra.NewSurfaceLock(),
				AcquireTimeout: opts.DisplayTimeout,
			},
		},
		Log: opts.Log.Named("display"),
	}

	debounce := infra.NewDebounceStore(opts.Debounce)
	if opts.Entry != nil {
		s.entry = &Trigger{
			Key:     KeyEntry,
			Button:  opts.Entry,
			Limiter: debounce.Get(KeyEntry),
			OnPress: func(ctx context.Context) { s.admission.Enter(ctx) },
		}
	}
	if opts.Exit != nil {
		s.exit = &Trigger{
			Key:     KeyExit,
			Button:  opts.Exit,
			Limiter: debounce.Get(KeyExit),
			OnPress: func(ctx context.Context) { s.admission.Exit(ctx) },
		}
	}
	return s, nil
}

// Run sobe todas as tarefas e bloqueia até ctx encerrar.
func (s *System) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, tr := range []*Trigger{s.entry, s.exit} {
		tr := tr
		if tr == nil {
			continue
		}
		g.Go(func() error {
			return runEvery(ctx, s.poll, func() { tr.Sample(ctx) })
		})
	}

	g.Go(func() error { return s.reset.Run(ctx) })

	g.Go(func() error {
		return runEvery(ctx, s.poll, func() { s.indicator.Refresh() })
	})

	g.Go(func() error {
		log := s.log.Named("display")
		return runEvery(ctx, s.poll, func() {
			if _, err := s.display.Refresh(ctx); err != nil {
				if errors.Is(err, application.ErrSurfaceBusy) || ctx.Err() != nil {
					log.Debug("display ocupado, tenta no proximo ciclo")
					return
				}
				log.Warn("falha ao atualizar display", zap.Error(err))
			}
		})
	})

	s.log.Info("sistema iniciado",
		zap.Int("capacidade", s.gate.Capacity()),
		zap.Duration("poll", s.poll),
	)
	err := g.Wait()
	s.log.Info("sistema encerrado", zap.Int("ocupacao", s.gate.Snapshot().Occupancy))
	return err
}

// Interrupt é o handler da interrupção de reset: só posta o sinal.
// Retorna false se o pedido foi fundido com um pendente ou descartado.
func (s *System) Interrupt() bool { return s.signal.Raise() }

// Enter e Exit executam uma entrada/saída diretamente, sem botão.
func (s *System) Enter(ctx context.Context) application.Decision { return s.admission.Enter(ctx) }

func (s *System) Exit(ctx context.Context) bool { return s.admission.Exit(ctx) }

func (s *System) Snapshot() domain.Snapshot { return s.gate.Snapshot() }

func (s *System) ResetState() domain.ResetState { return s.reset.State() }

// Resets é o número de resets concluídos.
func (s *System) Resets() int64 { return s.reset.Served() }

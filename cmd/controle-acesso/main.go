package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"controle-acesso/access"
	"controle-acesso/access/infra"
	"controle-acesso/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "arquivo YAML de configuração (opcional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := buildLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// Periféricos de console: teclas no stdin fazem o papel dos botões,
	// o display é desenhado no stdout, buzzer e LED vão para o log.
	entry := &infra.ConsoleButton{}
	exit := &infra.ConsoleButton{}
	stats := infra.NewMemoryStatsStore()

	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = -1 // 0 no arquivo/env desliga o debounce
	}

	sys, err := access.New(access.Options{
		Capacity:       cfg.Capacity,
		PollInterval:   cfg.PollInterval,
		Debounce:       debounce,
		BeepLevel:      uint8(cfg.BeepLevel),
		BeepOn:         cfg.BeepOn,
		BeepOff:        cfg.BeepOff,
		DisplayTimeout: cfg.DisplayTimeout,
		Entry:          entry,
		Exit:           exit,
		Tone:           infra.NewLogTone(log.Named("buzzer")),
		Light:          infra.NewLogLight(log.Named("rgb")),
		Surface:        infra.NewConsoleSurface(os.Stdout),
		Stats:          stats,
		Log:            log,
	})
	if err != nil {
		log.Fatal("system setup failed", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// SIGUSR1 faz o papel da interrupção do botão de reset.
	usr1 := make(chan os.Signal, 1)
	signal.Notify(usr1, syscall.SIGUSR1)
	defer signal.Stop(usr1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-usr1:
				sys.Interrupt()
			}
		}
	}()

	go readKeys(os.Stdin, entry, exit, sys, cancel, log.Named("teclado"))

	log.Info("controle de acesso",
		zap.Int("capacity", cfg.Capacity),
		zap.Duration("poll", cfg.PollInterval),
		zap.Duration("debounce", cfg.Debounce),
	)
	log.Info("teclas: a=entrar b=sair r=reset q=sair do programa")

	if err := sys.Run(ctx); err != nil {
		log.Fatal("system error", zap.Error(err))
	}

	total := stats.Total()
	log.Info("resumo",
		zap.Int64("admitidos", total.Admitted),
		zap.Int64("negados", total.Denied),
		zap.Int64("saidas", total.Left),
		zap.Int64("saidas_espurias", total.SpuriousExits),
		zap.Int64("resets", total.Resets),
		zap.Int("pico", stats.Peak()),
	)
}

// readKeys traduz teclas em eventos: cada caractere de uma linha é um aperto.
func readKeys(r io.Reader, entry, exit *infra.ConsoleButton, sys *access.System, quit context.CancelFunc, log *zap.Logger) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, ch := range strings.ToLower(sc.Text()) {
			switch ch {
			case 'a':
				entry.Press()
			case 'b':
				exit.Press()
			case 'r':
				if !sys.Interrupt() {
					log.Debug("reset ignorado: ja em andamento")
				}
			case 'q':
				quit()
				return
			case ' ', '\t':
			default:
				log.Warn("tecla desconhecida", zap.String("tecla", string(ch)))
			}
		}
	}
	if err := sc.Err(); err != nil {
		log.Warn("stdin", zap.Error(err))
	}
}

func buildLogger(level string) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true

	// config.Validate já garante um nível conhecido
	lvl := zap.InfoLevel
	_ = lvl.UnmarshalText([]byte(level))
	logConfig.Level.SetLevel(lvl)
	return zap.Must(logConfig.Build())
}

package infra

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"controle-acesso/access/domain"

	"go.uber.org/zap"
)

// Periféricos de console: permitem rodar o sistema fora da placa.

// ConsoleButton simula um botão com pull-up lido por polling.
// Cada Press vira exatamente uma leitura "pressionado" seguida de uma "solto".
type ConsoleButton struct {
	pending atomic.Int32
	down    atomic.Bool
}

var _ domain.Button = (*ConsoleButton)(nil)

func (b *ConsoleButton) Press() { b.pending.Add(1) }

func (b *ConsoleButton) Pressed() bool {
	if b.down.Load() {
		b.down.Store(false)
		return false
	}
	for {
		n := b.pending.Load()
		if n <= 0 {
			return false
		}
		if b.pending.CompareAndSwap(n, n-1) {
			b.down.Store(true)
			return true
		}
	}
}

// LogTone registra o nível do buzzer no log.
type LogTone struct {
	log   *zap.Logger
	level atomic.Uint32
}

var _ domain.Tone = (*LogTone)(nil)

func NewLogTone(log *zap.Logger) *LogTone {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogTone{log: log}
}

func (t *LogTone) SetTone(level uint8) {
	if uint32(level) == t.level.Swap(uint32(level)) {
		return
	}
	t.log.Debug("buzzer", zap.Uint8("level", level))
}

func (t *LogTone) Level() uint8 { return uint8(t.level.Load()) }

// LogLight registra a cor do LED RGB no log.
type LogLight struct {
	log *zap.Logger

	mu   sync.Mutex
	last domain.Color
}

var _ domain.Light = (*LogLight)(nil)

func NewLogLight(log *zap.Logger) *LogLight {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogLight{log: log}
}

func (l *LogLight) SetRGB(r, g, b uint8) {
	l.mu.Lock()
	l.last = domain.Color{R: r, G: g, B: b}
	l.mu.Unlock()
	l.log.Info("led", zap.Uint8("r", r), zap.Uint8("g", g), zap.Uint8("b", b))
}

func (l *LogLight) Last() domain.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// ConsoleSurface acumula linhas no buffer e escreve o quadro inteiro no Flush.
// O acesso é serializado pelo lock do display, não por esta struct.
type ConsoleSurface struct {
	w     io.Writer
	lines map[int]string
	last  string
}

var _ domain.Surface = (*ConsoleSurface)(nil)

func NewConsoleSurface(w io.Writer) *ConsoleSurface {
	return &ConsoleSurface{w: w, lines: make(map[int]string)}
}

func (s *ConsoleSurface) Clear() {
	clear(s.lines)
}

// DrawString ignora x: o console só tem linhas.
func (s *ConsoleSurface) DrawString(text string, _, y int) {
	s.lines[y] = text
}

func (s *ConsoleSurface) Flush() error {
	ys := make([]int, 0, len(s.lines))
	for y := range s.lines {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	var b strings.Builder
	b.WriteString("+----------------+\n")
	for _, y := range ys {
		fmt.Fprintf(&b, "|%-16s|\n", s.lines[y])
	}
	b.WriteString("+----------------+\n")

	s.last = b.String()
	if _, err := io.WriteString(s.w, s.last); err != nil {
		return fmt.Errorf("console surface: %w", err)
	}
	return nil
}

// Frame é o último quadro enviado.
func (s *ConsoleSurface) Frame() string { return s.last }

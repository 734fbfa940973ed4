package access

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"controle-acesso/access/domain"
	"controle-acesso/access/infra"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// syncBuffer protege o buffer do display: o teste lê enquanto a tarefa escreve.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type countingTone struct {
	mu     sync.Mutex
	pulses int
	last   uint8
}

func (t *countingTone) SetTone(level uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if level > 0 && t.last == 0 {
		t.pulses++
	}
	t.last = level
}

func (t *countingTone) Pulses() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pulses
}

type harness struct {
	sys     *System
	entry   *infra.ConsoleButton
	exit    *infra.ConsoleButton
	tone    *countingTone
	light   *infra.LogLight
	screen  *syncBuffer
	stats   *infra.MemoryStatsStore
	cancel  context.CancelFunc
	stopped chan error
}

func startSystem(t *testing.T, capacity int) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	h := &harness{
		entry:   &infra.ConsoleButton{},
		exit:    &infra.ConsoleButton{},
		tone:    &countingTone{},
		light:   infra.NewLogLight(log),
		screen:  &syncBuffer{},
		stats:   infra.NewMemoryStatsStore(),
		stopped: make(chan error, 1),
	}

	sys, err := New(Options{
		Capacity:     capacity,
		PollInterval: time.Millisecond,
		Debounce:     -1,
		BeepOn:       time.Millisecond,
		BeepOff:      time.Millisecond,
		Entry:        h.entry,
		Exit:         h.exit,
		Tone:         h.tone,
		Light:        h.light,
		Surface:      infra.NewConsoleSurface(h.screen),
		Stats:        h.stats,
		Log:          log,
	})
	require.NoError(t, err)
	h.sys = sys

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.stopped <- sys.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-h.stopped:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Errorf("system did not stop")
		}
	})
	return h
}

func TestNew_RejectsInvalidCapacity(t *testing.T) {
	_, err := New(Options{Capacity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidCapacity)
}

func TestSystem_ScenarioFullDeniedResetAdmitsAgain(t *testing.T) {
	h := startSystem(t, 9)
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		require.True(t, h.sys.Enter(ctx).Allowed, "entry %d", i+1)
	}
	require.Equal(t, 0, h.tone.Pulses())

	dec := h.sys.Enter(ctx)
	require.False(t, dec.Allowed)
	require.Equal(t, 9, h.sys.Snapshot().Occupancy)
	require.Equal(t, 1, h.tone.Pulses(), "denial plays one short pulse")

	require.True(t, h.sys.Interrupt())
	require.Eventually(t, func() bool { return h.sys.Resets() == 1 }, 2*time.Second, time.Millisecond)
	require.Equal(t, domain.Snapshot{Occupancy: 0, Available: 9, Capacity: 9}, h.sys.Snapshot())
	require.Equal(t, 3, h.tone.Pulses(), "reset plays a double pulse")

	require.True(t, h.sys.Enter(ctx).Allowed)
	require.Equal(t, 1, h.sys.Snapshot().Occupancy)
}

func TestSystem_ButtonsDriveOccupancyAndProjections(t *testing.T) {
	h := startSystem(t, 3)

	h.entry.Press()
	require.Eventually(t, func() bool { return h.sys.Snapshot().Occupancy == 1 }, 2*time.Second, time.Millisecond)
	h.entry.Press()
	require.Eventually(t, func() bool { return h.sys.Snapshot().Occupancy == 2 }, 2*time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		return h.light.Last() == domain.TierLastSlot.Color()
	}, 2*time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		s := h.screen.String()
		return strings.Contains(s, "Usuarios: 2/3") && strings.Contains(s, "Status: Ultima")
	}, 2*time.Second, time.Millisecond)

	h.exit.Press()
	require.Eventually(t, func() bool { return h.sys.Snapshot().Occupancy == 1 }, 2*time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		return h.light.Last() == domain.TierAvailable.Color()
	}, 2*time.Second, time.Millisecond)
}

func TestSystem_SpuriousExitLeavesStateUnchanged(t *testing.T) {
	h := startSystem(t, 3)
	before := h.sys.Snapshot()

	require.False(t, h.sys.Exit(context.Background()))
	require.Equal(t, before, h.sys.Snapshot())
	require.Equal(t, int64(1), h.stats.Total().SpuriousExits)
}

func TestSystem_InterruptBurstIsServedOnce(t *testing.T) {
	h := startSystem(t, 5)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.True(t, h.sys.Enter(ctx).Allowed)
	}

	accepted := 0
	for i := 0; i < 10; i++ {
		if h.sys.Interrupt() {
			accepted++
		}
	}
	require.Equal(t, 1, accepted)

	require.Eventually(t, func() bool {
		return h.sys.Resets() == 1 && h.sys.ResetState() == domain.ResetIdle
	}, 2*time.Second, time.Millisecond)
	require.Never(t, func() bool { return h.sys.Resets() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	require.Equal(t, 0, h.sys.Snapshot().Occupancy)
}

func TestSystem_ConcurrentEntriesRaceForLastSlot(t *testing.T) {
	h := startSystem(t, 9)
	ctx := context.Background()
	for i := 0; i < 8; i++ {
		require.True(t, h.sys.Enter(ctx).Allowed)
	}

	const racers = 16
	results := make(chan bool, racers)
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			results <- h.sys.Enter(ctx).Allowed
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, 9, h.sys.Snapshot().Occupancy)
	require.Equal(t, int64(racers-1), h.stats.Total().Denied)
}

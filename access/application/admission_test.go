package application

import (
	"context"
	"testing"

	"controle-acesso/access/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAdmissionService_EnterAdmitsUntilFull(t *testing.T) {
	tone := &recordingTone{}
	stats := &memStats{}
	svc := &AdmissionService{
		Gate:        &fakeGate{capacity: 2},
		Stats:       stats,
		Beeper:      NewBeeper(tone),
		DenyPattern: DenyPattern(50, 0),
		Log:         zaptest.NewLogger(t),
	}
	ctx := context.Background()

	require.True(t, svc.Enter(ctx).Allowed)
	dec := svc.Enter(ctx)
	require.True(t, dec.Allowed)
	require.Equal(t, 2, dec.Snapshot.Occupancy)
	require.Empty(t, tone.Levels(), "admission must not beep")

	dec = svc.Enter(ctx)
	require.False(t, dec.Allowed)
	require.Equal(t, 2, dec.Snapshot.Occupancy)
	require.Equal(t, []uint8{50, 0}, tone.Levels())

	require.Equal(t, []domain.EventKind{domain.EventAdmitted, domain.EventAdmitted, domain.EventDenied}, stats.Kinds())
}

func TestAdmissionService_ExitAtZeroIsSpurious(t *testing.T) {
	stats := &memStats{}
	gate := &fakeGate{capacity: 3}
	svc := &AdmissionService{Gate: gate, Stats: stats}

	require.False(t, svc.Exit(context.Background()))
	require.Equal(t, 0, gate.occupancy)
	require.Equal(t, []domain.EventKind{domain.EventSpuriousExit}, stats.Kinds())
}

func TestAdmissionService_ExitReleasesSlot(t *testing.T) {
	gate := &fakeGate{capacity: 1}
	svc := &AdmissionService{Gate: gate}
	ctx := context.Background()

	require.True(t, svc.Enter(ctx).Allowed)
	require.False(t, svc.Enter(ctx).Allowed)
	require.True(t, svc.Exit(ctx))
	require.True(t, svc.Enter(ctx).Allowed)
}

func TestAdmissionService_AllowsWhenNoGate(t *testing.T) {
	svc := &AdmissionService{}
	require.True(t, svc.Enter(context.Background()).Allowed)
	require.False(t, svc.Exit(context.Background()))
}

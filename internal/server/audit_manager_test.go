package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// collectSink accumulates batches for inspection.
type collectSink struct {
	mu      sync.Mutex
	batches [][]AuditEntry
}

func (s *collectSink) WriteBatch(_ context.Context, batch []AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
}

func (s *collectSink) snapshot() [][]AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]AuditEntry, len(s.batches))
	copy(out, s.batches)
	return out
}

func (s *collectSink) total() int {
	n := 0
	for _, b := range s.snapshot() {
		n += len(b)
	}
	return n
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

func TestAuditManagerFlushesFullBatches(t *testing.T) {
	sink := &collectSink{}
	m := NewAuditManager(zap.NewNop(), 2, 3, time.Hour, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	for i := 0; i < 6; i++ {
		m.Log(ctx, AuditEntry{ID: fmt.Sprintf("entry-%d", i)})
	}

	waitFor(t, func() bool { return sink.total() == 6 })

	for _, batch := range sink.snapshot() {
		assert.Len(t, batch, 3)
	}
}

func TestAuditManagerFlushesOnTimeout(t *testing.T) {
	sink := &collectSink{}
	m := NewAuditManager(zap.NewNop(), 1, 100, 20*time.Millisecond, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.Log(ctx, AuditEntry{ID: "lonely"})

	waitFor(t, func() bool { return sink.total() == 1 })

	batches := sink.snapshot()
	require.Len(t, batches, 1)
	assert.Equal(t, "lonely", batches[0][0].ID)
}

func TestAuditManagerShutdownDrainsPending(t *testing.T) {
	sink := &collectSink{}
	m := NewAuditManager(zap.NewNop(), 1, 10, time.Hour, sink)

	ctx := context.Background()
	m.Start(ctx)

	m.Log(ctx, AuditEntry{ID: "pending-1"})
	m.Log(ctx, AuditEntry{ID: "pending-2"})

	// entries are buffered below batchSize; give the aggregator a beat
	// to pull them off the input channel before stopping it
	waitFor(t, func() bool { return len(m.input) == 0 })

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Shutdown(shutdownCtx)

	assert.Equal(t, 2, sink.total())
}

func TestAuditManagerLogAfterShutdownWritesThrough(t *testing.T) {
	sink := &collectSink{}
	m := NewAuditManager(zap.NewNop(), 1, 10, time.Hour, sink)

	ctx := context.Background()
	m.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Shutdown(shutdownCtx)

	m.Log(ctx, AuditEntry{ID: "late"})

	found := false
	for _, batch := range sink.snapshot() {
		for _, entry := range batch {
			if entry.ID == "late" {
				found = true
			}
		}
	}
	assert.True(t, found, "entries logged after shutdown must be written synchronously")
}

func TestAuditManagerFansOutToAllSinks(t *testing.T) {
	first := &collectSink{}
	second := &collectSink{}
	m := NewAuditManager(zap.NewNop(), 1, 1, time.Hour, first, second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.Log(ctx, AuditEntry{ID: "fan-out"})

	waitFor(t, func() bool { return first.total() == 1 && second.total() == 1 })
}

package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditManager batches audit entries by size and flush timeout and fans the
// batches out to a worker pool, which hands them to the configured sinks.
// Audit is off the correctness path: when the pipeline is saturated or
// shutting down, batches are written to the sinks directly instead of being
// dropped.
type AuditManager struct {
	workerCount int
	batchSize   int
	flush       time.Duration
	sinks       []Sink
	logger      *zap.Logger

	input      chan AuditEntry
	batches    chan []AuditEntry
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(logger *zap.Logger, workerCount, batchSize int, flush time.Duration, sinks ...Sink) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		flush:       flush,
		sinks:       sinks,
		logger:      logger,
		input:       make(chan AuditEntry, workerCount*batchSize*2),
		batches:     make(chan []AuditEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.logger.Info("starting audit pipeline",
		zap.Int("workers", m.workerCount),
		zap.Int("batch_size", m.batchSize),
		zap.Duration("flush", m.flush))

	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

// Log hands an entry to the pipeline. If the pipeline cannot accept it
// (full queue under a cancelled context), the entry is written through
// synchronously so it is never lost.
func (m *AuditManager) Log(ctx context.Context, entry AuditEntry) {
	select {
	case m.input <- entry:
	case <-ctx.Done():
		m.writeThrough([]AuditEntry{entry})
	case <-m.shutdownCh:
		m.writeThrough([]AuditEntry{entry})
	}
}

// Shutdown stops the aggregator and waits for the workers to drain, up to
// the context deadline.
func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit pipeline drained")
		case <-ctx.Done():
			m.logger.Warn("audit pipeline shutdown interrupted")
		}
	})
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatch(batch)
		}
		close(m.batches)
	}()

	for {
		select {
		case entry := <-m.input:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.flush)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatch(batch []AuditEntry) {
	batchCopy := make([]AuditEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batches <- batchCopy:
	default:
		// All workers busy and the queue is full; write synchronously.
		m.writeThrough(batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batches:
			if !ok {
				return
			}
			m.writeThrough(batch)
		case <-ctx.Done():
			// Drain whatever is already queued before exiting.
			for {
				select {
				case batch, ok := <-m.batches:
					if !ok {
						return
					}
					m.writeThrough(batch)
				default:
					m.logger.Debug("audit worker exiting", zap.Int("worker", id))
					return
				}
			}
		}
	}
}

func (m *AuditManager) writeThrough(batch []AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, sink := range m.sinks {
		sink.WriteBatch(ctx, batch)
	}
}

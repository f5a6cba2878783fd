package server

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/bedandhome/pedidos/internal/kafka"
)

// AuditEntry records one mutating request: who did what to which order.
type AuditEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Handler     string    `json:"handler"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	StatusCode  int       `json:"status_code"`
	SalesPerson string    `json:"sales_person,omitempty"`
	OrderID     string    `json:"order_id,omitempty"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status,omitempty"`
	Request     string    `json:"request,omitempty"`
	Response    string    `json:"response,omitempty"`
}

// Sink receives completed audit batches. Sinks must tolerate being called
// from multiple workers at once.
type Sink interface {
	WriteBatch(ctx context.Context, batch []AuditEntry)
}

// LogSink writes every entry to the process log.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) WriteBatch(_ context.Context, batch []AuditEntry) {
	for _, entry := range batch {
		s.Logger.Info("audit",
			zap.String("audit_id", entry.ID),
			zap.String("handler", entry.Handler),
			zap.Int("status_code", entry.StatusCode),
			zap.String("sales_person", entry.SalesPerson),
			zap.String("order_id", entry.OrderID),
			zap.String("old_status", entry.OldStatus),
			zap.String("new_status", entry.NewStatus))
	}
}

// KafkaSink publishes entries to the audit topic, keyed by entry id.
type KafkaSink struct {
	Producer kafka.Producer
	Topic    string
	Logger   *zap.Logger
}

func (s KafkaSink) WriteBatch(ctx context.Context, batch []AuditEntry) {
	for _, entry := range batch {
		payload, err := json.Marshal(entry)
		if err != nil {
			s.Logger.Error("failed to encode audit entry", zap.Error(err))
			continue
		}
		if err := s.Producer.SendMessage(ctx, s.Topic, []byte(entry.ID), payload); err != nil {
			s.Logger.Error("failed to publish audit entry",
				zap.String("audit_id", entry.ID), zap.Error(err))
		}
	}
}

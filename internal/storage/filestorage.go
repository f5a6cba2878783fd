package storage

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/bedandhome/pedidos/internal/order"
)

// DefaultDataFile mirrors the storage key the original dashboard used.
const DefaultDataFile = "bed_and_home_orders_v5.json"

// FileStorage keeps the whole order collection as one JSON array on disk.
// Every Save is a full snapshot replace; there are no partial writes.
type FileStorage struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) *FileStorage {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileStorage{path: path, logger: logger}
}

// Load reads the snapshot. A missing file means a fresh install and an
// unparseable one is discarded; both yield an empty collection. Neither is
// an error to the caller.
func (fs *FileStorage) Load() []order.Order {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn("failed to read order file, starting empty",
				zap.String("path", fs.path), zap.Error(err))
		}
		return nil
	}

	var orders []order.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		fs.logger.Warn("order file is not valid JSON, starting empty",
			zap.String("path", fs.path), zap.Error(err))
		return nil
	}
	return orders
}

// Save overwrites the snapshot with the given collection. A failed write is
// logged and otherwise indistinguishable from a successful one.
func (fs *FileStorage) Save(orders []order.Order) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if orders == nil {
		orders = []order.Order{}
	}

	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		fs.logger.Error("failed to encode orders", zap.Error(err))
		return
	}

	if err := os.WriteFile(fs.path, raw, 0o644); err != nil {
		fs.logger.Error("failed to write order file",
			zap.String("path", fs.path), zap.Error(err))
	}
}

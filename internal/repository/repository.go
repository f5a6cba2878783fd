package repository

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bedandhome/pedidos/internal/order"
)

// Storage persists the full collection. The repository is its sole caller.
type Storage interface {
	Load() []order.Order
	Save([]order.Order)
}

// Draft carries the intake-owned fields of an order: everything the form
// collects. It deliberately excludes id, creation date, salesperson, status
// and history, which only the repository assigns.
type Draft struct {
	CustomerName       string
	Location           string
	IDCard             string
	Whatsapp           string
	Email              string
	WantsInvoice       bool
	PaymentMethod      order.PaymentMethod
	SpecialDescription string
	Items              []order.Item
	TotalAmount        float64
}

// Repository owns the in-memory order collection and is the only writer to
// storage. All mutation goes through Create, UpdateFields and UpdateStatus;
// views only ever see copies.
type Repository struct {
	mu      sync.Mutex
	orders  []order.Order
	storage Storage
	logger  *zap.Logger

	timeNow func() time.Time
	newID   func() string
}

func New(storage Storage, logger *zap.Logger) *Repository {
	r := &Repository{
		storage: storage,
		logger:  logger,
		timeNow: func() time.Time { return time.Now().UTC() },
		newID:   newToken,
	}
	r.orders = storage.Load()
	logger.Info("order repository loaded", zap.Int("orders", len(r.orders)))
	return r
}

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newToken generates the short opaque order id. Collisions across five
// base-36 characters are accepted as negligible and not checked.
func newToken() string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteByte(tokenAlphabet[rand.Intn(len(tokenAlphabet))])
	}
	return b.String()
}

// Create registers a new order from a draft. Status is forced to Pendiente
// and the history is seeded with a single matching entry; the new order is
// prepended so the collection stays newest-first.
func (r *Repository) Create(draft Draft, salesPerson string) order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeNow()
	o := order.Order{
		ID:                 r.newID(),
		CustomerName:       draft.CustomerName,
		Location:           draft.Location,
		IDCard:             draft.IDCard,
		Whatsapp:           draft.Whatsapp,
		Email:              draft.Email,
		WantsInvoice:       draft.WantsInvoice,
		Date:               now,
		Status:             order.StatusPending,
		Items:              draft.Items,
		TotalAmount:        draft.TotalAmount,
		PaymentMethod:      draft.PaymentMethod,
		SalesPerson:        salesPerson,
		SpecialDescription: draft.SpecialDescription,
		History: []order.HistoryEntry{
			{Status: order.StatusPending, Timestamp: now},
		},
	}

	r.orders = append([]order.Order{o}, r.orders...)
	r.storage.Save(r.orders)

	r.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("sales_person", salesPerson),
		zap.Float64("total", o.TotalAmount))
	return o
}

// UpdateFields replaces the intake-owned fields of an existing order, the
// way an edit-mode form resubmission does. Status, history, salesperson and
// the creation date are never touched. An unknown id is a silent no-op.
func (r *Repository) UpdateFields(id string, draft Draft) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug("update for unknown order ignored", zap.String("order_id", id))
		return
	}

	o := &r.orders[i]
	o.CustomerName = draft.CustomerName
	o.Location = draft.Location
	o.IDCard = draft.IDCard
	o.Whatsapp = draft.Whatsapp
	o.Email = draft.Email
	o.WantsInvoice = draft.WantsInvoice
	o.PaymentMethod = draft.PaymentMethod
	o.SpecialDescription = draft.SpecialDescription
	o.Items = draft.Items
	o.TotalAmount = draft.TotalAmount

	r.storage.Save(r.orders)
	r.logger.Info("order fields updated", zap.String("order_id", id))
}

// UpdateStatus moves an order to a new lifecycle state and appends one
// history entry. Re-entering the current status is a no-op and must not
// grow the history; an unknown id is a silent no-op.
func (r *Repository) UpdateStatus(id string, status order.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug("status change for unknown order ignored", zap.String("order_id", id))
		return
	}
	if r.orders[i].Status == status {
		return
	}

	old := r.orders[i].Status
	r.orders[i].Status = status
	r.orders[i].History = append(r.orders[i].History, order.HistoryEntry{
		Status:    status,
		Timestamp: r.timeNow(),
	})

	r.storage.Save(r.orders)
	r.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("old_status", string(old)),
		zap.String("new_status", string(status)))
}

// Get returns a copy of the order with the given id.
func (r *Repository) Get(id string) (order.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return order.Order{}, false
	}
	return r.orders[i], true
}

// History returns the status history of the order with the given id.
func (r *Repository) History(id string) ([]order.HistoryEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	out := make([]order.HistoryEntry, len(r.orders[i].History))
	copy(out, r.orders[i].History)
	return out, true
}

// indexOf must be called with the mutex held.
func (r *Repository) indexOf(id string) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

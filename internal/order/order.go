package order

import (
	"strings"
	"time"
)

// Status is the order lifecycle state. The Spanish labels are the wire
// format: they appear verbatim in the persisted file and in the CSV export.
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInCutting  Status = "En corte"
	StatusDispatched Status = "Despachado"
	StatusReceived   Status = "Recibido"
	StatusCancelled  Status = "Cancelado"
	StatusToCorrect  Status = "Pedido por corregir"
)

// Statuses returns the closed set of lifecycle states in display order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusInCutting,
		StatusDispatched,
		StatusReceived,
		StatusCancelled,
		StatusToCorrect,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInCutting, StatusDispatched,
		StatusReceived, StatusCancelled, StatusToCorrect:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PayCash       PaymentMethod = "Efectivo"
	PayTransfer   PaymentMethod = "Transferencia"
	PayCreditCard PaymentMethod = "Tarjeta de Crédito"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PayCash, PayTransfer, PayCreditCard:
		return true
	}
	return false
}

// Item is one product line of an order. Material is only meaningful for
// pillows; FillingType is reserved for the duvet-filling product.
type Item struct {
	ProductType string  `json:"productType"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Material    string  `json:"material,omitempty"`
	FillingType string  `json:"fillingType,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Subtotal tolerates malformed lines: a negative price counts as 0 and a
// non-positive quantity as 1, mirroring the intake form's defaults.
func (i Item) Subtotal() float64 {
	price := i.Price
	if price < 0 {
		price = 0
	}
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return price * float64(qty)
}

// HistoryEntry records one status transition. The first entry of every
// order is the Pendiente entry stamped at creation.
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Order struct {
	ID                 string         `json:"id"`
	CustomerName       string         `json:"customerName"`
	Location           string         `json:"location"`
	IDCard             string         `json:"idCard"`
	Whatsapp           string         `json:"whatsapp"`
	WantsInvoice       bool           `json:"wantsInvoice"`
	Email              string         `json:"email,omitempty"`
	Date               time.Time      `json:"date"`
	Status             Status         `json:"status"`
	Items              []Item         `json:"items"`
	TotalAmount        float64        `json:"totalAmount"`
	PaymentMethod      PaymentMethod  `json:"paymentMethod"`
	SalesPerson        string         `json:"salesPerson"`
	SpecialDescription string         `json:"specialDescription,omitempty"`
	History            []HistoryEntry `json:"history"`
}

// SearchText is the lower-cased composite string the free-text filter
// matches against: customer name, id card, order id, salesperson and every
// item's product type, space-joined.
func (o Order) SearchText() string {
	parts := []string{o.CustomerName, o.IDCard, o.ID, o.SalesPerson}
	for _, it := range o.Items {
		parts = append(parts, it.ProductType)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

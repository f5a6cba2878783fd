package repository

import (
	"sort"
	"strings"

	"github.com/bedandhome/pedidos/internal/order"
)

// Filter is the list view's three criteria. Zero values match everything;
// the criteria combine with AND.
type Filter struct {
	Search      string
	Status      order.Status
	SalesPerson string
}

func (f Filter) matches(o order.Order) bool {
	if f.Search != "" &&
		!strings.Contains(o.SearchText(), strings.ToLower(f.Search)) {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.SalesPerson != "" && o.SalesPerson != f.SalesPerson {
		return false
	}
	return true
}

// List returns the filtered projection of the collection, always sorted
// most-recent-first by creation time regardless of storage order.
func (r *Repository) List(f Filter) []order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if f.matches(o) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

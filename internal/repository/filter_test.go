package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedandhome/pedidos/internal/order"
)

func testOrders() []order.Order {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	return []order.Order{
		// stored oldest-first on purpose: List must sort regardless
		{
			ID: "AAAAA", CustomerName: "Ana Ruiz", IDCard: "091111",
			SalesPerson: "NICOLE", Status: order.StatusPending, Date: t1,
			Items: []order.Item{{ProductType: "Sabana Premium"}},
		},
		{
			ID: "BBBBB", CustomerName: "Beto Paz", IDCard: "092222",
			SalesPerson: "KEVIN", Status: order.StatusDispatched, Date: t2,
			Items: []order.Item{{ProductType: "Almohada"}},
		},
	}
}

func TestListSearch(t *testing.T) {
	r, _ := newTestRepository(t, testOrders())

	tests := []struct {
		name   string
		search string
		ids    []string
	}{
		{"matches first customer", "ana", []string{"AAAAA"}},
		{"matches second customer", "paz", []string{"BBBBB"}},
		{"case insensitive", "ANA", []string{"AAAAA"}},
		{"matches product type", "almohada", []string{"BBBBB"}},
		{"matches order id", "aaaaa", []string{"AAAAA"}},
		{"matches salesperson", "kevin", []string{"BBBBB"}},
		{"empty matches all, newest first", "", []string{"BBBBB", "AAAAA"}},
		{"no match", "zapato", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.List(Filter{Search: tc.search})
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			if tc.ids == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func TestListStatusAndSalesPersonFilters(t *testing.T) {
	r, _ := newTestRepository(t, testOrders())

	got := r.List(Filter{Status: order.StatusDispatched})
	require.Len(t, got, 1)
	assert.Equal(t, "BBBBB", got[0].ID)

	got = r.List(Filter{SalesPerson: "NICOLE"})
	require.Len(t, got, 1)
	assert.Equal(t, "AAAAA", got[0].ID)

	// criteria combine with AND
	got = r.List(Filter{SalesPerson: "NICOLE", Status: order.StatusDispatched})
	assert.Empty(t, got)
}

func TestListSortsNewestFirst(t *testing.T) {
	orders := testOrders()
	// already oldest-first in storage; reverse to prove order independence
	r1, _ := newTestRepository(t, orders)
	r2, _ := newTestRepository(t, []order.Order{orders[1], orders[0]})

	for _, r := range []*Repository{r1, r2} {
		got := r.List(Filter{})
		require.Len(t, got, 2)
		assert.Equal(t, "BBBBB", got[0].ID)
		assert.Equal(t, "AAAAA", got[1].ID)
	}
}

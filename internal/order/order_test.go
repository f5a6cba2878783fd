package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, Status("Enviado").Valid())
	assert.False(t, Status("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PayCash.Valid())
	assert.True(t, PayTransfer.Valid())
	assert.True(t, PayCreditCard.Valid())
	assert.False(t, PaymentMethod("Cheque").Valid())
}

func TestItemSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected float64
	}{
		{"regular line", Item{Price: 10, Quantity: 2}, 20},
		{"default quantity", Item{Price: 10}, 10},
		{"zero quantity counts as one", Item{Price: 7.5, Quantity: 0}, 7.5},
		{"negative price counts as zero", Item{Price: -3, Quantity: 4}, 0},
		{"zero price", Item{Price: 0, Quantity: 3}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.item.Subtotal())
		})
	}
}

func TestSearchText(t *testing.T) {
	o := Order{
		ID:           "A1B2C",
		CustomerName: "Ana Ruiz",
		IDCard:       "0912345678",
		SalesPerson:  "NICOLE",
		Items: []Item{
			{ProductType: "Sabana Premium"},
			{ProductType: "Almohada"},
		},
		Date: time.Now(),
	}

	text := o.SearchText()
	assert.Equal(t, "ana ruiz 0912345678 a1b2c nicole sabana premium almohada", text)
}

func TestSizesFor(t *testing.T) {
	assert.Equal(t, StandardSizes, SizesFor("Sabana Premium"))
	assert.Equal(t, StandardSizes, SizesFor("Rellenos Nórdicos"))
	assert.Equal(t, PillowSizes, SizesFor("Almohada"))
	assert.Equal(t, PillowSizes, SizesFor("Fundas de Almohada"))
	assert.Equal(t, SofaSizes, SizesFor("Protectores de Sofá"))
}

func TestValidSize(t *testing.T) {
	assert.True(t, ValidSize("Sabana Premium", "Queen"))
	assert.True(t, ValidSize("Almohada", "70x50"))
	assert.True(t, ValidSize("Protectores de Sofá", "2 Puestos"))

	// pillow with a bedding size
	assert.False(t, ValidSize("Almohada", "Queen"))
	assert.False(t, ValidSize("Sabana Premium", "70x50"))
}

func TestCategoryOf(t *testing.T) {
	c, ok := CategoryOf("Coverduvet")
	assert.True(t, ok)
	assert.Equal(t, CategoryBedding, c)

	_, ok = CategoryOf("Mantel")
	assert.False(t, ok)
}

func TestAllowsMaterial(t *testing.T) {
	assert.True(t, AllowsMaterial("Almohada"))
	assert.False(t, AllowsMaterial("Fundas de Almohada"))
	assert.False(t, AllowsMaterial("Sabana VIP"))
}

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedandhome/pedidos/internal/order"
)

func TestWriteCSV(t *testing.T) {
	created := time.Date(2024, 3, 10, 15, 30, 45, 0, time.UTC)
	orders := []order.Order{
		{
			ID:                 "A1B2C",
			Date:               created,
			SalesPerson:        "NICOLE",
			CustomerName:       "Ana Ruiz",
			PaymentMethod:      order.PayCreditCard,
			TotalAmount:        27,
			Status:             order.StatusInCutting,
			SpecialDescription: "Bordado especial",
		},
		{
			ID:            "D3E4F",
			Date:          created.Add(-24 * time.Hour),
			SalesPerson:   "KEVIN",
			CustomerName:  "Beto Paz",
			PaymentMethod: order.PayCash,
			TotalAmount:   12.5,
			Status:        order.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, orders))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"A1B2C", "10/03/2024, 15:30:45", "NICOLE", "Ana Ruiz",
		"Tarjeta de Crédito", "27", "En corte", "Bordado especial",
	}, records[1])

	// absent description renders as empty string, raw number has no padding
	assert.Equal(t, "", records[2][7])
	assert.Equal(t, "12.5", records[2][5])
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	orders := []order.Order{
		{
			ID:                 "G5H6I",
			CustomerName:       "Ruiz, Ana",
			SpecialDescription: "medidas 2,10 x 1,60",
			PaymentMethod:      order.PayTransfer,
			Status:             order.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, orders))

	raw := buf.String()
	assert.Contains(t, raw, `"Ruiz, Ana"`)
	assert.Contains(t, raw, `"medidas 2,10 x 1,60"`)

	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ruiz, Ana", records[1][3])
}

func TestWriteCSVEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}

package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bedandhome/pedidos/internal/order"
)

// Header is the fixed column layout of the spreadsheet export.
var Header = []string{"ID", "Fecha", "Vendedor", "Cliente", "Pago", "Total $", "Estado", "Nota Especial"}

const dateLayout = "02/01/2006, 15:04:05"

// WriteCSV renders one row per order in the given (already filtered and
// sorted) sequence. Free-text fields go through the CSV encoder, so
// embedded commas are quoted rather than corrupting column alignment.
func WriteCSV(w io.Writer, orders []order.Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.Date.Format(dateLayout),
			o.SalesPerson,
			o.CustomerName,
			string(o.PaymentMethod),
			strconv.FormatFloat(o.TotalAmount, 'f', -1, 64),
			string(o.Status),
			o.SpecialDescription,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

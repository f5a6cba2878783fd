package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bedandhome/pedidos/internal/order"
	"github.com/bedandhome/pedidos/internal/pricing"
	"github.com/bedandhome/pedidos/internal/repository"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// orderDraftRequest is the intake form payload, used by both create and
// edit. It never carries salesperson, status or history: those are owned by
// the session and the repository.
type orderDraftRequest struct {
	CustomerName       string       `json:"customerName"`
	Location           string       `json:"location"`
	IDCard             string       `json:"idCard"`
	Whatsapp           string       `json:"whatsapp"`
	Email              string       `json:"email"`
	WantsInvoice       bool         `json:"wantsInvoice"`
	PaymentMethod      string       `json:"paymentMethod"`
	SpecialDescription string       `json:"specialDescription"`
	Items              []order.Item `json:"items"`
}

// validate returns per-field messages; an empty map means the draft passes.
// Email and specialDescription are not validated, matching the form.
func (req orderDraftRequest) validate() map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"customerName": req.CustomerName,
		"location":     req.Location,
		"idCard":       req.IDCard,
		"whatsapp":     req.Whatsapp,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "Requerido"
		}
	}

	if !order.PaymentMethod(req.PaymentMethod).Valid() {
		errs["paymentMethod"] = "forma de pago inválida"
	}

	if len(req.Items) == 0 {
		errs["items"] = "se requiere al menos un producto"
	}
	for i, it := range req.Items {
		if _, ok := order.CategoryOf(it.ProductType); !ok {
			errs[fmt.Sprintf("items[%d].productType", i)] = "producto desconocido"
			continue
		}
		if !order.ValidSize(it.ProductType, it.Size) {
			errs[fmt.Sprintf("items[%d].size", i)] = "tamaño inválido para " + it.ProductType
		}
	}

	return errs
}

// toDraft builds the repository draft, computing the total the same way the
// form does at save time.
func (req orderDraftRequest) toDraft() repository.Draft {
	method := order.PaymentMethod(req.PaymentMethod)
	return repository.Draft{
		CustomerName:       strings.TrimSpace(req.CustomerName),
		Location:           strings.TrimSpace(req.Location),
		IDCard:             strings.TrimSpace(req.IDCard),
		Whatsapp:           strings.TrimSpace(req.Whatsapp),
		Email:              strings.TrimSpace(req.Email),
		WantsInvoice:       req.WantsInvoice,
		PaymentMethod:      method,
		SpecialDescription: req.SpecialDescription,
		Items:              req.Items,
		TotalAmount:        pricing.ComputeTotal(req.Items, method),
	}
}

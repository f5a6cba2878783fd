package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bedandhome/pedidos/internal/auth"
	"github.com/bedandhome/pedidos/internal/export"
	"github.com/bedandhome/pedidos/internal/metrics"
	"github.com/bedandhome/pedidos/internal/order"
	"github.com/bedandhome/pedidos/internal/repository"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SalesPerson string `json:"salesPerson"`
		Secret      string `json:"secret"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.sessions.Login(req.SalesPerson, req.Secret)
	if err != nil {
		metrics.LoginFailuresTotal.Inc()
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"token":       token,
		"salesPerson": req.SalesPerson,
	})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(sessionHeader)
	salesPerson, ok := s.sessions.SalesPerson(token)
	if !ok {
		respondError(w, http.StatusUnauthorized, "login required")
		return
	}

	var req orderDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := req.validate(); len(fieldErrs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
		return
	}

	o := s.repo.Create(req.toDraft(), salesPerson)

	// One order per login: the session is spent, the next order needs a
	// fresh login.
	s.sessions.Consume(token)

	metrics.OrdersCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, o)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req orderDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := req.validate(); len(fieldErrs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
		return
	}

	// An unknown id is non-fatal: the repository ignores it and the caller
	// still gets a 200.
	s.repo.UpdateFields(id, req.toDraft())

	metrics.FieldEditsTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Pedido #" + id + " actualizado correctamente",
	})
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Status order.Status `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.Status.Valid() {
		respondError(w, http.StatusBadRequest, "unknown status: "+string(req.Status))
		return
	}

	s.repo.UpdateStatus(id, req.Status)

	metrics.StatusChangesTotal.WithLabelValues(string(req.Status)).Inc()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Estado de #" + id + " actualizado a " + string(req.Status),
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, s.repo.List(f))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	o, ok := s.repo.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	history, ok := s.repo.History(id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	orders := s.repo.List(f)

	filename := fmt.Sprintf("bed_and_home_pedidos_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteCSV(w, orders); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("export_csv").Inc()
		s.logger.Error("csv export failed", zap.Error(err))
		return
	}
	metrics.ExportsTotal.Inc()
}

// filterFromQuery reads the list view's three criteria from the query
// string. An unknown status label is rejected rather than silently matching
// nothing.
func filterFromQuery(r *http.Request) (repository.Filter, error) {
	f := repository.Filter{
		Search:      r.URL.Query().Get("search"),
		SalesPerson: r.URL.Query().Get("salesPerson"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := order.Status(raw)
		if !st.Valid() {
			return repository.Filter{}, errors.New("unknown status: " + raw)
		}
		f.Status = st
	}
	return f, nil
}

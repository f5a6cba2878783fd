package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// auditMiddleware records every mutating request. Reads are not audited,
// and the login exchange is recorded without its bodies so secrets and
// session tokens never reach the audit stream.
func (s *Server) auditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditEntry{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		if route := mux.CurrentRoute(r); route != nil {
			entry.Handler = route.GetName()
		}
		if sp, ok := s.sessions.SalesPerson(r.Header.Get(sessionHeader)); ok {
			entry.SalesPerson = sp
		}
		entry.OrderID = mux.Vars(r)["id"]

		isLogin := entry.Handler == "handleLogin"

		if !isLogin && r.Body != nil {
			body, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			entry.Request = string(body)

			if entry.Handler == "handleUpdateStatus" {
				var statusReq struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(body, &statusReq); err == nil {
					entry.NewStatus = statusReq.Status
					if o, ok := s.repo.Get(entry.OrderID); ok {
						entry.OldStatus = string(o.Status)
					}
				}
			}
		}

		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.StatusCode()
		if !isLogin {
			entry.Response = string(rec.Body())
		}

		s.audit.Log(r.Context(), entry)
	})
}

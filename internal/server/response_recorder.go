package server

import (
	"bytes"
	"net/http"
)

// responseRecorder captures the status code and body written by a handler
// for the logging and audit middlewares.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	buffer     bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.buffer.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) StatusCode() int {
	return r.statusCode
}

func (r *responseRecorder) Body() []byte {
	return r.buffer.Bytes()
}

package middleware

import "net/http"

// statusResponseWriter records the status code written by a handler.
type statusResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{ResponseWriter: w}
}

func (w *statusResponseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Code returns the status sent to the client, 200 if nothing was written.
func (w *statusResponseWriter) Code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// StatusClass groups the code as 1XX, 2XX and so on.
func (w *statusResponseWriter) StatusClass() string {
	switch code := w.Code(); {
	case code >= 500:
		return "5XX"
	case code >= 400:
		return "4XX"
	case code >= 300:
		return "3XX"
	case code >= 200:
		return "2XX"
	default:
		return "1XX"
	}
}

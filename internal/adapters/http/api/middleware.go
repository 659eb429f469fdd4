package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/panelboard/pkg/metrics"
)

// MetricsMiddleware records request count and latency per endpoint. Failed
// requests are also counted under their error code, so limit_exceeded and
// unknown_dimension show up separately from other bad requests.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		ms := float64(time.Since(start).Microseconds()) / 1000
		status := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, ms)

		if rec.status < http.StatusBadRequest {
			return
		}
		errType := rec.errCode
		if errType == "" {
			errType = errorCodeFor(rec.status)
		}
		metrics.RecordErrorByEndpoint(endpoint, r.Method, errType)
		metrics.RecordErrorByType(errType, severityFor(rec.status))
		metrics.RecordErrorByComponent("http", errType)
		metrics.RecordErrorLatency("http", errType, ms)
	}
}

// errorCodeFor covers responses written without writeError, such as
// http.NotFound for unsupported methods.
func errorCodeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusTooManyRequests:
		return "backpressure"
	case http.StatusServiceUnavailable:
		return "unavailable"
	case http.StatusRequestEntityTooLarge:
		return "too_large"
	}
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return "bad_request"
}

func severityFor(status int) string {
	switch {
	case status == http.StatusServiceUnavailable, status == http.StatusTooManyRequests:
		return "medium"
	case status >= http.StatusInternalServerError:
		return "high"
	default:
		return "low"
	}
}

// errorCoder is implemented by writers that want the JSON error code.
type errorCoder interface {
	setErrorCode(code string)
}

// statusRecorder captures the status and error code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	errCode string
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) setErrorCode(code string) { r.errCode = code }

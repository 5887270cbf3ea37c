// Package metrics collects request counters for the API server and produces
// the report served at the metrics endpoint. Counters use atomic operations
// so the middleware can record from concurrent requests without locking.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Metrics collects request counters.
type Metrics struct {
	requests     int64 // Total HTTP requests served
	clientErrors int64 // Responses with a 4xx status
	serverErrors int64 // Responses with a 5xx status
	startTime    time.Time
}

// NewMetrics creates a new Metrics instance with initialized counters
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRequest records one completed request with its response status.
func (m *Metrics) RecordRequest(status int) {
	atomic.AddInt64(&m.requests, 1)
	switch {
	case status >= 500:
		atomic.AddInt64(&m.serverErrors, 1)
	case status >= 400:
		atomic.AddInt64(&m.clientErrors, 1)
	}
}

// Report contains a point-in-time snapshot of the counters.
type Report struct {
	StartTime    time.Time     `json:"startTime"`
	Uptime       time.Duration `json:"uptime"`
	Requests     int64         `json:"requests"`
	ClientErrors int64         `json:"clientErrors"`
	ServerErrors int64         `json:"serverErrors"`
}

// GenerateReport snapshots the counters into a Report.
func (m *Metrics) GenerateReport() Report {
	return Report{
		StartTime:    m.startTime,
		Uptime:       time.Since(m.startTime),
		Requests:     atomic.LoadInt64(&m.requests),
		ClientErrors: atomic.LoadInt64(&m.clientErrors),
		ServerErrors: atomic.LoadInt64(&m.serverErrors),
	}
}

// MarshalJSON implements json.Marshaler to render the uptime as a duration
// string rather than nanoseconds.
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(&struct {
		Alias
		Uptime string `json:"uptime"`
	}{
		Alias:  Alias(r),
		Uptime: r.Uptime.String(),
	})
}

// String returns a human-readable representation of the report.
func (r Report) String() string {
	return fmt.Sprintf("up %s, %d requests (%d client errors, %d server errors)",
		r.Uptime, r.Requests, r.ClientErrors, r.ServerErrors)
}

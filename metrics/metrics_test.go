package metrics

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestRecordRequest(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest(200)
	m.RecordRequest(404)
	m.RecordRequest(409)
	m.RecordRequest(500)

	r := m.GenerateReport()
	if r.Requests != 4 {
		t.Errorf("expected 4 requests, got %d", r.Requests)
	}
	if r.ClientErrors != 2 {
		t.Errorf("expected 2 client errors, got %d", r.ClientErrors)
	}
	if r.ServerErrors != 1 {
		t.Errorf("expected 1 server error, got %d", r.ServerErrors)
	}
}

func TestReportJSONUptimeFormat(t *testing.T) {
	r := Report{Uptime: 90 * time.Second, Requests: 1}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"uptime":"1m30s"`) {
		t.Errorf("expected human-readable uptime, got %s", data)
	}
}

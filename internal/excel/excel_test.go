package excel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"
)

func testCfg(loginURL, graphURL string) config.Config {
	return config.Config{
		MS365TenantID:     "tenant-1",
		MS365ClientID:     "client-1",
		MS365ClientSecret: "secret-1",
		MS365UserUPN:      "owner@example.com",
		ExcelFilePath:     "Leads/contacts.xlsx",
		ExcelTableName:    "Table1",
		LoginBaseURL:      loginURL,
		GraphBaseURL:      graphURL,
	}
}

func tokenServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/oauth2/v2.0/token") {
			t.Errorf("unexpected token path: %s", r.URL.Path)
		}
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
}

func TestAppendRow_NotConfigured(t *testing.T) {
	l := New(config.Config{})
	err := l.AppendRow(context.Background(), []interface{}{"x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestAppendRow_Success(t *testing.T) {
	var tokenHits int32
	login := tokenServer(t, &tokenHits)
	defer login.Close()

	var gotAuth string
	var gotBody map[string][][]interface{}
	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/workbook/tables('Table1')/rows/add") {
			t.Errorf("unexpected graph path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"index":0}`))
	}))
	defer graph.Close()

	l := New(testCfg(login.URL, graph.URL))
	sub := contact.Submission{
		Name: "Jane", Email: "jane@x.com", Message: "Hi",
		HasWebsite: true, Website: "https://x.com", IP: "203.0.113.9",
		Meta: contact.Meta{TS: "2026-08-01T10:00:00Z", Source: "site", TimeSpentMs: 4200},
	}
	if err := l.AppendRow(context.Background(), Row(sub)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer token, got %q", gotAuth)
	}
	rows := gotBody["values"]
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "Jane" || row[3] != "Yes" || row[5] != "2026-08-01T10:00:00Z" {
		t.Errorf("unexpected row content: %v", row)
	}
}

func TestAppendRow_TokenIsCached(t *testing.T) {
	var tokenHits int32
	login := tokenServer(t, &tokenHits)
	defer login.Close()

	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer graph.Close()

	l := New(testCfg(login.URL, graph.URL))
	for i := 0; i < 3; i++ {
		if err := l.AppendRow(context.Background(), []interface{}{"row"}); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	if n := atomic.LoadInt32(&tokenHits); n != 1 {
		t.Errorf("token should be exchanged once and reused, got %d exchanges", n)
	}
}

func TestAppendRow_UpstreamFailure(t *testing.T) {
	var tokenHits int32
	login := tokenServer(t, &tokenHits)
	defer login.Close()

	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"AccessDenied"}}`))
	}))
	defer graph.Close()

	l := New(testCfg(login.URL, graph.URL))
	err := l.AppendRow(context.Background(), []interface{}{"row"})

	var dErr *DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if dErr.Status != http.StatusForbidden || !strings.Contains(dErr.Body, "AccessDenied") {
		t.Errorf("delivery error should carry upstream status and body: %+v", dErr)
	}
}

func TestAppendRow_TokenExchangeFailure(t *testing.T) {
	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer login.Close()

	l := New(testCfg(login.URL, "http://graph.invalid"))
	err := l.AppendRow(context.Background(), []interface{}{"row"})

	var dErr *DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError from token exchange, got %v", err)
	}
	if dErr.Status != http.StatusUnauthorized {
		t.Errorf("expected upstream 401, got %d", dErr.Status)
	}
}

func TestRow_ColumnOrder(t *testing.T) {
	sub := contact.Submission{
		Name: "Jane", Email: "jane@x.com", Message: "Hi",
		HasWebsite: false, IP: "203.0.113.9",
		Meta: contact.Meta{TS: "2026-08-01T10:00:00Z", Source: "s", TimeSpentMs: 7, UserAgent: "ua", Page: "/contact"},
	}
	row := Row(sub)
	want := []interface{}{"Jane", "jane@x.com", "Hi", "No", "", "2026-08-01T10:00:00Z", "s", int64(7), "ua", "/contact", "203.0.113.9"}
	if len(row) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d: expected %v, got %v", i, want[i], row[i])
		}
	}
}

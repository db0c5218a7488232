// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/recognizer"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	eng, err := engine.New(nil, recognizer.NewHeuristic(), nil, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return NewWebServer("8080", eng, nil)
}

func TestHandleClassify_PersonalData(t *testing.T) {
	ws := newTestServer(t)

	body := `{"text": "A requerente Maria Silva solicitou acesso aos autos."}`
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ws.handleClassify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Result == nil {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Result.Intent != engine.IntentPersonalData {
		t.Errorf("intent = %q, want %q", resp.Result.Intent, engine.IntentPersonalData)
	}
	if len(resp.Result.Entities) == 0 {
		t.Error("expected at least one entity")
	}
}

func TestHandleClassify_EmptyText(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(`{"text": ""}`))
	rec := httptest.NewRecorder()
	ws.handleClassify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp ClassifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestHandleClassify_InvalidBody(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	ws.handleClassify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleClassify_MethodNotAllowed(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/classify", nil)
	rec := httptest.NewRecorder()
	ws.handleClassify(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandleBatch_AugmentsCSV(t *testing.T) {
	ws := newTestServer(t)

	csvBody := "id,text\n1,O requerente João Santos protocolou o pedido.\n2,Solicito o relatório anual de gastos.\n"
	req := httptest.NewRequest(http.MethodPost, "/batch", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	ws.handleBatch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	out := rec.Body.String()
	if !strings.Contains(out, "intent") || !strings.Contains(out, engine.IntentPersonalData) {
		t.Errorf("unexpected batch output:\n%s", out)
	}
}

func TestHandleBatch_SelectsTextColumn(t *testing.T) {
	ws := newTestServer(t)

	csvBody := "id,pedido\n1,\"Requerente: Maria Silva\"\n"
	req := httptest.NewRequest(http.MethodPost, "/batch?text_column=pedido", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	ws.handleBatch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), engine.IntentPersonalData) {
		t.Errorf("selected column was not classified:\n%s", rec.Body.String())
	}
}

func TestHandleBatch_MissingTextColumn(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/batch", strings.NewReader("id,nome\n1,abc\n"))
	rec := httptest.NewRecorder()
	ws.handleBatch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ws.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["service"] != "privacyaware-api" {
		t.Errorf("unexpected health payload %v", body)
	}
}

func TestHandleVersion(t *testing.T) {
	ws := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	ws.handleVersion(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] == "" {
		t.Errorf("missing version in %v", body)
	}
}

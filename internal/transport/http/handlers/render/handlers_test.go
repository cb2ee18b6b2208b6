package renderhandler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"appraisalgen/internal/app/server"
	"appraisalgen/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:          ":0",
		Renderer:      config.RendererVector,
		ExportTimeout: 30 * time.Second,
		MaxBodyBytes:  1 << 20,
	}
}

const sampleBody = `{
	"meta": {"reportTitle": "Annual Appraisal", "employeeName": "A. Person"},
	"tabs": [{
		"label": "Job Competencies",
		"sections": [{"title": "Manage Relationships", "weightage": 80, "rating": 5.0}]
	}]
}`

func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	app, err := server.New(cfg)
	if err != nil {
		t.Fatalf("server setup: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestRenderEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig())

	resp, err := ts.Client().Post(ts.URL+"/api/v1/appraisals/render", "application/json", strings.NewReader(sampleBody))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatal("response does not look like a PDF")
	}
}

func TestRenderEndpointRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t, testConfig())

	resp, err := ts.Client().Post(ts.URL+"/api/v1/appraisals/render", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var envelope struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success || envelope.Error == nil || envelope.Error.Code != "INVALID_INPUT" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestRenderEndpointRequiresAuthWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "secret"
	ts := newTestServer(t, cfg)

	resp, err := ts.Client().Post(ts.URL+"/api/v1/appraisals/render", "application/json", strings.NewReader(sampleBody))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testConfig())

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

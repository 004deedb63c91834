package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/techskyline/academy/internal/credential"
)

type stubCertRepo struct {
	certs map[string]credential.Certificate
	err   error
}

func (r *stubCertRepo) Insert(ctx context.Context, cert credential.Certificate) error {
	if r.certs == nil {
		r.certs = make(map[string]credential.Certificate)
	}
	r.certs[cert.ID] = cert
	return nil
}

func (r *stubCertRepo) Get(ctx context.Context, id string) (credential.Certificate, error) {
	if r.err != nil {
		return credential.Certificate{}, r.err
	}
	cert, ok := r.certs[id]
	if !ok {
		return credential.Certificate{}, credential.ErrNotFound
	}
	return cert, nil
}

func (r *stubCertRepo) List(ctx context.Context) ([]credential.Certificate, error) {
	var out []credential.Certificate
	for _, c := range r.certs {
		out = append(out, c)
	}
	return out, nil
}

func testServer(t *testing.T, repo *stubCertRepo) *httptest.Server {
	t.Helper()
	srv := New(credential.NewRegistry(repo), zap.NewNop(), Config{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestVerifyKnownCertificate(t *testing.T) {
	repo := &stubCertRepo{}
	cert := credential.Certificate{
		ID:           "TS-AI-2026-ABCD1234",
		OwnerID:      "user-1",
		Name:         "Jordan Reyes",
		Track:        "AI Engineer",
		IssuedAt:     time.Now().UTC(),
		ProjectTitle: "Support Triage Agent",
	}
	if err := repo.Insert(t.Context(), cert); err != nil {
		t.Fatal(err)
	}

	ts := testServer(t, repo)
	resp, err := http.Get(ts.URL + "/verify/TS-AI-2026-ABCD1234")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status      string                 `json:"status"`
		Certificate credential.Certificate `json:"certificate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "valid" {
		t.Errorf("status field = %q", body.Status)
	}
	if body.Certificate.ID != cert.ID || body.Certificate.Name != cert.Name {
		t.Errorf("certificate = %+v", body.Certificate)
	}
}

func TestVerifyUnknownCertificate(t *testing.T) {
	ts := testServer(t, &stubCertRepo{})

	resp, err := http.Get(ts.URL + "/verify/TS-AI-2026-DEADBEEF")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "invalid" {
		t.Errorf("status field = %q, want invalid", body["status"])
	}
}

func TestVerifyStoreFailureIs500(t *testing.T) {
	ts := testServer(t, &stubCertRepo{err: errors.New("disk on fire")})

	resp, err := http.Get(ts.URL + "/verify/TS-AI-2026-ABCD1234")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := testServer(t, &stubCertRepo{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Addr == "" {
		t.Error("Addr default missing")
	}
	if cfg.ShutdownTimeout <= 0 {
		t.Error("ShutdownTimeout default missing")
	}
}

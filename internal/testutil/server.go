package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benson/poolbuilder/internal/api"
	"github.com/benson/poolbuilder/internal/config"
	"github.com/benson/poolbuilder/internal/repository/memory"
	"github.com/benson/poolbuilder/internal/service"
	"github.com/benson/poolbuilder/internal/ws"
)

// AdminSecret is the moderation credential test servers are configured with.
const AdminSecret = "test-admin-secret"

// TestServer runs the full router against a memory store and a fake catalog.
type TestServer struct {
	Server   *httptest.Server
	Store    *memory.KVStore
	Catalog  *FakeCatalog
	Services *service.Services
	Hub      *ws.Hub
	Config   *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := &config.Config{
		Port:          "0",
		Environment:   "test",
		AdminSecret:   AdminSecret,
		AllowedOrigin: "*",
		BoosterCount:  6,
	}

	store := memory.NewKVStore()
	fake := NewFakeCatalog()

	hub := ws.NewHub()
	go hub.Run()

	services := service.NewServices(store, fake, hub, cfg)
	router := api.NewRouter(services, hub, cfg)
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})

	return &TestServer{
		Server:   srv,
		Store:    store,
		Catalog:  fake,
		Services: services,
		Hub:      hub,
		Config:   cfg,
	}
}

// URL joins a path onto the server base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// PostJSON sends payload as a JSON POST body, with an optional bearer token.
func (ts *TestServer) PostJSON(t *testing.T, path string, payload any, bearer string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL(path), bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// DecodeJSON reads a response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

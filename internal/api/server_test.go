package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projctl/internal/devtool"
	"projctl/internal/settings"
	tu "projctl/internal/testutil"
)

type recordingLauncher struct {
	calls int
	last  []string
}

func (r *recordingLauncher) Launch(_ context.Context, commandPath string, arguments []string, _ string) error {
	r.calls++
	r.last = append([]string{commandPath}, arguments...)
	return nil
}

func newTestServer(t *testing.T) (*Server, *recordingLauncher) {
	t.Helper()
	tmp := t.TempDir()
	t.Cleanup(tu.WithEnv(t, "XDG_CONFIG_HOME", tmp))
	t.Cleanup(tu.WithEnv(t, "HOME", tmp))

	rl := &recordingLauncher{}
	return &Server{dispatcher: devtool.NewDispatcher(rl)}, rl
}

func TestAPI_SettingsRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	// GET on a fresh config dir returns the zero-value record
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status %d: %s", rec.Code, rec.Body.String())
	}

	// PUT with a dangling default gets normalized before save
	body := `{"devTools":[{"id":"a","name":"A","commandPath":"/bin/a","enabled":false},{"id":"b","name":"B","commandPath":"/bin/b","enabled":true}],"defaultDevToolId":"a"}`
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	req.Header.Set("content-type", "application/json")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status %d: %s", rec.Code, rec.Body.String())
	}
	var got settings.AppSettings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.DefaultDevToolID != "b" {
		t.Fatalf("default not normalized on PUT: %q", got.DefaultDevToolID)
	}

	persisted, err := settings.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if persisted.DefaultDevToolID != "b" || len(persisted.DevTools) != 2 {
		t.Fatalf("unexpected persisted settings: %+v", persisted)
	}
}

func TestAPI_OpenInvokesDispatcher(t *testing.T) {
	srv, rl := newTestServer(t)
	h := srv.Handler()

	seed := settings.AppSettings{
		DevTools: []devtool.DevTool{
			{ID: "mytool", Name: "Mine", CommandPath: "/bin/mine", Arguments: []string{"{path}"}, Enabled: true},
		},
		DefaultDevToolID: "mytool",
	}
	if err := settings.Save(seed); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/open", strings.NewReader(`{"path":"/work/proj"}`))
	req.Header.Set("content-type", "application/json")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/open status %d: %s", rec.Code, rec.Body.String())
	}
	if rl.calls != 1 {
		t.Fatalf("expected one launch, got %d", rl.calls)
	}
	if len(rl.last) != 2 || rl.last[0] != "/bin/mine" || rl.last[1] != "/work/proj" {
		t.Fatalf("unexpected launch request: %v", rl.last)
	}

	// unknown tool id surfaces as an error status
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/open", strings.NewReader(`{"path":"/work/proj","toolId":"nope"}`))
	req.Header.Set("content-type", "application/json")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown tool, got %d", rec.Code)
	}

	// missing path is a bad request
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/open", strings.NewReader(`{}`))
	req.Header.Set("content-type", "application/json")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing path, got %d", rec.Code)
	}
}

func TestAPI_ToolsReturnsMergedView(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	seed := settings.AppSettings{
		DevTools: []devtool.DevTool{
			{ID: "c1", Name: "Mine", CommandPath: "/bin/mine", Enabled: true},
		},
		DefaultDevToolID: "c1",
	}
	if err := settings.Save(seed); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/tools status %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Tools            []devtool.DevTool `json:"tools"`
		DefaultDevToolID string            `json:"defaultDevToolId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DefaultDevToolID != "c1" {
		t.Fatalf("unexpected default: %q", resp.DefaultDevToolID)
	}
	found := false
	for _, tool := range resp.Tools {
		if tool.ID == "c1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("stored custom tool missing from merged view: %+v", resp.Tools)
	}
}

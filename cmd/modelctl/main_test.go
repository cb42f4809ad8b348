package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeOllama(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{{"name": "mistral:latest"}, {"name": "llama2:latest"}},
		})
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "Paris", "done": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(in), &out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	srv := fakeOllama(t)
	out, err := execute(t, "", "--url", srv.URL, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "mistral:latest\nllama2:latest\n" {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	srv := fakeOllama(t)
	if out, err := execute(t, "", "--url", srv.URL, "check"); err != nil || !strings.Contains(out, "running") {
		t.Errorf("Expected running daemon, got %q (%v)", out, err)
	}

	down := httptest.NewServer(http.NotFoundHandler())
	defer down.Close()
	if _, err := execute(t, "", "--url", down.URL, "check"); err == nil {
		t.Error("Expected check to fail against a daemon without /api/tags")
	}
}

func TestTestCommand(t *testing.T) {
	srv := fakeOllama(t)
	out, err := execute(t, "", "--url", srv.URL, "test", "mistral", "--prompt", "capital?")
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if !strings.Contains(out, "Response: Paris") {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestSetBackendCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ollamaServer.js")
	if err := os.WriteFile(path, []byte("const MODEL = 'mistral';\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "--backend-file", path, "set-backend", "neural-chat"); err != nil {
		t.Fatalf("set-backend: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "const MODEL = 'neural-chat';\n" {
		t.Errorf("Unexpected backend content %q", got)
	}

	if _, err := execute(t, "", "set-backend"); err == nil {
		t.Error("Expected argument error")
	}
}

func TestRecommendedCommand(t *testing.T) {
	out, err := execute(t, "", "recommended")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"mistral (4B)", "orca-mini (3B)", "dolphin-mixtral (46B)"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %q in output", name)
		}
	}
}

func TestMenuIsDefault(t *testing.T) {
	srv := fakeOllama(t)
	out, err := execute(t, "1\n0\n", "--url", srv.URL)
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out, "- mistral:latest") || !strings.Contains(out, "Goodbye!") {
		t.Errorf("Unexpected menu output %q", out)
	}
}

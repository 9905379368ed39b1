package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testCatalog = `[{
	"name": "code-relay",
	"git": "https://github.com/code-relay-cli/code-relay",
	"desc": "d",
	"languages": ["python"],
	"frameworks": ["click"],
	"task": {"desc": "t", "file": "coderelay.py"},
	"setup": {"use": "coderelay --help"}
}]`

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewWithClient(server.Client())
	client.CatalogURL = server.URL
	return client, server
}

func TestFetchCatalogFromContentsAPI(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		// GitHub wraps file contents in base64 with a newline every 60 chars
		encoded := base64.StdEncoding.EncodeToString([]byte(testCatalog))
		chunked := encoded[:60] + "\n" + encoded[60:]
		json.NewEncoder(w).Encode(map[string]string{
			"content":  chunked,
			"encoding": "base64",
		})
	})
	defer server.Close()

	c, err := client.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchCatalog failed: %v", err)
	}
	if _, ok := c.Find("code-relay"); !ok {
		t.Error("fetched catalog misses the code-relay entry")
	}
}

func TestFetchCatalogFromRawURL(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testCatalog))
	})
	defer server.Close()

	c, err := client.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchCatalog failed: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestFetchCatalogNotFound(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.FetchCatalog(context.Background())
	if !errors.Is(err, ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestFetchCatalogRateLimited(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})
	defer server.Close()

	_, err := client.FetchCatalog(context.Background())
	if !errors.Is(err, ErrorRateLimited) {
		t.Errorf("expected ErrorRateLimited, got %v", err)
	}
}

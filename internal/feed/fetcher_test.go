package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<products></products>"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	doc, err := client.FetchDocument(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(doc) != "<products></products>" {
		t.Fatalf("unexpected body: %q", doc)
	}
}

func TestFetchDocumentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	_, err := client.FetchDocument(context.Background(), srv.URL)

	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if ferr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502 in error, got %d", ferr.Status)
	}
}

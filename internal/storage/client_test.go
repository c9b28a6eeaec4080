package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := &Client{BaseURL: srv.URL, Bucket: "payment-screenshots", HTTP: srv.Client()}

	url, err := c.Upload(context.Background(), "event-1/123_shot.png", "image/png", []byte("pngbytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/object/payment-screenshots/event-1/123_shot.png" {
		t.Errorf("upload path = %q", gotPath)
	}
	if gotContentType != "image/png" {
		t.Errorf("content type = %q", gotContentType)
	}
	if string(gotBody) != "pngbytes" {
		t.Errorf("body = %q", gotBody)
	}
	if want := srv.URL + "/object/public/payment-screenshots/event-1/123_shot.png"; url != want {
		t.Errorf("public url = %q, want %q", url, want)
	}
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("bucket policy"))
	}))
	t.Cleanup(srv.Close)

	c := &Client{BaseURL: srv.URL, Bucket: "payment-screenshots", HTTP: srv.Client()}

	_, err := c.Upload(context.Background(), "p", "image/png", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error should carry status: %v", err)
	}
}

func TestUploadUnconfigured(t *testing.T) {
	c := &Client{Bucket: "payment-screenshots", HTTP: http.DefaultClient}
	if _, err := c.Upload(context.Background(), "p", "image/png", nil); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key", "resumes")
	err := client.Upload(context.Background(), "1700000000_cv.pdf", []byte("%PDF-1.4"), "application/pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotPath != "/storage/v1/object/resumes/1700000000_cv.pdf" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotType != "application/pdf" {
		t.Errorf("content type = %q", gotType)
	}
	if string(gotBody) != "%PDF-1.4" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestUpload_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "resumes")
	if err := client.Upload(context.Background(), "k", nil, "application/pdf"); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestPublicURL(t *testing.T) {
	client := NewClient("https://project.supabase.co", "key", "resumes")
	got := client.PublicURL("cv.pdf")
	want := "https://project.supabase.co/storage/v1/object/public/resumes/cv.pdf"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

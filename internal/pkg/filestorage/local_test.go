package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// uploadHeader builds a real multipart.FileHeader by round-tripping a form
// through the HTTP request parser.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("upload", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	return req.MultipartForm.File["upload"][0]
}

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return storage
}

func TestSaveUploadStoresImage(t *testing.T) {
	storage := newTestStorage(t)

	name, err := storage.SaveUpload(uploadHeader(t, "cover.png", []byte("png-bytes")), "thumbnail", "courses")
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if name == "" {
		t.Fatal("expected a stored name")
	}

	stored := filepath.Join(storage.basePath, "courses", name)
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveUploadSkipsNonImage(t *testing.T) {
	storage := newTestStorage(t)

	name, err := storage.SaveUpload(uploadHeader(t, "malware.exe", []byte("nope")), "thumbnail", "courses")
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if name != "" {
		t.Errorf("expected non-image upload to be skipped, got %q", name)
	}

	entries, err := os.ReadDir(storage.basePath)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty storage directory, found %d entries", len(entries))
	}
}

func TestSaveUploadNilHeader(t *testing.T) {
	storage := newTestStorage(t)

	name, err := storage.SaveUpload(nil, "thumbnail", "courses")
	if err != nil || name != "" {
		t.Fatalf("SaveUpload(nil) = (%q, %v), want empty no-op", name, err)
	}
}

func TestDeleteFileRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	name, err := storage.SaveUpload(uploadHeader(t, "cover.jpg", []byte("jpg")), "thumbnail", "courses")
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	if err := storage.DeleteFile("courses", name); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(storage.basePath, "courses", name)); !os.IsNotExist(err) {
		t.Error("expected stored file to be gone")
	}
}

func TestDeleteMissingFileIsNoOp(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.DeleteFile("courses", "never-stored.png"); err != nil {
		t.Fatalf("DeleteFile on missing file: %v", err)
	}
}

func TestURLFor(t *testing.T) {
	storage := newTestStorage(t)

	got := storage.URLFor("courses", "cover.png")
	want := "http://localhost:3000/uploads/courses/cover.png"
	if got != want {
		t.Errorf("URLFor = %s, want %s", got, want)
	}

	if storage.URLFor("courses", "") != "" {
		t.Error("expected empty URL for empty name")
	}
}

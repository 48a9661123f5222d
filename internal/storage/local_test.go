package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func setupVideoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "head.mp4"), []byte("head bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tail.mp4"), []byte("tail bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLocalProviderGet(t *testing.T) {
	p := NewLocalProvider(setupVideoDir(t))

	obj, err := p.Get("head.mp4")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer obj.Body.Close()

	body, _ := io.ReadAll(obj.Body)
	if string(body) != "head bytes" {
		t.Errorf("Get body = %q, want 'head bytes'", body)
	}
	if obj.ContentLength != int64(len("head bytes")) {
		t.Errorf("ContentLength = %d, want %d", obj.ContentLength, len("head bytes"))
	}
}

func TestLocalProviderStripsPathTraversal(t *testing.T) {
	dir := setupVideoDir(t)
	p := NewLocalProvider(dir)

	// "../x/head.mp4" must resolve inside the video dir, not escape it.
	obj, err := p.Get("../escape/head.mp4")
	if err != nil {
		t.Fatalf("Get with traversal key failed: %v", err)
	}
	defer obj.Body.Close()

	body, _ := io.ReadAll(obj.Body)
	if string(body) != "head bytes" {
		t.Errorf("traversal key served %q, want the in-dir file", body)
	}
}

func TestLocalProviderExists(t *testing.T) {
	p := NewLocalProvider(setupVideoDir(t))

	tests := []struct {
		key  string
		want bool
	}{
		{"head.mp4", true},
		{"tail.mp4", true},
		{"claws.mp4", false},
	}

	for _, tt := range tests {
		got, err := p.Exists(tt.key)
		if err != nil {
			t.Fatalf("Exists(%s) error: %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%s) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestLocalProviderList(t *testing.T) {
	p := NewLocalProvider(setupVideoDir(t))

	keys, err := p.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("List returned %d keys, want 2: %v", len(keys), keys)
	}
}

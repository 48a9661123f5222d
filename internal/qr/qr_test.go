package qr

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestEncodePNG(t *testing.T) {
	png, err := EncodePNG("http://localhost:8080/qr/GACK_HEAD_7X9K2", DefaultSize)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestWritePNGCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "01_HEAD.png")

	if err := WritePNG("http://localhost:8080/qr/GACK_HEAD_7X9K2", path, DefaultSize); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("file is not a PNG")
	}
}

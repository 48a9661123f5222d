package qr

import (
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel width/height of generated QR images.
const DefaultSize = 512

// EncodePNG renders content as a QR PNG with high error correction, matching
// the printed hand posters which partially obscure the code.
func EncodePNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.High, size)
}

// WritePNG renders content to a PNG file, creating parent directories.
func WritePNG(content, path string, size int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return qrcode.WriteFile(content, qrcode.High, size, path)
}

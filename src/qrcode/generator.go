package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renders the payload as a PNG under public/qrcodes and
// returns the file path served to clients.
func GenerateQRCode(data string, filename string) (string, error) {
	dir := "public/qrcodes"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filePath := filepath.Join(dir, fmt.Sprintf("%s.png", filename))
	if err := qrcode.WriteFile(data, qrcode.Medium, 256, filePath); err != nil {
		return "", err
	}
	return "/" + filePath, nil
}

// Package capture writes screenshots as PNG files with collision-free names
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// FileName returns the first free screenshot name in dir for time now:
// shot-MMDDhhmmss.png, then shot-MMDDhhmmss-(2).png and so on.
func FileName(dir string, now time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		taken[e.Name()] = true
	}

	stamp := now.Format("0102150405")
	name := fmt.Sprintf("shot-%s.png", stamp)
	for n := 2; taken[name]; n++ {
		name = fmt.Sprintf("shot-%s-(%d).png", stamp, n)
	}
	return name, nil
}

// Save encodes img into dir and returns the full path written
func Save(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	name, err := FileName(dir, now)
	if err != nil {
		return "", fmt.Errorf("screenshot name: %w", err)
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}

	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, buffer.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return full, nil
}

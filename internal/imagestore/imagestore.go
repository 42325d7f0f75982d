// Package imagestore persists generated logo images to local disk and hands
// back both a browser-ready data URI and the static file path. Everything is
// normalized to PNG regardless of what the upstream backend produced.
package imagestore

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	// Upstream backends return JPEG as often as PNG; register the decoder so
	// image.Decode can sniff either.
	_ "image/jpeg"
)

// Store writes logo files under a single output directory.
type Store struct {
	logger *slog.Logger
	dir    string
}

// SavedImage describes one persisted logo.
type SavedImage struct {
	// FileName is the bare file name, e.g. "logo_3f2a....png".
	FileName string

	// Path is the full on-disk path.
	Path string

	// PNG is the normalized image payload.
	PNG []byte
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(logger *slog.Logger, dir string) (*Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if dir == "" {
		return nil, errors.New("output directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	return &Store{
		logger: logger.With(slog.String("component", "imagestore")),
		dir:    dir,
	}, nil
}

// Dir returns the output directory the store writes into.
func (s *Store) Dir() string { return s.dir }

// Save normalizes raw image bytes to PNG and writes them under a fresh
// collision-free name.
func (s *Store) Save(raw []byte) (*SavedImage, error) {
	if len(raw) == 0 {
		return nil, errors.New("image payload is empty")
	}

	normalized, err := NormalizePNG(raw)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("logo_%s.png", strings.ReplaceAll(uuid.New().String(), "-", ""))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, normalized, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Info("logo saved",
		slog.String("file", name),
		slog.Int("bytes", len(normalized)))

	return &SavedImage{FileName: name, Path: path, PNG: normalized}, nil
}

// NormalizePNG decodes raw image bytes in any registered format and re-encodes
// them as PNG. Bytes that are already PNG are returned unchanged.
func NormalizePNG(raw []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if format == "png" {
		return raw, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes PNG bytes as an inline data URI.
func DataURI(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

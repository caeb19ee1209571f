// Package storage keeps uploaded images on the local filesystem.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
)

// ErrInvalidImage is returned for payloads that are not a base64 image data URI.
var ErrInvalidImage = errors.New("invalid image: expected data:image/<ext>;base64,<payload>")

var allowedExt = map[string]string{
	"png":  "png",
	"jpeg": "jpg",
	"jpg":  "jpg",
	"gif":  "gif",
	"webp": "webp",
}

// ImageStore writes images under root and serves them from urlPrefix.
type ImageStore struct {
	root      string
	urlPrefix string
}

// NewImageStore creates a store. urlPrefix is the public location of root,
// e.g. "http://localhost:8080/media".
func NewImageStore(root, urlPrefix string) *ImageStore {
	return &ImageStore{
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// DecodeDataURI splits "data:image/png;base64,..." into extension and bytes.
func DecodeDataURI(data string) (ext string, payload []byte, err error) {
	header, encoded, ok := strings.Cut(data, ";base64,")
	if !ok || !strings.HasPrefix(header, "data:image/") {
		return "", nil, ErrInvalidImage
	}

	ext, ok = allowedExt[strings.ToLower(strings.TrimPrefix(header, "data:image/"))]
	if !ok {
		return "", nil, ErrInvalidImage
	}

	payload, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(payload) == 0 {
		return "", nil, ErrInvalidImage
	}
	return ext, payload, nil
}

// Save decodes a data URI, writes it to dir under a fresh name and returns its URL.
func (s *ImageStore) Save(ctx context.Context, dir, data string) (string, error) {
	ext, payload, err := DecodeDataURI(data)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + ext
	target := filepath.Join(s.root, dir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	url := s.urlPrefix + "/" + path.Join(dir, name)
	logger.Log.Infow("image saved", "path", target, "bytes", len(payload), "url", url)
	return url, nil
}

// Remove deletes the file behind url. Unknown or foreign urls are ignored.
func (s *ImageStore) Remove(ctx context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return nil
	}

	target := filepath.Join(s.root, filepath.FromSlash(rel))
	err := os.Remove(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	logger.Log.Infow("image removed", "path", target, "error", err)
	return err
}

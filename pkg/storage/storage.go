package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// FileStore persists uploaded files and returns their public path.
type FileStore interface {
	Save(folder string, fh *multipart.FileHeader) (string, error)
	Remove(paths ...string)
}

type localStore struct {
	root string
	log  *zap.Logger
}

// NewLocalStore stores uploads under root, served at /uploads/.
func NewLocalStore(root string, log *zap.Logger) (FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", root, err)
	}
	return &localStore{root: root, log: log.With(zap.String("component", "storage"))}, nil
}

func (s *localStore) Save(folder string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("invalid file type %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", folder, err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload %s: %w", fh.Filename, err)
	}

	return path.Join("/uploads", folder, name), nil
}

// Remove deletes previously saved files; failures are only logged.
func (s *localStore) Remove(paths ...string) {
	for _, p := range paths {
		rel := strings.TrimPrefix(p, "/uploads/")
		if rel == p || strings.Contains(rel, "..") {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
			s.log.Warn("Failed to remove upload", zap.String("path", p), zap.Error(err))
		}
	}
}

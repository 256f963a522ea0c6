package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gamehub/internal/apperr"
)

// MaxImageSize caps uploaded cover images at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore persists uploaded game images and returns an opaque reference
// stored on the Game record.
type ImageStore interface {
	Save(filename string, r io.Reader) (ref string, err error)
}

// DiskImageStore writes images under a directory, prefixing filenames with a
// timestamp so re-uploads never clobber each other.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	return &DiskImageStore{Dir: dir}, nil
}

func (s *DiskImageStore) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", apperr.Validation("only image files are allowed")
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	path := filepath.Join(s.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", apperr.Persistence("failed to store image", err)
	}

	// Read one byte past the cap so an oversize upload is detected and
	// rejected instead of stored truncated.
	n, err := io.Copy(dst, io.LimitReader(r, MaxImageSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", apperr.Persistence("failed to store image", err)
	}
	if n > MaxImageSize {
		_ = os.Remove(path)
		return "", apperr.Validation("image exceeds the 5 MB limit")
	}
	return "/uploads/" + name, nil
}

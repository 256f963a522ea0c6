package catalog

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gamehub/internal/apperr"
)

func TestDiskImageStoreSave(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ref, err := store.Save("cover.png", strings.NewReader("png bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(ref, "/uploads/") || !strings.HasSuffix(ref, "-cover.png") {
		t.Fatalf("unexpected ref %q", ref)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(entries))
	}
	data, err := os.ReadFile(store.Dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("readfile: %v", err)
	}
	if string(data) != "png bytes" {
		t.Fatalf("stored content mangled: %q", data)
	}
}

func TestDiskImageStoreRejectsOversize(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	big := bytes.NewReader(make([]byte, MaxImageSize+1))
	if _, err := store.Save("big.png", big); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for oversize image, got %v", err)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("truncated file left behind: %v", entries)
	}
}

func TestDiskImageStoreAcceptsExactLimit(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save("exact.jpg", bytes.NewReader(make([]byte, MaxImageSize))); err != nil {
		t.Fatalf("image at the limit must be accepted: %v", err)
	}
}

func TestDiskImageStoreRejectsNonImage(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save("payload.exe", strings.NewReader("mz")); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for disallowed extension, got %v", err)
	}
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "tok-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := s.Load(ctx)
	if err != nil || token != "tok-abc" {
		t.Fatalf("load: %q, %v", token, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("session file mode %v, want 0600", info.Mode().Perm())
	}
}

func TestFileTokenStore_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileTokenStore(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	token, err := s.Load(context.Background())
	if err != nil || token != "" {
		t.Fatalf("expected empty token and no error, got %q, %v", token, err)
	}
}

func TestFileTokenStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	s, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFileTokenStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if token, _ := s.Load(ctx); token != "" {
		t.Fatalf("token survived clear: %q", token)
	}
}

func TestNewFileTokenStore_RequiresPath(t *testing.T) {
	if _, err := NewFileTokenStore("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

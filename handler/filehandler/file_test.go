package filehandler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSink(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "logs", "test.log")

	s, err := NewFileSink(FileConfig{Filename: filename})
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}

	if err := s.Write("first line"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write("second line"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if string(data) != "first line\nsecond line\n" {
		t.Errorf("Unexpected file content: %q", data)
	}
	if s.Filename() != filename {
		t.Errorf("Filename() = %q, want %q", s.Filename(), filename)
	}
}

func TestFileSink_AppendAndTruncate(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(filename, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFileSink(FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Write("new")
	_ = s.Close()

	data, _ := os.ReadFile(filename)
	if string(data) != "old\nnew\n" {
		t.Errorf("Expected append, got %q", data)
	}

	s, err = NewFileSink(FileConfig{Filename: filename, Truncate: true})
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Write("fresh")
	_ = s.Close()

	data, _ = os.ReadFile(filename)
	if string(data) != "fresh\n" {
		t.Errorf("Expected truncate, got %q", data)
	}
}

func TestFileSink_WriteAfterClose(t *testing.T) {
	s, err := NewFileSink(FileConfig{Filename: filepath.Join(t.TempDir(), "x.log")})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := s.Write("late"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Write() after Close error = %v, want os.ErrClosed", err)
	}
	if err := s.Sync(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Sync() after Close error = %v, want os.ErrClosed", err)
	}
}

func TestNewFileSink_RequiresFilename(t *testing.T) {
	if _, err := NewFileSink(FileConfig{}); err == nil {
		t.Error("Expected error for empty filename")
	}
}

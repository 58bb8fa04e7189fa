package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileConfig holds configuration for file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Perm is the mode used when creating the file (default: 0644)
	Perm os.FileMode
	// Truncate empties an existing file instead of appending
	Truncate bool
}

// FileSink appends one line per Write to a file. The file is opened once
// and writes go straight to it; there is no buffering to flush.
type FileSink struct {
	mu       sync.Mutex
	filename string
	file     *os.File
	buf      []byte
	closed   bool
}

// NewFileSink opens (creating directories as needed) the configured file.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if cfg.Truncate {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(cfg.Filename, flags, cfg.Perm)
	if err != nil {
		return nil, err
	}

	return &FileSink{filename: cfg.Filename, file: file}, nil
}

// Write appends line and a newline
func (s *FileSink) Write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return os.ErrClosed
	}
	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')
	_, err := s.file.Write(s.buf)
	return err
}

// Filename returns the path the sink writes to
func (s *FileSink) Filename() string {
	return s.filename
}

// Sync commits the file contents to stable storage
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return os.ErrClosed
	}
	return s.file.Sync()
}

// Close closes the file. Later writes fail with os.ErrClosed.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil // Already closed
	}
	s.closed = true
	return s.file.Close()
}

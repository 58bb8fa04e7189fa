package handler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ConsoleSink writes lines to an io.Writer, one Write call per line,
// serialized with a mutex.
type ConsoleSink struct {
	mu       sync.Mutex
	w        io.Writer
	terminal bool
	buf      []byte
}

// NewConsoleSink creates a sink writing to w. Terminal detection only
// applies when w is an *os.File.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	s := &ConsoleSink{w: w}
	if f, ok := w.(*os.File); ok {
		s.terminal = IsTerminal(f.Fd())
	}
	return s
}

// Stderr returns a sink for the process standard error. ANSI sequences
// are translated on Windows consoles.
func Stderr() *ConsoleSink {
	return &ConsoleSink{w: colorable.NewColorableStderr(), terminal: IsTerminal(os.Stderr.Fd())}
}

// Stdout returns a sink for the process standard output.
func Stdout() *ConsoleSink {
	return &ConsoleSink{w: colorable.NewColorableStdout(), terminal: IsTerminal(os.Stdout.Fd())}
}

// NewFD returns a sink for a file descriptor: 1 is stdout, 2 is stderr,
// anything else is opened as an already open descriptor of the process.
func NewFD(fd int) (*ConsoleSink, error) {
	switch fd {
	case 1:
		return Stdout(), nil
	case 2:
		return Stderr(), nil
	}
	if fd < 0 {
		return nil, fmt.Errorf("invalid file descriptor %d", fd)
	}
	f := os.NewFile(uintptr(fd), fmt.Sprintf("fd%d", fd))
	if f == nil {
		return nil, fmt.Errorf("invalid file descriptor %d", fd)
	}
	return NewConsoleSink(f), nil
}

// Write writes line followed by a newline
func (s *ConsoleSink) Write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')
	_, err := s.w.Write(s.buf)
	if cap(s.buf) > 64*1024 {
		s.buf = nil
	}
	return err
}

// IsTerminal reports whether the sink writes to a terminal.
func (s *ConsoleSink) IsTerminal() bool {
	return s.terminal
}

// IsTerminal reports whether fd refers to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

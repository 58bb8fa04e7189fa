package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Entry is one emitted log record after level gating and before
// rendering. Message holds the already substituted template.
type Entry struct {
	Time    time.Time
	Level   Level
	Tag     string
	Color   int
	Diff    time.Duration
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

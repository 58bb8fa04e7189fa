package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/taglog/core"
)

// Formatter turns a gated log call into one line of text. args holds the
// template-or-value followed by the positional arguments; entry carries
// the tag, level, color and delta. The result has no trailing newline.
type Formatter interface {
	Render(entry *core.Entry, args []any, opts Options) string
}

// Inspector renders arbitrary values for the object verbs. depth < 0
// means unlimited.
type Inspector interface {
	Inspect(v any, depth int) string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/philipp01105/taglog/core"
)

// TextFormatter renders human-readable lines. Verbs are registered per
// formatter so that custom verbs never leak between logging contexts.
type TextFormatter struct {
	inspector Inspector
	verbs     map[byte]VerbFunc
}

// NewTextFormatter creates a text formatter. A nil inspector selects
// SpewInspector.
func NewTextFormatter(in Inspector) *TextFormatter {
	if in == nil {
		in = SpewInspector{}
	}
	f := &TextFormatter{inspector: in}
	f.verbs = map[byte]VerbFunc{
		's': formatString,
		'd': formatNumber,
		'i': formatInt,
		'f': formatNumber,
		'j': formatJSON,
		'o': func(v any, opts Options) string { return f.inspector.Inspect(v, opts.Depth) },
		'O': func(v any, _ Options) string { return f.inspector.Inspect(v, -1) },
	}
	return f
}

// RegisterVerb installs fn for %<verb>, replacing any previous function.
// It must not be called concurrently with rendering.
func (f *TextFormatter) RegisterVerb(verb byte, fn VerbFunc) {
	if !isVerbLetter(verb) {
		panic("formatter: verb must be an ASCII letter: " + strconv.QuoteRune(rune(verb)))
	}
	f.verbs[verb] = fn
}

// Sprintf substitutes the verbs of a template. args[0] is the template;
// an error is coerced to its text and any other non-string value is
// inspected along with the rest of the arguments. Arguments left over
// after substitution are appended separated by spaces.
func (f *TextFormatter) Sprintf(args []any, opts Options) string {
	if len(args) == 0 {
		return ""
	}

	first := Coerce(args[0])
	template, ok := first.(string)
	rest := args[1:]
	if !ok {
		template = "%o"
		rest = append([]any{first}, rest...)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			buf.WriteByte(c)
			continue
		}
		verb := template[i+1]
		if verb == '%' {
			buf.WriteByte('%')
			i++
			continue
		}
		fn, known := f.verbs[verb]
		if !known || !isVerbLetter(verb) || next >= len(rest) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteString(fn(rest[next], opts))
		next++
		i++
	}

	for _, v := range rest[next:] {
		buf.WriteByte(' ')
		if s, ok := v.(string); ok {
			buf.WriteString(s)
		} else {
			buf.WriteString(f.inspector.Inspect(Coerce(v), opts.Depth))
		}
	}
	return buf.String()
}

// Render substitutes args into entry.Message and formats the line. A
// panic while substituting degrades to the raw template followed by the
// plain values of the arguments.
func (f *TextFormatter) Render(entry *core.Entry, args []any, opts Options) string {
	entry.Message = f.safeSprintf(args, opts)
	return f.Format(entry, opts)
}

func (f *TextFormatter) safeSprintf(args []any, opts Options) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fallback(args)
		}
	}()
	return f.Sprintf(args, opts)
}

func fallback(args []any) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return collapse(strings.Join(parts, " "))
}

// Format assembles the columns of an already substituted entry.
//
// With colors: tag (bold palette color), level, message, delta.
// Without: UTC timestamp, tag, level, message.
func (f *TextFormatter) Format(entry *core.Entry, opts Options) string {
	buf := getBuffer()
	defer putBuffer(buf)

	tag := fit(entry.Tag, opts.TagWidth, true)
	level := fit(entry.Level.Upper(), opts.LevelWidth, false)

	if opts.UseColors {
		buf.WriteString(tagColor(entry.Color).Sprint(tag))
		buf.WriteByte(' ')
		buf.WriteString(levelColor(entry.Level).Sprint(level))
	} else {
		ts := opts.TimestampFormat
		if ts == "" {
			ts = time.RFC1123
		}
		buf.Write(entry.Time.UTC().AppendFormat(buf.AvailableBuffer(), ts))
		buf.WriteByte(' ')
		buf.WriteString(tag)
		buf.WriteByte(' ')
		buf.WriteString(level)
	}

	buf.WriteByte(' ')
	buf.WriteString(entry.Message)

	if opts.Trace && entry.Caller.Defined {
		buf.WriteString(" (")
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteByte(')')
	}

	if opts.UseColors {
		buf.WriteByte(' ')
		buf.WriteString(deltaColor(entry.Color).Sprint("+" + FormatDelta(entry.Diff)))
	}
	return buf.String()
}

// fit truncates or pads s to exactly width display cells. Tags pad on the
// left so they line up against the level column.
func fit(s string, width int, padLeft bool) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	if padLeft {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

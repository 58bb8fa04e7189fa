// Package formatter renders a gated log call into one line of text.
//
// Rendering runs in two steps. Sprintf builds the message: an error as
// the first argument is replaced by its text (with the stack when it was
// created by github.com/pkg/errors), a non-string first argument is
// inspected instead of being taken as a template, and %<letter> verbs
// consume the positional arguments left to right. "%%" yields a single
// '%' without consuming anything, and unknown verbs are copied through.
// Arguments without a verb are appended separated by spaces.
//
// Format then lays out the columns. The tag and level columns have fixed
// widths measured in display cells, so wide runes do not break alignment.
// With colors the tag gets the bold palette color assigned to its logger,
// the level a severity color (black on yellow for warn, red and magenta
// backgrounds for error and fatal) and the delta since the previous emit
// is printed as "+3ms" in the tag color. Without colors a UTC timestamp
// leads the line and the delta is dropped.
//
// Built-in verbs:
//
//	%s  string, error message or Stringer
//	%d  number, NaN for non-numeric values
//	%i  integer (truncated)
//	%f  floating point
//	%j  JSON
//	%o  inspected value limited to Options.Depth, on one line
//	%O  inspected value without depth limit
//
// Options are merged from three layers in increasing precedence:
// DefaultOptions, the logger's Overrides and per-call Overrides.
package formatter

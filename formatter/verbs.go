package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// VerbFunc renders the argument consumed by a %<letter> verb.
type VerbFunc func(v any, opts Options) string

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Coerce replaces an error with its descriptive text: the message and
// stack for errors carrying a stack trace, the message otherwise. Other
// values are returned unchanged.
func Coerce(v any) any {
	err, ok := v.(error)
	if !ok || err == nil {
		return v
	}
	if _, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error()
}

func formatString(v any, _ Options) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func formatNumber(v any, _ Options) string {
	f, ok := toFloat(v)
	if !ok {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(v any, _ Options) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}

func formatJSON(v any, _ Options) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[" + err.Error() + "]"
	}
	return string(b)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func isVerbLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

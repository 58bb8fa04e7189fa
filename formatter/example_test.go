package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
)

func ExampleTextFormatter_Sprintf() {
	f := formatter.NewTextFormatter(nil)

	fmt.Println(f.Sprintf([]any{"loaded %d items from %s", 5, "cache"}, formatter.DefaultOptions()))
	fmt.Println(f.Sprintf([]any{"100%% done"}, formatter.DefaultOptions()))
	// Output:
	// loaded 5 items from cache
	// 100% done
}

func ExampleTextFormatter_Render() {
	f := formatter.NewTextFormatter(nil)
	opts := formatter.DefaultOptions().Merge(formatter.Overrides{
		UseColors:       formatter.Bool(false),
		TimestampFormat: formatter.String(time.DateTime),
	})

	entry := &core.Entry{
		Time:  time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level: core.InfoLevel,
		Tag:   "http",
	}
	fmt.Println(f.Render(entry, []any{"listening on :%d", 8080}, opts))
	// Output:
	// 2026-01-15 12:00:00         http INFO    listening on :8080
}

package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/taglog/core"
)

// fgDefault resets the foreground while a background is set.
const fgDefault color.Attribute = 39

// tagPalette is handed out round-robin to tags.
var tagPalette = [...]color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgRed,
}

// PaletteSize is the number of distinct tag colors.
const PaletteSize = len(tagPalette)

var (
	tagColors   [PaletteSize]*color.Color
	deltaColors [PaletteSize]*color.Color
	levelColors [core.NumLevels]*color.Color
	otherLevel  *color.Color
)

func init() {
	for i, a := range tagPalette {
		tagColors[i] = forced(a, color.Bold)
		deltaColors[i] = forced(a)
	}
	levelColors[core.VerboseLevel.Index()] = forced(color.FgCyan)
	levelColors[core.DebugLevel.Index()] = forced(color.FgBlue)
	levelColors[core.InfoLevel.Index()] = forced(color.FgWhite)
	levelColors[core.WarnLevel.Index()] = forced(color.FgBlack, color.BgYellow)
	levelColors[core.ErrorLevel.Index()] = forced(fgDefault, color.BgRed)
	levelColors[core.FatalLevel.Index()] = forced(fgDefault, color.BgMagenta)
	otherLevel = forced(color.FgWhite)
}

// forced builds a color that ignores the NO_COLOR / tty detection of the
// color package; whether to color is decided by Options.UseColors.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func paletteIndex(c int) int {
	if c < 0 {
		c = -c
	}
	return c % PaletteSize
}

func tagColor(c int) *color.Color {
	return tagColors[paletteIndex(c)]
}

func deltaColor(c int) *color.Color {
	return deltaColors[paletteIndex(c)]
}

func levelColor(l core.Level) *color.Color {
	if i := l.Index(); i >= 0 {
		return levelColors[i]
	}
	return otherLevel
}

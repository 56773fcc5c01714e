package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineClass buckets a log line for colorization. Classification is the same
// substring heuristic the error flag uses: the log has no structured
// severity, only conventions.
type LineClass int

const (
	LinePlain LineClass = iota
	LineError
	LineWarn
	LineInfo
	LineBuild
	LineWatch
	LineHot
)

// ClassifyLine assigns a display class to a raw log line. Error outranks
// everything; the remaining classes are checked in fixed order so a line
// matching several conventions gets a stable color.
func ClassifyLine(line string) LineClass {
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, "error"),
		strings.Contains(lower, "fail"),
		strings.Contains(lower, "panic"):
		return LineError
	case strings.Contains(lower, "warn"):
		return LineWarn
	case strings.Contains(lower, "info"):
		return LineInfo
	case strings.Contains(lower, "building"),
		strings.Contains(lower, "compiled"):
		return LineBuild
	case strings.Contains(lower, "watching"),
		strings.Contains(lower, "ready"):
		return LineWatch
	case strings.Contains(lower, "hmr"),
		strings.Contains(lower, "hot"):
		return LineHot
	default:
		return LinePlain
	}
}

// styleFor returns the lipgloss style for a line class.
func styleFor(class LineClass) lipgloss.Style {
	switch class {
	case LineError:
		return logErrorStyle
	case LineWarn:
		return logWarnStyle
	case LineInfo:
		return logInfoStyle
	case LineBuild:
		return logBuildStyle
	case LineWatch:
		return logWatchStyle
	case LineHot:
		return logHotStyle
	default:
		return logPlainStyle
	}
}

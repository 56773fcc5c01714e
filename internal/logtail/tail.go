// Package logtail reads the monitored dev log and extracts error blocks.
//
// All reads are stateless and best-effort: there is no persisted cursor, so
// every call re-reads from the file's current end. A file growing between
// calls may shift which lines count as "last N"; the monitor is a tail
// viewer, not a log shipper, and tolerates that race.
package logtail

import (
	"bufio"
	"os"
	"strings"
)

// Tail returns at most the last maxLines lines of the file at path, oldest
// first, with line endings stripped. Any I/O error yields an empty slice.
func Tail(path string, maxLines int) []string {
	if maxLines <= 0 {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	// Ring of the last maxLines lines seen.
	ring := make([]string, maxLines)
	count := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ring[count%maxLines] = scanner.Text()
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil
	}
	if count == 0 {
		return nil
	}

	n := count
	if n > maxLines {
		n = maxLines
	}
	out := make([]string, 0, n)
	for i := count - n; i < count; i++ {
		out = append(out, ring[i%maxLines])
	}
	return out
}

// ReadFull returns the entire contents of the file at path, or an empty
// string on any I/O error.
func ReadFull(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// HasError reports whether any of the lines contains a trigger substring.
// Used to flag the tail panel; the full extraction lives in extract.go.
func HasError(lines []string) bool {
	for _, line := range lines {
		if isTrigger(line) {
			return true
		}
	}
	return false
}

// isTrigger reports whether the line's case-insensitive text contains one of
// the error trigger substrings.
func isTrigger(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "error") ||
		strings.Contains(lower, "panic") ||
		strings.Contains(lower, "fail")
}

package logtail

import "strings"

// ExtractLastError scans the full log text and returns the most recent
// contiguous error block: a trigger line plus the continuation-shaped lines
// that follow it (stack frames, blank separators, indented output). The
// second return value is false when no trigger line was seen at all.
//
// The scan is a two-state machine over lines, top to bottom. A trigger line
// always restarts the capture buffer, even while a block is already being
// built, so back-to-back errors resolve to the newest one. While inside a
// block the trigger check runs before the continuation check; a
// continuation-shaped line that also contains a trigger substring (say a
// path mentioning "error") therefore starts a fresh block rather than
// extending the current one. A line matching neither check ends the block
// but keeps it as the candidate result until a later trigger replaces it.
func ExtractLastError(text string) ([]string, bool) {
	var block []string
	inError := false

	for _, line := range strings.Split(text, "\n") {
		if isTrigger(line) {
			block = []string{line}
			inError = true
			continue
		}
		if !inError {
			continue
		}
		if isContinuation(line) {
			block = append(block, line)
		} else {
			inError = false
		}
	}

	if len(block) == 0 {
		return nil, false
	}
	return block, true
}

// isContinuation reports whether a non-trigger line extends an in-progress
// error block. The predicate set approximates "looks like part of a Go
// panic/stack trace" and is deliberately heuristic; its exact behavior is
// load-bearing for which block wins, so keep it in sync with the tests.
func isContinuation(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "/") ||
		strings.HasPrefix(trimmed, "main.") ||
		strings.HasPrefix(trimmed, "runtime.") ||
		strings.HasPrefix(trimmed, "goroutine ") ||
		trimmed == "" ||
		strings.Contains(line, "\t")
}

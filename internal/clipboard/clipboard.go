// Package clipboard wraps the system clipboard and the file-dump fallback
// used when no clipboard is available (headless session, missing xclip).
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"
)

// Copier copies text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// systemCopier uses the OS clipboard.
type systemCopier struct{}

// NewCopier returns the system clipboard copier.
func NewCopier() Copier {
	return systemCopier{}
}

func (systemCopier) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// SaveToFile writes text to path as the copy fallback and returns the path,
// or an empty string if the write failed.
func SaveToFile(path, text string) string {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return ""
	}
	return path
}

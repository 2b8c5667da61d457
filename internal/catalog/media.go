package catalog

import (
	"os"
	"path/filepath"
)

// MediaLocator resolves attachment files beneath a notes container
// root, where media lives at Accounts/<account>/Media/<attachment-uuid>/.
// The capability is optional: an empty root, or no matching file, is a
// plain not-found, never an error.
type MediaLocator struct {
	root string
}

// NewMediaLocator creates a locator over the given container root. An
// empty root produces a locator that never finds anything.
func NewMediaLocator(root string) *MediaLocator {
	return &MediaLocator{root: root}
}

// Find returns the on-disk path of the attachment's media file, if any.
func (l *MediaLocator) Find(att *Attachment) (string, bool) {
	if l.root == "" || att.UUID == nil {
		return "", false
	}

	// Prefer the exact filename when known.
	if att.Filename != nil {
		pattern := filepath.Join(l.root, "Accounts", "*", "Media", *att.UUID, *att.Filename)
		if path, ok := firstMatch(pattern); ok {
			return path, true
		}
	}

	// Otherwise take whatever single file the media directory holds.
	pattern := filepath.Join(l.root, "Accounts", "*", "Media", *att.UUID, "*")
	return firstMatch(pattern)
}

func firstMatch(pattern string) (string, bool) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", false
	}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err == nil && !info.IsDir() {
			return match, true
		}
	}
	return "", false
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath probes the well-known macOS locations for a notes store
// and returns the first one that exists. The core always takes an
// explicit path; this is a convenience for callers that were given none.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: no home directory: %v", ErrStoreNotFound, err)
	}

	candidates := []string{
		// Modern macOS (10.15+).
		filepath.Join(home, "Library", "Group Containers", "group.com.apple.notes", "NoteStore.sqlite"),
		// Alternative container location.
		filepath.Join(home, "Library", "Containers", "com.apple.Notes", "Data", "Library", "Notes", "NotesV7.storedata"),
		// Older external-records location.
		filepath.Join(home, "Library", "Containers", "com.apple.Notes", "Data", "Library", "CoreData", "ExternalRecords", "NoteStore.sqlite"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no store at any default location", ErrStoreNotFound)
}

package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog.go -package=mocks notestash/internal/handlers Catalog

import (
	"notestash/internal/catalog"
)

// Catalog is the read-only view of a loaded store that the HTTP
// handlers depend on. It is implemented by catalog.Catalog.
type Catalog interface {
	// Notes returns all loaded notes.
	Notes() []*catalog.Note
	// NoteByID returns the note with the given logical id.
	NoteByID(id int64) (*catalog.Note, bool)
	// NotesByTag returns all notes carrying the tag.
	NotesByTag(tag string) []*catalog.Note
	// SearchNotes returns notes whose title or content contains query.
	SearchNotes(query string, caseSensitive bool) []*catalog.Note
	// TagCounts returns the number of notes per tag.
	TagCounts() map[string]int
	// Export flattens the entity graph for serialization.
	Export(includeContent bool) map[string]any
}

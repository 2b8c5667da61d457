package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Store is an open handle on a notes database. It caches the detected
// schema version and the annotation reader for the lifetime of the
// connection; reopening the store starts from a fresh detection.
//
// The store is read-only in intent: no method ever writes to the file.
type Store struct {
	db   *sql.DB
	path string

	version     int
	hasVersion  bool
	annotations *AnnotationReader
}

// Open opens the notes database at path.
// It returns ErrStoreNotFound if the path does not resolve to a file and
// ErrConnectionFailed if the file exists but cannot be opened.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	// Verify the file actually is a database we can read.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the filesystem path the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying connection. Safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.annotations = nil
	s.hasVersion = false
	return err
}

// Annotations returns the side-table annotation reader for this store,
// created once per open connection.
func (s *Store) Annotations() (*AnnotationReader, error) {
	if s.annotations != nil {
		return s.annotations, nil
	}
	version, err := s.Version()
	if err != nil {
		return nil, err
	}
	s.annotations = &AnnotationReader{db: s.db, version: version}
	return s.annotations, nil
}

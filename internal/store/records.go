package store

import "time"

// Version-independent record shapes produced by the retrieval queries.
// Optional columns surface as nil pointers; downstream layers never see
// raw NULLs or per-generation column names.

// AccountRecord is one account row.
type AccountRecord struct {
	ID             int64
	Name           string
	Identifier     string
	UserRecordName *string
}

// FolderRecord is one folder row. ParentID is nil for root folders.
type FolderRecord struct {
	ID        int64
	Name      string
	AccountID int64
	UUID      *string
	ParentID  *int64
}

// AttachmentRecord is one attachment row, keyed to its owning note.
type AttachmentRecord struct {
	ID               int64
	Filename         *string
	FileSize         *int64
	TypeUTI          *string
	NoteID           int64
	CreationDate     *time.Time
	ModificationDate *time.Time
	UUID             *string
	RemoteURL        *string
}

// NoteRecord is one note row. ID is the primary key of the note-content
// row; NoteID is the logical note identifier the rest of the store keys
// on. The two differ in every modern generation and must be correlated
// via the join, never assumed equal.
//
// Exactly one of Data and PlainText is populated: modern generations
// store a binary body blob, the legacy generation stores plain text.
type NoteRecord struct {
	ID               int64
	NoteID           int64
	Title            *string
	Data             []byte
	PlainText        *string
	CreationDate     *time.Time
	ModificationDate *time.Time
	AccountID        int64
	FolderID         int64
	Pinned           bool
	Protected        bool
	UUID             *string
}

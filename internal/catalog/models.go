// Package catalog assembles the entity graph of a notes store — accounts
// owning folders owning notes with attachments — and exposes the
// read-only query surface over it. Entities are immutable value records
// built once per load.
package catalog

import (
	"strings"
	"time"
)

// Account is one notes account (e.g. local or cloud-synced).
type Account struct {
	ID             int64
	Name           string
	Identifier     string
	UserRecordName *string
}

// Folder is one notes folder. Parent links form a tree in healthy
// stores, but corrupt input may contain cycles; Path defends against
// them.
type Folder struct {
	ID       int64
	Name     string
	Account  *Account
	UUID     *string
	ParentID *int64
}

// IsRoot reports whether the folder has no parent.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// Parent resolves the parent folder, or nil for roots and dangling
// parent references.
func (f *Folder) Parent(folders map[int64]*Folder) *Folder {
	if f.ParentID == nil {
		return nil
	}
	return folders[*f.ParentID]
}

// Path returns the root-to-leaf folder path, names joined with "/". The
// walk keeps a visited set and aborts on revisit, so a self-referential
// or cyclic parent chain degrades to the reachable prefix instead of
// hanging.
func (f *Folder) Path(folders map[int64]*Folder) string {
	if folders == nil {
		return f.Name
	}

	var parts []string
	visited := make(map[int64]struct{})
	for current := f; current != nil; {
		if _, seen := visited[current.ID]; seen {
			break
		}
		visited[current.ID] = struct{}{}
		parts = append(parts, current.Name)

		if current.ParentID == nil {
			break
		}
		current = folders[*current.ParentID]
	}

	// Reverse into root-to-leaf order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Attachment is one file attached to a note.
type Attachment struct {
	ID               int64
	Filename         *string
	FileSize         *int64
	TypeUTI          *string
	NoteID           int64
	CreationDate     *time.Time
	ModificationDate *time.Time
	UUID             *string
	IsRemote         bool
	RemoteURL        *string
}

// FileExtension returns the lowercase filename extension, or "" when the
// filename is absent or has none.
func (a *Attachment) FileExtension() string {
	if a.Filename == nil {
		return ""
	}
	name := *a.Filename
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Note is one note with its reconciled annotations and attachments.
type Note struct {
	// ID is the primary key of the note-content row; NoteID is the
	// logical note identifier attachments and annotations key on.
	ID     int64
	NoteID int64

	Title            *string
	Content          *string
	CreationDate     *time.Time
	ModificationDate *time.Time
	Account          *Account
	Folder           *Folder

	IsPinned            bool
	IsPasswordProtected bool
	UUID                *string
	// AppleScriptID is the externally addressable identifier,
	// x-coredata://{store-uuid}/ICNote/p{note-pk}. Nil when the store
	// has no usable UUID.
	AppleScriptID *string

	Tags     []string
	Mentions []string
	Links    []string

	Attachments []*Attachment
}

// HasTag reports whether the note carries tag, case-insensitively.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// HasMention reports whether the note mentions the given name,
// case-insensitively.
func (n *Note) HasMention(mention string) bool {
	for _, m := range n.Mentions {
		if strings.EqualFold(m, mention) {
			return true
		}
	}
	return false
}

// HasLink reports whether the note contains the exact link.
func (n *Note) HasLink(link string) bool {
	for _, l := range n.Links {
		if l == link {
			return true
		}
	}
	return false
}

// HasAttachments reports whether the note has any attachments.
func (n *Note) HasAttachments() bool {
	return len(n.Attachments) > 0
}

// AttachmentsByKind returns the note's attachments of one derived kind.
func (n *Note) AttachmentsByKind(kind AttachmentKind) []*Attachment {
	var out []*Attachment
	for _, a := range n.Attachments {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	return out
}

// AttachmentsByExtension returns the note's attachments with the given
// filename extension (leading dot and case ignored).
func (n *Note) AttachmentsByExtension(extension string) []*Attachment {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	var out []*Attachment
	for _, a := range n.Attachments {
		if a.FileExtension() == ext {
			out = append(out, a)
		}
	}
	return out
}

// FolderPath returns the full folder path of the note.
func (n *Note) FolderPath(folders map[int64]*Folder) string {
	if folders == nil {
		return n.Folder.Name
	}
	return n.Folder.Path(folders)
}

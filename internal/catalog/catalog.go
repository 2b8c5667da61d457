package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"notestash/internal/body"
	"notestash/internal/store"
)

// Catalog is the loaded entity graph of one notes store. It is built in
// a single pass by Load and never mutated afterwards; loading the same
// store twice produces equal graphs.
type Catalog struct {
	path    string
	version int

	accounts []*Account
	folders  []*Folder
	notes    []*Note

	foldersByID map[int64]*Folder
	notesByID   map[int64]*Note

	// Store-wide side-table aggregates, captured at load time. Empty for
	// generations without annotation side tables; the per-note fallback
	// then feeds the aggregate methods.
	storeTags      []string
	storeMentions  []string
	storeTagCounts map[string]int
}

// Load opens the store at path, populates the full entity graph and
// releases the connection. Either the whole load succeeds or an error is
// returned; no partial graph is ever exposed.
func Load(ctx context.Context, path string) (*Catalog, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	version, err := st.Version()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		path:        path,
		version:     version,
		foldersByID: make(map[int64]*Folder),
		notesByID:   make(map[int64]*Note),
	}
	if err := c.load(ctx, st); err != nil {
		return nil, err
	}

	slog.Default().Info("store loaded",
		"path", path,
		"version", version,
		"accounts", len(c.accounts),
		"folders", len(c.folders),
		"notes", len(c.notes))
	return c, nil
}

// load runs the two-pass dependency order: accounts, then folders, then
// attachments, then notes. Each later stage filters against the maps
// built by the earlier ones.
func (c *Catalog) load(ctx context.Context, st *store.Store) error {
	accountRecords, err := st.Accounts(ctx)
	if err != nil {
		return err
	}
	accountsByID := make(map[int64]*Account, len(accountRecords))
	accountIDs := make(map[int64]struct{}, len(accountRecords))
	for _, rec := range accountRecords {
		account := &Account{
			ID:             rec.ID,
			Name:           rec.Name,
			Identifier:     rec.Identifier,
			UserRecordName: rec.UserRecordName,
		}
		c.accounts = append(c.accounts, account)
		accountsByID[rec.ID] = account
		accountIDs[rec.ID] = struct{}{}
	}

	folderRecords, err := st.Folders(ctx, accountIDs)
	if err != nil {
		return err
	}
	folderIDs := make(map[int64]struct{}, len(folderRecords))
	for _, rec := range folderRecords {
		folder := &Folder{
			ID:       rec.ID,
			Name:     rec.Name,
			Account:  accountsByID[rec.AccountID],
			UUID:     rec.UUID,
			ParentID: rec.ParentID,
		}
		c.folders = append(c.folders, folder)
		c.foldersByID[rec.ID] = folder
		folderIDs[rec.ID] = struct{}{}
	}

	attachmentRecords, err := st.Attachments(ctx)
	if err != nil {
		return err
	}
	attachmentsByNote := make(map[int64][]*Attachment)
	for _, rec := range attachmentRecords {
		attachmentsByNote[rec.NoteID] = append(attachmentsByNote[rec.NoteID], &Attachment{
			ID:               rec.ID,
			Filename:         rec.Filename,
			FileSize:         rec.FileSize,
			TypeUTI:          rec.TypeUTI,
			NoteID:           rec.NoteID,
			CreationDate:     rec.CreationDate,
			ModificationDate: rec.ModificationDate,
			UUID:             rec.UUID,
			IsRemote:         rec.RemoteURL != nil,
			RemoteURL:        rec.RemoteURL,
		})
	}

	noteRecords, err := st.Notes(ctx, accountIDs, folderIDs)
	if err != nil {
		return err
	}
	annotations, err := st.Annotations()
	if err != nil {
		return err
	}
	storeUUID := st.StoreUUID()

	for _, rec := range noteRecords {
		note, err := c.buildNote(ctx, rec, accountsByID, annotations, attachmentsByNote, storeUUID)
		if err != nil {
			return err
		}
		c.notes = append(c.notes, note)
		c.notesByID[note.NoteID] = note
	}

	// Capture the store-wide aggregates while the connection is open.
	if c.storeTags, err = annotations.AllHashtags(ctx); err != nil {
		return err
	}
	if c.storeMentions, err = annotations.AllMentions(ctx); err != nil {
		return err
	}
	if c.storeTagCounts, err = annotations.HashtagCounts(ctx); err != nil {
		return err
	}
	return nil
}

// buildNote decodes the binary body, reads the side-table annotations
// and reconciles the two sources into the final note.
func (c *Catalog) buildNote(
	ctx context.Context,
	rec store.NoteRecord,
	accounts map[int64]*Account,
	annotations *store.AnnotationReader,
	attachmentsByNote map[int64][]*Attachment,
	storeUUID string,
) (*Note, error) {
	note := &Note{
		ID:                  rec.ID,
		NoteID:              rec.NoteID,
		Title:               rec.Title,
		CreationDate:        rec.CreationDate,
		ModificationDate:    rec.ModificationDate,
		Account:             accounts[rec.AccountID],
		Folder:              c.foldersByID[rec.FolderID],
		IsPinned:            rec.Pinned,
		IsPasswordProtected: rec.Protected,
		UUID:                rec.UUID,
		Attachments:         attachmentsByNote[rec.NoteID],
	}

	if storeUUID != "" {
		id := fmt.Sprintf("x-coredata://%s/ICNote/p%d", storeUUID, rec.NoteID)
		note.AppleScriptID = &id
	}

	var fallback *body.Document
	if rec.PlainText != nil {
		// Legacy plain-text body: no binary decode, annotations come
		// from pattern extraction only.
		note.Content = rec.PlainText
		fallback = &body.Document{
			Hashtags: body.Hashtags(*rec.PlainText),
			Mentions: body.Mentions(*rec.PlainText),
			Links:    body.Links(*rec.PlainText),
		}
	} else {
		doc, err := body.Decode(rec.Data)
		if err != nil {
			return nil, err
		}
		if doc.Text != "" {
			text := doc.Text
			note.Content = &text
		}
		fallback = doc
	}

	sideTable, err := annotations.ForNote(ctx, rec.NoteID)
	if err != nil {
		return nil, err
	}

	// Side-table results take precedence per category, independently:
	// one category having authoritative data does not suppress the
	// fallback for another that has none.
	note.Tags = pick(sideTable.Hashtags, fallback.Hashtags)
	note.Mentions = pick(sideTable.Mentions, fallback.Mentions)
	note.Links = pick(sideTable.Links, fallback.Links)
	return note, nil
}

func pick(authoritative, fallback []string) []string {
	if len(authoritative) > 0 {
		return authoritative
	}
	return fallback
}

// Path returns the store path the catalog was loaded from.
func (c *Catalog) Path() string { return c.path }

// Version returns the detected schema generation of the store.
func (c *Catalog) Version() int { return c.version }

// Accounts returns all loaded accounts.
func (c *Catalog) Accounts() []*Account { return c.accounts }

// Folders returns all loaded folders.
func (c *Catalog) Folders() []*Folder { return c.folders }

// Notes returns all loaded notes.
func (c *Catalog) Notes() []*Note { return c.notes }

// FoldersByID returns the folder lookup map used for path resolution.
func (c *Catalog) FoldersByID() map[int64]*Folder { return c.foldersByID }

// NoteByID returns the note with the given logical id.
func (c *Catalog) NoteByID(id int64) (*Note, bool) {
	n, ok := c.notesByID[id]
	return n, ok
}

// NotesByTag returns all notes carrying tag (case-insensitive).
func (c *Catalog) NotesByTag(tag string) []*Note {
	return c.filter(func(n *Note) bool { return n.HasTag(tag) })
}

// NotesByTags returns notes matching the tags: all of them when
// matchAll is set, any of them otherwise.
func (c *Catalog) NotesByTags(tags []string, matchAll bool) []*Note {
	return c.filter(func(n *Note) bool {
		for _, tag := range tags {
			has := n.HasTag(tag)
			if matchAll && !has {
				return false
			}
			if !matchAll && has {
				return true
			}
		}
		return matchAll
	})
}

// NotesByFolder returns all notes in the named folder (case-insensitive).
func (c *Catalog) NotesByFolder(folderName string) []*Note {
	return c.filter(func(n *Note) bool {
		return strings.EqualFold(n.Folder.Name, folderName)
	})
}

// NotesByAccount returns all notes in the named account (case-insensitive).
func (c *Catalog) NotesByAccount(accountName string) []*Note {
	return c.filter(func(n *Note) bool {
		return strings.EqualFold(n.Account.Name, accountName)
	})
}

// NotesWithMentions returns all notes containing at least one mention.
func (c *Catalog) NotesWithMentions() []*Note {
	return c.filter(func(n *Note) bool { return len(n.Mentions) > 0 })
}

// NotesByMention returns all notes mentioning the given name.
func (c *Catalog) NotesByMention(mention string) []*Note {
	return c.filter(func(n *Note) bool { return n.HasMention(mention) })
}

// NotesWithLinks returns all notes containing at least one link.
func (c *Catalog) NotesWithLinks() []*Note {
	return c.filter(func(n *Note) bool { return len(n.Links) > 0 })
}

// NotesByLinkDomain returns all notes with a link containing domain as a
// case-insensitive substring.
func (c *Catalog) NotesByLinkDomain(domain string) []*Note {
	needle := strings.ToLower(domain)
	return c.filter(func(n *Note) bool {
		for _, link := range n.Links {
			if strings.Contains(strings.ToLower(link), needle) {
				return true
			}
		}
		return false
	})
}

// PinnedNotes returns all pinned notes.
func (c *Catalog) PinnedNotes() []*Note {
	return c.filter(func(n *Note) bool { return n.IsPinned })
}

// ProtectedNotes returns all password-protected notes.
func (c *Catalog) ProtectedNotes() []*Note {
	return c.filter(func(n *Note) bool { return n.IsPasswordProtected })
}

// SearchNotes returns all notes whose title or content contains query.
func (c *Catalog) SearchNotes(query string, caseSensitive bool) []*Note {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return c.filter(func(n *Note) bool {
		title := deref(n.Title)
		content := deref(n.Content)
		if !caseSensitive {
			title = strings.ToLower(title)
			content = strings.ToLower(content)
		}
		return strings.Contains(title, query) || strings.Contains(content, query)
	})
}

// FilterNotes returns all notes matching a custom predicate.
func (c *Catalog) FilterNotes(keep func(*Note) bool) []*Note {
	return c.filter(keep)
}

func (c *Catalog) filter(keep func(*Note) bool) []*Note {
	var out []*Note
	for _, n := range c.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// AllTags returns every distinct tag, sorted. The store-wide side-table
// aggregate wins when present; otherwise tags are collected from the
// loaded notes.
func (c *Catalog) AllTags() []string {
	if len(c.storeTags) > 0 {
		return c.storeTags
	}
	return collectSorted(c.notes, func(n *Note) []string { return n.Tags })
}

// AllMentions returns every distinct mention, sorted.
func (c *Catalog) AllMentions() []string {
	if len(c.storeMentions) > 0 {
		return c.storeMentions
	}
	return collectSorted(c.notes, func(n *Note) []string { return n.Mentions })
}

// TagCounts returns the number of notes carrying each tag. The
// side-table aggregate wins when present; otherwise counts come from the
// loaded notes.
func (c *Catalog) TagCounts() map[string]int {
	if len(c.storeTagCounts) > 0 {
		return c.storeTagCounts
	}
	counts := make(map[string]int)
	for _, n := range c.notes {
		for _, tag := range n.Tags {
			counts[tag]++
		}
	}
	return counts
}

// FolderCounts returns the number of notes per folder name.
func (c *Catalog) FolderCounts() map[string]int {
	counts := make(map[string]int)
	for _, n := range c.notes {
		counts[n.Folder.Name]++
	}
	return counts
}

// AccountCounts returns the number of notes per account name.
func (c *Catalog) AccountCounts() map[string]int {
	counts := make(map[string]int)
	for _, n := range c.notes {
		counts[n.Account.Name]++
	}
	return counts
}

func collectSorted(notes []*Note, pickFrom func(*Note) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range notes {
		for _, v := range pickFrom(n) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

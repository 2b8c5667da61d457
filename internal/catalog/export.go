package catalog

import "time"

// Export flattens the entity graph into a plain nested key-value
// structure suitable for serialization. Timestamps become RFC 3339
// strings; absent values become nils. When includeContent is false the
// note content field is emitted as nil, everything else is preserved.
func (c *Catalog) Export(includeContent bool) map[string]any {
	accounts := make([]map[string]any, 0, len(c.accounts))
	for _, account := range c.accounts {
		accounts = append(accounts, map[string]any{
			"id":               account.ID,
			"name":             account.Name,
			"identifier":       account.Identifier,
			"user_record_name": strOrNil(account.UserRecordName),
		})
	}

	folders := make([]map[string]any, 0, len(c.folders))
	for _, folder := range c.folders {
		folders = append(folders, map[string]any{
			"id":           folder.ID,
			"name":         folder.Name,
			"account_name": folder.Account.Name,
			"uuid":         strOrNil(folder.UUID),
			"parent_id":    intOrNil(folder.ParentID),
			"path":         folder.Path(c.foldersByID),
		})
	}

	notes := make([]map[string]any, 0, len(c.notes))
	for _, note := range c.notes {
		content := any(nil)
		if includeContent {
			content = strOrNil(note.Content)
		}
		notes = append(notes, map[string]any{
			"id":                    note.ID,
			"note_id":               note.NoteID,
			"title":                 strOrNil(note.Title),
			"content":               content,
			"creation_date":         timeOrNil(note.CreationDate),
			"modification_date":     timeOrNil(note.ModificationDate),
			"account_name":          note.Account.Name,
			"folder_name":           note.Folder.Name,
			"folder_path":           note.FolderPath(c.foldersByID),
			"is_pinned":             note.IsPinned,
			"is_password_protected": note.IsPasswordProtected,
			"uuid":                  strOrNil(note.UUID),
			"applescript_id":        strOrNil(note.AppleScriptID),
			"tags":                  stringList(note.Tags),
			"mentions":              stringList(note.Mentions),
			"links":                 stringList(note.Links),
		})
	}

	return map[string]any{
		"accounts": accounts,
		"folders":  folders,
		"notes":    notes,
	}
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// stringList never exports nil for an empty list, keeping the shape of
// the structure stable across serializers.
func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

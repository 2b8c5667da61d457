package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Notes returns all note records whose account and folder references
// resolve against the already-loaded sets. Dangling references are
// silently dropped. Notes load last in the two-pass order: accounts,
// folders and attachments must already be in hand.
func (s *Store) Notes(ctx context.Context, accountIDs, folderIDs map[int64]struct{}) ([]NoteRecord, error) {
	version, err := s.Version()
	if err != nil {
		return nil, err
	}
	if isLegacy(version) {
		return s.legacyNotes(ctx, accountIDs, folderIDs)
	}

	cols, ok := noteColumnsByVersion[version]
	if !ok {
		// Newer than anything in the dispatch table: use the newest mapping.
		cols = noteColumnsByVersion[versionMax]
	}

	query := fmt.Sprintf(`
	SELECT
		nd.Z_PK,
		nd.ZNOTE,
		obj.ZTITLE1,
		nd.ZDATA,
		obj.%s,
		obj.ZMODIFICATIONDATE1,
		obj.%s,
		obj.ZFOLDER,
		obj.ZISPINNED,
		obj.ZIDENTIFIER,
		obj.ZISPASSWORDPROTECTED
	FROM ZICNOTEDATA nd
	JOIN ZICCLOUDSYNCINGOBJECT obj ON nd.ZNOTE = obj.Z_PK
	WHERE nd.ZDATA IS NOT NULL`, cols.creation, cols.account)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: notes: %v", ErrQuery, err)
	}
	defer rows.Close()

	var notes []NoteRecord
	for rows.Next() {
		var (
			id        int64
			noteID    int64
			title     sql.NullString
			data      []byte
			created   sql.NullFloat64
			modified  sql.NullFloat64
			accountID sql.NullInt64
			folderID  sql.NullInt64
			pinned    sql.NullInt64
			uuid      sql.NullString
			protected sql.NullInt64
		)
		if err := rows.Scan(&id, &noteID, &title, &data, &created, &modified,
			&accountID, &folderID, &pinned, &uuid, &protected); err != nil {
			return nil, fmt.Errorf("%w: notes: %v", ErrQuery, err)
		}

		if !resolves(accountID, accountIDs) || !resolves(folderID, folderIDs) {
			continue
		}

		record := NoteRecord{
			ID:        id,
			NoteID:    noteID,
			Data:      data,
			AccountID: accountID.Int64,
			FolderID:  folderID.Int64,
			Pinned:    pinned.Valid && pinned.Int64 != 0,
			Protected: protected.Valid && protected.Int64 != 0,
		}
		if title.Valid {
			record.Title = &title.String
		}
		if created.Valid {
			record.CreationDate = coreTimeToTime(created.Float64)
		}
		if modified.Valid {
			record.ModificationDate = coreTimeToTime(modified.Float64)
		}
		if uuid.Valid && uuid.String != "" {
			record.UUID = &uuid.String
		}
		notes = append(notes, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: notes: %v", ErrQuery, err)
	}
	return notes, nil
}

// legacyNotes retrieves notes from the pre-sync-object schema, where the
// body is plain text in ZNOTEBODY and the folder doubles as the store
// row. Pinned and protected flags do not exist in this generation.
func (s *Store) legacyNotes(ctx context.Context, accountIDs, folderIDs map[int64]struct{}) ([]NoteRecord, error) {
	query := `
	SELECT
		n.Z_PK,
		n.ZTITLE,
		nb.ZCONTENT,
		n.ZCREATIONDATE,
		n.ZMODIFICATIONDATE,
		s.ZACCOUNT,
		s.Z_PK
	FROM ZNOTE n
	JOIN ZNOTEBODY nb ON n.ZBODY = nb.Z_PK
	JOIN ZSTORE s ON n.ZSTORE = s.Z_PK`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: legacy notes: %v", ErrQuery, err)
	}
	defer rows.Close()

	var notes []NoteRecord
	for rows.Next() {
		var (
			id        int64
			title     sql.NullString
			content   sql.NullString
			created   sql.NullFloat64
			modified  sql.NullFloat64
			accountID sql.NullInt64
			folderID  sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &content, &created, &modified,
			&accountID, &folderID); err != nil {
			return nil, fmt.Errorf("%w: legacy notes: %v", ErrQuery, err)
		}

		if !resolves(accountID, accountIDs) || !resolves(folderID, folderIDs) {
			continue
		}

		record := NoteRecord{
			ID:        id,
			NoteID:    id,
			AccountID: accountID.Int64,
			FolderID:  folderID.Int64,
		}
		if title.Valid {
			record.Title = &title.String
		}
		if content.Valid {
			record.PlainText = &content.String
		}
		if created.Valid {
			record.CreationDate = coreTimeToTime(created.Float64)
		}
		if modified.Valid {
			record.ModificationDate = coreTimeToTime(modified.Float64)
		}
		notes = append(notes, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: legacy notes: %v", ErrQuery, err)
	}
	return notes, nil
}

func resolves(id sql.NullInt64, known map[int64]struct{}) bool {
	if !id.Valid {
		return false
	}
	_, ok := known[id.Int64]
	return ok
}

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Attachments returns all attachment records in the store, keyed by
// their owning note. The legacy generation has no attachment storage and
// yields an empty result.
//
// Attachment rows live in the sync-object table with ZNOTE pointing at
// the parent note; ZTITLE1 IS NULL excludes note-metadata rows, and a
// populated type identifier separates real attachments from other
// note-scoped records.
func (s *Store) Attachments(ctx context.Context) ([]AttachmentRecord, error) {
	version, err := s.Version()
	if err != nil {
		return nil, err
	}
	if isLegacy(version) {
		return nil, nil
	}

	query := `
	SELECT
		obj.Z_PK,
		COALESCE(obj.ZFILENAME, obj.ZTITLE),
		obj.ZFILESIZE,
		obj.ZTYPEUTI,
		obj.ZNOTE,
		obj.ZCREATIONDATE,
		obj.ZMODIFICATIONDATE,
		obj.ZIDENTIFIER,
		obj.ZREMOTEFILEURLSTRING
	FROM ZICCLOUDSYNCINGOBJECT obj
	WHERE obj.ZNOTE IS NOT NULL
		AND (obj.ZFILENAME IS NOT NULL OR obj.ZTITLE IS NOT NULL OR obj.ZFILESIZE > 0 OR obj.ZTYPEUTI IS NOT NULL)
		AND obj.ZTITLE1 IS NULL
		AND (obj.ZTYPEUTI IS NOT NULL AND obj.ZTYPEUTI != '')`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: attachments: %v", ErrQuery, err)
	}
	defer rows.Close()

	var attachments []AttachmentRecord
	for rows.Next() {
		var (
			id        int64
			filename  sql.NullString
			fileSize  sql.NullInt64
			typeUTI   sql.NullString
			noteID    int64
			created   sql.NullFloat64
			modified  sql.NullFloat64
			uuid      sql.NullString
			remoteURL sql.NullString
		)
		if err := rows.Scan(&id, &filename, &fileSize, &typeUTI, &noteID,
			&created, &modified, &uuid, &remoteURL); err != nil {
			return nil, fmt.Errorf("%w: attachments: %v", ErrQuery, err)
		}

		record := AttachmentRecord{
			ID:     id,
			NoteID: noteID,
		}
		if filename.Valid {
			record.Filename = &filename.String
		}
		if fileSize.Valid && fileSize.Int64 > 0 {
			record.FileSize = &fileSize.Int64
		}
		if typeUTI.Valid {
			record.TypeUTI = &typeUTI.String
		}
		if created.Valid {
			record.CreationDate = coreTimeToTime(created.Float64)
		}
		if modified.Valid {
			record.ModificationDate = coreTimeToTime(modified.Float64)
		}
		if uuid.Valid {
			record.UUID = &uuid.String
		}
		if remoteURL.Valid {
			record.RemoteURL = &remoteURL.String
		}
		attachments = append(attachments, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: attachments: %v", ErrQuery, err)
	}
	return attachments, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Folders returns all folder records whose owning account is in
// accountIDs. Rows with dangling account references are silently
// dropped: the store may legitimately contain orphaned records.
func (s *Store) Folders(ctx context.Context, accountIDs map[int64]struct{}) ([]FolderRecord, error) {
	version, err := s.Version()
	if err != nil {
		return nil, err
	}

	query := `
	SELECT Z_PK, ZTITLE2, ZOWNER, ZIDENTIFIER, ZPARENT
	FROM ZICCLOUDSYNCINGOBJECT
	WHERE ZTITLE2 IS NOT NULL`
	if isLegacy(version) {
		query = `
		SELECT Z_PK, ZNAME, ZACCOUNT, NULL, NULL
		FROM ZSTORE`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: folders: %v", ErrQuery, err)
	}
	defer rows.Close()

	var folders []FolderRecord
	for rows.Next() {
		var (
			id        int64
			name      sql.NullString
			accountID sql.NullInt64
			uuid      sql.NullString
			parentID  sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &accountID, &uuid, &parentID); err != nil {
			return nil, fmt.Errorf("%w: folders: %v", ErrQuery, err)
		}

		if !accountID.Valid {
			continue
		}
		if _, ok := accountIDs[accountID.Int64]; !ok {
			continue
		}

		record := FolderRecord{
			ID:        id,
			Name:      name.String,
			AccountID: accountID.Int64,
		}
		if record.Name == "" {
			record.Name = "Untitled Folder"
		}
		if uuid.Valid && uuid.String != "" {
			record.UUID = &uuid.String
		}
		if parentID.Valid && parentID.Int64 != 0 {
			record.ParentID = &parentID.Int64
		}
		folders = append(folders, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: folders: %v", ErrQuery, err)
	}
	return folders, nil
}

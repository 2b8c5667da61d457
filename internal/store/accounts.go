package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Accounts returns all account records in the store. Accounts load
// first: every later retrieval stage filters against the account set.
func (s *Store) Accounts(ctx context.Context) ([]AccountRecord, error) {
	version, err := s.Version()
	if err != nil {
		return nil, err
	}

	query := `
	SELECT Z_PK, ZNAME, ZIDENTIFIER, ZUSERRECORDNAME
	FROM ZICCLOUDSYNCINGOBJECT
	WHERE ZNAME IS NOT NULL`
	if isLegacy(version) {
		query = `
		SELECT Z_PK, ZNAME, ZACCOUNTIDENTIFIER, NULL
		FROM ZACCOUNT`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", ErrQuery, err)
	}
	defer rows.Close()

	var accounts []AccountRecord
	for rows.Next() {
		var (
			id             int64
			name           sql.NullString
			identifier     sql.NullString
			userRecordName sql.NullString
		)
		if err := rows.Scan(&id, &name, &identifier, &userRecordName); err != nil {
			return nil, fmt.Errorf("%w: accounts: %v", ErrQuery, err)
		}

		record := AccountRecord{
			ID:         id,
			Name:       name.String,
			Identifier: identifier.String,
		}
		if record.Name == "" {
			record.Name = "Unknown"
		}
		if userRecordName.Valid {
			record.UserRecordName = &userRecordName.String
		}
		accounts = append(accounts, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", ErrQuery, err)
	}
	return accounts, nil
}

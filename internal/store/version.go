package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Schema generations, named after the iOS release that introduced them.
// The detector always resolves to one of these; versionFloor is the
// fallback when no known marker is present.
const (
	versionFloor = 10
	versionMax   = 18
)

// versionMarkers maps marker columns of the sync-object table to the
// generation they prove, checked newest to oldest. First match wins, so
// every check only has to distinguish "at least this new".
var versionMarkers = []struct {
	column  string
	version int
}{
	{"ZUNAPPLIEDENCRYPTEDRECORDDATA", 18},
	{"ZGENERATION", 17},
	{"ZACCOUNT6", 16},
	{"ZACCOUNT5", 15},
	{"ZLASTOPENEDDATE", 14},
	{"ZACCOUNT4", 13},
	{"ZSERVERRECORDDATA", 12},
}

// legacyMarkerTable proves generation 11 when none of the column markers hit.
const legacyMarkerTable = "Z_11NOTES"

// Version classifies the store's schema generation, memoized for the
// lifetime of the open connection. The ladder is total: every marker
// check defaults downward, ending at versionFloor. The only failure mode
// is the introspection itself, surfaced as ErrVersionDetection.
func (s *Store) Version() (int, error) {
	if s.hasVersion {
		return s.version, nil
	}
	if s.db == nil {
		return 0, fmt.Errorf("%w: store is closed", ErrVersionDetection)
	}

	columns, err := s.tableColumns(syncObjectTable)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrVersionDetection, err)
	}

	version := 0
	for _, marker := range versionMarkers {
		if _, ok := columns[marker.column]; ok {
			version = marker.version
			break
		}
	}

	if version == 0 {
		ok, err := s.tableExists(legacyMarkerTable)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrVersionDetection, err)
		}
		if ok {
			version = 11
		} else {
			version = versionFloor
		}
	}

	s.version = version
	s.hasVersion = true
	return version, nil
}

// tableColumns returns the column-name inventory of a table. A missing
// table yields an empty set, not an error, so the ladder can keep
// defaulting downward.
func (s *Store) tableColumns(table string) (map[string]struct{}, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns[name] = struct{}{}
	}
	return columns, rows.Err()
}

func (s *Store) tableExists(table string) (bool, error) {
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

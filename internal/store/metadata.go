package store

import (
	"github.com/google/uuid"
)

// StoreUUID returns the store-wide UUID used to construct externally
// addressable note identifiers. It returns "" when the metadata table is
// missing (older generations), empty, or holds something that is not a
// UUID — callers then simply omit the identifiers.
func (s *Store) StoreUUID() string {
	var raw string
	err := s.db.QueryRow("SELECT Z_UUID FROM " + metadataTable + " LIMIT 1").Scan(&raw)
	if err != nil {
		// The metadata table may not exist in older generations.
		return ""
	}
	if _, err := uuid.Parse(raw); err != nil {
		return ""
	}
	return raw
}

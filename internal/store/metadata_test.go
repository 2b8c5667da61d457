package store

import "testing"

func TestStoreUUID(t *testing.T) {
	f := newFixture(t)
	s := f.open()

	if got := s.StoreUUID(); got != testStoreUUID {
		t.Errorf("StoreUUID() = %q, want %q", got, testStoreUUID)
	}
}

func TestStoreUUID_MissingTable(t *testing.T) {
	f := newLegacyFixture(t)
	s := f.open()

	if got := s.StoreUUID(); got != "" {
		t.Errorf("StoreUUID() = %q, want empty for a store without metadata", got)
	}
}

func TestStoreUUID_MalformedValue(t *testing.T) {
	f := newFixture(t)
	f.exec("UPDATE Z_METADATA SET Z_UUID = ?", "not-a-uuid")
	s := f.open()

	if got := s.StoreUUID(); got != "" {
		t.Errorf("StoreUUID() = %q, want empty for a malformed value", got)
	}
}

package store

// Table names shared by every modern schema generation.
const (
	syncObjectTable = "ZICCLOUDSYNCINGOBJECT"
	noteDataTable   = "ZICNOTEDATA"
	metadataTable   = "Z_METADATA"
)

// noteColumns names the live account-reference and creation-date columns
// of the sync-object table for one schema generation. The store keeps
// superseded numbered columns around after migrations (ZACCOUNT2,
// ZACCOUNT3, ...), so which one holds real data is a per-generation fact.
type noteColumns struct {
	account  string
	creation string
}

// noteColumnsByVersion is the static dispatch table for the modern note
// query. New generations are added as rows here, not as branches in the
// retrieval logic. versionFloor is absent by design: the oldest
// generation routes through the legacy retrieval path instead.
var noteColumnsByVersion = map[int]noteColumns{
	18: {account: "ZACCOUNT7", creation: "ZCREATIONDATE3"},
	17: {account: "ZACCOUNT7", creation: "ZCREATIONDATE3"},
	16: {account: "ZACCOUNT7", creation: "ZCREATIONDATE3"},
	15: {account: "ZACCOUNT4", creation: "ZCREATIONDATE3"},
	14: {account: "ZACCOUNT3", creation: "ZCREATIONDATE1"},
	13: {account: "ZACCOUNT3", creation: "ZCREATIONDATE1"},
	12: {account: "ZACCOUNT2", creation: "ZCREATIONDATE1"},
	11: {account: "ZACCOUNT2", creation: "ZCREATIONDATE1"},
}

// isLegacy reports whether a generation predates the unified sync-object
// schema and must use the ZNOTE/ZNOTEBODY/ZSTORE retrieval path.
func isLegacy(version int) bool {
	return version < 11
}

package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

const testStoreUUID = "1B1D1C31-2AFE-4E62-9B5A-7B4B9DDBE0DD"

// fixture builds synthetic store files for tests. The schema mirrors a
// generation-16 store: ZACCOUNT6 is the version marker, ZACCOUNT7 and
// ZCREATIONDATE3 hold the live note columns.
type fixture struct {
	t    *testing.T
	db   *sql.DB
	path string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "NoteStore.sqlite")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}

	schema := []string{
		`CREATE TABLE ZICCLOUDSYNCINGOBJECT (
			Z_PK INTEGER PRIMARY KEY,
			ZNAME TEXT,
			ZIDENTIFIER TEXT,
			ZUSERRECORDNAME TEXT,
			ZTITLE1 TEXT,
			ZTITLE2 TEXT,
			ZOWNER INTEGER,
			ZPARENT INTEGER,
			ZACCOUNT6 INTEGER,
			ZACCOUNT7 INTEGER,
			ZCREATIONDATE3 REAL,
			ZMODIFICATIONDATE1 REAL,
			ZFOLDER INTEGER,
			ZISPINNED INTEGER,
			ZISPASSWORDPROTECTED INTEGER,
			ZFILENAME TEXT,
			ZTITLE TEXT,
			ZFILESIZE INTEGER,
			ZTYPEUTI TEXT,
			ZNOTE INTEGER,
			ZNOTE1 INTEGER,
			ZATTACHMENT INTEGER,
			ZCREATIONDATE REAL,
			ZMODIFICATIONDATE REAL,
			ZREMOTEFILEURLSTRING TEXT,
			ZTYPEUTI1 TEXT,
			ZALTTEXT TEXT,
			ZTOKENCONTENTIDENTIFIER TEXT
		);`,
		`CREATE TABLE ZICNOTEDATA (
			Z_PK INTEGER PRIMARY KEY,
			ZNOTE INTEGER,
			ZDATA BLOB
		);`,
		`CREATE TABLE Z_METADATA (
			Z_VERSION INTEGER,
			Z_UUID TEXT,
			Z_PLIST BLOB
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create fixture schema: %v", err)
		}
	}
	if _, err := db.Exec("INSERT INTO Z_METADATA (Z_UUID) VALUES (?)", testStoreUUID); err != nil {
		t.Fatalf("insert metadata: %v", err)
	}

	f := &fixture{t: t, db: db, path: path}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return f
}

func (f *fixture) exec(query string, args ...any) {
	f.t.Helper()
	if _, err := f.db.Exec(query, args...); err != nil {
		f.t.Fatalf("fixture exec: %v", err)
	}
}

func (f *fixture) addAccount(pk int64, name, identifier string) {
	f.exec("INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZNAME, ZIDENTIFIER) VALUES (?, ?, ?)",
		pk, name, identifier)
}

func (f *fixture) addFolder(pk int64, name string, owner int64, parent any) {
	f.exec("INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZTITLE2, ZOWNER, ZIDENTIFIER, ZPARENT) VALUES (?, ?, ?, ?, ?)",
		pk, name, owner, "folder-"+name, parent)
}

func (f *fixture) addNote(objPK, dataPK int64, title string, account, folder int64, data []byte, created, modified any) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZTITLE1, ZACCOUNT7, ZFOLDER, ZCREATIONDATE3, ZMODIFICATIONDATE1, ZISPINNED, ZISPASSWORDPROTECTED, ZIDENTIFIER)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?)`,
		objPK, title, account, folder, created, modified, "note-"+title)
	f.exec("INSERT INTO ZICNOTEDATA (Z_PK, ZNOTE, ZDATA) VALUES (?, ?, ?)",
		dataPK, objPK, data)
}

func (f *fixture) addAttachment(pk int64, note int64, filename string, size int64, typeUTI string) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZNOTE, ZFILENAME, ZFILESIZE, ZTYPEUTI, ZIDENTIFIER)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pk, note, filename, size, typeUTI, "att-"+filename)
}

func (f *fixture) addAnnotation(pk int64, uti, altText string, note, note1, attachment any) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZTYPEUTI1, ZALTTEXT, ZNOTE, ZNOTE1, ZATTACHMENT)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pk, uti, altText, note, note1, attachment)
}

func (f *fixture) open() *Store {
	f.t.Helper()
	s, err := Open(f.path)
	if err != nil {
		f.t.Fatalf("Open() error = %v", err)
	}
	f.t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// newLegacyFixture builds a pre-sync-object store: no
// ZICCLOUDSYNCINGOBJECT, no marker tables, plain-text bodies.
func newLegacyFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "NotesV2.storedata")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open legacy fixture db: %v", err)
	}

	schema := []string{
		`CREATE TABLE ZACCOUNT (Z_PK INTEGER PRIMARY KEY, ZNAME TEXT, ZACCOUNTIDENTIFIER TEXT);`,
		`CREATE TABLE ZSTORE (Z_PK INTEGER PRIMARY KEY, ZNAME TEXT, ZACCOUNT INTEGER);`,
		`CREATE TABLE ZNOTE (
			Z_PK INTEGER PRIMARY KEY,
			ZTITLE TEXT,
			ZBODY INTEGER,
			ZCREATIONDATE REAL,
			ZMODIFICATIONDATE REAL,
			ZSTORE INTEGER
		);`,
		`CREATE TABLE ZNOTEBODY (Z_PK INTEGER PRIMARY KEY, ZCONTENT TEXT);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create legacy schema: %v", err)
		}
	}

	f := &fixture{t: t, db: db, path: path}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return f
}

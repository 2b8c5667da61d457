package catalog

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

const testStoreUUID = "7A0E18C2-55C1-4E4B-9F0D-3D2E7B8A91C4"

// storeFixture builds synthetic generation-16 store files for loading.
type storeFixture struct {
	t    *testing.T
	db   *sql.DB
	path string
}

func newStoreFixture(t *testing.T) *storeFixture {
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

	f := &storeFixture{t: t, db: db, path: path}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return f
}

func (f *storeFixture) exec(query string, args ...any) {
	f.t.Helper()
	if _, err := f.db.Exec(query, args...); err != nil {
		f.t.Fatalf("fixture exec: %v", err)
	}
}

func (f *storeFixture) addAccount(pk int64, name, identifier string) {
	f.exec("INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZNAME, ZIDENTIFIER) VALUES (?, ?, ?)",
		pk, name, identifier)
}

func (f *storeFixture) addFolder(pk int64, name string, owner int64, parent any) {
	f.exec("INSERT INTO ZICCLOUDSYNCINGOBJECT (Z_PK, ZTITLE2, ZOWNER, ZIDENTIFIER, ZPARENT) VALUES (?, ?, ?, ?, ?)",
		pk, name, owner, "folder-"+name, parent)
}

func (f *storeFixture) addNote(objPK, dataPK int64, title string, account, folder int64, data []byte) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZTITLE1, ZACCOUNT7, ZFOLDER, ZCREATIONDATE3, ZMODIFICATIONDATE1, ZISPINNED, ZISPASSWORDPROTECTED, ZIDENTIFIER)
		VALUES (?, ?, ?, ?, 650000000, 650000100, 0, 0, ?)`,
		objPK, title, account, folder, "note-"+title)
	f.exec("INSERT INTO ZICNOTEDATA (Z_PK, ZNOTE, ZDATA) VALUES (?, ?, ?)",
		dataPK, objPK, data)
}

func (f *storeFixture) addAttachment(pk int64, note int64, filename string, size int64, typeUTI string) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZNOTE, ZFILENAME, ZFILESIZE, ZTYPEUTI, ZIDENTIFIER)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pk, note, filename, size, typeUTI, "att-"+filename)
}

func (f *storeFixture) addAnnotation(pk int64, uti, altText string, note int64) {
	f.exec(`INSERT INTO ZICCLOUDSYNCINGOBJECT
		(Z_PK, ZTYPEUTI1, ZALTTEXT, ZNOTE)
		VALUES (?, ?, ?, ?)`,
		pk, uti, altText, note)
}

// encodeBody builds a well-formed body blob holding the given text and a
// single formatting run.
func encodeBody(t *testing.T, text string) []byte {
	t.Helper()

	var note []byte
	note = protowire.AppendTag(note, 2, protowire.BytesType)
	note = protowire.AppendBytes(note, []byte(text))
	var run []byte
	run = protowire.AppendTag(run, 1, protowire.VarintType)
	run = protowire.AppendVarint(run, uint64(len(text)))
	note = protowire.AppendTag(note, 5, protowire.BytesType)
	note = protowire.AppendBytes(note, run)

	var document []byte
	document = protowire.AppendTag(document, 2, protowire.VarintType)
	document = protowire.AppendVarint(document, 1)
	document = protowire.AppendTag(document, 3, protowire.BytesType)
	document = protowire.AppendBytes(document, note)

	var root []byte
	root = protowire.AppendTag(root, 2, protowire.BytesType)
	root = protowire.AppendBytes(root, document)

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(root); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

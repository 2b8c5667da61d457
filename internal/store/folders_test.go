package store

import (
	"context"
	"testing"
)

func TestFolders(t *testing.T) {
	f := newFixture(t)
	f.addAccount(1, "iCloud", "icloud-identifier")
	f.addFolder(10, "Notes", 1, nil)
	f.addFolder(11, "Recipes", 1, 10)
	s := f.open()

	known := map[int64]struct{}{1: {}}
	folders, err := s.Folders(context.Background(), known)
	if err != nil {
		t.Fatalf("Folders() error = %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("Folders() returned %d records, want 2", len(folders))
	}

	byID := make(map[int64]FolderRecord)
	for _, fl := range folders {
		byID[fl.ID] = fl
	}
	root := byID[10]
	if root.ParentID != nil {
		t.Errorf("root folder ParentID = %v, want nil", *root.ParentID)
	}
	child := byID[11]
	if child.ParentID == nil || *child.ParentID != 10 {
		t.Errorf("child folder ParentID = %v, want 10", child.ParentID)
	}
	if child.AccountID != 1 {
		t.Errorf("child folder AccountID = %d, want 1", child.AccountID)
	}
	if child.UUID == nil || *child.UUID == "" {
		t.Error("child folder UUID not populated")
	}
}

func TestFolders_DropsDanglingAccounts(t *testing.T) {
	f := newFixture(t)
	f.addAccount(1, "iCloud", "icloud-identifier")
	f.addFolder(10, "Kept", 1, nil)
	f.addFolder(11, "Orphaned", 99, nil)
	s := f.open()

	folders, err := s.Folders(context.Background(), map[int64]struct{}{1: {}})
	if err != nil {
		t.Fatalf("Folders() error = %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("Folders() returned %d records, want 1", len(folders))
	}
	if folders[0].Name != "Kept" {
		t.Errorf("surviving folder = %q, want %q", folders[0].Name, "Kept")
	}
}

func TestFolders_EmptyNameDefaults(t *testing.T) {
	f := newFixture(t)
	f.addAccount(1, "iCloud", "icloud-identifier")
	f.addFolder(10, "", 1, nil)
	s := f.open()

	folders, err := s.Folders(context.Background(), map[int64]struct{}{1: {}})
	if err != nil {
		t.Fatalf("Folders() error = %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("Folders() returned %d records, want 1", len(folders))
	}
	if folders[0].Name != "Untitled Folder" {
		t.Errorf("folder name = %q, want %q", folders[0].Name, "Untitled Folder")
	}
}

func TestFolders_Legacy(t *testing.T) {
	f := newLegacyFixture(t)
	f.exec("INSERT INTO ZACCOUNT (Z_PK, ZNAME, ZACCOUNTIDENTIFIER) VALUES (1, 'Local', 'local-id')")
	f.exec("INSERT INTO ZSTORE (Z_PK, ZNAME, ZACCOUNT) VALUES (5, 'Notes', 1)")
	s := f.open()

	folders, err := s.Folders(context.Background(), map[int64]struct{}{1: {}})
	if err != nil {
		t.Fatalf("Folders() error = %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("Folders() returned %d records, want 1", len(folders))
	}
	got := folders[0]
	if got.ID != 5 || got.Name != "Notes" || got.AccountID != 1 {
		t.Errorf("legacy folder = %+v, want id 5, name Notes, account 1", got)
	}
	if got.ParentID != nil {
		t.Errorf("legacy folder ParentID = %v, want nil", *got.ParentID)
	}
}

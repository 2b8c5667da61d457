package catalog

import (
	"context"
	"encoding/json"
	"testing"
)

func TestExport(t *testing.T) {
	f := newStoreFixture(t)
	f.addAccount(1, "iCloud", "icloud-identifier")
	f.addFolder(10, "Notes", 1, nil)
	f.addNote(100, 200, "Exported", 1, 10, encodeBody(t, "text with #tag"))

	c, err := Load(context.Background(), f.path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	out := c.Export(true)

	notes, ok := out["notes"].([]map[string]any)
	if !ok || len(notes) != 1 {
		t.Fatalf("export notes = %v, want one entry", out["notes"])
	}
	n := notes[0]
	if n["title"] != "Exported" {
		t.Errorf("title = %v, want Exported", n["title"])
	}
	if n["content"] != "text with #tag" {
		t.Errorf("content = %v, want the body text", n["content"])
	}
	if n["note_id"] != int64(100) || n["id"] != int64(200) {
		t.Errorf("keys = (%v, %v), want (200, 100)", n["id"], n["note_id"])
	}
	if n["folder_path"] != "Notes" {
		t.Errorf("folder_path = %v, want Notes", n["folder_path"])
	}
	if n["applescript_id"] != "x-coredata://"+testStoreUUID+"/ICNote/p100" {
		t.Errorf("applescript_id = %v", n["applescript_id"])
	}
	if _, isString := n["creation_date"].(string); !isString {
		t.Errorf("creation_date = %v, want an RFC 3339 string", n["creation_date"])
	}
	tags, ok := n["tags"].([]string)
	if !ok || len(tags) != 1 || tags[0] != "tag" {
		t.Errorf("tags = %v, want [tag]", n["tags"])
	}
	// Mentions are empty but must still be a list, not nil.
	if mentions, ok := n["mentions"].([]string); !ok || mentions == nil {
		t.Errorf("mentions = %v, want an empty list", n["mentions"])
	}

	folders, ok := out["folders"].([]map[string]any)
	if !ok || len(folders) != 1 {
		t.Fatalf("export folders = %v, want one entry", out["folders"])
	}
	if folders[0]["parent_id"] != nil {
		t.Errorf("parent_id = %v, want nil for a root folder", folders[0]["parent_id"])
	}

	// The whole structure must serialize cleanly.
	if _, err := json.Marshal(out); err != nil {
		t.Errorf("json.Marshal(export) error = %v", err)
	}
}

func TestExport_WithoutContent(t *testing.T) {
	f := newStoreFixture(t)
	f.addAccount(1, "iCloud", "icloud-identifier")
	f.addFolder(10, "Notes", 1, nil)
	f.addNote(100, 200, "Hidden", 1, 10, encodeBody(t, "secret text"))

	c, err := Load(context.Background(), f.path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	notes := c.Export(false)["notes"].([]map[string]any)
	if notes[0]["content"] != nil {
		t.Errorf("content = %v, want nil when content is excluded", notes[0]["content"])
	}
	if notes[0]["title"] != "Hidden" {
		t.Errorf("title = %v, want preserved metadata", notes[0]["title"])
	}
}

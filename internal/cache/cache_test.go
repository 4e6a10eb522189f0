package cache

import (
	"testing"

	"github.com/philint/philint/internal/types"
)

func TestRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := DB{Entries: map[string]Entry{
		"a.kt": {
			Hash: "00000000deadbeef",
			Violations: []types.Violation{{
				Path: "a.kt", Line: 1, Category: "medical_ids",
				Match: "MRN: 48213", Message: "Potential medical_ids: MRN: 48213",
			}},
		},
		"clean.kt": {Hash: "00000000cafef00d"},
	}}
	if err := Save(root, db); err != nil {
		t.Fatal(err)
	}
	got, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	e := got.Entries["a.kt"]
	if e.Hash != "00000000deadbeef" || len(e.Violations) != 1 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if len(got.Entries["clean.kt"].Violations) != 0 {
		t.Fatal("clean entry should have no violations")
	}
}

func TestLoadMissing(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing cache")
	}
	if db.Entries == nil {
		t.Fatal("entries map should be usable after failed load")
	}
}

func TestSaveEmpty(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error saving nil entries")
	}
}

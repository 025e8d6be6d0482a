package backup

import (
	"strings"
	"testing"

	"github.com/daybook-dev/daybook/internal/storage"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := storage.NewMemStore()
	entries := map[string]string{
		"memories":  `[{"key":"m1","content":"hi","date":{"year":2024,"month":0,"day":1}}]`,
		"schedules": `[]`,
		"100":       `[{"key":"t1","title":"task","version":1}]`,
	}
	for k, v := range entries {
		if err := src.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	dump, err := Export(src)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	dst := storage.NewMemStore()
	if err := Import(dst, dump); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	restored, err := dst.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != len(entries) {
		t.Fatalf("restored %d entries, want %d", len(restored), len(entries))
	}
	for k, v := range entries {
		if restored[k] != v {
			t.Errorf("key %q restored as %q, want %q", k, restored[k], v)
		}
	}
}

func TestImportRejectsNonStringValue(t *testing.T) {
	dst := storage.NewMemStore()
	err := Import(dst, `{"ok":"fine","bad":42}`)
	if err == nil {
		t.Fatal("Import accepted a non-string value")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q does not name the offending key", err)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	if err := Import(storage.NewMemStore(), "{oops"); err == nil {
		t.Error("Import accepted malformed JSON")
	}
}

func TestImportKeepsForeignKeys(t *testing.T) {
	// A key the collection stores know nothing about round-trips untouched.
	src := storage.NewMemStore()
	if err := src.Set("unrelated", "value"); err != nil {
		t.Fatal(err)
	}
	dump, err := Export(src)
	if err != nil {
		t.Fatal(err)
	}

	dst := storage.NewMemStore()
	if err := Import(dst, dump); err != nil {
		t.Fatal(err)
	}
	if got, ok, _ := dst.Get("unrelated"); !ok || got != "value" {
		t.Errorf("foreign key restored as (%q, %v)", got, ok)
	}
}

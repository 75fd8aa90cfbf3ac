package store

import (
	"path/filepath"
	"testing"
)

func TestFileKeyValue_MissingKey(t *testing.T) {
	kv, err := NewFileKeyValue(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKeyValue failed: %v", err)
	}
	defer func() { _ = kv.Close() }()

	_, ok, err := kv.Get("@missions_data_v1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Missing key should report ok=false")
	}
}

func TestFileKeyValue_SetOverwrites(t *testing.T) {
	kv, err := NewFileKeyValue(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKeyValue failed: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if err := kv.Set("@missions_data_v1", "[1]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("@missions_data_v1", "[1,2]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get("@missions_data_v1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "[1,2]" {
		t.Errorf("Got %q (ok=%v), want [1,2]", value, ok)
	}
}

func TestKeyFileName_Sanitizes(t *testing.T) {
	got := keyFileName("@missions_data_v1")
	if got != "_missions_data_v1.json" {
		t.Errorf("keyFileName = %q", got)
	}
}

func TestSQLiteKeyValue_RoundTrip(t *testing.T) {
	kv, err := NewSQLiteKeyValue(filepath.Join(t.TempDir(), "waymark.sqlite"))
	if err != nil {
		t.Fatalf("NewSQLiteKeyValue failed: %v", err)
	}
	defer func() { _ = kv.Close() }()

	_, ok, err := kv.Get("@missions_data_v1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Missing key should report ok=false")
	}

	if err := kv.Set("@missions_data_v1", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("@missions_data_v1", `[{"id":"1"},{"id":"2"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get("@missions_data_v1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != `[{"id":"1"},{"id":"2"}]` {
		t.Errorf("Got %q (ok=%v)", value, ok)
	}
}

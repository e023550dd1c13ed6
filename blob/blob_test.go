package blob

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	f := NewFile(path)

	if _, err := f.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() on absent file = %v, want fs.ErrNotExist", err)
	}

	want := []byte(`[{"id":"a"}]`)
	if err := f.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Load() = %s, want %s", got, want)
	}

	// no temporary file left behind after the atomic rename
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("temporary file still present: %v", err)
	}
}

func TestFile_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	f := NewFile(path)

	if err := f.Save([]byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := f.Save([]byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("Load() = %s, want second", got)
	}
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	if _, err := m.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() on empty Memory = %v, want fs.ErrNotExist", err)
	}
	if err := m.Save([]byte("x")); err != nil {
		t.Fatal(err)
	}
	got, err := m.Load()
	if err != nil || string(got) != "x" {
		t.Errorf("Load() = %s, %v", got, err)
	}

	boom := errors.New("boom")
	m = &Memory{Err: boom}
	if err := m.Save(nil); !errors.Is(err, boom) {
		t.Errorf("Save() = %v, want boom", err)
	}
	if _, err := m.Load(); !errors.Is(err, boom) {
		t.Errorf("Load() = %v, want boom", err)
	}
}

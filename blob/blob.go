// Package blob provides simple byte-blob persistence backends for the
// ledger store.
package blob

import "os"

// File persists the blob in a single file. Writes are atomic: the blob
// is written to a temporary file first and renamed over the previous
// one, so an interrupted write never corrupts the existing data.
type File struct {
	path string
}

// NewFile returns a file-backed blob at the given path.
func NewFile(path string) *File { return &File{path: path} }

// Load reads the whole blob. A missing file returns fs.ErrNotExist.
func (f *File) Load() ([]byte, error) { return os.ReadFile(f.path) }

// Save overwrites the blob with the given bytes.
func (f *File) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Memory is an in-memory blob, used in tests. Err, when set, is
// returned by both Load and Save to simulate storage failures.
type Memory struct {
	Data []byte
	Err  error
}

func (m *Memory) Load() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data == nil {
		return nil, os.ErrNotExist
	}
	return m.Data, nil
}

func (m *Memory) Save(data []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Data = append([]byte(nil), data...)
	return nil
}

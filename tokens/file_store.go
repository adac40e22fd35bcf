package tokens

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var _ Repo = (*FileStore)(nil)

// FileStore persists the credential pair as a small JSON document on disk,
// keyed by the fixed storage keys. Writes go through a temp file and rename so
// the pair is always replaced as a unit.
type FileStore struct {
	path string
	lock sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file does not
// need to exist yet; its directory is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Access() string {
	return fs.read()[AccessKey]
}

func (fs *FileStore) Refresh() string {
	return fs.read()[RefreshKey]
}

func (fs *FileStore) SetPair(access, refresh string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return fs.write(map[string]string{AccessKey: access, RefreshKey: refresh})
}

func (fs *FileStore) SetAccess(access string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	entries := fs.readLocked()
	entries[AccessKey] = access
	return fs.write(entries)
}

func (fs *FileStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] remove")
	}
	return nil
}

func (fs *FileStore) read() map[string]string {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return fs.readLocked()
}

func (fs *FileStore) readLocked() map[string]string {
	entries := make(map[string]string)
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return entries
	}
	// A corrupt file reads as empty rather than failing the request path.
	_ = json.Unmarshal(data, &entries)
	return entries
}

func (fs *FileStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore.write] marshal")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.write] mkdir")
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.write] write temp")
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.Wrap(err, "[FileStore.write] rename")
	}
	return nil
}

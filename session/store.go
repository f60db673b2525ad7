package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store persists the session across process restarts.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file under the storage key name.
// The file content is untrusted on read: a missing, unreadable or
// malformed file is treated as an unauthenticated session rather than an
// error, since a corrupt credential cache should never lock a user out of
// the login screen.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at dir, persisting under the default
// storage key.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, DefaultStorageKey+".json")}
}

// NewFileStoreAt creates a store persisting to an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session. Missing or malformed content yields an
// empty session and no error.
func (fs *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return Session{}, nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn().Str("path", fs.path).Msg("Discarding malformed persisted session")
		return Session{}, nil
	}
	if !s.Authenticated() {
		// Half-written state is as good as no state.
		return Session{}, nil
	}
	return s, nil
}

// Save writes the session. Credentials only, so owner-read permissions.
func (fs *FileStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] marshal session")
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write session file")
	}
	return nil
}

// Clear removes the persisted session. A missing file is not an error.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] remove session file")
	}
	return nil
}

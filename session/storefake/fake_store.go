package storefake

import (
	"sync"

	"github.com/Mithun19978/AlpenLuce/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests. It records how many
// times each operation ran and can be primed with a persisted session or
// forced to fail.
type FakeStore struct {
	lock    sync.RWMutex
	session session.Session

	SaveErr  error
	ClearErr error

	Loads  int
	Saves  int
	Clears int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Prime seeds the store with a persisted session, as if a prior run saved it.
func (fs *FakeStore) Prime(s session.Session) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.session = s
}

func (fs *FakeStore) Load() (session.Session, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Loads++
	return fs.session, nil
}

func (fs *FakeStore) Save(s session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Saves++
	if fs.SaveErr != nil {
		return fs.SaveErr
	}
	fs.session = s
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.Clears++
	if fs.ClearErr != nil {
		return fs.ClearErr
	}
	fs.session = session.Session{}
	return nil
}

// Persisted returns the currently stored session.
func (fs *FakeStore) Persisted() session.Session {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.session
}

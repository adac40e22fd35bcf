package repofake

import (
	"sync"

	"github.com/MbolafyDev/go-backoffice/tokens"
)

var _ tokens.Repo = (*FakeTokenRepo)(nil)

// FakeTokenRepo is an in-memory credential store for tests.
type FakeTokenRepo struct {
	entries map[string]string
	lock    sync.RWMutex

	// WriteErr, when set, is returned by every mutating call.
	WriteErr error
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{entries: make(map[string]string)}
}

func (tr *FakeTokenRepo) Access() string {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	return tr.entries[tokens.AccessKey]
}

func (tr *FakeTokenRepo) Refresh() string {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	return tr.entries[tokens.RefreshKey]
}

func (tr *FakeTokenRepo) SetPair(access, refresh string) error {
	if tr.WriteErr != nil {
		return tr.WriteErr
	}
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.entries[tokens.AccessKey] = access
	tr.entries[tokens.RefreshKey] = refresh
	return nil
}

func (tr *FakeTokenRepo) SetAccess(access string) error {
	if tr.WriteErr != nil {
		return tr.WriteErr
	}
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.entries[tokens.AccessKey] = access
	return nil
}

func (tr *FakeTokenRepo) Clear() error {
	if tr.WriteErr != nil {
		return tr.WriteErr
	}
	tr.lock.Lock()
	defer tr.lock.Unlock()
	tr.entries = make(map[string]string)
	return nil
}

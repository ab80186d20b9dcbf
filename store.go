package payrun

import "errors"

// ErrNoAccount is returned by Store.Get when no record is stored for the
// requested client.
var ErrNoAccount = errors.New("no account stored for client")

// Store is the uniform contract the engine runs against, whichever backend
// was selected for the run. Records are whole-account replace on Put: callers
// load, mutate their copy, and write it back. Neither Get nor GetOrCreate
// persists anything; only Put does.
type Store interface {
	// Get returns the stored account for id, or ErrNoAccount if absent.
	Get(id ClientID) (*Account, error)
	// GetOrCreate returns the stored account for id, or a fresh
	// zero-balance one if absent. The fresh account is not persisted until
	// it is Put.
	GetOrCreate(id ClientID) (*Account, error)
	// Put overwrites the stored record for id.
	Put(id ClientID, a *Account) error
	// Close releases the backend's resources. The store is run-scoped:
	// closing a disk-backed store discards its data.
	Close() error
}

// MemStore keeps all accounts in a process-local map. It is the backend of
// choice when the estimated number of accounts fits in memory.
type MemStore struct {
	accounts map[ClientID]*Account
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{accounts: make(map[ClientID]*Account)}
}

// Get implements Store.
func (m *MemStore) Get(id ClientID) (*Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, ErrNoAccount
	}
	return a, nil
}

// GetOrCreate implements Store.
func (m *MemStore) GetOrCreate(id ClientID) (*Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return NewAccount(id), nil
}

// Put implements Store.
func (m *MemStore) Put(id ClientID, a *Account) error {
	m.accounts[id] = a
	return nil
}

// Close implements Store.
func (m *MemStore) Close() error {
	m.accounts = nil
	return nil
}

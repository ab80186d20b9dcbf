package payrun

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// DiskStore keeps accounts in a Badger key-value store on disk, for runs
// whose account population does not fit in memory. The store lives in a
// run-scoped temporary directory and is deleted on Close; there is no
// durability requirement across runs.
type DiskStore struct {
	db  *badger.DB
	dir string
}

// NewDiskStore opens a fresh on-disk store under the system temp directory.
func NewDiskStore() (*DiskStore, error) {
	dir := filepath.Join(os.TempDir(), "prun-"+uuid.NewString())
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot open account store in %q: %w", dir, err)
	}
	return &DiskStore{db: db, dir: dir}, nil
}

// storeKey is the 2-byte big-endian representation of a client id.
func storeKey(id ClientID) []byte {
	key := make([]byte, 2)
	binary.BigEndian.PutUint16(key, uint16(id))
	return key
}

// Get implements Store.
func (s *DiskStore) Get(id ClientID) (*Account, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(id))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read account %d: %w", id, err)
	}
	a, err := DecodeAccount(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot decode account %d: %w", id, err)
	}
	return a, nil
}

// GetOrCreate implements Store.
func (s *DiskStore) GetOrCreate(id ClientID) (*Account, error) {
	a, err := s.Get(id)
	if errors.Is(err, ErrNoAccount) {
		return NewAccount(id), nil
	}
	return a, err
}

// Put implements Store.
func (s *DiskStore) Put(id ClientID, a *Account) error {
	raw, err := EncodeAccount(a)
	if err != nil {
		return fmt.Errorf("cannot encode account %d: %w", id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(id), raw)
	})
	if err != nil {
		return fmt.Errorf("cannot write account %d: %w", id, err)
	}
	return nil
}

// Close implements Store. It discards the run's data.
func (s *DiskStore) Close() error {
	err := s.db.Close()
	if rmErr := os.RemoveAll(s.dir); err == nil {
		err = rmErr
	}
	return err
}

package payrun

import (
	"errors"
	"testing"
)

// openStores builds one store per backend, so every conformance test runs
// against both.
func openStores(t *testing.T) map[string]Store {
	t.Helper()
	disk, err := NewDiskStore()
	if err != nil {
		t.Fatalf("cannot open disk store: %v", err)
	}
	stores := map[string]Store{
		"memory": NewMemStore(),
		"disk":   disk,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(42); !errors.Is(err, ErrNoAccount) {
				t.Errorf("Get on empty store: err = %v, want ErrNoAccount", err)
			}
		})
	}
}

func TestStore_GetOrCreateDoesNotPersist(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			a, err := store.GetOrCreate(7)
			if err != nil {
				t.Fatalf("GetOrCreate: %v", err)
			}
			if a.ID != 7 || !a.Total.IsZero() {
				t.Errorf("fresh account = %+v, want zeroed account 7", a)
			}
			// Only Put makes creation durable.
			if _, err := store.Get(7); !errors.Is(err, ErrNoAccount) {
				t.Errorf("Get after pure GetOrCreate: err = %v, want ErrNoAccount", err)
			}
		})
	}
}

func TestStore_PutThenGet(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAccount(3)
			a.Append(NewDeposit(1, d("100.5")))
			a.Append(NewDispute(1))
			if err := store.Put(3, a); err != nil {
				t.Fatalf("Put: %v", err)
			}

			got, err := store.Get(3)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != 3 {
				t.Errorf("id = %d, want 3", got.ID)
			}
			if len(got.Log) != 2 {
				t.Fatalf("log has %d ops, want 2", len(got.Log))
			}
			if !got.Log[0].Equal(NewDeposit(1, d("100.5"))) {
				t.Errorf("log[0] = %s, want the deposit", OpString(got.Log[0]))
			}
			if !got.Log[1].Equal(NewDispute(1)) {
				t.Errorf("log[1] = %s, want the dispute", OpString(got.Log[1]))
			}
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAccount(5)
			a.Append(NewDeposit(1, d("10")))
			if err := store.Put(5, a); err != nil {
				t.Fatalf("Put: %v", err)
			}

			// Whole-record replace: the second Put is the record.
			b := NewAccount(5)
			b.Available = d("99")
			b.Total = d("99")
			if err := store.Put(5, b); err != nil {
				t.Fatalf("second Put: %v", err)
			}

			got, err := store.Get(5)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !got.Available.Equal(d("99")) || len(got.Log) != 0 {
				t.Errorf("got available %s with %d ops, want 99 with empty log", got.Available, len(got.Log))
			}
		})
	}
}

func TestDiskStore_SurvivesReadModifyWriteCycles(t *testing.T) {
	disk, err := NewDiskStore()
	if err != nil {
		t.Fatalf("cannot open disk store: %v", err)
	}
	defer disk.Close()

	// The ingestion pattern: load, append one op, write back.
	for tx := TxID(1); tx <= 50; tx++ {
		a, err := disk.GetOrCreate(1)
		if err != nil {
			t.Fatalf("GetOrCreate: %v", err)
		}
		a.Append(NewDeposit(tx, d("1")))
		if err := disk.Put(1, a); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	a, err := disk.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(a.Log) != 50 {
		t.Fatalf("log has %d ops, want 50", len(a.Log))
	}
	a.Settle()
	if !a.Total.Equal(d("50")) {
		t.Errorf("total = %s, want 50", a.Total)
	}
}

package minireduce

import "sync"

// initialStoreCap is the starting capacity of a record store's backing
// slice. Growth past it is amortized doubling via append.
const initialStoreCap = 1024

// recordStore is the append-only record buffer shared by every worker of a
// stage. A single mutex guards both the length and the backing slice, so a
// grow-and-append is observed atomically and no emission is lost or
// duplicated under contention. Stores are scoped to one run; concurrent
// runs never share one.
type recordStore struct {
	mu  sync.Mutex
	kvs []KeyValue
	max int   // 0 means unlimited
	err error // first rejected append, latched
}

func newRecordStore(max int) *recordStore {
	return &recordStore{
		kvs: make([]KeyValue, 0, initialStoreCap),
		max: max,
	}
}

// append adds one record to the store. Once the store holds max records it
// fails with ErrStoreFull; the first failure is latched so the run still
// fails even if the emitting callback discards the error.
func (s *recordStore) append(kv KeyValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.kvs) >= s.max {
		if s.err == nil {
			s.err = ErrStoreFull
		}
		return ErrStoreFull
	}

	s.kvs = append(s.kvs, kv)
	return nil
}

// records hands out the backing slice. Call it only after the stage writing
// to the store has fully joined.
func (s *recordStore) records() []KeyValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kvs
}

// failure reports the latched append error, if any.
func (s *recordStore) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

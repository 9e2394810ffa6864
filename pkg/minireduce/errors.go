package minireduce

import "errors"

var (
	// ErrStoreFull reports an emission rejected because the record store
	// reached Config.MaxBufferedRecords.
	ErrStoreFull = errors.New("record store is full")

	// ErrNilWorker reports a Run call without a worker.
	ErrNilWorker = errors.New("nil worker")
)

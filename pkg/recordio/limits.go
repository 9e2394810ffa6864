// Package recordio reads input records from line-oriented text, writes
// output entries back out, and bounds record field lengths at those
// boundaries. The engine itself never bounds records; callers that want
// bounded memory per record apply a Limits where records enter and leave
// the system.
package recordio

import (
	"errors"
	"fmt"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// Policy selects what happens to a record field that exceeds its limit.
type Policy int

const (
	// Truncate clips an oversized field to the limit.
	Truncate Policy = iota
	// Reject fails the record instead of clipping it.
	Reject
)

func (p Policy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

const (
	DefaultMaxKeyLen   = 128
	DefaultMaxValueLen = 1024
)

// ErrFieldTooLong reports a record rejected under the Reject policy.
var ErrFieldTooLong = errors.New("record field exceeds limit")

// Limits bounds record field byte lengths. A zero limit means that field is
// unbounded. The zero value of Limits bounds nothing.
type Limits struct {
	MaxKeyLen   int
	MaxValueLen int
	Policy      Policy
}

// DefaultLimits bounds keys to 128 bytes and values to 1024 bytes,
// truncating oversized fields.
func DefaultLimits() Limits {
	return Limits{
		MaxKeyLen:   DefaultMaxKeyLen,
		MaxValueLen: DefaultMaxValueLen,
		Policy:      Truncate,
	}
}

// Apply bounds one record. Under Truncate the oversized field comes back
// clipped at the byte limit; under Reject the record comes back unchanged
// along with an error wrapping ErrFieldTooLong.
func (l Limits) Apply(kv minireduce.KeyValue) (minireduce.KeyValue, error) {
	if l.MaxKeyLen > 0 && len(kv.Key) > l.MaxKeyLen {
		if l.Policy == Reject {
			return kv, fmt.Errorf("%w: key %d bytes, limit %d", ErrFieldTooLong, len(kv.Key), l.MaxKeyLen)
		}
		kv.Key = kv.Key[:l.MaxKeyLen]
	}
	if l.MaxValueLen > 0 && len(kv.Value) > l.MaxValueLen {
		if l.Policy == Reject {
			return kv, fmt.Errorf("%w: value %d bytes, limit %d", ErrFieldTooLong, len(kv.Value), l.MaxValueLen)
		}
		kv.Value = kv.Value[:l.MaxValueLen]
	}
	return kv, nil
}

// Bound wraps a worker so every record it emits passes through limits
// before reaching the engine's record store.
func Bound(worker minireduce.Worker, limits Limits) minireduce.Worker {
	return boundWorker{inner: worker, limits: limits}
}

type boundWorker struct {
	inner  minireduce.Worker
	limits Limits
}

func (b boundWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	return b.inner.Map(kv, b.bound(emit))
}

func (b boundWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	return b.inner.Reduce(key, values, b.bound(emit))
}

func (b boundWorker) Description() string { return b.inner.Description() }

func (b boundWorker) bound(emit minireduce.Emitter) minireduce.Emitter {
	return func(kv minireduce.KeyValue) error {
		kv, err := b.limits.Apply(kv)
		if err != nil {
			return err
		}
		return emit(kv)
	}
}

package minireduce

// KeyValue is a single input, intermediate, or output record.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Group pairs a key with every intermediate value emitted under it, in the
// order the shuffle stage produced them.
type Group struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Entry is one record of the final output. The engine packs exactly one
// value per entry and never merges entries: a reduce function that emits the
// same key twice produces two entries.
type Entry struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Worker supplies the map and reduce logic for a run.
type Worker interface {
	// Map consumes one input record. It may call emit any number of
	// times, including zero.
	Map(kv KeyValue, emit Emitter) error

	// Reduce consumes one key together with every intermediate value
	// emitted under it. It may call emit any number of times.
	Reduce(key string, values []string, emit Emitter) error

	Description() string
}

// Emitter appends one record to the running stage's record store. It is
// safe to call from any number of stage workers, but only within the
// dynamic extent of the Map or Reduce call it was passed to.
type Emitter func(KeyValue) error

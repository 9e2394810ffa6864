package actioncount

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// ActionCountWorker implements minireduce.Worker
type ActionCountWorker struct{}

// Map extracts the action (word after "did") from the record and emits (action, "1")
func (w ActionCountWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	words := strings.Fields(kv.Value)
	for i := range words {
		if words[i] == "did" && i+1 < len(words) {
			return emit(minireduce.KeyValue{Key: words[i+1], Value: "1"})
		}
	}

	return nil
}

// Reduce aggregates the counts for each action
func (w ActionCountWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	return emit(minireduce.KeyValue{Key: key, Value: strconv.Itoa(len(values))})
}

func (w ActionCountWorker) Description() string {
	return "Counts how many times each user action (after 'did') occurs, ignoring users"
}

package wordcount

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// WordCountWorker implements minireduce.Worker
type WordCountWorker struct{}

// Map splits the record's value into words and emits (word, "1") pairs.
func (w WordCountWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	for _, word := range strings.Fields(kv.Value) {
		if err := emit(minireduce.KeyValue{Key: word, Value: "1"}); err != nil {
			return err
		}
	}

	return nil
}

// Reduce receives all values for a word and emits (word, count)
func (w WordCountWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	return emit(minireduce.KeyValue{Key: key, Value: strconv.Itoa(len(values))})
}

func (w WordCountWorker) Description() string {
	return "A simple word count worker that counts occurrences of each word"
}

package maxvalue

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// MaxValueWorker finds the maximum numeric value for each key.
// Input format: "key:value" per line (e.g., "temperature:72.5")
type MaxValueWorker struct{}

// Map extracts the key-value pair from the record and emits it
func (w MaxValueWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	parts := strings.SplitN(kv.Value, ":", 2)
	if len(parts) != 2 {
		return nil
	}

	return emit(minireduce.KeyValue{Key: parts[0], Value: parts[1]})
}

// Reduce finds the maximum value for each key
func (w MaxValueWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	if len(values) == 0 {
		return nil
	}

	maxVal := parseFloat(values[0])
	for _, v := range values[1:] {
		if val := parseFloat(v); val > maxVal {
			maxVal = val
		}
	}

	return emit(minireduce.KeyValue{Key: key, Value: strconv.FormatFloat(maxVal, 'f', -1, 64)})
}

func (w MaxValueWorker) Description() string {
	return "Finds the maximum numeric value for each key (format: key:value)"
}

func parseFloat(s string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return val
}

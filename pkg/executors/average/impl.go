package average

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// AverageWorker calculates the average numeric value per key.
// Input format: "key:value" per line (e.g., "temperature:72.5")
type AverageWorker struct{}

// Map extracts the key-value pair from the record and emits (key, value)
func (w AverageWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	parts := strings.SplitN(kv.Value, ":", 2)
	if len(parts) != 2 {
		return nil
	}

	return emit(minireduce.KeyValue{Key: parts[0], Value: parts[1]})
}

// Reduce computes the average over every value emitted for the key,
// skipping values that do not parse as numbers
func (w AverageWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	var sum float64
	var count int

	for _, v := range values {
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		sum += val
		count++
	}

	if count == 0 {
		return nil
	}

	avg := sum / float64(count)
	return emit(minireduce.KeyValue{Key: key, Value: strconv.FormatFloat(avg, 'f', 2, 64)})
}

func (w AverageWorker) Description() string {
	return "Calculates average numeric value per key (format: key:value)"
}

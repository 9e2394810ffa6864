package recordio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// Read scans r line by line into input records. Each line becomes one
// record whose key is its 1-based line number and whose value is the line
// without the trailing newline. Limits apply to every record read.
func Read(r io.Reader, limits Limits) ([]minireduce.KeyValue, error) {
	var records []minireduce.KeyValue

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		kv, err := limits.Apply(minireduce.KeyValue{
			Key:   strconv.Itoa(line),
			Value: scanner.Text(),
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, kv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return records, nil
}

// ReadFile reads input records from the file at path.
func ReadFile(path string, limits Limits) ([]minireduce.KeyValue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return Read(f, limits)
}

// WriteEntries writes output entries to w, one "key value" line per value.
func WriteEntries(w io.Writer, entries []minireduce.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		for _, v := range e.Values {
			if _, err := fmt.Fprintf(bw, "%s %s\n", e.Key, v); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.Key, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// WriteFile writes output entries to the file at path, replacing it.
func WriteFile(path string, entries []minireduce.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := WriteEntries(f, entries); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

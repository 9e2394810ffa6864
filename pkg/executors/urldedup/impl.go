package urldedup

import (
	"net/url"
	"strconv"
	"strings"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// URLDedupWorker deduplicates URLs per domain.
// Input: URLs, one per line
// Output: (domain, unique_url_count)
type URLDedupWorker struct{}

// Map extracts the domain from the record's URL and emits (domain, url)
func (w URLDedupWorker) Map(kv minireduce.KeyValue, emit minireduce.Emitter) error {
	line := strings.TrimSpace(kv.Value)
	if line == "" {
		return nil
	}

	u, err := url.Parse(line)
	if err != nil {
		// Skip invalid URLs
		return nil
	}

	domain := u.Host
	if domain == "" {
		return nil
	}

	return emit(minireduce.KeyValue{Key: domain, Value: line})
}

// Reduce deduplicates URLs and counts unique URLs per domain
func (w URLDedupWorker) Reduce(key string, values []string, emit minireduce.Emitter) error {
	seen := make(map[string]struct{})
	for _, urlvalue := range values {
		seen[urlvalue] = struct{}{}
	}

	return emit(minireduce.KeyValue{Key: key, Value: strconv.Itoa(len(seen))})
}

func (w URLDedupWorker) Description() string {
	return "Deduplicates URLs per domain and counts unique URLs"
}

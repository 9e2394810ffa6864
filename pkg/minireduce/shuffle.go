package minireduce

import "sort"

// sortByKey orders records by byte-wise key comparison. The sort is stable:
// records with equal keys keep their store order, so values a single worker
// emitted for one key stay in emission order.
func sortByKey(kvs []KeyValue) {
	sort.SliceStable(kvs, func(i, j int) bool {
		return kvs[i].Key < kvs[j].Key
	})
}

// groupByKey sorts the intermediate records in place and coalesces each
// maximal run of equal keys into one Group. The result is ordered by key
// and contains no duplicate keys.
func groupByKey(kvs []KeyValue) []Group {
	sortByKey(kvs)

	groups := make([]Group, 0, len(kvs))
	for i := 0; i < len(kvs); {
		j := i + 1
		for j < len(kvs) && kvs[j].Key == kvs[i].Key {
			j++
		}

		values := make([]string, 0, j-i)
		for k := i; k < j; k++ {
			values = append(values, kvs[k].Value)
		}

		groups = append(groups, Group{Key: kvs[i].Key, Values: values})
		i = j
	}

	return groups
}

// assemble orders the final records by key and packs each into its own
// Entry. Records sharing a key stay separate entries.
func assemble(kvs []KeyValue) []Entry {
	sortByKey(kvs)

	out := make([]Entry, len(kvs))
	for i, kv := range kvs {
		out[i] = Entry{Key: kv.Key, Values: []string{kv.Value}}
	}

	return out
}

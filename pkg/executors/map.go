// Package executors registers the built-in workers by name so callers can
// select one at runtime.
package executors

import (
	"errors"
	"sort"

	"pkg.jsn.cam/minireduce/pkg/executors/actioncount"
	"pkg.jsn.cam/minireduce/pkg/executors/average"
	"pkg.jsn.cam/minireduce/pkg/executors/maxvalue"
	"pkg.jsn.cam/minireduce/pkg/executors/urldedup"
	"pkg.jsn.cam/minireduce/pkg/executors/wordcount"
	"pkg.jsn.cam/minireduce/pkg/minireduce"
)

// ErrUnknownExecutor reports a name with no registered worker.
var ErrUnknownExecutor = errors.New("unknown executor")

var Executors = map[string]minireduce.Worker{
	"wordcount":   wordcount.WordCountWorker{},
	"actioncount": actioncount.ActionCountWorker{},
	"maxvalue":    maxvalue.MaxValueWorker{},
	"urldedup":    urldedup.URLDedupWorker{},
	"average":     average.AverageWorker{},
}

func IsValid(name string) bool {
	_, exists := Executors[name]
	return exists
}

// Get returns the worker registered under name, or nil.
func Get(name string) minireduce.Worker {
	return Executors[name]
}

// List returns the registered executor names in sorted order.
func List() []string {
	names := make([]string, 0, len(Executors))
	for name := range Executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Describe(name string) (string, error) {
	worker, exists := Executors[name]
	if !exists {
		return "", ErrUnknownExecutor
	}
	return worker.Description(), nil
}

package minireduce

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"
)

// Config holds engine configuration. The zero value is usable: worker
// counts default to runtime.GOMAXPROCS(0) and stores are unbounded.
type Config struct {
	// Mappers and Reducers are the per-stage worker counts. Values <= 0
	// default to runtime.GOMAXPROCS(0). A stage never spawns more
	// workers than it has items, and a stage with one worker runs
	// inline on the calling goroutine.
	Mappers  int
	Reducers int

	// MaxBufferedRecords caps how many records each of the two record
	// stores will hold. 0 means unlimited. An emission past the cap
	// fails with ErrStoreFull and fails the run.
	MaxBufferedRecords int

	// Verbose enables per-stage logging.
	Verbose bool
}

// Engine executes MapReduce runs. It holds no per-run state, so a single
// Engine may serve any number of concurrent Run calls.
type Engine struct {
	cfg Config
}

// New creates an engine, applying Config defaults.
func New(cfg Config) *Engine {
	if cfg.Mappers <= 0 {
		cfg.Mappers = runtime.GOMAXPROCS(0)
	}
	if cfg.Reducers <= 0 {
		cfg.Reducers = runtime.GOMAXPROCS(0)
	}

	return &Engine{cfg: cfg}
}

// Run executes one job: the map stage over every input record, a shuffle
// that groups intermediate records by key, the reduce stage over every
// group, and assembly of the sorted output. Stages are strict barriers; no
// reduce call starts before every map call has returned.
//
// Run is deterministic for a deterministic worker: the same input and
// worker produce the same output regardless of worker counts. Cancelling
// ctx stops each stage worker at its next record boundary.
func (e *Engine) Run(ctx context.Context, input []KeyValue, worker Worker) ([]Entry, error) {
	if worker == nil {
		return nil, ErrNilWorker
	}

	inter := newRecordStore(e.cfg.MaxBufferedRecords)

	mappers := stageWorkers(e.cfg.Mappers, len(input))
	e.logf("map stage: %d records across %d workers", len(input), mappers)

	err := runStage(ctx, mappers, len(input), func(i int) error {
		if err := worker.Map(input[i], inter.append); err != nil {
			return fmt.Errorf("map record %s: %w", input[i].Key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := inter.failure(); err != nil {
		return nil, fmt.Errorf("map stage: %w", err)
	}

	records := inter.records()
	if len(records) == 0 {
		e.logf("map stage emitted nothing, skipping reduce")
		return []Entry{}, nil
	}

	groups := groupByKey(records)
	e.logf("shuffle: %d records into %d groups", len(records), len(groups))

	final := newRecordStore(e.cfg.MaxBufferedRecords)

	reducers := stageWorkers(e.cfg.Reducers, len(groups))
	e.logf("reduce stage: %d groups across %d workers", len(groups), reducers)

	err = runStage(ctx, reducers, len(groups), func(i int) error {
		if err := worker.Reduce(groups[i].Key, groups[i].Values, final.append); err != nil {
			return fmt.Errorf("reduce key %s: %w", groups[i].Key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := final.failure(); err != nil {
		return nil, fmt.Errorf("reduce stage: %w", err)
	}

	out := assemble(final.records())
	e.logf("assembled %d output entries", len(out))

	return out, nil
}

// stageWorkers caps the configured worker count at the number of items so
// no goroutine is spawned onto an empty span, and floors it at one so an
// empty stage still runs (as a no-op) on the calling goroutine.
func stageWorkers(configured, items int) int {
	if configured > items {
		configured = items
	}
	if configured < 1 {
		configured = 1
	}
	return configured
}

// runStage fans callFn out over count items split into one contiguous span
// per worker, then joins every worker before returning. A failing span does
// not cancel its siblings; they run to completion and the first error in
// worker order wins, so the reported error is deterministic. With a single
// worker the stage runs inline.
func runStage(ctx context.Context, workers, count int, callFn func(i int) error) error {
	spans := splitRanges(count, workers)

	if workers == 1 {
		return runSpan(ctx, spans[0], callFn)
	}

	errs := make([]error, len(spans))

	var wg sync.WaitGroup
	for w, sp := range spans {
		wg.Add(1)
		go func(w int, sp span) {
			defer wg.Done()
			errs[w] = runSpan(ctx, sp, callFn)
		}(w, sp)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// runSpan invokes callFn once per index in span order, checking ctx before
// each record.
func runSpan(ctx context.Context, sp span, callFn func(i int) error) error {
	for i := sp.start; i < sp.end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callFn(i); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Verbose {
		log.Printf("[ENGINE] "+format, args...)
	}
}

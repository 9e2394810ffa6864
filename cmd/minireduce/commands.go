package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/minireduce/internal/history"
	"pkg.jsn.cam/minireduce/pkg/executors"
	"pkg.jsn.cam/minireduce/pkg/minireduce"
	"pkg.jsn.cam/minireduce/pkg/recordio"
)

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var (
		input       = fs.String("input", "", "Path to the input file (required)")
		executor    = fs.String("executor", "wordcount", "Executor to run (see 'minireduce executors')")
		output      = fs.String("output", "", "Output file path (default: stdout)")
		mappers     = fs.Int("mappers", 0, "Map workers (0 = GOMAXPROCS)")
		reducers    = fs.Int("reducers", 0, "Reduce workers (0 = GOMAXPROCS)")
		maxBuffered = fs.Int("max-buffered", 0, "Cap on buffered records per stage (0 = unlimited)")
		maxKeyLen   = fs.Int("max-key-len", recordio.DefaultMaxKeyLen, "Byte limit per record key (0 = unlimited)")
		maxValueLen = fs.Int("max-value-len", recordio.DefaultMaxValueLen, "Byte limit per record value (0 = unlimited)")
		strict      = fs.Bool("strict", false, "Reject oversized records instead of truncating them")
		historyPath = fs.String("history", "", "Record the run in the history database at this path")
		quiet       = fs.Bool("quiet", false, "Suppress the progress bar")
		verbose     = fs.Bool("verbose", false, "Enable engine stage logging")
	)
	fs.Parse(args)

	if *input == "" {
		log.Fatal("run: -input is required")
	}

	worker := executors.Get(*executor)
	if worker == nil {
		log.Fatalf("run: unknown executor %q (available: %s)", *executor, strings.Join(executors.List(), ", "))
	}

	limits := recordio.Limits{MaxKeyLen: *maxKeyLen, MaxValueLen: *maxValueLen}
	if *strict {
		limits.Policy = recordio.Reject
	}

	records, inputSize, err := readInput(*input, limits, *quiet)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	var store *history.Store
	if *historyPath != "" {
		store, err = history.Open(*historyPath)
		if err != nil {
			log.Fatalf("run: opening history: %v", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := minireduce.New(minireduce.Config{
		Mappers:            *mappers,
		Reducers:           *reducers,
		MaxBufferedRecords: *maxBuffered,
		Verbose:            *verbose,
	})

	runID := history.NewRunID()
	started := time.Now().UTC()
	entries, runErr := engine.Run(ctx, records, recordio.Bound(worker, limits))
	completed := time.Now().UTC()

	if store != nil {
		recordRun(store, &history.RunRecord{
			ID:            runID,
			Executor:      *executor,
			InputPath:     *input,
			Mappers:       *mappers,
			Reducers:      *reducers,
			InputRecords:  len(records),
			OutputRecords: len(entries),
			Status:        history.StatusCompleted,
			StartedAt:     started,
			CompletedAt:   completed,
			EngineVersion: minireduce.Version,
		}, entries, runErr)
	}

	if runErr != nil {
		log.Fatalf("run: %v", runErr)
	}

	if *output != "" {
		if err := recordio.WriteFile(*output, entries); err != nil {
			log.Fatalf("run: %v", err)
		}
	} else if err := recordio.WriteEntries(os.Stdout, entries); err != nil {
		log.Fatalf("run: %v", err)
	}

	fmt.Fprintf(os.Stderr, "\nRun completed:\n")
	fmt.Fprintf(os.Stderr, "  Run ID:   %s\n", runID)
	fmt.Fprintf(os.Stderr, "  Executor: %s\n", *executor)
	fmt.Fprintf(os.Stderr, "  Input:    %s records (%s)\n",
		humanize.Comma(int64(len(records))), humanize.Bytes(uint64(inputSize)))
	fmt.Fprintf(os.Stderr, "  Output:   %s entries\n", humanize.Comma(int64(len(entries))))
	fmt.Fprintf(os.Stderr, "  Duration: %v\n", completed.Sub(started).Round(time.Millisecond))
}

// readInput loads the input file into records, showing a byte progress bar
// unless quiet is set.
func readInput(path string, limits recordio.Limits, quiet bool) ([]minireduce.KeyValue, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stating input: %w", err)
	}

	var r io.Reader = f
	if !quiet {
		bar := progressbar.DefaultBytes(info.Size(), "reading input")
		r = io.TeeReader(f, bar)
		defer bar.Finish()
	}

	records, err := recordio.Read(r, limits)
	if err != nil {
		return nil, 0, err
	}

	return records, info.Size(), nil
}

// recordRun persists the run record, and its results if it succeeded. A
// history failure never fails the run itself.
func recordRun(store *history.Store, rec *history.RunRecord, entries []minireduce.Entry, runErr error) {
	if runErr != nil {
		rec.Status = history.StatusFailed
		rec.Error = runErr.Error()
		rec.OutputRecords = 0
	}

	if err := store.SaveRun(rec); err != nil {
		log.Printf("[CLI] Warning: failed to record run: %v", err)
		return
	}
	if runErr == nil {
		if err := store.SaveResults(rec.ID, entries); err != nil {
			log.Printf("[CLI] Warning: failed to record results: %v", err)
		}
	}
}

func executorsCmd(args []string) {
	fs := flag.NewFlagSet("executors", flag.ExitOnError)
	fs.Parse(args)

	fmt.Printf("%-14s %s\n", "NAME", "DESCRIPTION")
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")
	for _, name := range executors.List() {
		desc, _ := executors.Describe(name)
		fmt.Printf("%-14s %s\n", name, desc)
	}
}

func historyCmd(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	var (
		dbPath = fs.String("db", "", "History database path (required)")
		limit  = fs.Int("limit", 0, "Show at most this many runs (0 = all)")
	)
	fs.Parse(args)

	if *dbPath == "" {
		log.Fatal("history: -db is required")
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		log.Fatalf("history: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return
	}
	if *limit > 0 && len(runs) > *limit {
		runs = runs[:*limit]
	}

	fmt.Printf("%-36s %-10s %-12s %-10s %-10s %s\n",
		"RUN ID", "STATUS", "EXECUTOR", "RECORDS", "DURATION", "STARTED")
	fmt.Println("─────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Printf("%-36s %-10s %-12s %-10s %-10v %s\n",
			run.ID,
			run.Status,
			run.Executor,
			humanize.Comma(int64(run.InputRecords)),
			run.Duration().Round(time.Millisecond),
			run.StartedAt.Format("2006-01-02 15:04:05"))
	}
}

func resultsCmd(args []string) {
	fs := flag.NewFlagSet("results", flag.ExitOnError)
	var (
		dbPath = fs.String("db", "", "History database path (required)")
		runID  = fs.String("run", "", "Run ID (default: most recent completed run)")
	)
	fs.Parse(args)

	if *dbPath == "" {
		log.Fatal("results: -db is required")
	}

	store, err := history.Open(*dbPath)
	if err != nil {
		log.Fatalf("results: %v", err)
	}
	defer store.Close()

	id := *runID
	if id == "" {
		runs, err := store.Runs()
		if err != nil {
			log.Fatalf("results: %v", err)
		}
		for _, run := range runs {
			if run.Status == history.StatusCompleted {
				id = run.ID
				break
			}
		}
		if id == "" {
			log.Fatal("results: no completed runs recorded")
		}
	}

	entries, err := store.Results(id)
	if err != nil {
		log.Fatalf("results: %v", err)
	}

	fmt.Printf("Results for run %s (%d entries):\n", id, len(entries))
	fmt.Println("─────────────────────────────────────────────────────────")
	for _, e := range entries {
		for _, v := range e.Values {
			fmt.Printf("%-30s %s\n", e.Key, v)
		}
	}
}

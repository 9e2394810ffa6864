// Package history persists run records and their results so completed jobs
// can be listed and inspected after the fact.
package history

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/minireduce/pkg/minireduce"
	"pkg.jsn.cam/minireduce/pkg/storage"
)

var (
	runsBucket    = []byte("runs")
	resultsBucket = []byte("results")
	metaBucket    = []byte("meta")
)

const formatVersionKey = "format_version"

// ErrRunNotFound reports a lookup for a run ID with no stored record.
var ErrRunNotFound = errors.New("run not found")

// RunStatus is the terminal state of a run.
type RunStatus string

const (
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// RunRecord is one run as stored on disk.
type RunRecord struct {
	ID            string    `json:"id"`
	Executor      string    `json:"executor"`
	InputPath     string    `json:"input_path"`
	Mappers       int       `json:"mappers"`
	Reducers      int       `json:"reducers"`
	InputRecords  int       `json:"input_records"`
	OutputRecords int       `json:"output_records"`
	Status        RunStatus `json:"status"`
	Error         string    `json:"error,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
	EngineVersion string    `json:"engine_version"`
}

// Duration is the wall-clock time the run took.
func (r *RunRecord) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// NewRunID returns a fresh unique run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// Store persists run records and results over a storage.Backend.
type Store struct {
	backend storage.Backend
}

// NewStore wraps an open backend, creating the history buckets and checking
// the stored format version against this build.
func NewStore(backend storage.Backend) (*Store, error) {
	for _, bucket := range [][]byte{runsBucket, resultsBucket, metaBucket} {
		if err := backend.CreateBucket(bucket); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	s := &Store{backend: backend}
	if err := s.checkFormatVersion(); err != nil {
		return nil, err
	}

	return s, nil
}

// Open opens (or creates) a bbolt-backed history database at path.
func Open(path string) (*Store, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}

	s, err := NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return s, nil
}

// checkFormatVersion stamps a fresh database with the current format
// version, or verifies a stamped one is readable by this build.
func (s *Store) checkFormatVersion() error {
	data, err := storage.GetString(s.backend, metaBucket, formatVersionKey)
	if err != nil {
		return err
	}
	if data == nil {
		return storage.PutString(s.backend, metaBucket, formatVersionKey, []byte(FormatVersion))
	}

	stored := string(data)
	ok, err := IsCompatibleFormat(stored, FormatVersion)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrIncompatibleFormat, CompatibilityError(stored, FormatVersion))
	}

	return nil
}

// SaveRun persists one run record, keyed by its ID.
func (s *Store) SaveRun(run *RunRecord) error {
	data, err := storage.EncodeJSON(run)
	if err != nil {
		return err
	}
	return storage.PutString(s.backend, runsBucket, run.ID, data)
}

// Run loads one run record by ID.
func (s *Store) Run(id string) (*RunRecord, error) {
	data, err := storage.GetString(s.backend, runsBucket, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run RunRecord
	if err := storage.DecodeJSON(data, &run); err != nil {
		return nil, err
	}

	return &run, nil
}

// Runs loads every run record, most recent first.
func (s *Store) Runs() ([]RunRecord, error) {
	var runs []RunRecord

	err := s.backend.ForEach(runsBucket, func(k, v []byte) error {
		var run RunRecord
		if err := storage.DecodeJSON(v, &run); err != nil {
			log.Printf("[HISTORY] Warning: failed to decode run %s: %v", k, err)
			return nil // Skip corrupted records
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	return runs, nil
}

// SaveResults persists the output entries of a run.
func (s *Store) SaveResults(runID string, entries []minireduce.Entry) error {
	data, err := storage.EncodeJSON(entries)
	if err != nil {
		return err
	}
	return storage.PutString(s.backend, resultsBucket, runID, data)
}

// Results loads the stored output entries of a run.
func (s *Store) Results(runID string) ([]minireduce.Entry, error) {
	data, err := storage.GetString(s.backend, resultsBucket, runID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	var entries []minireduce.Entry
	if err := storage.DecodeJSON(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteRun removes a run record together with its stored results.
func (s *Store) DeleteRun(id string) error {
	if err := storage.DeleteString(s.backend, runsBucket, id); err != nil {
		return err
	}
	return storage.DeleteString(s.backend, resultsBucket, id)
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

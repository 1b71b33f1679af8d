// Package store persists extracted records. The core only requires
// insert(record) → inserted: bool, idempotent on ApplicationNumber; no
// third-party KV or embedded-database dependency appears anywhere in the
// example pack this module was built from, so both implementations here
// are standard-library only.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/coregx/devappscraper/internal/records"
)

// RecordSink is the persistence collaborator the engine's orchestration
// layer writes extracted records to.
type RecordSink interface {
	// Insert stores r if no record with the same ApplicationNumber is
	// already present. It reports whether r was newly inserted; a
	// duplicate is accepted silently and reported as not-inserted, never
	// as an error.
	Insert(r records.Record) (inserted bool, err error)
}

// Memory is an in-memory RecordSink, safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	byID map[string]records.Record
}

// NewMemory creates an empty Memory sink.
func NewMemory() *Memory {
	return &Memory{byID: make(map[string]records.Record)}
}

func (m *Memory) Insert(r records.Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[r.ApplicationNumber]; exists {
		return false, nil
	}
	m.byID[r.ApplicationNumber] = r
	return true, nil
}

// All returns every stored record, in no particular order.
func (m *Memory) All() []records.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]records.Record, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out
}

// JSONLFile is a RecordSink backed by a JSON-lines file: one record per
// line, appended on insert. Insert-if-absent is implemented by scanning
// the file for an existing ApplicationNumber before appending, guarded by
// a mutex so concurrent callers never race the scan-then-append.
type JSONLFile struct {
	mu   sync.Mutex
	path string
}

// NewJSONLFile creates a JSONLFile sink writing to path. The file is
// created on first Insert if it does not already exist.
func NewJSONLFile(path string) *JSONLFile {
	return &JSONLFile{path: path}
}

func (f *JSONLFile) Insert(r records.Record) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	exists, err := f.contains(r.ApplicationNumber)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("store: opening %s: %w", f.path, err)
	}
	defer func() { _ = file.Close() }()

	line, err := json.Marshal(r)
	if err != nil {
		return false, fmt.Errorf("store: encoding record: %w", err)
	}
	if _, err := file.Write(append(line, '\n')); err != nil {
		return false, fmt.Errorf("store: writing %s: %w", f.path, err)
	}

	return true, nil
}

func (f *JSONLFile) contains(applicationNumber string) (bool, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("store: opening %s: %w", f.path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var r records.Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue // tolerate a malformed line rather than aborting the scan
		}
		if r.ApplicationNumber == applicationNumber {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// All reads every record currently in the file, in file order.
func (f *JSONLFile) All() ([]records.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: opening %s: %w", f.path, err)
	}
	defer func() { _ = file.Close() }()

	var out []records.Record
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var r records.Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, scanner.Err()
}

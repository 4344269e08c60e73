package record

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// StorageError wraps an I/O or encoding failure of the result log. The
// underlying error is surfaced unmodified through Unwrap; callers see which
// operation failed without losing the cause.
type StorageError struct {
	Op  string
	Err error
}

// Error returns a textual description of the failed operation.
func (e *StorageError) Error() string {
	return "result log " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a StorageError for the given log operation.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// Repository is the persistence contract of the result log.
// Append persists the full updated log and returns it; Reset clears the log
// to an empty record set.
type Repository interface {
	Load() (Log, error)
	Append(rec Record) (Log, error)
	Reset() (Log, error)
}

// FileRepository persists the result log as a single JSON document.
// All operations are serialized behind one mutex, and every write replaces
// the file atomically via a temp file and rename, so concurrent in-process
// callers cannot interleave the read-modify-write cycle and a crashed write
// never leaves a truncated log behind.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository creates a repository backed by the JSON document at path.
// The file is created lazily on the first Append or Reset; a missing file
// loads as an empty log.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and returns the persisted log.
func (r *FileRepository) Load() (Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Append adds rec to the end of the log, persists the updated document and
// returns it. The log on disk is never left with a partially written record:
// either the whole updated document replaces the file or the old one stays.
func (r *FileRepository) Append(rec Record) (Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, err := r.load()
	if err != nil {
		return Log{}, err
	}
	log.Records = append(log.Records, rec)
	if err := r.save(log); err != nil {
		return Log{}, err
	}
	return log, nil
}

// Reset clears the log to an empty record set and persists it.
func (r *FileRepository) Reset() (Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := Log{Records: []Record{}}
	if err := r.save(log); err != nil {
		return Log{}, err
	}
	return log, nil
}

func (r *FileRepository) load() (Log, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Log{Records: []Record{}}, nil
		}
		return Log{}, NewStorageError("load", err)
	}

	var log Log
	if err := json.Unmarshal(content, &log); err != nil {
		return Log{}, NewStorageError("load", err)
	}
	if log.Records == nil {
		log.Records = []Record{}
	}
	return log, nil
}

func (r *FileRepository) save(log Log) error {
	data, err := json.MarshalIndent(log, "", "    ")
	if err != nil {
		return NewStorageError("save", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewStorageError("save", err)
	}

	tmp, err := os.CreateTemp(dir, ".result-*.json")
	if err != nil {
		return NewStorageError("save", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return NewStorageError("save", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return NewStorageError("save", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return NewStorageError("save", err)
	}
	return nil
}

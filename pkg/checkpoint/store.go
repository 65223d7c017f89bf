package checkpoint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	errs "checkpoints/pkg/errors"
	"checkpoints/pkg/logger"
)

const (
	// documentKey holds the checkpoint array in the stored file
	documentKey = "checkpoints"
	// legacyDocumentKey is accepted on load for files written by older versions
	legacyDocumentKey = "checkpointsData"

	defaultIndent = "  "
)

// document is the top-level shape of the checkpoints file
type document struct {
	Checkpoints []Record `json:"checkpoints"`
}

// Store is an in-memory list of checkpoints backed by a JSON file.
// Mutations only touch memory until Save is called. A Store is not safe for
// concurrent use.
type Store struct {
	path    string
	indent  string
	records []Record
	logger  logger.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithIndent sets the indentation used when writing the file. An empty
// indent writes compact JSON.
func WithIndent(indent string) Option {
	return func(s *Store) {
		s.indent = indent
	}
}

// Open creates a store for the file at path, creating an empty file if none
// exists, and loads its checkpoints.
//
// The returned store is always usable. A non-nil error explains why the cache
// started empty (the file could not be created or read, was empty, or did not
// parse); callers decide whether to report it.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:    path,
		indent:  defaultIndent,
		records: []Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.GetLogger()
	}

	if err := s.ensureFile(); err != nil {
		return s, err
	}

	return s, s.Reload()
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of cached checkpoints
func (s *Store) Len() int {
	return len(s.records)
}

// Add appends a checkpoint. Duplicates are allowed.
func (s *Store) Add(record Record) {
	s.records = append(s.records, record)
}

// RemoveByPosition removes the first checkpoint (in insertion order) at the
// given position and reports whether one was removed.
func (s *Store) RemoveByPosition(world string, x, y, z float64) (bool, error) {
	if world == "" {
		return false, errs.New(errs.ErrorTypeMissingWorld, "remove", "location must have a world")
	}

	idx := slices.IndexFunc(s.records, func(r Record) bool {
		return r.Matches(world, x, y, z)
	})
	if idx < 0 {
		return false, nil
	}

	s.records = slices.Delete(s.records, idx, idx+1)
	return true, nil
}

// RemoveAt removes the first checkpoint at the current position of src
func (s *Store) RemoveAt(src PositionSource) (bool, error) {
	if src == nil {
		return false, errs.New(errs.ErrorTypeInvalidInput, "remove", "position source is required")
	}
	x, y, z := src.Coordinates()
	return s.RemoveByPosition(src.WorldID(), x, y, z)
}

// RemoveRecord removes the first checkpoint equal to record
func (s *Store) RemoveRecord(record Record) bool {
	idx := slices.Index(s.records, record)
	if idx < 0 {
		return false
	}

	s.records = slices.Delete(s.records, idx, idx+1)
	return true
}

// List returns a snapshot of the cached checkpoints in insertion order
func (s *Store) List() []Record {
	return slices.Clone(s.records)
}

// Save writes every cached checkpoint to the backing file, replacing its
// contents. Nothing is written if the file no longer exists.
func (s *Store) Save() error {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &errs.Error{
				Type:    errs.ErrorTypeMissingFile,
				Op:      "save",
				Path:    s.path,
				Message: "checkpoints file no longer exists, nothing was written",
			}
		}
		return errs.Wrap(errs.ErrorTypeIO, "save", s.path, err)
	}

	data, err := s.encode()
	if err != nil {
		return &errs.Error{Type: errs.ErrorTypeMalformedRecord, Op: "encode", Path: s.path, Err: err}
	}

	if err := writeFile(s.path, data); err != nil {
		return errs.Wrap(errs.ErrorTypeIO, "save", s.path, err)
	}

	logger.LogStoreEvent(s.logger, "save", s.path, len(s.records), nil)
	return nil
}

// Reload discards the cached checkpoints and loads them again from the file.
// On failure the cache is left empty.
func (s *Store) Reload() error {
	records, err := s.read()
	s.records = records
	if err != nil {
		return err
	}

	logger.LogStoreEvent(s.logger, "reload", s.path, len(s.records), nil)
	return nil
}

// ensureFile creates an empty backing file if it does not exist yet
func (s *Store) ensureFile() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(errs.ErrorTypeIO, "open", s.path, err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return errs.Wrap(errs.ErrorTypeIO, "create", s.path, err)
	}
	if err := file.Close(); err != nil {
		return errs.Wrap(errs.ErrorTypeIO, "create", s.path, err)
	}

	s.logger.WithField("path", s.path).Info("Created checkpoints file")
	return nil
}

// read loads the records from disk. It always returns a non-nil slice.
func (s *Store) read() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Record{}, errs.Wrap(errs.ErrorTypeIO, "read", s.path, err)
	}

	records, err := decodeDocument(data)
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = s.path
		}
		return []Record{}, err
	}
	return records, nil
}

func (s *Store) encode() ([]byte, error) {
	doc := document{Checkpoints: s.records}
	if doc.Checkpoints == nil {
		doc.Checkpoints = []Record{}
	}

	var (
		data []byte
		err  error
	)
	if s.indent == "" {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", s.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoints: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeDocument parses the checkpoints file. The whole load fails if the
// top level or any single record does not have the expected shape.
func decodeDocument(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errs.New(errs.ErrorTypeEmptyFile, "load", "checkpoints file has nothing in it, please add some checkpoints")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &errs.Error{Type: errs.ErrorTypeMalformedRecord, Op: "load", Message: "checkpoints file is not a JSON object", Err: err}
	}

	raw, ok := doc[documentKey]
	if !ok {
		raw, ok = doc[legacyDocumentKey]
	}
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errs.New(errs.ErrorTypeMalformedRecord, "load", fmt.Sprintf("missing %q array", documentKey))
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &errs.Error{Type: errs.ErrorTypeMalformedRecord, Op: "load", Message: "invalid checkpoint list", Err: err}
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// writeFile replaces path with data through a temporary file and a rename
func writeFile(path string, data []byte) error {
	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary checkpoints file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write checkpoints: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync checkpoints file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close checkpoints file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace checkpoints file: %w", err)
	}

	return nil
}

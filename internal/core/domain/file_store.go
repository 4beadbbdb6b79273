// Package domain holds the session data model: tracked files, import edges, options and diagnostics.
package domain

import "slices"

// FileRecord is the content and version of a single file known to a session.
type FileRecord struct {
	// Text is the last observed content. Empty when Removed is set.
	Text string
	// Version increases every time Text or Removed changes.
	Version int
	// Removed marks a tombstone left behind by a deletion.
	Removed bool
}

// FileStore holds the files of a session, keyed by normalized absolute path.
// Program files are compiled; other files are read on behalf of the toolchain
// (declaration-only references and similar) but are not roots of the program.
//
// A FileStore is not safe for concurrent use; the owning session serializes access.
type FileStore struct {
	program map[string]*FileRecord
	other   map[string]*FileRecord
}

// NewFileStore creates an empty FileStore.
func NewFileStore() *FileStore {
	return &FileStore{
		program: make(map[string]*FileRecord),
		other:   make(map[string]*FileRecord),
	}
}

// Seed records a program file at version 0, replacing any earlier record.
func (s *FileStore) Seed(path, text string) {
	s.program[NormalizePath(path)] = &FileRecord{Text: text}
}

// SeedOther records a non-program file at version 0 unless it is already known.
func (s *FileStore) SeedOther(path, text string) FileRecord {
	key := NormalizePath(path)
	if rec, ok := s.lookup(key); ok {
		return *rec
	}
	rec := &FileRecord{Text: text}
	s.other[key] = rec
	return *rec
}

// Get returns the program file record for path.
func (s *FileStore) Get(path string) (FileRecord, bool) {
	rec, ok := s.program[NormalizePath(path)]
	if !ok {
		return FileRecord{}, false
	}
	return *rec, true
}

// Lookup returns the record for path, searching program files before other files.
func (s *FileStore) Lookup(path string) (FileRecord, bool) {
	rec, ok := s.lookup(NormalizePath(path))
	if !ok {
		return FileRecord{}, false
	}
	return *rec, true
}

// IsProgramFile reports whether path is tracked as a program file, tombstoned or not.
func (s *FileStore) IsProgramFile(path string) bool {
	_, ok := s.program[NormalizePath(path)]
	return ok
}

// Write stores text for path. Unknown paths become program files at version 1.
// The version is bumped only when the content or the tombstone state changes,
// so writing identical content twice is a no-op the second time.
func (s *FileStore) Write(path, text string) (rec FileRecord, changed bool) {
	key := NormalizePath(path)
	existing, ok := s.lookup(key)
	if !ok {
		created := &FileRecord{Text: text, Version: 1}
		s.program[key] = created
		return *created, true
	}
	if !existing.Removed && existing.Text == text {
		return *existing, false
	}
	existing.Text = text
	existing.Removed = false
	existing.Version++
	return *existing, true
}

// Remove tombstones the record for path. Unknown paths and existing tombstones are left alone.
func (s *FileStore) Remove(path string) (rec FileRecord, changed bool) {
	existing, ok := s.lookup(NormalizePath(path))
	if !ok {
		return FileRecord{}, false
	}
	if existing.Removed {
		return *existing, false
	}
	existing.Text = ""
	existing.Removed = true
	existing.Version++
	return *existing, true
}

// ProgramFiles returns the sorted paths of live program files.
func (s *FileStore) ProgramFiles() []string {
	paths := make([]string, 0, len(s.program))
	for path, rec := range s.program {
		if !rec.Removed {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths
}

func (s *FileStore) lookup(key string) (*FileRecord, bool) {
	if rec, ok := s.program[key]; ok {
		return rec, true
	}
	rec, ok := s.other[key]
	return rec, ok
}

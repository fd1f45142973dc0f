package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vidyasetu/vidyasetu/core"
)

// DB owns the persisted document. Construction initializes the store if no
// document exists yet and never overwrites existing data. All mutations are
// full-document writes; callers go through the typed repositories.
type DB struct {
	path   string
	logger core.Logger

	mu  sync.RWMutex
	doc *Document
}

// Open loads the document at path, seeding a fresh one when the file does not
// exist. An unreadable document is moved aside and reseeded: the state is
// recoverable from the renamed file, and the system keeps working.
func Open(path string, logger core.Logger) (*DB, error) {
	db := &DB{path: path, logger: logger}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		db.doc = seedDocument()
		if err = db.persist(); err != nil {
			return nil, err
		}
		return db, nil
	case err != nil:
		return nil, errors.Wrapf(err, "reading state document %s", path)
	}

	var doc Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
		cerr := &core.CorruptStateError{Path: path, BackupPath: backup, Err: err}
		if renameErr := os.Rename(path, backup); renameErr != nil {
			return nil, errors.Wrap(renameErr, cerr.Error())
		}
		logger.Warn("state document is corrupt; kept aside and reinitialized", cerr)

		db.doc = seedDocument()
		if err = db.persist(); err != nil {
			return nil, err
		}
		return db, nil
	}

	db.doc = &doc
	return db, nil
}

// Path returns the location of the persisted document.
func (db *DB) Path() string { return db.path }

// persist serializes the whole document and replaces the file in one rename.
// Callers must hold db.mu.
func (db *DB) persist() error {
	raw, err := json.Marshal(db.doc)
	if err != nil {
		return errors.Wrap(err, "serializing state document")
	}

	tmp, err := os.CreateTemp(filepath.Dir(db.path), ".vidyasetu-*")
	if err != nil {
		return errors.Wrap(err, "creating temp state file")
	}
	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "writing state document")
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "closing temp state file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), db.path), "replacing state document")
}

// Snapshot returns a deep copy of the current document.
func (db *DB) Snapshot() (Document, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out Document
	raw, err := json.Marshal(db.doc)
	if err != nil {
		return out, errors.Wrap(err, "copying state document")
	}
	err = json.Unmarshal(raw, &out)
	return out, errors.Wrap(err, "copying state document")
}

// Export writes the whole document as indented JSON, the backup format.
func (db *DB) Export(w io.Writer) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(db.doc), "exporting state document")
}

// Import replaces the whole document with a backup. The backup must be a JSON
// object carrying at least the departments, students and faculty collections;
// anything else is rejected without touching the current state.
func (db *DB) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading backup")
	}

	var probe map[string]json.RawMessage
	if err = json.Unmarshal(raw, &probe); err != nil {
		return core.NewImportFormatError(err)
	}
	for _, key := range []string{"departments", "students", "faculty"} {
		if _, ok := probe[key]; !ok {
			return core.NewImportFormatError(errors.Errorf("missing %q collection", key))
		}
	}

	var doc Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return core.NewImportFormatError(err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	db.doc = &doc
	return db.persist()
}

// Reset drops all data and reseeds the initial document.
func (db *DB) Reset() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.doc = seedDocument()
	return db.persist()
}

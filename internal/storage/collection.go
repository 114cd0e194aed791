package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const schemaVersion = 1

// Record is implemented by values stored in a Collection. WithRecordID
// returns a copy with the id set; records are value types, so the store
// never mutates a caller's copy.
type Record[T any] interface {
	RecordID() int64
	WithRecordID(id int64) T
}

// Collection provides CRUD over one collection file. Ids are assigned
// monotonically and never reused within a store lifetime, including after
// deletes.
type Collection[T Record[T]] struct {
	store *Store
	name  string
}

// NewCollection binds a collection name to a store.
func NewCollection[T Record[T]](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

type collectionFile[T any] struct {
	Version int   `json:"version"`
	NextID  int64 `json:"next_id"`
	Records []T   `json:"records"`
}

// All returns every record in ascending id order.
func (c *Collection[T]) All() ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var records []T
	err := c.store.withLock(c.name, func() error {
		file, err := c.load()
		if err != nil {
			return err
		}
		records = file.Records
		return nil
	})
	return records, err
}

// Get returns the record with the given id. A missing id is not an error.
func (c *Collection[T]) Get(id int64) (T, bool, error) {
	var zero T
	records, err := c.All()
	if err != nil {
		return zero, false, err
	}
	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// Add stores rec under a newly assigned id and returns the stored copy.
func (c *Collection[T]) Add(rec T) (T, error) {
	var zero T
	if err := c.ready(); err != nil {
		return zero, err
	}

	var added T
	err := c.store.withLock(c.name, func() error {
		file, err := c.load()
		if err != nil {
			return err
		}
		added = rec.WithRecordID(file.NextID)
		file.NextID++
		file.Records = append(file.Records, added)
		return c.save(file)
	})
	if err != nil {
		return zero, err
	}
	return added, nil
}

// Put replaces the record at rec's id, inserting it if absent. The id
// sequence is bumped past explicit ids so assignment stays monotonic.
func (c *Collection[T]) Put(rec T) error {
	if err := c.ready(); err != nil {
		return err
	}

	return c.store.withLock(c.name, func() error {
		file, err := c.load()
		if err != nil {
			return err
		}

		id := rec.RecordID()
		replaced := false
		for i := range file.Records {
			if file.Records[i].RecordID() == id {
				file.Records[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			file.Records = append(file.Records, rec)
			sort.Slice(file.Records, func(i, j int) bool {
				return file.Records[i].RecordID() < file.Records[j].RecordID()
			})
		}
		if id >= file.NextID {
			file.NextID = id + 1
		}
		return c.save(file)
	})
}

// Delete removes the record with the given id. Deleting an absent id is
// not an error.
func (c *Collection[T]) Delete(id int64) error {
	if err := c.ready(); err != nil {
		return err
	}

	return c.store.withLock(c.name, func() error {
		file, err := c.load()
		if err != nil {
			return err
		}

		kept := file.Records[:0]
		for _, rec := range file.Records {
			if rec.RecordID() != id {
				kept = append(kept, rec)
			}
		}
		if len(kept) == len(file.Records) {
			return nil
		}
		file.Records = kept
		return c.save(file)
	})
}

func (c *Collection[T]) ready() error {
	if c == nil || c.store == nil {
		return ErrNotInitialized
	}
	return c.store.ready()
}

// load reads the collection file, returning an empty schema when the file
// doesn't exist yet.
func (c *Collection[T]) load() (*collectionFile[T], error) {
	data, err := os.ReadFile(c.store.collectionPath(c.name))
	if os.IsNotExist(err) {
		return &collectionFile[T]{Version: schemaVersion, NextID: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c.name, err)
	}

	var file collectionFile[T]
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, c.name, err)
	}
	if file.NextID < 1 {
		file.NextID = 1
	}
	return &file, nil
}

func (c *Collection[T]) save(file *collectionFile[T]) error {
	file.Version = schemaVersion

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}
	data = append(data, '\n')

	path := c.store.collectionPath(c.name)
	tmpFile, err := os.CreateTemp(c.store.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrStorageUnavailable, err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: write temp file: %v", ErrStorageUnavailable, err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("%w: rename temp file: %v", ErrStorageUnavailable, err)
	}

	return nil
}

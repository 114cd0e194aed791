// Package category implements category records for taskdeck.
//
// Categories are display labels only. A task's category field is a free
// string with no foreign key back to these records: deleting a category
// leaves referencing tasks untouched.
package category

import "time"

// Category represents a task category label.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the storage key for the category.
func (c Category) RecordID() int64 { return c.ID }

// WithRecordID returns a copy of the category with the id set.
func (c Category) WithRecordID(id int64) Category {
	c.ID = id
	return c
}

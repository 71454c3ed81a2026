package order

import (
	"time"

	"partsflow/internal/pkg/errs"
)

// ErrNoteTextIsRequired is returned when appending a note with empty text.
var ErrNoteTextIsRequired = errs.NewValueIsRequiredError("note text")

// Note is an immutable audit record. Note sequences on orders and vendor
// quotes are append-only: entries are never mutated or deleted.
type Note struct {
	text      string
	createdAt time.Time
}

// NewNote creates a note stamped with the current UTC time.
func NewNote(text string) (Note, error) {
	if text == "" {
		return Note{}, ErrNoteTextIsRequired
	}
	return Note{text: text, createdAt: time.Now().UTC()}, nil
}

// RestoreNote reconstructs a note from persistence.
func RestoreNote(text string, createdAt time.Time) (Note, error) {
	if text == "" {
		return Note{}, ErrNoteTextIsRequired
	}
	return Note{text: text, createdAt: createdAt}, nil
}

// Text returns the note body.
func (n Note) Text() string {
	return n.text
}

// CreatedAt returns the note creation time.
func (n Note) CreatedAt() time.Time {
	return n.createdAt
}

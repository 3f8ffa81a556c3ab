// Package storage defines the notes-directory file-system abstraction.
package storage

import "github.com/sniffgo/notes/internal/models"

// Provider is the interface for notes-directory file operations. All names
// are bare file names of direct children of the notes directory.
type Provider interface {
	// List returns every .txt note in the directory, sorted by path.
	// A missing directory yields an empty list, not an error.
	List() ([]models.Note, error)
	// Allocate derives a file name from title that does not exist in the
	// directory at the moment of return.
	Allocate(title string) (string, error)
	// Read returns the raw bytes of the note with the given name.
	Read(name string) ([]byte, error)
	// Write atomically replaces the content of the note with the given name,
	// creating it if absent.
	Write(name string, content []byte) error
	// Append adds content to the end of an existing note.
	Append(name string, content []byte) error
	// Delete removes the note with the given name.
	Delete(name string) error
}

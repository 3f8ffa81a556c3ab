// Package models defines the domain types for SniffGo.
package models

// Note represents a single plain-text note file in the notes directory.
type Note struct {
	// Name is the file name shown to the user, e.g. "groceries (1).txt".
	Name string `json:"name"`
	// Path is the absolute path of the note file.
	Path string `json:"path"`
}

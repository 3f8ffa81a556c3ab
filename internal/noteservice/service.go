// Package noteservice implements the note operations: list, create, view,
// edit, and delete. Each operation is a short linear sequence that holds no
// state between invocations; the filesystem is the only record.
package noteservice

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sniffgo/notes/internal/apperr"
	"github.com/sniffgo/notes/internal/console"
	"github.com/sniffgo/notes/internal/models"
	"github.com/sniffgo/notes/internal/storage"
)

// Service coordinates storage and terminal interaction for one operation
// at a time.
type Service struct {
	store storage.Provider
	term  *console.Terminal
}

// NewService creates a new note service.
func NewService(store storage.Provider, term *console.Terminal) *Service {
	return &Service{store: store, term: term}
}

// ListNotes prints the numbered listing of all notes.
func (s *Service) ListNotes() error {
	notes, err := s.store.List()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		s.term.Print("No notes found.")
		return nil
	}
	s.printListing(notes)
	return nil
}

// CreateNote prompts for a title, allocates a fresh path, and collects
// content lines until the terminator.
func (s *Service) CreateNote() error {
	title, err := s.term.Prompt("Enter note title: ")
	if err != nil {
		return err
	}
	name, err := s.store.Allocate(title)
	if err != nil {
		return err
	}
	s.term.Print("Enter note content. End with a single line containing only a dot (.)")
	lines, err := s.term.CollectLines()
	if err != nil {
		return err
	}
	if err := s.store.Write(name, joinLines(lines)); err != nil {
		return err
	}
	s.term.Printf("Saved: %s", name)
	return nil
}

// ViewNote echoes a selected note's content verbatim between two markers.
func (s *Service) ViewNote() error {
	note, err := s.pick()
	if err != nil {
		return err
	}
	data, err := s.store.Read(note.Name)
	if err != nil {
		return err
	}
	s.term.Marker("---- " + note.Name + " ----")
	// Only a truly empty file prints no lines; content of a single "\n" is
	// one blank line and must be echoed as such.
	if len(data) > 0 {
		body := strings.TrimSuffix(string(data), "\n")
		for _, line := range strings.Split(body, "\n") {
			s.term.Print(line)
		}
	}
	s.term.Marker("---- end ----")
	return nil
}

// EditNote replaces or extends a selected note's content. Mode 1 overwrites,
// mode 2 appends; anything else touches nothing.
func (s *Service) EditNote() error {
	note, err := s.pick()
	if err != nil {
		return err
	}
	s.term.Print("Edit options:")
	s.term.Print("1) Overwrite")
	s.term.Print("2) Append")
	mode, err := s.term.Prompt("Choose: ")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(mode) {
	case "1":
		s.term.Print("Enter new content. End with a single line containing only a dot (.)")
		lines, err := s.term.CollectLines()
		if err != nil {
			return err
		}
		if err := s.store.Write(note.Name, joinLines(lines)); err != nil {
			return err
		}
		s.term.Print("Overwritten.")
	case "2":
		s.term.Print("Enter content to append. End with a single line containing only a dot (.)")
		lines, err := s.term.CollectLines()
		if err != nil {
			return err
		}
		if err := s.store.Append(note.Name, joinLines(lines)); err != nil {
			return err
		}
		s.term.Print("Appended.")
	default:
		return apperr.ErrUnknownOption
	}
	return nil
}

// DeleteNote removes a selected note after an explicit confirmation.
// Anything other than y/Y cancels.
func (s *Service) DeleteNote() error {
	note, err := s.pick()
	if err != nil {
		return err
	}
	answer, err := s.term.Prompt(fmt.Sprintf("Delete '%s'? (y/N): ", note.Name))
	if err != nil {
		return err
	}
	// Only the first character counts, so "yes" confirms just like "y".
	answer = strings.TrimSpace(answer)
	if answer == "" || (answer[0] != 'y' && answer[0] != 'Y') {
		return apperr.ErrCanceled
	}
	if err := s.store.Delete(note.Name); err != nil {
		return err
	}
	s.term.Print("Deleted.")
	return nil
}

// pick shows a freshly computed listing and maps the user's 1-based choice
// onto it. An empty directory, non-numeric input, or an out-of-range number
// all collapse into apperr.ErrInvalidSelection. The listing is never reused
// across calls, so numbers always reflect the directory as it is right now.
func (s *Service) pick() (models.Note, error) {
	notes, err := s.store.List()
	if err != nil {
		return models.Note{}, err
	}
	if len(notes) == 0 {
		return models.Note{}, apperr.ErrInvalidSelection
	}
	s.printListing(notes)
	line, err := s.term.Prompt("Choose note number: ")
	if err != nil {
		return models.Note{}, err
	}
	choice, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || choice < 1 || choice > len(notes) {
		return models.Note{}, apperr.ErrInvalidSelection
	}
	return notes[choice-1], nil
}

func (s *Service) printListing(notes []models.Note) {
	for i, n := range notes {
		s.term.Item(i+1, n.Name)
	}
}

// joinLines flattens collected lines into file content, one trailing
// newline per line.
func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

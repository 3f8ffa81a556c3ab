package noteservice

import (
	"errors"
	"strings"
	"testing"

	"github.com/sniffgo/notes/internal/apperr"
	"github.com/sniffgo/notes/internal/storage"
	"github.com/sniffgo/notes/internal/testutil"
)

func serviceWith(t *testing.T, store *storage.FS, input ...string) (*Service, func() string) {
	t.Helper()
	term, out := testutil.Script(input...)
	return NewService(store, term), out.String
}

func TestCreateViewRoundTrip(t *testing.T) {
	_, store := testutil.TestStore(t)

	svc, _ := serviceWith(t, store, "My Note", "hello", "world", ".")
	if err := svc.CreateNote(); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	data, err := store.Read("My Note.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "hello\nworld\n" {
		t.Errorf("content = %q", data)
	}

	svc, out := serviceWith(t, store, "1")
	if err := svc.ViewNote(); err != nil {
		t.Fatalf("ViewNote: %v", err)
	}
	got := out()
	if !strings.Contains(got, "My Note.txt") {
		t.Errorf("view output missing header: %q", got)
	}
	if !strings.Contains(got, "hello\nworld\n") {
		t.Errorf("view output missing content: %q", got)
	}
}

// viewBody returns the lines printed between the two view markers.
func viewBody(t *testing.T, output, name string) []string {
	t.Helper()
	lines := strings.Split(output, "\n")
	start, end := -1, -1
	for i, l := range lines {
		if strings.Contains(l, name) && strings.Contains(l, "----") {
			start = i
		}
		if strings.Contains(l, "end ----") {
			end = i
		}
	}
	if start == -1 || end == -1 || end < start {
		t.Fatalf("markers not found in output: %q", output)
	}
	return lines[start+1 : end]
}

func TestViewBlankLineContent(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("blank.txt", []byte("\n"))

	svc, out := serviceWith(t, store, "1")
	if err := svc.ViewNote(); err != nil {
		t.Fatalf("ViewNote: %v", err)
	}
	body := viewBody(t, out(), "blank.txt")
	if len(body) != 1 || body[0] != "" {
		t.Errorf("blank line lost between markers: body = %q", body)
	}
}

func TestViewEmptyFilePrintsNoLines(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("empty.txt", nil)

	svc, out := serviceWith(t, store, "1")
	if err := svc.ViewNote(); err != nil {
		t.Fatalf("ViewNote: %v", err)
	}
	if body := viewBody(t, out(), "empty.txt"); len(body) != 0 {
		t.Errorf("empty file should print nothing between markers: body = %q", body)
	}
}

func TestCreateEmptyTitleFallsBack(t *testing.T) {
	_, store := testutil.TestStore(t)
	svc, out := serviceWith(t, store, "", ".")
	if err := svc.CreateNote(); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if _, err := store.Read("note.txt"); err != nil {
		t.Errorf("expected note.txt to exist: %v", err)
	}
	if !strings.Contains(out(), "Saved: note.txt") {
		t.Errorf("output = %q", out())
	}
}

func TestCreateDisambiguatesCollisions(t *testing.T) {
	_, store := testutil.TestStore(t)
	for i, want := range []string{"trip.txt", "trip (1).txt", "trip (2).txt"} {
		svc, _ := serviceWith(t, store, "trip", ".")
		if err := svc.CreateNote(); err != nil {
			t.Fatalf("CreateNote #%d: %v", i, err)
		}
		if _, err := store.Read(want); err != nil {
			t.Errorf("expected %s to exist: %v", want, err)
		}
	}
}

func TestEditOverwrite(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("old\n"))

	svc, out := serviceWith(t, store, "1", "1", "new", ".")
	if err := svc.EditNote(); err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	data, _ := store.Read("a.txt")
	if string(data) != "new\n" {
		t.Errorf("content = %q", data)
	}
	if !strings.Contains(out(), "Overwritten.") {
		t.Errorf("output = %q", out())
	}
}

func TestEditAppend(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("old\n"))

	svc, out := serviceWith(t, store, "1", "2", "more", ".")
	if err := svc.EditNote(); err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	data, _ := store.Read("a.txt")
	if string(data) != "old\nmore\n" {
		t.Errorf("content = %q", data)
	}
	if !strings.Contains(out(), "Appended.") {
		t.Errorf("output = %q", out())
	}
}

func TestEditUnknownModeTouchesNothing(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("old\n"))

	svc, _ := serviceWith(t, store, "1", "9")
	err := svc.EditNote()
	if !errors.Is(err, apperr.ErrUnknownOption) {
		t.Fatalf("err = %v, want ErrUnknownOption", err)
	}
	data, _ := store.Read("a.txt")
	if string(data) != "old\n" {
		t.Errorf("content changed: %q", data)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("x\n"))

	svc, out := serviceWith(t, store, "1", "y")
	if err := svc.DeleteNote(); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	notes, _ := store.List()
	if len(notes) != 0 {
		t.Errorf("note still listed: %v", notes)
	}
	if !strings.Contains(out(), "Deleted.") {
		t.Errorf("output = %q", out())
	}
}

func TestDeleteFirstCharacterConfirms(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("x\n"))

	svc, _ := serviceWith(t, store, "1", "yes")
	if err := svc.DeleteNote(); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	notes, _ := store.List()
	if len(notes) != 0 {
		t.Errorf("note still listed: %v", notes)
	}
}

func TestDeleteCanceledLeavesFile(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("keep\n"))

	svc, _ := serviceWith(t, store, "1", "n")
	err := svc.DeleteNote()
	if !errors.Is(err, apperr.ErrCanceled) {
		t.Fatalf("err = %v, want ErrCanceled", err)
	}
	data, err := store.Read("a.txt")
	if err != nil || string(data) != "keep\n" {
		t.Errorf("content = %q, %v", data, err)
	}
}

func TestInvalidSelections(t *testing.T) {
	_, store := testutil.TestStore(t)
	_ = store.Write("a.txt", []byte("x\n"))

	for _, input := range []string{"0", "2", "abc", ""} {
		svc, _ := serviceWith(t, store, input)
		err := svc.ViewNote()
		if !errors.Is(err, apperr.ErrInvalidSelection) {
			t.Errorf("input %q: err = %v, want ErrInvalidSelection", input, err)
		}
	}
	// Filesystem untouched throughout.
	notes, _ := store.List()
	if len(notes) != 1 {
		t.Errorf("notes = %v", notes)
	}
}

func TestSelectionOnEmptyDirectory(t *testing.T) {
	_, store := testutil.TestStore(t)
	svc, _ := serviceWith(t, store, "1")
	if err := svc.DeleteNote(); !errors.Is(err, apperr.ErrInvalidSelection) {
		t.Errorf("err = %v, want ErrInvalidSelection", err)
	}
}

func TestListNotes(t *testing.T) {
	_, store := testutil.TestStore(t)

	svc, out := serviceWith(t, store)
	if err := svc.ListNotes(); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if !strings.Contains(out(), "No notes found.") {
		t.Errorf("output = %q", out())
	}

	_ = store.Write("b.txt", []byte("b"))
	_ = store.Write("a.txt", []byte("a"))
	svc, out = serviceWith(t, store)
	if err := svc.ListNotes(); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	got := out()
	if !strings.Contains(got, "a.txt") || !strings.Contains(got, "b.txt") {
		t.Errorf("output = %q", got)
	}
	if strings.Index(got, "a.txt") > strings.Index(got, "b.txt") {
		t.Errorf("listing not sorted: %q", got)
	}
}

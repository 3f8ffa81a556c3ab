// Package testutil provides shared test helpers for setting up notes
// directories and scripted terminals.
package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sniffgo/notes/internal/console"
	"github.com/sniffgo/notes/internal/storage"
)

// TestStore creates a temporary notes directory with a storage.FS rooted
// in it. The directory is cleaned up automatically.
func TestStore(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// Script returns a terminal fed by the given input lines and the buffer
// its output lands in.
func Script(lines ...string) (*console.Terminal, *bytes.Buffer) {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}
	return console.New(in, out), out
}

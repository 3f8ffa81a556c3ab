// Package console implements the line-oriented terminal port the
// interactive loop and note operations talk to. It wraps an arbitrary
// reader/writer pair so tests can drive the application with scripted
// input instead of a real terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminator ends line-collection mode: a line that is exactly a single
// period. A period anywhere else in a line is ordinary content.
const Terminator = "."

// Terminal reads lines from in and writes to out. All reads block until a
// full line (or end of input) is available.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Terminal over the given streams.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next input line without its line terminator.
// A final unterminated line is still returned; the io.EOF surfaces on the
// following call.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Prompt writes label (no trailing newline) and reads one line.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)
	return t.ReadLine()
}

// CollectLines reads lines until the terminator line or end of input and
// returns everything read before it, verbatim. The terminator itself is
// discarded. End of input is not an error here; it simply ends collection.
func (t *Terminal) CollectLines() ([]string, error) {
	var lines []string
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("console: read line: %w", err)
		}
		if line == Terminator {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// Print writes s followed by a newline.
func (t *Terminal) Print(s string) {
	fmt.Fprintln(t.out, s)
}

// Printf writes a formatted line.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

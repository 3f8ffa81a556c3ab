package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIO replaces the interactive input and output streams. Tests use this
// to drive the menu loop with scripted input.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *application) {
		a.stdin = in
		a.stdout = out
	}
}

// WithLogWriter redirects log output, which otherwise goes to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(a *application) {
		a.stderr = w
	}
}

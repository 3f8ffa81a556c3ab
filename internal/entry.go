// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sniffgo/notes/internal/apperr"
	"github.com/sniffgo/notes/internal/console"
	"github.com/sniffgo/notes/internal/noteservice"
	"github.com/sniffgo/notes/internal/storage"
)

// Menu actions, in the order they are listed.
const (
	actionList = iota + 1
	actionCreate
	actionView
	actionEdit
	actionDelete
	actionExit
)

// Run starts the application with the given options. It ensures the notes
// directory exists, then drives the interactive menu loop until the user
// exits or input ends. Setup failures are returned (fatal); everything that
// goes wrong inside an operation is reported on the terminal and the loop
// continues.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logger on stderr; stdout carries the interactive
	// protocol.
	logger := slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("notes_dir", cfg.Notes.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the notes directory exists before any interaction.
	if err := os.MkdirAll(cfg.Notes.Dir, 0o755); err != nil {
		return fmt.Errorf("create notes dir: %w", err)
	}

	store, err := storage.NewFS(cfg.Notes.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	term := console.New(app.stdin, app.stdout)
	svc := noteservice.NewService(store, term)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		term.Print("")
		term.Title("SniffGo Notes - menu")
		term.Print("1) List notes")
		term.Print("2) Create note")
		term.Print("3) View note")
		term.Print("4) Edit note (overwrite/append)")
		term.Print("5) Delete note")
		term.Print("6) Exit")

		line, err := term.Prompt("Choose: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			term.Print("Invalid input.")
			continue
		}

		switch choice {
		case actionList:
			err = svc.ListNotes()
		case actionCreate:
			err = svc.CreateNote()
		case actionView:
			err = svc.ViewNote()
		case actionEdit:
			err = svc.EditNote()
		case actionDelete:
			err = svc.DeleteNote()
		case actionExit:
			term.Print("Goodbye.")
			return nil
		default:
			term.Print("Unknown option.")
			continue
		}

		if errors.Is(err, io.EOF) {
			// Input ended mid-operation; the session is over.
			return nil
		}
		report(term, err)
	}
}

// report maps an operation outcome onto the console. Sentinels become the
// fixed user-facing phrases; anything else is an I/O failure, printed but
// never fatal.
func report(term *console.Terminal, err error) {
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrInvalidSelection):
		term.Print("Invalid selection.")
	case errors.Is(err, apperr.ErrUnknownOption):
		term.Print("Unknown option.")
	case errors.Is(err, apperr.ErrCanceled):
		term.Print("Canceled.")
	default:
		term.Errorf("Operation failed: %v", err)
		slog.Warn("operation failed", slog.String("error", err.Error()))
	}
}

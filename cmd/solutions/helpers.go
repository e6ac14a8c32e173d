// Shared helpers for solutions CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/hi-yolit/solutions-sub000/internal/sqlite"
	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// newLogger returns the CLI's structured logger. Commands log to stderr
// so stdout stays clean for command output.
func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// withService attaches the backend, builds a catalog service around it,
// runs fn, and detaches. Every leaf command funnels through here.
func withService(fn func(svc *catalog.Service) error) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer func() { _ = backend.Detach() }()

	return fn(catalog.New(backend, newLogger()))
}

// printEntity writes v to stdout, as indented JSON when --json is set or
// via the provided plain formatter otherwise.
func printEntity(v any, plain func()) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	plain()
	return nil
}

// contentLine is the one-line plain rendering of a content node.
func contentLine(c *types.Content) string {
	return fmt.Sprintf("%s  [%s] %s", c.ContentID, c.Type, c.Title)
}

// questionLine is the one-line plain rendering of a question.
func questionLine(q *types.Question) string {
	return fmt.Sprintf("%s  [%s/%s] %s", q.QuestionID, q.Type, q.Status, q.QuestionNumber)
}

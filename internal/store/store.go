// Package store persists user-imported word lists in a local SQLite database.
package store

import (
	"context"

	"github.com/wordpass/wordpass/internal/model"
)

// SaveParams holds parameters for importing a word list.
type SaveParams struct {
	Name   string
	Source string // where the list came from, e.g. a file path or "stdin"
	Words  []string
}

// Store defines the word list storage interface.
type Store interface {
	// Save stores a word list, replacing any stored list with the same name.
	Save(ctx context.Context, p SaveParams) (*model.Wordlist, error)

	// Words returns the words of a stored list in their original order.
	Words(ctx context.Context, name string) ([]string, error)

	// List returns metadata for all stored lists.
	List(ctx context.Context) ([]model.Wordlist, error)

	// Rm removes a stored list and its words.
	Rm(ctx context.Context, name string) error

	// Close closes the store.
	Close() error
}

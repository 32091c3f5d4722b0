// Package model defines the wordlist metadata types shared by the store and CLI.
package model

import "time"

// Wordlist is the metadata of a stored word list. Words themselves are kept
// in their own table and fetched separately.
type Wordlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source,omitempty"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

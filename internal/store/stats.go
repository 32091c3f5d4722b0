package store

import (
	"context"
	"os"
)

// Stats holds wordlist database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	Lists       int             `json:"lists"`
	TotalWords  int             `json:"total_words"`
	PerList     []WordlistStats `json:"wordlists,omitempty"`
}

// WordlistStats holds per-list word counts.
type WordlistStats struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wordlists`).Scan(&st.Lists)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wordlist_words`).Scan(&st.TotalWords)

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, word_count
		FROM wordlists ORDER BY word_count DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ls WordlistStats
		rows.Scan(&ls.Name, &ls.Words)
		st.PerList = append(st.PerList, ls)
	}

	return st, nil
}

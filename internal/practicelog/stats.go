package practicelog

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "modernc.org/sqlite"
)

// KindStats aggregates one chapter's attempts for one exercise kind.
type KindStats struct {
	Chapter  string
	Kind     string
	Attempts int
	Correct  int
	LastAt   time.Time
}

// Stats loads the JSONL at path and aggregates attempts per chapter and
// exercise kind through an in-memory SQLite load, ordered by chapter then
// kind. A missing file yields no rows.
func Stats(path string) ([]KindStats, error) {
	attempts, err := ReadAll(path)
	if err != nil {
		return nil, fmt.Errorf("reading practice log: %w", err)
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening stats database: %w", err)
	}
	defer db.Close()

	// Every pooled connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE attempts (
			chapter TEXT NOT NULL,
			kind    TEXT NOT NULL,
			correct INTEGER NOT NULL,
			at      INTEGER NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("creating stats table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	stmt, err := tx.Prepare("INSERT INTO attempts (chapter, kind, correct, at) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, a := range attempts {
		correct := 0
		if a.Correct {
			correct = 1
		}
		if _, err := stmt.Exec(a.Chapter, a.Kind, correct, a.At.UnixNano()); err != nil {
			stmt.Close()
			tx.Rollback()
			return nil, err
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT chapter, kind, COUNT(*), SUM(correct), MAX(at)
		FROM attempts
		GROUP BY chapter, kind
		ORDER BY chapter, kind
	`)
	if err != nil {
		return nil, fmt.Errorf("aggregating attempts: %w", err)
	}
	defer rows.Close()

	var stats []KindStats
	for rows.Next() {
		var s KindStats
		var lastNanos int64
		if err := rows.Scan(&s.Chapter, &s.Kind, &s.Attempts, &s.Correct, &lastNanos); err != nil {
			return nil, err
		}
		s.LastAt = time.Unix(0, lastNanos).UTC()
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Report writes the aggregated stats as an aligned table.
func Report(w io.Writer, stats []KindStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "no attempts recorded.")
		return
	}

	fmt.Fprintf(w, "%-14s %-12s %8s %8s %6s  %s\n", "CHAPTER", "EXERCISE", "TRIES", "CORRECT", "RATE", "LAST")
	for _, s := range stats {
		rate := 0
		if s.Attempts > 0 {
			rate = s.Correct * 100 / s.Attempts
		}
		fmt.Fprintf(w, "%-14s %-12s %8d %8d %5d%%  %s\n",
			s.Chapter, s.Kind, s.Attempts, s.Correct, rate, formatTimeRel(s.LastAt))
	}
}

// formatTimeRel returns a relative time string (e.g., "2h ago", "3d ago").
func formatTimeRel(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := time.Since(t)
	if d < 0 {
		// Future timestamps treated as now
		return "now"
	}
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	default:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	}
}

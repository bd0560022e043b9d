// Package history keeps a local sqlite log of completed readings.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"
)

type DB struct {
	sql *sql.DB
}

// DefaultPath returns the default history database location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lectio", "lectio.sqlite"), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS completions (
  day_index   INTEGER PRIMARY KEY,
  reference   TEXT NOT NULL,
  read_on     TEXT NOT NULL,
  recorded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Completion is one recorded reading.
type Completion struct {
	DayIndex   int
	Reference  string
	ReadOn     string
	RecordedAt time.Time
}

// MarkRead records a reading as completed. Re-marking the same day
// updates the read_on date rather than failing.
func (d *DB) MarkRead(ctx context.Context, dayIndex int, ref string, readOn time.Time) error {
	_, err := d.sql.ExecContext(ctx, `
INSERT INTO completions(day_index, reference, read_on) VALUES(?,?,?)
ON CONFLICT(day_index) DO UPDATE SET reference=excluded.reference, read_on=excluded.read_on, recorded_at=CURRENT_TIMESTAMP`,
		dayIndex, ref, readOn.Format("2006-01-02"))
	return err
}

// List returns all completions ordered by plan day.
func (d *DB) List(ctx context.Context) ([]Completion, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT day_index, reference, read_on, recorded_at FROM completions ORDER BY day_index")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.DayIndex, &c.Reference, &c.ReadOn, &c.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Stats summarizes completion progress relative to today's plan index.
type Stats struct {
	DaysRead  int
	LastIndex int // -1 when nothing is recorded
	Streak    int // consecutive completed days ending at today (or yesterday)
}

// GetStats computes completion stats. The streak counts back from
// todayIndex, tolerating today itself being unread so an evening reader
// doesn't see their streak reset every morning.
func (d *DB) GetStats(ctx context.Context, todayIndex int) (Stats, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT day_index FROM completions")
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	read := make(map[int]bool)
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return Stats{}, err
		}
		read[idx] = true
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	stats := Stats{DaysRead: len(read), LastIndex: -1}
	if len(read) == 0 {
		return stats, nil
	}

	indexes := make([]int, 0, len(read))
	for idx := range read {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	stats.LastIndex = indexes[len(indexes)-1]

	from := todayIndex
	if !read[from] {
		from--
	}
	for i := from; i >= 0 && read[i]; i-- {
		stats.Streak++
	}
	return stats, nil
}

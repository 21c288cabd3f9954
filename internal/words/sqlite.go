// internal/words/sqlite.go
//
// SQLite-backed word lists.
// Responsibilities:
//   - Opening the word database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Importing answer/allowed lists and reading them back for Load.
//
// The database only ever holds word lists; rounds are never written to it.

package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// OpenDB opens (and creates if missing) a SQLite word database.
// The parent directory is created for relative paths like ./data/words.db.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open word db: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in lexical order.
// Applied files are recorded in _migrations and skipped on later runs.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrationsFS, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// ImportWords stores answers and allowed guesses in one transaction.
// Re-importing a word never demotes it from the answer pool.
// Returns the number of rows written.
func ImportWords(ctx context.Context, db *sql.DB, answers, allowed []string) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO words (word, is_answer) VALUES (?, ?)
        ON CONFLICT(word) DO UPDATE SET is_answer = MAX(is_answer, excluded.is_answer)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	n := 0
	put := func(list []string, answer int) error {
		for _, w := range list {
			w = strings.TrimSpace(strings.ToLower(w))
			if w == "" {
				continue
			}
			if _, err := stmt.ExecContext(ctx, w, answer); err != nil {
				return fmt.Errorf("insert %q: %w", w, err)
			}
			n++
		}
		return nil
	}
	if err := put(answers, 1); err != nil {
		return 0, err
	}
	if err := put(allowed, 0); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

// LoadDB reads the word lists back in insertion order.
func LoadDB(ctx context.Context, db *sql.DB) (answers, allowed []string, err error) {
	rows, err := db.QueryContext(ctx, `SELECT word, is_answer FROM words ORDER BY rowid`)
	if err != nil {
		return nil, nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			w        string
			isAnswer bool
		)
		if err := rows.Scan(&w, &isAnswer); err != nil {
			return nil, nil, err
		}
		if isAnswer {
			answers = append(answers, w)
		} else {
			allowed = append(allowed, w)
		}
	}
	return answers, allowed, rows.Err()
}

package folio

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store reads and writes posts in a SQLite file. The server only ever opens
// it read-only to load the repository; writes come from the seed command.
type Store struct {
	db *sql.DB
}

// OpenStore opens the SQLite database at path. A writable store creates the
// data directory and schema when missing. A read-only store requires an
// existing, already seeded file.
func OpenStore(path string, readOnly bool) (*Store, error) {
	dsn := "file:" + path
	if readOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		dsn += "?mode=ro"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if !readOnly {
		if err := s.ensureSchema(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// seq keeps insertion order independent of the post id. The default rollback
// journal is kept so the file can later be opened with mode=ro.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER NOT NULL UNIQUE,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    date TEXT NOT NULL,
    author TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// ListPosts returns every post in insertion order.
func (s *Store) ListPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, content, date, author, image FROM posts ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Date, &p.Author, &p.Image); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// SavePosts upserts posts in one transaction. Existing ids keep their
// original position.
func (s *Store) SavePosts(ctx context.Context, posts []BlogPost) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO posts (id, title, content, date, author, image) VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    content = excluded.content,
    date = excluded.date,
    author = excluded.author,
    image = excluded.image`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range posts {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Title, p.Content, p.Date, p.Author, p.Image); err != nil {
			return fmt.Errorf("save post %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

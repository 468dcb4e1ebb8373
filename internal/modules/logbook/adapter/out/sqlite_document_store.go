package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wellness/internal/modules/logbook/domain"
	logbookout "wellness/internal/modules/logbook/port/out"

	_ "modernc.org/sqlite"
)

// createdAtLayout is fixed width so the stored text sorts chronologically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteDocumentStore struct {
	db *sql.DB
}

func NewSQLiteDocumentStore(dbPath string) (logbookout.DocumentStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteDocumentStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteDocumentStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS log_documents (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  category TEXT NOT NULL,
  sort_key INTEGER NOT NULL,
  payload TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_log_documents_recent ON log_documents(user_id, category, sort_key DESC);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create log_documents table: %w", err)
	}
	return nil
}

func (s *SQLiteDocumentStore) Append(ctx context.Context, docs ...domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	const stmt = `
INSERT INTO log_documents (id, user_id, category, sort_key, payload, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	for _, doc := range docs {
		payload, err := json.Marshal(doc.Fields)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("marshal %s document: %w", doc.Category, err)
		}
		if _, err := tx.ExecContext(ctx, stmt,
			doc.ID,
			doc.UserID,
			string(doc.Category),
			doc.SortKey,
			string(payload),
			doc.CreatedAt.UTC().Format(createdAtLayout),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s document: %w", doc.Category, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}
	return nil
}

// Recent returns the newest documents by order field. Documents sharing an
// order value come back in write order, so folding the result lets the last
// write win.
func (s *SQLiteDocumentStore) Recent(ctx context.Context, userID string, category domain.Category, limit int) ([]domain.Document, error) {
	const query = `
SELECT id, user_id, category, sort_key, payload, created_at
FROM log_documents
WHERE user_id = ? AND category = ?
ORDER BY sort_key DESC, created_at ASC, rowid ASC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, userID, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("query %s documents: %w", category, err)
	}
	defer rows.Close()

	out := make([]domain.Document, 0, limit)
	for rows.Next() {
		var (
			doc       domain.Document
			cat       string
			payload   string
			createdAt string
		)
		if err := rows.Scan(&doc.ID, &doc.UserID, &cat, &doc.SortKey, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", category, err)
		}
		doc.Category = domain.Category(cat)
		if err := json.Unmarshal([]byte(payload), &doc.Fields); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", doc.ID, err)
		}
		doc.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s documents: %w", category, err)
	}
	return out, nil
}

func (s *SQLiteDocumentStore) Close() error {
	return s.db.Close()
}

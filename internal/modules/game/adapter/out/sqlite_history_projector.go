package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector mirrors the JSON history into a sessions table for
// fast recent/count queries. It is rebuilt wholesale; the file wins on any
// disagreement.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (gameout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  seq INTEGER PRIMARY KEY,
  prediction INTEGER,
  generated INTEGER NOT NULL,
  timestamp TEXT NOT NULL,
  game_mode TEXT NOT NULL,
  min_val INTEGER NOT NULL,
  max_val INTEGER NOT NULL,
  algorithm TEXT NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Rebuild(ctx context.Context, records []domain.Record) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	const stmt = `
INSERT INTO sessions (seq, prediction, generated, timestamp, game_mode, min_val, max_val, algorithm)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	for i, r := range records {
		var prediction any
		if r.Prediction != nil {
			prediction = *r.Prediction
		}
		if _, err := tx.ExecContext(ctx, stmt,
			i,
			prediction,
			r.Generated,
			r.Timestamp,
			string(r.GameMode),
			r.MinVal,
			r.MaxVal,
			string(r.Algorithm),
		); err != nil {
			return fmt.Errorf("insert session %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	const query = `
SELECT prediction, generated, timestamp, game_mode, min_val, max_val, algorithm
FROM sessions ORDER BY seq DESC LIMIT ?;
`
	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.Record{}
	for rows.Next() {
		var (
			prediction sql.NullInt64
			record     domain.Record
			mode       string
			algorithm  string
		)
		if err := rows.Scan(&prediction, &record.Generated, &record.Timestamp, &mode, &record.MinVal, &record.MaxVal, &algorithm); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if prediction.Valid {
			v := int(prediction.Int64)
			record.Prediction = &v
		}
		record.GameMode = domain.GameMode(mode)
		record.Algorithm = domain.Algorithm(algorithm)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return records, nil
}

func (p *SQLiteHistoryProjector) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

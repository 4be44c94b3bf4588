package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"codelookup/internal/codes"
)

var (
	ErrNotFound  = errors.New("code record not found")
	ErrDuplicate = errors.New("code already exists")
)

// SQLCodeRepository работает и с sqlite, и с postgres: запросы пишутся с "?"
// и переписываются под драйвер через Rebind.
type SQLCodeRepository struct {
	db *sqlx.DB
}

func NewSQLCodeRepository(db *sqlx.DB) *SQLCodeRepository {
	return &SQLCodeRepository{db: db}
}

func (r *SQLCodeRepository) Create(ctx context.Context, rec *codes.Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`INSERT INTO codes (code, message, created_at) VALUES (?, ?, ?) RETURNING id`)

	err := r.db.QueryRowxContext(ctx, query, rec.Code, rec.Message, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert code: %w", err)
	}

	return nil
}

// GetByCode ищет точное совпадение. Код уникален, но на всякий случай берём наименьший id.
func (r *SQLCodeRepository) GetByCode(ctx context.Context, code string) (*codes.Record, error) {
	rec := &codes.Record{}
	query := r.db.Rebind(`SELECT id, code, message, created_at FROM codes WHERE code = ? ORDER BY id LIMIT 1`)

	if err := r.db.GetContext(ctx, rec, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get code: %w", err)
	}

	return rec, nil
}

func (r *SQLCodeRepository) GetAll(ctx context.Context) ([]*codes.Record, error) {
	records := []*codes.Record{}

	err := r.db.SelectContext(ctx, &records, `SELECT id, code, message, created_at FROM codes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}

	return records, nil
}

func (r *SQLCodeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM codes WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete code: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete code: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SQLCodeRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM codes`); err != nil {
		return 0, fmt.Errorf("count codes: %w", err)
	}
	return n, nil
}

func (r *SQLCodeRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == "23505"
	}

	return false
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

// querier - общая часть pgxpool.Pool и pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSnapshotRepository хранит снапшот в таблице store_snapshots, по строке на ключ
type PostgresSnapshotRepository struct {
	db  querier
	key string
}

func NewPostgresSnapshotRepository(db *pgxpool.Pool, key string) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{
		db:  db,
		key: key,
	}
}

// Load возвращает снапшот или nil, nil если строки с ключом еще нет
func (r *PostgresSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	query := `
		SELECT payload
		FROM store_snapshots
		WHERE key = $1;
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return decodeSnapshot(payload)
}

// Save делает upsert снапшота по ключу
func (r *PostgresSnapshotRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO store_snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	cmdTag, err := r.db.Exec(ctx, query, r.key, payload)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("snapshot %s was not saved", r.key)
	}
	return nil
}

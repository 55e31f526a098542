// internal/infra/database/postgres_device_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq" // For pq.Array
)

type PostgresDeviceRepository struct {
	db *sql.DB
}

func NewPostgresDeviceRepository(db *sql.DB) *PostgresDeviceRepository {
	return &PostgresDeviceRepository{db: db}
}

func (r *PostgresDeviceRepository) ListTokensByUser(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT token FROM device_endpoints WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying device tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("error scanning device token row: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device token rows: %w", err)
	}
	return tokens, nil
}

// BulkDeleteTokens removes every endpoint whose token is in the list with a
// single statement.
func (r *PostgresDeviceRepository) BulkDeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	query := `DELETE FROM device_endpoints WHERE token = ANY($1::text[])`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(tokens)); err != nil {
		return fmt.Errorf("error bulk deleting device tokens: %w", err)
	}
	return nil
}

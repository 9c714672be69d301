// internal/repository/rate_limit_repository.go
package repository

import (
	"database/sql"
	"time"
)

type RateLimitRepositoryInterface interface {
	Increment(key string, window time.Duration) (count int, expiresAt time.Time, err error)
}

type RateLimitRepository struct {
	DB *sql.DB
}

// Increment bumps the fixed-window counter for key, or starts a fresh
// window when none exists or the current one expired. The whole
// read-compare-write is one upsert so two concurrent requests can never
// both observe a stale count.
func (r *RateLimitRepository) Increment(key string, window time.Duration) (int, time.Time, error) {
	query := `
        INSERT INTO rate_limits (key, count, window_start, expires_at)
        VALUES ($1, 1, NOW(), $2)
        ON CONFLICT (key) DO UPDATE SET
            count = CASE WHEN rate_limits.expires_at <= NOW() THEN 1 ELSE rate_limits.count + 1 END,
            window_start = CASE WHEN rate_limits.expires_at <= NOW() THEN NOW() ELSE rate_limits.window_start END,
            expires_at = CASE WHEN rate_limits.expires_at <= NOW() THEN EXCLUDED.expires_at ELSE rate_limits.expires_at END
        RETURNING count, expires_at
    `
	var count int
	var expiresAt time.Time
	err := r.DB.QueryRow(query, key, time.Now().Add(window)).Scan(&count, &expiresAt)
	if err != nil {
		return 0, time.Time{}, err
	}
	return count, expiresAt, nil
}

var _ RateLimitRepositoryInterface = (*RateLimitRepository)(nil)

// internal/model/rate_limit.go
package model

import "time"

// RateLimit is a fixed-window counter row. The key is "<logical key>:<ip>".
// Expired rows are replaced in place on the next request, never deleted.
type RateLimit struct {
	Key         string    `db:"key" json:"key"`
	Count       int       `db:"count" json:"count"`
	WindowStart time.Time `db:"window_start" json:"window_start"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
}

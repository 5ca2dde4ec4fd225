package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
)

// UniqueUserID returns an identity-provider style user id that no other
// test shares, so tests can run against the shared database in parallel.
func UniqueUserID() string {
	return "user_" + uuid.New().String()[:8]
}

// SeedRequestLog inserts a fact entry for userID with the given topic and
// creation time and returns it.
func SeedRequestLog(t *testing.T, pool *pgxpool.Pool, userID, topic string, createdAt time.Time) domain.RequestLogEntry {
	t.Helper()

	entry := domain.NewFactEntry(userID, topic, "fact about "+topic, createdAt.UTC().Truncate(time.Microsecond))

	_, err := pool.Exec(context.Background(),
		`INSERT INTO request_logs (id, user_id, topic, response_text, is_warning, warning_reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Topic, entry.ResponseText, entry.IsWarning, entry.WarningReason, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequestLog insert: %v", err)
	}

	return *entry
}

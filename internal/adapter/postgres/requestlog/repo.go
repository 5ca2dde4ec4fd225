// Package requestlog implements the append-only per-user log of submitted
// topics on top of the request_logs table.
package requestlog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/factfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/factfinder-backend/internal/domain"
)

const (
	table  = "request_logs"
	entity = "request_log"
)

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	columns = []string{
		"id", "user_id", "topic", "response_text",
		"is_warning", "warning_reason", "created_at",
	}
)

// Repo provides request log persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new request log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// Append persists a new entry. Entries are never updated afterwards.
func (r *Repo) Append(ctx context.Context, entry *domain.RequestLogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%s %s: %w", entity, entry.ID, err)
	}

	query, args, err := psql.
		Insert(table).
		Columns(columns...).
		Values(
			entry.ID, entry.UserID, entry.Topic, entry.ResponseText,
			entry.IsWarning, entry.WarningReason, entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", table, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, entry.ID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// ListRecent returns up to limit entries of userID, newest first.
// Entries with equal timestamps are ordered by id so pages are stable.
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.RequestLogEntry, error) {
	if limit <= 0 {
		return []domain.RequestLogEntry{}, nil
	}

	query, args, err := psql.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, userID)
	}
	defer rows.Close()

	entries := make([]domain.RequestLogEntry, 0, limit)
	for rows.Next() {
		var e domain.RequestLogEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Topic, &e.ResponseText,
			&e.IsWarning, &e.WarningReason, &e.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, table, userID)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, userID)
	}

	return entries, nil
}

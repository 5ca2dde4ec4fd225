package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestLogEntry records the outcome of one submitted topic.
// Entries are append-only: created once, never updated or deleted.
type RequestLogEntry struct {
	ID           uuid.UUID
	UserID       string
	Topic        string
	ResponseText string
	IsWarning    bool
	// WarningReason is set if and only if IsWarning is true.
	WarningReason *string
	CreatedAt     time.Time
}

// NewFactEntry builds a non-warning entry for a generated fact
// (or the empty-result fallback message).
func NewFactEntry(userID, topic, text string, now time.Time) *RequestLogEntry {
	return &RequestLogEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Topic:        topic,
		ResponseText: text,
		CreatedAt:    now,
	}
}

// NewWarningEntry builds a warning entry carrying the reason the topic was
// not fulfilled.
func NewWarningEntry(userID, topic, message, reason string, now time.Time) *RequestLogEntry {
	return &RequestLogEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Topic:         topic,
		ResponseText:  message,
		IsWarning:     true,
		WarningReason: &reason,
		CreatedAt:     now,
	}
}

// Validate checks the entry invariants before it is persisted.
func (e *RequestLogEntry) Validate() error {
	var errs []FieldError

	if e.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(e.UserID) == "" {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if e.IsWarning && (e.WarningReason == nil || *e.WarningReason == "") {
		errs = append(errs, FieldError{Field: "warning_reason", Message: "required for warnings"})
	}
	if !e.IsWarning && e.WarningReason != nil {
		errs = append(errs, FieldError{Field: "warning_reason", Message: "must be empty unless warning"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

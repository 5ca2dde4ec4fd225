package fact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
	"github.com/heartmarshall/factfinder-backend/internal/moderation"
	"github.com/heartmarshall/factfinder-backend/pkg/ctxutil"
)

// Submit classifies the topic and either records a warning or asks the
// oracle for a fact and records that. Exactly one log entry is written for
// every submission that passes the identity and input checks.
//
// Oracle failures never surface as errors: they become a warning message.
// A failure to write the log entry is returned to the caller.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic := strings.TrimSpace(*input.Topic)

	// Once accepted, a submission runs to completion even if the client goes away.
	ctx = context.WithoutCancel(ctx)

	verdict := moderation.Classify(topic)
	if !verdict.Allowed {
		return s.deny(ctx, userID, topic, verdict)
	}

	return s.generate(ctx, userID, topic)
}

func (s *Service) deny(ctx context.Context, userID, topic string, verdict moderation.Verdict) (*SubmitResult, error) {
	message := WarningPrefix + verdict.Reason
	entry := domain.NewWarningEntry(userID, topic, message, verdict.Reason, time.Now().UTC())

	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append request log: %w", err)
	}

	s.log.InfoContext(ctx, "topic denied",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
		slog.String("rule", verdict.Rule),
		slog.String("reason", verdict.Reason),
	)

	return &SubmitResult{
		Message:   message,
		IsWarning: true,
		Crisis:    verdict.IsCrisis(),
		EntryID:   entry.ID,
	}, nil
}

func (s *Service) generate(ctx context.Context, userID, topic string) (*SubmitResult, error) {
	start := time.Now()
	text, err := s.callOracle(ctx, topic)
	duration := time.Since(start)

	var entry *domain.RequestLogEntry
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "fact oracle failed",
			slog.String("user_id", userID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		entry = domain.NewWarningEntry(userID, topic, OracleFailureMessage, OracleFailureReason, time.Now().UTC())
	case text == "":
		s.log.WarnContext(ctx, "fact oracle returned no text",
			slog.String("user_id", userID),
			slog.Duration("duration", duration),
		)
		entry = domain.NewFactEntry(userID, topic, EmptyFactMessage, time.Now().UTC())
	default:
		entry = domain.NewFactEntry(userID, topic, text, time.Now().UTC())
	}

	if err := s.logs.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append request log: %w", err)
	}

	s.log.InfoContext(ctx, "fact request handled",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("is_warning", entry.IsWarning),
		slog.Duration("oracle_duration", duration),
	)

	return &SubmitResult{
		Message:   entry.ResponseText,
		IsWarning: entry.IsWarning,
		EntryID:   entry.ID,
	}, nil
}

// callOracle makes a single bounded oracle call. A panic inside the oracle
// is reported as an error like any other failure.
func (s *Service) callOracle(ctx context.Context, topic string) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.oracleTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("oracle panic: %v", r)
		}
	}()

	text, err = s.oracle.Generate(ctx, topic)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

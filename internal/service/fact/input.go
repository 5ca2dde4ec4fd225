package fact

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
)

// SubmitInput holds a topic submission. Topic is nil when the request did
// not carry one.
type SubmitInput struct {
	Topic *string
}

// Validate checks the structure of the submission. Content rules belong to
// the moderation classifier, so an empty topic is structurally valid.
// NUL bytes cannot be stored in a Postgres text column.
func (i SubmitInput) Validate() error {
	if i.Topic == nil {
		return domain.NewValidationError("topic", "required")
	}
	if strings.ContainsRune(*i.Topic, 0) {
		return domain.NewValidationError("topic", "contains NUL byte")
	}
	return nil
}

// SubmitResult is what the caller sees for a handled submission.
type SubmitResult struct {
	Message   string
	IsWarning bool
	// Crisis is set when the topic was denied as a crisis phrase.
	Crisis  bool
	EntryID uuid.UUID
}

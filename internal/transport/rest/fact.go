package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
	"github.com/heartmarshall/factfinder-backend/internal/service/fact"
	"github.com/heartmarshall/factfinder-backend/pkg/ctxutil"
)

// maxBodyBytes bounds a submission body; topics are far shorter.
const maxBodyBytes = 16 << 10

type factService interface {
	Submit(ctx context.Context, input fact.SubmitInput) (*fact.SubmitResult, error)
	ListHistory(ctx context.Context) ([]domain.RequestLogEntry, error)
}

// FactHandler serves the topic submission and history endpoints.
type FactHandler struct {
	svc factService
	log *slog.Logger
}

// NewFactHandler creates a FactHandler.
func NewFactHandler(svc factService, logger *slog.Logger) *FactHandler {
	return &FactHandler{svc: svc, log: logger.With("handler", "fact")}
}

type submitRequest struct {
	Topic *string `json:"topic"`
}

type submitResponse struct {
	Message string `json:"message"`
	Crisis  bool   `json:"crisis,omitempty"`
}

type logEntryResponse struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	ResponseText string    `json:"responseText"`
	IsWarning    bool      `json:"isWarning"`
	CreatedAt    time.Time `json:"createdAt"`
}

type historyResponse struct {
	Logs []logEntryResponse `json:"logs"`
}

// Submit handles POST /api/fact.
func (h *FactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	result, err := h.svc.Submit(r.Context(), fact.SubmitInput{Topic: req.Topic})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Message: result.Message,
		Crisis:  result.Crisis,
	})
}

// History handles GET /api/logs.
func (h *FactHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListHistory(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := historyResponse{Logs: make([]logEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Logs = append(resp.Logs, logEntryResponse{
			ID:           e.ID.String(),
			Topic:        e.Topic,
			ResponseText: e.ResponseText,
			IsWarning:    e.IsWarning,
			CreatedAt:    e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *FactHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid body")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"compliance-advisor/internal/identifier"
	"compliance-advisor/internal/identifier/metrics"
	dErrors "compliance-advisor/pkg/domain-errors"
	"compliance-advisor/pkg/platform/httputil"
	"compliance-advisor/pkg/requestcontext"
)

// maxIdentifierLength leaves room for spaced IBAN notation.
const maxIdentifierLength = 64

// ValidateRequest is the HTTP request body for POST /identifiers/validate.
type ValidateRequest struct {
	Identifier string `json:"identifier"`
}

// Validate implements httputil.Validatable.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Identifier) > maxIdentifierLength {
		return dErrors.New(dErrors.CodeValidation, "identifier must be at most 64 characters")
	}
	if strings.TrimSpace(r.Identifier) == "" {
		return dErrors.New(dErrors.CodeValidation, "identifier is required")
	}
	return nil
}

// Handler serves identifier validation.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs an identifier handler.
func New(logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, metrics: m}
}

// Register mounts identifier endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/identifiers/validate", h.HandleValidate)
}

// HandleValidate handles POST /identifiers/validate. Structural problems are
// reported in the body with 200; only malformed requests get an error status.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := identifier.Validate(req.Identifier)
	h.metrics.IncrementValidation(string(result.Kind), result.Valid)
	h.logger.DebugContext(ctx, "identifier validated",
		"request_id", requestID,
		"kind", result.Kind,
		"valid", result.Valid,
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"compliance-advisor/internal/decision"
	dErrors "compliance-advisor/pkg/domain-errors"
	"compliance-advisor/pkg/platform/httputil"
	"compliance-advisor/pkg/requestcontext"
)

// Service defines the interface for advisory decisions.
type Service interface {
	CheckTransfer(ctx context.Context, req decision.TransferRequest) (*decision.TransferResult, error)
	CheckCompany(ctx context.Context, req decision.CompanyRequest) (*decision.CompanyResult, error)
}

// Handler wires decision endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/transfers/check", h.HandleTransferCheck)
	r.Post("/companies/check", h.HandleCompanyCheck)
}

// HandleTransferCheck handles POST /transfers/check requests.
func (h *Handler) HandleTransferCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[TransferCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CheckTransfer(ctx, decision.TransferRequest{
		SenderCountry:    req.SenderCountry,
		RecipientCountry: req.RecipientCountry,
		Currency:         req.Currency,
	})
	if err != nil {
		h.logFailure(ctx, "transfer check failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "transfer check served",
		"request_id", requestID,
		"possible", result.Possible,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromTransferResult(result))
}

// HandleCompanyCheck handles POST /companies/check requests.
func (h *Handler) HandleCompanyCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CompanyCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CheckCompany(ctx, decision.CompanyRequest{
		Country:  req.Country,
		Activity: req.Activity,
	})
	if err != nil {
		h.logFailure(ctx, "company check failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "company check served",
		"request_id", requestID,
		"possible", result.Possible,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromCompanyResult(result))
}

// logFailure keeps caller mistakes out of the error log: validation and
// bad-request errors are answered with a user-visible message and logged at info.
func (h *Handler) logFailure(ctx context.Context, msg, requestID string, err error) {
	level := slog.LevelError
	if dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeBadRequest) {
		level = slog.LevelInfo
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestID,
		"error", err,
	)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/pkg/platform/httputil"
	"compliance-advisor/pkg/requestcontext"
)

// Service exposes the current rule snapshots.
type Service interface {
	TransferRules(ctx context.Context) *models.TransferRules
	CompanyRules(ctx context.Context) *models.CompanyRules
}

// Handler serves read-only views of the active rules.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a rules handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts rule endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/rules/transfer", h.HandleTransferRules)
	r.Get("/rules/company", h.HandleCompanyRules)
	r.Get("/reference/settlement-systems", h.HandleSettlementSystems)
}

// HandleTransferRules handles GET /rules/transfer.
func (h *Handler) HandleTransferRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rules := h.service.TransferRules(ctx)
	h.logger.DebugContext(ctx, "transfer rules served",
		"request_id", requestcontext.RequestID(ctx),
		"origin", rules.Origin,
	)
	httputil.WriteJSON(w, http.StatusOK, rules)
}

// HandleCompanyRules handles GET /rules/company.
func (h *Handler) HandleCompanyRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rules := h.service.CompanyRules(ctx)
	h.logger.DebugContext(ctx, "company rules served",
		"request_id", requestcontext.RequestID(ctx),
		"origin", rules.Origin,
	)
	httputil.WriteJSON(w, http.StatusOK, rules)
}

// SettlementSystemsResponse is the body of GET /reference/settlement-systems.
type SettlementSystemsResponse struct {
	Systems []SettlementSystemResponse `json:"systems"`
}

// SettlementSystemResponse adds the rendered fee to a table entry.
type SettlementSystemResponse struct {
	models.SettlementSystem
	FeeDisplay string `json:"fee_display"`
}

// HandleSettlementSystems handles GET /reference/settlement-systems.
func (h *Handler) HandleSettlementSystems(w http.ResponseWriter, _ *http.Request) {
	systems := models.SettlementSystemList()
	resp := SettlementSystemsResponse{Systems: make([]SettlementSystemResponse, 0, len(systems))}
	for _, s := range systems {
		resp.Systems = append(resp.Systems, SettlementSystemResponse{SettlementSystem: s, FeeDisplay: s.Fee.String()})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

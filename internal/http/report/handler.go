package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bundakue/titipan/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.compute)
	r.Get("/overview", h.overview)
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{
		PartnerID: r.URL.Query().Get("partner_id"),
		Period:    report.Period(r.URL.Query().Get("period")),
	}

	if filter.Period == "" {
		filter.Period = report.PeriodDaily
	}

	if !filter.Period.Valid() {
		http.Error(w, "period must be daily, monthly, or yearly", http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Compute(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toReportResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOverviewResponse(ov)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

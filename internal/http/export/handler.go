package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bundakue/titipan/internal/export"
	"github.com/bundakue/titipan/internal/report"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

var contentTypes = map[export.Format]string{
	export.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	export.FormatPDF:  "application/pdf",
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatXLSX
	}

	contentType, ok := contentTypes[format]
	if !ok {
		http.Error(w, "format must be xlsx or pdf", http.StatusBadRequest)
		return
	}

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

	// Render to a buffer first so a mid-render failure never leaves a
	// half-written download on the wire.
	var buf bytes.Buffer

	if err := h.svc.Export(r.Context(), filter, format, &buf); err != nil {
		if errors.Is(err, export.ErrBusy) {
			http.Error(w, "an export is already running, try again shortly", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(format, time.Now())))

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

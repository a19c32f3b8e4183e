package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/bundakue/titipan/internal/report"
)

// ErrBusy is returned when an export is requested while another one is still
// rendering. The snapshot being captured must not be interleaved with a
// second render; callers retry once the first export finishes.
var ErrBusy = errors.New("export already in progress")

// Format selects the artifact produced by an export.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Service renders computed reports into downloadable artifacts. At most one
// export runs at a time per service instance.
type Service struct {
	reports *report.Service
	slot    *semaphore.Weighted
}

func NewService(reports *report.Service) *Service {
	return &Service{
		reports: reports,
		slot:    semaphore.NewWeighted(1),
	}
}

// Export computes the report for the filter and writes it to w in the given
// format. On failure the artifact is abandoned and the store is untouched;
// the caller owns w and can always retry.
func (s *Service) Export(ctx context.Context, filter report.Filter, format Format, w io.Writer) error {
	if !s.slot.TryAcquire(1) {
		return ErrBusy
	}
	defer s.slot.Release(1)

	rep, err := s.reports.Compute(ctx, filter)
	if err != nil {
		return fmt.Errorf("computing report: %w", err)
	}

	switch format {
	case FormatXLSX:
		return writeXLSX(rep, w)
	case FormatPDF:
		return writePDF(rep, w)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// Filename returns the conventional artifact name for a report exported at t.
func Filename(format Format, t time.Time) string {
	return fmt.Sprintf("Laporan_Penjualan_%s.%s", t.Format(time.DateOnly), format)
}

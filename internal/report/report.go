package report

import (
	"time"

	"github.com/bundakue/titipan/internal/consignment"
)

// Period is the time window applied to batches before aggregation.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return true
	}

	return false
}

// AllPartners is the sentinel partner filter meaning "no partner filter".
const AllPartners = "all"

// UnknownLabel is shown for references to deleted partners or products.
const UnknownLabel = "Unknown"

type Filter struct {
	PartnerID string // AllPartners or a partner id
	Period    Period
}

// Row is one batch projected for display and export.
type Row struct {
	Date      time.Time
	Partner   string
	Product   string
	Sent      int
	Sold      int
	Returned  int
	UnitPrice int64
	Revenue   int64
}

// Report is the aggregate over the filtered batches. Revenue always joins the
// current product price; editing a price rewrites past reports.
type Report struct {
	Filter        Filter
	GeneratedAt   time.Time
	Count         int
	TotalSold     int
	TotalReturned int
	TotalRevenue  int64
	Rows          []Row
}

// Overview is the dashboard headline block.
type Overview struct {
	Partners      int
	Products      int
	ActiveBatches int // Batches not yet completed
	TotalRevenue  int64
	Recent        []Row // Latest drop-offs, newest last
}

const recentLimit = 5

func inWindow(date, now time.Time, period Period) bool {
	switch period {
	case PeriodDaily:
		return date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
	case PeriodMonthly:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case PeriodYearly:
		return date.Year() == now.Year()
	}

	return false
}

func isActive(b *consignment.Batch) bool {
	return b.Status != consignment.StatusCompleted
}

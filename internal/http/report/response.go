package report

import (
	"time"

	"github.com/bundakue/titipan/internal/report"
)

type rowResponse struct {
	Date      string `json:"date"`
	Partner   string `json:"partner"`
	Product   string `json:"product"`
	Sent      int    `json:"sent"`
	Sold      int    `json:"sold"`
	Returned  int    `json:"returned"`
	UnitPrice int64  `json:"unit_price"`
	Revenue   int64  `json:"revenue"`
}

type reportResponse struct {
	PartnerID     string        `json:"partner_id"`
	Period        report.Period `json:"period"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Count         int           `json:"count"`
	TotalSold     int           `json:"total_sold"`
	TotalReturned int           `json:"total_returned"`
	TotalRevenue  int64         `json:"total_revenue"`
	Rows          []rowResponse `json:"rows"`
}

type overviewResponse struct {
	Partners      int           `json:"partners"`
	Products      int           `json:"products"`
	ActiveBatches int           `json:"active_batches"`
	TotalRevenue  int64         `json:"total_revenue"`
	Recent        []rowResponse `json:"recent"`
}

func toRowResponse(row report.Row) rowResponse {
	return rowResponse{
		Date:      row.Date.Format(time.DateOnly),
		Partner:   row.Partner,
		Product:   row.Product,
		Sent:      row.Sent,
		Sold:      row.Sold,
		Returned:  row.Returned,
		UnitPrice: row.UnitPrice,
		Revenue:   row.Revenue,
	}
}

func toRowResponseList(rows []report.Row) []rowResponse {
	resp := make([]rowResponse, len(rows))
	for i, row := range rows {
		resp[i] = toRowResponse(row)
	}

	return resp
}

func toReportResponse(rep *report.Report) reportResponse {
	return reportResponse{
		PartnerID:     rep.Filter.PartnerID,
		Period:        rep.Filter.Period,
		GeneratedAt:   rep.GeneratedAt,
		Count:         rep.Count,
		TotalSold:     rep.TotalSold,
		TotalReturned: rep.TotalReturned,
		TotalRevenue:  rep.TotalRevenue,
		Rows:          toRowResponseList(rep.Rows),
	}
}

func toOverviewResponse(ov *report.Overview) overviewResponse {
	return overviewResponse{
		Partners:      ov.Partners,
		Products:      ov.Products,
		ActiveBatches: ov.ActiveBatches,
		TotalRevenue:  ov.TotalRevenue,
		Recent:        toRowResponseList(ov.Recent),
	}
}

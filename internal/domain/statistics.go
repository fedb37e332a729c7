package domain

import "github.com/shopspring/decimal"

// PaymentStats classifies PAID records as on time or late.
type PaymentStats struct {
	Total     int64   `json:"total"`
	OnTime    int64   `json:"on_time"`
	Late      int64   `json:"late"`
	OnTimePct float64 `json:"on_time_pct"`
	LatePct   float64 `json:"late_pct"`
}

// NewPaymentStats derives late count and percentages. Percentages are zero when
// there are no paid records.
func NewPaymentStats(total, onTime int64) PaymentStats {
	stats := PaymentStats{Total: total, OnTime: onTime, Late: total - onTime}
	if total > 0 {
		stats.OnTimePct = float64(onTime) * 100 / float64(total)
		stats.LatePct = float64(stats.Late) * 100 / float64(total)
	}
	return stats
}

type DueStats struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type RevenueBySource struct {
	Rent    decimal.Decimal `json:"rent"`
	Service decimal.Decimal `json:"service"`
}

// MonthlyPaymentStatus counts records by the month of their expected date.
type MonthlyPaymentStatus struct {
	Month   int `json:"month"`
	Paid    int `json:"paid"`
	Unpaid  int `json:"unpaid"`
	Overdue int `json:"overdue"`
}

// MonthlyPunctuality counts PAID records by the month of their actual date.
type MonthlyPunctuality struct {
	Month  int `json:"month"`
	OnTime int `json:"on_time"`
	Late   int `json:"late"`
}

type DashboardOverview struct {
	Year         int                 `json:"year"`
	Revenue      [12]decimal.Decimal `json:"revenue"`
	TotalRevenue decimal.Decimal     `json:"total_revenue"`
	Payments     PaymentStats        `json:"payments"`
	Due          DueStats            `json:"due"`
}

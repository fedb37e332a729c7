package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
)

// year reads ?year=, defaulting to the current business year.
func (s *Server) year(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return s.clock.Today().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: year must be an integer, got %q", domain.ErrBadRequest, raw)
	}
	return year, nil
}

// GET /api/v1/statistics/revenue?year=
func (s *Server) RevenueByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := s.year(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	months, err := s.statistics.RevenueByMonth(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"year": year, "months": months})
}

// GET /api/v1/statistics/revenue-sources?year=
func (s *Server) RevenueBySource(w http.ResponseWriter, r *http.Request) {
	year, err := s.year(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sources, err := s.statistics.RevenueBySource(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// GET /api/v1/statistics/payments
func (s *Server) PaymentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.statistics.PaymentStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GET /api/v1/statistics/payments/monthly?year=
func (s *Server) PaymentsMonthly(w http.ResponseWriter, r *http.Request) {
	year, err := s.year(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	months, err := s.statistics.PaymentsMonthly(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

// GET /api/v1/statistics/payments/status?year=
func (s *Server) PaymentStatusByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := s.year(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	months, err := s.statistics.PaymentStatusByMonth(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

// GET /api/v1/statistics/due-payments?days=7
func (s *Server) DueStats(w http.ResponseWriter, r *http.Request) {
	days, err := s.windowDays(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	stats, err := s.statistics.DueStats(r.Context(), days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GET /api/v1/statistics/dashboard?year=
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	year, err := s.year(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	overview, err := s.statistics.Dashboard(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

package service

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/shopspring/decimal"
)

const (
	minReportYear = 1970
	maxReportYear = 9999
)

type statisticsService struct {
	paymentRepo repository.PaymentRepository
	scanner     DueScanner
	cache       ReportCache
	clock       schedule.Clock
}

func NewStatisticsService(paymentRepo repository.PaymentRepository, scanner DueScanner, cache ReportCache, clock schedule.Clock) StatisticsService {
	return &statisticsService{
		paymentRepo: paymentRepo,
		scanner:     scanner,
		cache:       cache,
		clock:       clock,
	}
}

// RevenueByMonth sums amount received per calendar month of the payment date, read in
// the business time zone.
func (s *statisticsService) RevenueByMonth(ctx context.Context, year int) ([12]decimal.Decimal, error) {
	var months [12]decimal.Decimal
	if err := validateYear(year); err != nil {
		return months, err
	}
	err := s.cached(ctx, &months, func(ctx context.Context) (any, error) {
		paid, err := s.paidInYear(ctx, year)
		if err != nil {
			return nil, err
		}
		var sums [12]decimal.Decimal
		for i := range sums {
			sums[i] = decimal.Zero
		}
		for _, p := range paid {
			m := p.ActualDate.In(s.clock.Zone()).Month()
			sums[m-1] = sums[m-1].Add(p.AmountReceived)
		}
		return sums, nil
	}, "revenue", strconv.Itoa(year))
	return months, err
}

func (s *statisticsService) PaymentStats(ctx context.Context) (*domain.PaymentStats, error) {
	stats := &domain.PaymentStats{}
	err := s.cached(ctx, stats, func(ctx context.Context) (any, error) {
		total, onTime, err := s.paymentRepo.CountPaid(ctx, s.clock.Zone().String())
		if err != nil {
			return nil, err
		}
		return domain.NewPaymentStats(total, onTime), nil
	}, "payments", "stats")
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statisticsService) DueStats(ctx context.Context, windowDays int) (*domain.DueStats, error) {
	due, err := s.scanner.ScanDue(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	stats := &domain.DueStats{Count: len(due), TotalAmount: decimal.Zero}
	for _, p := range due {
		stats.TotalAmount = stats.TotalAmount.Add(p.AmountExpected)
	}
	return stats, nil
}

func (s *statisticsService) RevenueBySource(ctx context.Context, year int) (*domain.RevenueBySource, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	out := &domain.RevenueBySource{}
	err := s.cached(ctx, out, func(ctx context.Context) (any, error) {
		paid, err := s.paidInYear(ctx, year)
		if err != nil {
			return nil, err
		}
		sources := domain.RevenueBySource{Rent: decimal.Zero, Service: decimal.Zero}
		for _, p := range paid {
			switch p.Kind {
			case domain.PaymentKindRent:
				sources.Rent = sources.Rent.Add(p.AmountReceived)
			case domain.PaymentKindService:
				sources.Service = sources.Service.Add(p.AmountReceived)
			}
		}
		return sources, nil
	}, "revenue-sources", strconv.Itoa(year))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentsMonthly buckets every record expected in the year by expected month. Overdue
// (UNPAID and expected before today) is counted instead of unpaid, not in addition.
func (s *statisticsService) PaymentsMonthly(ctx context.Context, year int) ([]domain.MonthlyPaymentStatus, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	today := s.clock.Today()
	var out []domain.MonthlyPaymentStatus
	err := s.cached(ctx, &out, func(ctx context.Context) (any, error) {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		records, err := s.paymentRepo.ListExpectedBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		months := make([]domain.MonthlyPaymentStatus, 12)
		for i := range months {
			months[i].Month = i + 1
		}
		for i := range records {
			p := &records[i]
			bucket := &months[p.ExpectedDate.Month()-1]
			switch {
			case p.IsPaid():
				bucket.Paid++
			case p.IsOverdue(today):
				bucket.Overdue++
			default:
				bucket.Unpaid++
			}
		}
		return months, nil
	}, "payments-monthly", strconv.Itoa(year), domain.FormatDate(today))
	return out, err
}

// PaymentStatusByMonth splits PAID records of the year into on time and late, by the
// month they were paid in.
func (s *statisticsService) PaymentStatusByMonth(ctx context.Context, year int) ([]domain.MonthlyPunctuality, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	var out []domain.MonthlyPunctuality
	err := s.cached(ctx, &out, func(ctx context.Context) (any, error) {
		paid, err := s.paidInYear(ctx, year)
		if err != nil {
			return nil, err
		}
		months := make([]domain.MonthlyPunctuality, 12)
		for i := range months {
			months[i].Month = i + 1
		}
		for i := range paid {
			p := &paid[i]
			bucket := &months[p.ActualDate.In(s.clock.Zone()).Month()-1]
			if p.OnTimeIn(s.clock.Zone()) {
				bucket.OnTime++
			} else {
				bucket.Late++
			}
		}
		return months, nil
	}, "payment-status", strconv.Itoa(year))
	return out, err
}

func (s *statisticsService) Dashboard(ctx context.Context, year int) (*domain.DashboardOverview, error) {
	logger.EnterMethod("statisticsService.Dashboard", "year", year)

	revenue, err := s.RevenueByMonth(ctx, year)
	if err != nil {
		logger.ExitMethodWithError("statisticsService.Dashboard", err, "year", year)
		return nil, err
	}
	payments, err := s.PaymentStats(ctx)
	if err != nil {
		logger.ExitMethodWithError("statisticsService.Dashboard", err, "year", year)
		return nil, err
	}
	due, err := s.DueStats(ctx, schedule.ExpectedLeadDays)
	if err != nil {
		logger.ExitMethodWithError("statisticsService.Dashboard", err, "year", year)
		return nil, err
	}

	overview := &domain.DashboardOverview{
		Year:         year,
		Revenue:      revenue,
		TotalRevenue: decimal.Sum(decimal.Zero, revenue[:]...),
		Payments:     *payments,
		Due:          *due,
	}
	logger.ExitMethod("statisticsService.Dashboard", "year", year)
	return overview, nil
}

// paidInYear loads PAID records whose payment instant falls in the business-time year.
func (s *statisticsService) paidInYear(ctx context.Context, year int) ([]domain.PaymentRecord, error) {
	loc := s.clock.Zone()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	to := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	return s.paymentRepo.ListPaidBetween(ctx, from, to)
}

func (s *statisticsService) cached(ctx context.Context, dest any, loader func(context.Context) (any, error), parts ...string) error {
	if s.cache == nil {
		return fetchDirect(ctx, dest, loader)
	}
	key, err := s.cache.BuildKey(ctx, parts...)
	if err != nil {
		logger.Warn("Report cache key unavailable, loading directly", "error", err)
		return fetchDirect(ctx, dest, loader)
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}

func validateYear(year int) error {
	if year < minReportYear || year > maxReportYear {
		return fmt.Errorf("%w: year %d out of range", domain.ErrBadRequest, year)
	}
	return nil
}

// fetchDirect runs the loader and stores its result into dest, which must point to a
// value of the loader's result type.
func fetchDirect(ctx context.Context, dest any, loader func(context.Context) (any, error)) error {
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	target := reflect.ValueOf(dest).Elem()
	result := reflect.ValueOf(value)
	if !result.Type().AssignableTo(target.Type()) {
		return fmt.Errorf("report type %s does not fit %s", result.Type(), target.Type())
	}
	target.Set(result)
	return nil
}

package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GenerateSchedule(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) CreatePayment(ctx context.Context, in service.CreatePaymentInput) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, patch domain.PaymentPatch) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentService) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, homeID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) FindDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) MarkPaid(ctx context.Context, id uuid.UUID, received *decimal.Decimal) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id, received)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentService) ScanDue(ctx context.Context, windowDays int) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, windowDays)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

// MockReminderService
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) DispatchReminders(ctx context.Context) (*domain.DispatchResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DispatchResult), args.Error(1)
}

// MockStatisticsService
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) RevenueByMonth(ctx context.Context, year int) ([12]decimal.Decimal, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([12]decimal.Decimal), args.Error(1)
}
func (m *MockStatisticsService) PaymentStats(ctx context.Context) (*domain.PaymentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentStats), args.Error(1)
}
func (m *MockStatisticsService) DueStats(ctx context.Context, windowDays int) (*domain.DueStats, error) {
	args := m.Called(ctx, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueStats), args.Error(1)
}
func (m *MockStatisticsService) RevenueBySource(ctx context.Context, year int) (*domain.RevenueBySource, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueBySource), args.Error(1)
}
func (m *MockStatisticsService) PaymentsMonthly(ctx context.Context, year int) ([]domain.MonthlyPaymentStatus, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]domain.MonthlyPaymentStatus), args.Error(1)
}
func (m *MockStatisticsService) PaymentStatusByMonth(ctx context.Context, year int) ([]domain.MonthlyPunctuality, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]domain.MonthlyPunctuality), args.Error(1)
}
func (m *MockStatisticsService) Dashboard(ctx context.Context, year int) (*domain.DashboardOverview, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardOverview), args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

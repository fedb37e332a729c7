package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/shopspring/decimal"
)

type PaymentService interface {
	// GenerateSchedule persists one UNPAID record per billing period of the contract.
	// Calling it twice for the same contract creates a second, overlapping schedule.
	GenerateSchedule(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error)
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*domain.PaymentRecord, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, patch domain.PaymentPatch) (*domain.PaymentRecord, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error)
	ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error)
	FindDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error)
	// MarkPaid moves the record to PAID with actualDate = now. Repeating it overwrites
	// actualDate with the later time.
	MarkPaid(ctx context.Context, id uuid.UUID, received *decimal.Decimal) (*domain.PaymentRecord, error)
	DueScanner
}

// DueScanner lists UNPAID records expected between today and today + windowDays.
type DueScanner interface {
	ScanDue(ctx context.Context, windowDays int) ([]domain.PaymentRecord, error)
}

type ReminderService interface {
	DispatchReminders(ctx context.Context) (*domain.DispatchResult, error)
}

type StatisticsService interface {
	RevenueByMonth(ctx context.Context, year int) ([12]decimal.Decimal, error)
	PaymentStats(ctx context.Context) (*domain.PaymentStats, error)
	DueStats(ctx context.Context, windowDays int) (*domain.DueStats, error)
	RevenueBySource(ctx context.Context, year int) (*domain.RevenueBySource, error)
	PaymentsMonthly(ctx context.Context, year int) ([]domain.MonthlyPaymentStatus, error)
	PaymentStatusByMonth(ctx context.Context, year int) ([]domain.MonthlyPunctuality, error)
	Dashboard(ctx context.Context, year int) (*domain.DashboardOverview, error)
}

// NotificationChannel hands reminder requests to a delivery transport. Nothing is
// read back beyond the hand-off error.
type NotificationChannel interface {
	SendEmail(ctx context.Context, address string, payload domain.ReminderPayload) error
	SendSMS(ctx context.Context, number string, payload domain.ReminderPayload) error
}

// ReportCache memoises report results. Bump invalidates everything cached so far.
type ReportCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
	Bump(ctx context.Context) error
}

// CreatePaymentInput describes an ad-hoc payment record. At least one of HomeID,
// HomeContractID or ServiceContractID must lead to a home. Omitted expected and
// reminder dates are derived from PeriodEnd.
type CreatePaymentInput struct {
	HomeID            *uuid.UUID
	HomeContractID    *uuid.UUID
	ServiceContractID *uuid.UUID
	ReceiverID        *uuid.UUID
	Kind              domain.PaymentKind
	PeriodStart       time.Time
	PeriodEnd         time.Time
	ExpectedDate      *time.Time
	ReminderDate      *time.Time
	Status            domain.PaymentStatus
	ActualDate        *time.Time
	AmountExpected    decimal.Decimal
	AmountReceived    decimal.Decimal
	Note              string
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentRepository persists invoice payment records. Lookups of a missing record
// return an error wrapping domain.ErrNotFound.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.PaymentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	Update(ctx context.Context, p *domain.PaymentRecord) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByContract matches either the rental or the ancillary contract reference.
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error)
	ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error)
	// ListDue returns UNPAID records with expected_date in [from, to], earliest first.
	ListDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error)
	// ListByReminderDate returns UNPAID records whose reminder falls on day.
	ListByReminderDate(ctx context.Context, day time.Time) ([]domain.PaymentRecord, error)
	// ListPaidBetween returns PAID records with actual_date in [from, to).
	ListPaidBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error)
	// ListExpectedBetween returns records of any status with expected_date in [from, to].
	ListExpectedBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error)
	// CountPaid counts PAID records and how many of them were paid on or before their
	// expected date, comparing calendar dates in the named time zone.
	CountPaid(ctx context.Context, timezone string) (total, onTime int64, err error)

	// MarkPaid sets status PAID and actual_date = paidAt. A nil received amount keeps
	// the stored one.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, received *decimal.Decimal) (*domain.PaymentRecord, error)
}

// ContractRepository reads rental (home) and ancillary (service) contracts.
type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
}

type HomeRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReceiverRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type GuestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error)
}

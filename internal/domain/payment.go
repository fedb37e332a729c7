package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentKind string

const (
	PaymentKindRent    PaymentKind = "RENT"
	PaymentKindService PaymentKind = "SERVICE"
)

func (k PaymentKind) Valid() bool {
	return k == PaymentKindRent || k == PaymentKindService
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// PaymentRecord bills a single period of a contract (or an ad-hoc charge on a home).
type PaymentRecord struct {
	ID                uuid.UUID       `json:"id"`
	HomeID            uuid.UUID       `json:"home_id"`
	HomeContractID    *uuid.UUID      `json:"home_contract_id,omitempty"`
	ServiceContractID *uuid.UUID      `json:"service_contract_id,omitempty"`
	ReceiverID        *uuid.UUID      `json:"receiver_id,omitempty"`
	Kind              PaymentKind     `json:"kind"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	ReminderDate      time.Time       `json:"reminder_date"`
	ExpectedDate      time.Time       `json:"expected_date"`
	ActualDate        *time.Time      `json:"actual_date,omitempty"`
	Status            PaymentStatus   `json:"status"`
	AmountExpected    decimal.Decimal `json:"amount_expected"`
	AmountReceived    decimal.Decimal `json:"amount_received"`
	Note              string          `json:"note,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsPaid reports whether the record reached the PAID state.
func (p *PaymentRecord) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// OnTimeIn classifies a paid record: it was paid no later than the calendar day of its
// expected date, reading the payment instant in loc. Unpaid records are never on time.
func (p *PaymentRecord) OnTimeIn(loc *time.Location) bool {
	if !p.IsPaid() || p.ActualDate == nil {
		return false
	}
	paid := *p.ActualDate
	if loc != nil {
		paid = paid.In(loc)
	}
	return !DateOf(paid).After(DateOf(p.ExpectedDate))
}

// IsOverdue reports an unpaid record whose expected date is before today.
func (p *PaymentRecord) IsOverdue(today time.Time) bool {
	return !p.IsPaid() && DateOf(p.ExpectedDate).Before(DateOf(today))
}

// ContractID returns whichever contract reference is populated, rental first.
func (p *PaymentRecord) ContractID() *uuid.UUID {
	if p.HomeContractID != nil {
		return p.HomeContractID
	}
	return p.ServiceContractID
}

// Validate checks the record-level invariants: ordered dates, non-negative amounts,
// known enums and actualDate present exactly when the record is PAID.
func (p *PaymentRecord) Validate() error {
	if p.HomeID == uuid.Nil {
		return fmt.Errorf("%w: home or contract reference required", ErrBadRequest)
	}
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: unknown payment kind %q", ErrBadRequest, p.Kind)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrBadRequest, p.Status)
	}
	if p.PeriodStart.IsZero() || p.PeriodEnd.IsZero() {
		return fmt.Errorf("%w: period start and end are required", ErrBadRequest)
	}
	if !p.PeriodStart.Before(p.PeriodEnd) {
		return fmt.Errorf("%w: period start %s must be before period end %s",
			ErrBadRequest, FormatDate(p.PeriodStart), FormatDate(p.PeriodEnd))
	}
	if !p.ReminderDate.Before(p.ExpectedDate) {
		return fmt.Errorf("%w: reminder date %s must be before expected date %s",
			ErrBadRequest, FormatDate(p.ReminderDate), FormatDate(p.ExpectedDate))
	}
	if p.ExpectedDate.After(p.PeriodEnd) {
		return fmt.Errorf("%w: expected date %s is after period end %s",
			ErrBadRequest, FormatDate(p.ExpectedDate), FormatDate(p.PeriodEnd))
	}
	if p.AmountExpected.IsNegative() || p.AmountReceived.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrBadRequest)
	}
	if p.IsPaid() != (p.ActualDate != nil) {
		return fmt.Errorf("%w: actual date must be set exactly when the payment is paid", ErrBadRequest)
	}
	return nil
}

// PaymentPatch is a partial update. Nil fields are left untouched.
type PaymentPatch struct {
	HomeID            *uuid.UUID
	HomeContractID    *uuid.UUID
	ServiceContractID *uuid.UUID
	ReceiverID        *uuid.UUID
	Kind              *PaymentKind
	PeriodStart       *time.Time
	PeriodEnd         *time.Time
	ReminderDate      *time.Time
	ExpectedDate      *time.Time
	ActualDate        *time.Time
	Status            *PaymentStatus
	AmountExpected    *decimal.Decimal
	AmountReceived    *decimal.Decimal
	Note              *string
}

// Apply copies the populated patch fields onto rec. It does not validate.
func (patch PaymentPatch) Apply(rec *PaymentRecord) {
	if patch.HomeID != nil {
		rec.HomeID = *patch.HomeID
	}
	if patch.HomeContractID != nil {
		id := *patch.HomeContractID
		rec.HomeContractID = &id
	}
	if patch.ServiceContractID != nil {
		id := *patch.ServiceContractID
		rec.ServiceContractID = &id
	}
	if patch.ReceiverID != nil {
		id := *patch.ReceiverID
		rec.ReceiverID = &id
	}
	if patch.Kind != nil {
		rec.Kind = *patch.Kind
	}
	if patch.PeriodStart != nil {
		rec.PeriodStart = DateOf(*patch.PeriodStart)
	}
	if patch.PeriodEnd != nil {
		rec.PeriodEnd = DateOf(*patch.PeriodEnd)
	}
	if patch.ReminderDate != nil {
		rec.ReminderDate = DateOf(*patch.ReminderDate)
	}
	if patch.ExpectedDate != nil {
		rec.ExpectedDate = DateOf(*patch.ExpectedDate)
	}
	if patch.ActualDate != nil {
		at := *patch.ActualDate
		rec.ActualDate = &at
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.AmountExpected != nil {
		rec.AmountExpected = *patch.AmountExpected
	}
	if patch.AmountReceived != nil {
		rec.AmountReceived = *patch.AmountReceived
	}
	if patch.Note != nil {
		rec.Note = *patch.Note
	}
}

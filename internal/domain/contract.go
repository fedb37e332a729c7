package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractKind string

const (
	ContractKindRental    ContractKind = "RENTAL"
	ContractKindAncillary ContractKind = "ANCILLARY"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// Contract is the read-only view of a rental (home) or ancillary (service) contract.
// The billing core never writes contracts.
type Contract struct {
	ID             uuid.UUID       `json:"id"`
	Kind           ContractKind    `json:"kind"`
	HomeID         uuid.UUID       `json:"home_id"`
	GuestID        uuid.UUID       `json:"guest_id"`
	StartDate      time.Time       `json:"start_date"`
	DurationMonths int             `json:"duration_months"`
	PayCycleMonths int             `json:"pay_cycle_months"`
	UnitAmount     decimal.Decimal `json:"unit_amount"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Status         ContractStatus  `json:"status"`
}

// BillingTerms are the fields every contract kind feeds into schedule generation.
type BillingTerms struct {
	StartDate      time.Time
	DurationMonths int
	PayCycleMonths int
	UnitAmount     decimal.Decimal
}

// Terms is a tagged variant over contract kinds: RentalTerms or AncillaryTerms.
type Terms interface {
	Billing() BillingTerms
	PaymentKind() PaymentKind
	isTerms()
}

type RentalTerms struct {
	BillingTerms
}

func (t RentalTerms) Billing() BillingTerms    { return t.BillingTerms }
func (t RentalTerms) PaymentKind() PaymentKind { return PaymentKindRent }
func (RentalTerms) isTerms()                   {}

// AncillaryTerms carry an optional hard end date; no billing period may end after it.
type AncillaryTerms struct {
	BillingTerms
	EndDate *time.Time
}

func (t AncillaryTerms) Billing() BillingTerms    { return t.BillingTerms }
func (t AncillaryTerms) PaymentKind() PaymentKind { return PaymentKindService }
func (AncillaryTerms) isTerms()                   {}

// Terms projects the contract onto its billing variant.
func (c *Contract) Terms() Terms {
	common := BillingTerms{
		StartDate:      c.StartDate,
		DurationMonths: c.DurationMonths,
		PayCycleMonths: c.PayCycleMonths,
		UnitAmount:     c.UnitAmount,
	}
	if c.Kind == ContractKindAncillary {
		return AncillaryTerms{BillingTerms: common, EndDate: c.EndDate}
	}
	return RentalTerms{BillingTerms: common}
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderPayload is what a notification channel receives for one due payment.
type ReminderPayload struct {
	PaymentID    uuid.UUID       `json:"payment_id"`
	GuestName    string          `json:"guest_name"`
	Amount       decimal.Decimal `json:"amount"`
	ExpectedDate time.Time       `json:"expected_date"`
	ContractKind ContractKind    `json:"contract_kind"`
}

// DispatchResult lists every record the reminder run processed, including the
// records it had to skip because no guest could be resolved.
type DispatchResult struct {
	Count    int         `json:"count"`
	IDs      []uuid.UUID `json:"ids"`
	Notified int         `json:"notified"`
	Skipped  int         `json:"skipped"`
}

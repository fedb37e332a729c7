package schedule

import (
	"fmt"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// ExpectedLeadDays is how many days before period end a payment is expected.
	ExpectedLeadDays = 7
	// ReminderLeadDays is how many days before the expected date the guest is reminded.
	ReminderLeadDays = 7
)

// Period is one billing period derived from contract terms.
type Period struct {
	Index        int
	Start        time.Time
	End          time.Time
	ExpectedDate time.Time
	ReminderDate time.Time
	Amount       decimal.Decimal
}

// ExpectedDateFor derives the expected payment date of a period ending on periodEnd.
func ExpectedDateFor(periodEnd time.Time) time.Time {
	return AddDays(periodEnd, -ExpectedLeadDays)
}

// ReminderDateFor derives the reminder date from an expected date.
func ReminderDateFor(expected time.Time) time.Time {
	return AddDays(expected, -ReminderLeadDays)
}

// ValidateTerms rejects terms that can never produce a schedule.
func ValidateTerms(b domain.BillingTerms) error {
	if b.DurationMonths <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d months", domain.ErrBadRequest, b.DurationMonths)
	}
	if b.PayCycleMonths <= 0 {
		return fmt.Errorf("%w: pay cycle must be positive, got %d months", domain.ErrBadRequest, b.PayCycleMonths)
	}
	if b.StartDate.IsZero() {
		return fmt.Errorf("%w: contract start date is required", domain.ErrBadRequest)
	}
	if b.UnitAmount.IsNegative() {
		return fmt.Errorf("%w: unit amount must not be negative", domain.ErrBadRequest)
	}
	return nil
}

// Build derives the ordered billing periods for a contract. Every period start is
// computed from the contract start, not from the previous period, so clamping in one
// short month never drifts the rest of the schedule. Ancillary terms with an end date
// stop at the first period that would end after it.
func Build(terms domain.Terms) ([]Period, error) {
	b := terms.Billing()
	if err := ValidateTerms(b); err != nil {
		return nil, err
	}

	var limit *time.Time
	if anc, ok := terms.(domain.AncillaryTerms); ok && anc.EndDate != nil {
		end := domain.DateOf(*anc.EndDate)
		limit = &end
	}

	start := domain.DateOf(b.StartDate)
	n := PeriodCount(b.DurationMonths, b.PayCycleMonths)
	periods := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		periodStart := AddMonths(start, i*b.PayCycleMonths)
		periodEnd := AddMonths(periodStart, b.PayCycleMonths)
		if limit != nil && periodEnd.After(*limit) {
			break
		}
		expected := ExpectedDateFor(periodEnd)
		periods = append(periods, Period{
			Index:        i,
			Start:        periodStart,
			End:          periodEnd,
			ExpectedDate: expected,
			ReminderDate: ReminderDateFor(expected),
			Amount:       b.UnitAmount,
		})
	}
	return periods, nil
}

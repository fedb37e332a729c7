package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/shopspring/decimal"
)

// memPaymentRepo mirrors the SQL filters of the postgres store for property tests.
type memPaymentRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]domain.PaymentRecord
	order   []uuid.UUID
}

func newMemPaymentRepo(records ...domain.PaymentRecord) *memPaymentRepo {
	r := &memPaymentRepo{records: map[uuid.UUID]domain.PaymentRecord{}}
	for i := range records {
		_ = r.Create(context.Background(), &records[i])
	}
	return r
}

func (r *memPaymentRepo) Create(_ context.Context, p *domain.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.records[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (r *memPaymentRepo) Update(_ context.Context, p *domain.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[p.ID]; !ok {
		return fmt.Errorf("%w: payment %s", domain.ErrNotFound, p.ID)
	}
	p.UpdatedAt = time.Now()
	r.records[p.ID] = *p
	return nil
}

func (r *memPaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
	}
	delete(r.records, id)
	return nil
}

func (r *memPaymentRepo) filter(keep func(p domain.PaymentRecord) bool) []domain.PaymentRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.PaymentRecord{}
	for _, id := range r.order {
		if p, ok := r.records[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *memPaymentRepo) ListByContract(_ context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	return r.filter(func(p domain.PaymentRecord) bool {
		return (p.HomeContractID != nil && *p.HomeContractID == contractID) ||
			(p.ServiceContractID != nil && *p.ServiceContractID == contractID)
	}), nil
}

func (r *memPaymentRepo) ListByHome(_ context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error) {
	return r.filter(func(p domain.PaymentRecord) bool { return p.HomeID == homeID }), nil
}

func (r *memPaymentRepo) ListDue(_ context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	out := r.filter(func(p domain.PaymentRecord) bool {
		return p.Status == domain.PaymentStatusUnpaid && !p.ExpectedDate.Before(from) && !p.ExpectedDate.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpectedDate.Before(out[j].ExpectedDate) })
	return out, nil
}

func (r *memPaymentRepo) ListByReminderDate(_ context.Context, day time.Time) ([]domain.PaymentRecord, error) {
	return r.filter(func(p domain.PaymentRecord) bool {
		return p.Status == domain.PaymentStatusUnpaid && p.ReminderDate.Equal(day)
	}), nil
}

func (r *memPaymentRepo) ListPaidBetween(_ context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	return r.filter(func(p domain.PaymentRecord) bool {
		return p.Status == domain.PaymentStatusPaid && p.ActualDate != nil &&
			!p.ActualDate.Before(from) && p.ActualDate.Before(to)
	}), nil
}

func (r *memPaymentRepo) ListExpectedBetween(_ context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	return r.filter(func(p domain.PaymentRecord) bool {
		return !p.ExpectedDate.Before(from) && !p.ExpectedDate.After(to)
	}), nil
}

func (r *memPaymentRepo) CountPaid(_ context.Context, timezone string) (int64, int64, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, 0, err
	}
	var total, onTime int64
	for _, p := range r.filter(func(p domain.PaymentRecord) bool { return p.IsPaid() }) {
		total++
		if p.OnTimeIn(loc) {
			onTime++
		}
	}
	return total, onTime, nil
}

func (r *memPaymentRepo) MarkPaid(_ context.Context, id uuid.UUID, paidAt time.Time, received *decimal.Decimal) (*domain.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
	}
	p.Status = domain.PaymentStatusPaid
	p.ActualDate = &paidAt
	if received != nil {
		p.AmountReceived = *received
	}
	p.UpdatedAt = time.Now()
	r.records[id] = p
	return &p, nil
}

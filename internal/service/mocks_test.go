package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.PaymentRecord) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.PaymentRecord) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, homeID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) ListDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) ListByReminderDate(ctx context.Context, day time.Time) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) ListPaidBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) ListExpectedBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockPaymentRepo) CountPaid(ctx context.Context, timezone string) (int64, int64, error) {
	args := m.Called(ctx, timezone)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
func (m *MockPaymentRepo) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, received *decimal.Decimal) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, id, paidAt, received)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

// MockHomeRepo
type MockHomeRepo struct {
	mock.Mock
}

func (m *MockHomeRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockReceiverRepo
type MockReceiverRepo struct {
	mock.Mock
}

func (m *MockReceiverRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

// MockChannel
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) SendEmail(ctx context.Context, address string, payload domain.ReminderPayload) error {
	args := m.Called(ctx, address, payload)
	return args.Error(0)
}
func (m *MockChannel) SendSMS(ctx context.Context, number string, payload domain.ReminderPayload) error {
	args := m.Called(ctx, number, payload)
	return args.Error(0)
}

// MockCache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	args := m.Called(ctx, parts)
	return args.String(0), args.Error(1)
}
func (m *MockCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	args := m.Called(ctx, key, dest, loader)
	return args.Error(0)
}
func (m *MockCache) Bump(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

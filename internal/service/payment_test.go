package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(now time.Time) schedule.Clock {
	return schedule.Clock{Location: time.UTC, Now: func() time.Time { return now }}
}

func rentalContract(start time.Time, duration, cycle int, amount int64) *domain.Contract {
	return &domain.Contract{
		ID:             uuid.New(),
		Kind:           domain.ContractKindRental,
		HomeID:         uuid.New(),
		GuestID:        uuid.New(),
		StartDate:      start,
		DurationMonths: duration,
		PayCycleMonths: cycle,
		UnitAmount:     decimal.NewFromInt(amount),
		Status:         domain.ContractStatusActive,
	}
}

func notFound(what string, id uuid.UUID) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, id)
}

func TestPaymentService_GenerateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Rental", func(t *testing.T) {
		payments := newMemPaymentRepo()
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		contract := rentalContract(day(2024, time.January, 1), 12, 3, 3000000)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		records, err := svc.GenerateSchedule(ctx, contract.ID)
		require.NoError(t, err)
		require.Len(t, records, 4)

		ends := []time.Time{
			day(2024, time.April, 1),
			day(2024, time.July, 1),
			day(2024, time.October, 1),
			day(2025, time.January, 1),
		}
		for i, rec := range records {
			assert.NotEqual(t, uuid.Nil, rec.ID)
			assert.Equal(t, contract.HomeID, rec.HomeID)
			require.NotNil(t, rec.HomeContractID)
			assert.Equal(t, contract.ID, *rec.HomeContractID)
			assert.Nil(t, rec.ServiceContractID)
			assert.Equal(t, domain.PaymentKindRent, rec.Kind)
			assert.Equal(t, domain.PaymentStatusUnpaid, rec.Status)
			assert.Nil(t, rec.ActualDate)
			assert.True(t, rec.AmountExpected.Equal(decimal.NewFromInt(3000000)))
			assert.True(t, rec.AmountReceived.IsZero())
			assert.Equal(t, ends[i], rec.PeriodEnd)
			assert.Equal(t, ends[i].AddDate(0, 0, -7), rec.ExpectedDate)
			assert.Equal(t, ends[i].AddDate(0, 0, -14), rec.ReminderDate)
			if i > 0 {
				assert.Equal(t, records[i-1].PeriodEnd, rec.PeriodStart)
			}
		}

		stored, err := svc.ListByContract(ctx, contract.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 4)
	})

	t.Run("NotIdempotent", func(t *testing.T) {
		payments := newMemPaymentRepo()
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		contract := rentalContract(day(2024, time.January, 1), 6, 1, 100)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		_, err := svc.GenerateSchedule(ctx, contract.ID)
		require.NoError(t, err)
		_, err = svc.GenerateSchedule(ctx, contract.ID)
		require.NoError(t, err)

		stored, err := svc.ListByContract(ctx, contract.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 12)
	})

	t.Run("AncillaryEndDate", func(t *testing.T) {
		payments := newMemPaymentRepo()
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		end := day(2024, time.August, 15)
		contract := rentalContract(day(2024, time.January, 1), 12, 3, 200000)
		contract.Kind = domain.ContractKindAncillary
		contract.EndDate = &end
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		records, err := svc.GenerateSchedule(ctx, contract.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, rec := range records {
			assert.Equal(t, domain.PaymentKindService, rec.Kind)
			assert.Nil(t, rec.HomeContractID)
			require.NotNil(t, rec.ServiceContractID)
			assert.Equal(t, contract.ID, *rec.ServiceContractID)
			assert.False(t, rec.PeriodEnd.After(end))
		}
	})

	t.Run("ContractNotFound", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		id := uuid.New()
		contracts.On("GetByID", mock.Anything, id).Return(nil, notFound("contract", id))

		records, err := svc.GenerateSchedule(ctx, id)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Nil(t, records)
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidTerms", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		contract := rentalContract(day(2024, time.January, 1), 12, 0, 100)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		_, err := svc.GenerateSchedule(ctx, contract.ID)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailureStops", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.January, 1)))

		contract := rentalContract(day(2024, time.January, 1), 12, 3, 100)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)
		payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil).Once()
		payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.PaymentRecord")).Return(errors.New("connection reset")).Once()

		_, err := svc.GenerateSchedule(ctx, contract.ID)
		assert.Error(t, err)
		payments.AssertNumberOfCalls(t, "Create", 2)
	})
}

func TestPaymentService_CreatePayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)

	t.Run("ResolvesHomeFromRentalContract", func(t *testing.T) {
		payments := newMemPaymentRepo()
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		contract := rentalContract(day(2024, time.January, 1), 12, 1, 100)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		rec, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeContractID: &contract.ID,
			PeriodStart:    day(2024, time.March, 1),
			PeriodEnd:      day(2024, time.April, 1),
			AmountExpected: decimal.NewFromInt(5000000),
		})
		require.NoError(t, err)
		assert.Equal(t, contract.HomeID, rec.HomeID)
		assert.Equal(t, domain.PaymentKindRent, rec.Kind)
		assert.Equal(t, domain.PaymentStatusUnpaid, rec.Status)
		assert.Equal(t, day(2024, time.March, 25), rec.ExpectedDate)
		assert.Equal(t, day(2024, time.March, 18), rec.ReminderDate)

		got, err := svc.GetPayment(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
		assert.True(t, got.AmountExpected.Equal(decimal.NewFromInt(5000000)))
	})

	t.Run("ExplicitHomeWins", func(t *testing.T) {
		payments := newMemPaymentRepo()
		contracts := new(MockContractRepo)
		homes := new(MockHomeRepo)
		svc := NewPaymentService(payments, contracts, homes, new(MockReceiverRepo), nil, fixedClock(now))

		homeID := uuid.New()
		contract := rentalContract(day(2024, time.January, 1), 12, 1, 100)
		contract.Kind = domain.ContractKindAncillary
		homes.On("Exists", mock.Anything, homeID).Return(true, nil)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		rec, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:            &homeID,
			ServiceContractID: &contract.ID,
			PeriodStart:       day(2024, time.March, 1),
			PeriodEnd:         day(2024, time.April, 1),
		})
		require.NoError(t, err)
		assert.Equal(t, homeID, rec.HomeID)
		assert.Equal(t, domain.PaymentKindService, rec.Kind)
	})

	t.Run("MissingHome", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		homes := new(MockHomeRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), homes, new(MockReceiverRepo), nil, fixedClock(now))

		homeID := uuid.New()
		homes.On("Exists", mock.Anything, homeID).Return(false, nil)

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:      &homeID,
			Kind:        domain.PaymentKindRent,
			PeriodStart: day(2024, time.March, 1),
			PeriodEnd:   day(2024, time.April, 1),
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingReceiver", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		homes := new(MockHomeRepo)
		receivers := new(MockReceiverRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), homes, receivers, nil, fixedClock(now))

		homeID, receiverID := uuid.New(), uuid.New()
		homes.On("Exists", mock.Anything, homeID).Return(true, nil)
		receivers.On("Exists", mock.Anything, receiverID).Return(false, nil)

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:      &homeID,
			ReceiverID:  &receiverID,
			Kind:        domain.PaymentKindRent,
			PeriodStart: day(2024, time.March, 1),
			PeriodEnd:   day(2024, time.April, 1),
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ContractOfWrongKind", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		contract := rentalContract(day(2024, time.January, 1), 12, 1, 100)
		contracts.On("GetByID", mock.Anything, contract.ID).Return(contract, nil)

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			ServiceContractID: &contract.ID,
			PeriodStart:       day(2024, time.March, 1),
			PeriodEnd:         day(2024, time.April, 1),
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Unresolved", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			Kind:        domain.PaymentKindRent,
			PeriodStart: day(2024, time.March, 1),
			PeriodEnd:   day(2024, time.April, 1),
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidDates", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		homes := new(MockHomeRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), homes, new(MockReceiverRepo), nil, fixedClock(now))

		homeID := uuid.New()
		homes.On("Exists", mock.Anything, homeID).Return(true, nil)
		expected := day(2024, time.April, 10)

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:       &homeID,
			Kind:         domain.PaymentKindRent,
			PeriodStart:  day(2024, time.March, 1),
			PeriodEnd:    day(2024, time.April, 1),
			ExpectedDate: &expected,
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("PaidWithoutActualDate", func(t *testing.T) {
		payments := newMemPaymentRepo()
		homes := new(MockHomeRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), homes, new(MockReceiverRepo), nil, fixedClock(now))

		homeID := uuid.New()
		homes.On("Exists", mock.Anything, homeID).Return(true, nil)

		rec, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:         &homeID,
			Kind:           domain.PaymentKindService,
			Status:         domain.PaymentStatusPaid,
			PeriodStart:    day(2024, time.March, 1),
			PeriodEnd:      day(2024, time.April, 1),
			AmountReceived: decimal.NewFromInt(300000),
		})
		require.NoError(t, err)
		require.NotNil(t, rec.ActualDate)
		assert.Equal(t, now, *rec.ActualDate)
	})

	t.Run("CacheBumpFailureIsNotFatal", func(t *testing.T) {
		payments := newMemPaymentRepo()
		homes := new(MockHomeRepo)
		cache := new(MockCache)
		svc := NewPaymentService(payments, new(MockContractRepo), homes, new(MockReceiverRepo), cache, fixedClock(now))

		homeID := uuid.New()
		homes.On("Exists", mock.Anything, homeID).Return(true, nil)
		cache.On("Bump", mock.Anything).Return(errors.New("redis down"))

		_, err := svc.CreatePayment(ctx, CreatePaymentInput{
			HomeID:      &homeID,
			Kind:        domain.PaymentKindRent,
			PeriodStart: day(2024, time.March, 1),
			PeriodEnd:   day(2024, time.April, 1),
		})
		require.NoError(t, err)
		cache.AssertNumberOfCalls(t, "Bump", 1)
	})
}

func seedRecord(homeID uuid.UUID, expected time.Time) domain.PaymentRecord {
	return domain.PaymentRecord{
		HomeID:         homeID,
		Kind:           domain.PaymentKindRent,
		PeriodStart:    expected.AddDate(0, -1, 7),
		PeriodEnd:      expected.AddDate(0, 0, 7),
		ExpectedDate:   expected,
		ReminderDate:   expected.AddDate(0, 0, -7),
		Status:         domain.PaymentStatusUnpaid,
		AmountExpected: decimal.NewFromInt(1000000),
		AmountReceived: decimal.Zero,
	}
}

func TestPaymentService_UpdatePayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)

	t.Run("BackToUnpaidClearsActualDate", func(t *testing.T) {
		paidAt := now.Add(-time.Hour)
		seed := seedRecord(uuid.New(), day(2024, time.March, 25))
		seed.Status = domain.PaymentStatusPaid
		seed.ActualDate = &paidAt
		payments := newMemPaymentRepo(seed)
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		id := payments.order[0]
		unpaid := domain.PaymentStatusUnpaid
		note := "reverted by bank"
		rec, err := svc.UpdatePayment(ctx, id, domain.PaymentPatch{Status: &unpaid, Note: &note})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusUnpaid, rec.Status)
		assert.Nil(t, rec.ActualDate)
		assert.Equal(t, note, rec.Note)

		stored, err := svc.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, stored.ActualDate)
	})

	t.Run("InvalidPatchLeavesRecord", func(t *testing.T) {
		payments := newMemPaymentRepo(seedRecord(uuid.New(), day(2024, time.March, 25)))
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		id := payments.order[0]
		negative := decimal.NewFromInt(-1)
		_, err := svc.UpdatePayment(ctx, id, domain.PaymentPatch{AmountExpected: &negative})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))

		stored, err := svc.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.True(t, stored.AmountExpected.Equal(decimal.NewFromInt(1000000)))
	})

	t.Run("MissingContractReference", func(t *testing.T) {
		payments := newMemPaymentRepo(seedRecord(uuid.New(), day(2024, time.March, 25)))
		contracts := new(MockContractRepo)
		svc := NewPaymentService(payments, contracts, new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		contractID := uuid.New()
		contracts.On("GetByID", mock.Anything, contractID).Return(nil, notFound("contract", contractID))

		_, err := svc.UpdatePayment(ctx, payments.order[0], domain.PaymentPatch{HomeContractID: &contractID})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("UnknownRecord", func(t *testing.T) {
		svc := NewPaymentService(newMemPaymentRepo(), new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(now))

		_, err := svc.UpdatePayment(ctx, uuid.New(), domain.PaymentPatch{})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPaymentService_DeletePayment(t *testing.T) {
	ctx := context.Background()
	payments := newMemPaymentRepo(seedRecord(uuid.New(), day(2024, time.March, 25)))
	svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.March, 1)))

	id := payments.order[0]
	require.NoError(t, svc.DeletePayment(ctx, id))

	_, err := svc.GetPayment(ctx, id)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(svc.DeletePayment(ctx, id), domain.ErrNotFound))
}

func TestPaymentService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("RepeatOverwritesActualDate", func(t *testing.T) {
		payments := newMemPaymentRepo(seedRecord(uuid.New(), day(2024, time.March, 25)))
		now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
		clock := schedule.Clock{Location: time.UTC, Now: func() time.Time { return now }}
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, clock)

		id := payments.order[0]
		received := decimal.NewFromInt(1000000)
		first, err := svc.MarkPaid(ctx, id, &received)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, first.Status)
		require.NotNil(t, first.ActualDate)
		assert.Equal(t, now, *first.ActualDate)
		assert.True(t, first.AmountReceived.Equal(received))

		now = now.Add(48 * time.Hour)
		second, err := svc.MarkPaid(ctx, id, nil)
		require.NoError(t, err)
		require.NotNil(t, second.ActualDate)
		assert.True(t, second.ActualDate.After(*first.ActualDate))
		assert.True(t, second.AmountReceived.Equal(received))

		stored, err := svc.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, now, *stored.ActualDate)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.March, 1)))

		negative := decimal.NewFromInt(-5)
		_, err := svc.MarkPaid(ctx, uuid.New(), &negative)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		payments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownRecord", func(t *testing.T) {
		svc := NewPaymentService(newMemPaymentRepo(), new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.March, 1)))

		_, err := svc.MarkPaid(ctx, uuid.New(), nil)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPaymentService_ScanDue(t *testing.T) {
	ctx := context.Background()

	t.Run("WindowBounds", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil,
			fixedClock(time.Date(2024, time.September, 25, 15, 0, 0, 0, time.UTC)))

		payments.On("ListDue", mock.Anything, day(2024, time.September, 25), day(2024, time.October, 2)).
			Return([]domain.PaymentRecord{}, nil)

		records, err := svc.ScanDue(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, records)
		payments.AssertExpectations(t)
	})

	t.Run("FiltersAndOrders", func(t *testing.T) {
		home := uuid.New()
		paid := seedRecord(home, day(2024, time.September, 28))
		paidAt := day(2024, time.September, 20)
		paid.Status = domain.PaymentStatusPaid
		paid.ActualDate = &paidAt

		payments := newMemPaymentRepo(
			seedRecord(home, day(2024, time.October, 2)),
			seedRecord(home, day(2024, time.September, 24)),
			seedRecord(home, day(2024, time.September, 30)),
			seedRecord(home, day(2024, time.October, 3)),
			paid,
			seedRecord(home, day(2024, time.September, 25)),
		)
		svc := NewPaymentService(payments, new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil,
			fixedClock(day(2024, time.September, 25)))

		records, err := svc.ScanDue(ctx, 7)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, day(2024, time.September, 25), records[0].ExpectedDate)
		assert.Equal(t, day(2024, time.September, 30), records[1].ExpectedDate)
		assert.Equal(t, day(2024, time.October, 2), records[2].ExpectedDate)
	})

	t.Run("NegativeWindow", func(t *testing.T) {
		svc := NewPaymentService(new(MockPaymentRepo), new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.March, 1)))

		_, err := svc.ScanDue(ctx, -1)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("InvertedRange", func(t *testing.T) {
		svc := NewPaymentService(new(MockPaymentRepo), new(MockContractRepo), new(MockHomeRepo), new(MockReceiverRepo), nil, fixedClock(day(2024, time.March, 1)))

		_, err := svc.FindDue(ctx, day(2024, time.March, 10), day(2024, time.March, 1))
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})
}

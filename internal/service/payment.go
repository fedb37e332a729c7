package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	contractRepo repository.ContractRepository
	homeRepo     repository.HomeRepository
	receiverRepo repository.ReceiverRepository
	cache        ReportCache
	clock        schedule.Clock
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
	homeRepo repository.HomeRepository,
	receiverRepo repository.ReceiverRepository,
	cache ReportCache,
	clock schedule.Clock,
) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		homeRepo:     homeRepo,
		receiverRepo: receiverRepo,
		cache:        cache,
		clock:        clock,
	}
}

func (s *paymentService) GenerateSchedule(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	logger.EnterMethod("paymentService.GenerateSchedule", "contractID", contractID)

	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		logger.ExitMethodWithError("paymentService.GenerateSchedule", err, "contractID", contractID)
		return nil, err
	}
	if contract.Status != domain.ContractStatusActive {
		logger.Warn("Generating schedule for inactive contract", "contractID", contractID, "status", contract.Status)
	}

	terms := contract.Terms()
	periods, err := schedule.Build(terms)
	if err != nil {
		logger.ExitMethodWithError("paymentService.GenerateSchedule", err, "contractID", contractID)
		return nil, err
	}

	created := make([]domain.PaymentRecord, 0, len(periods))
	for _, period := range periods {
		rec := &domain.PaymentRecord{
			HomeID:         contract.HomeID,
			Kind:           terms.PaymentKind(),
			PeriodStart:    period.Start,
			PeriodEnd:      period.End,
			ReminderDate:   period.ReminderDate,
			ExpectedDate:   period.ExpectedDate,
			Status:         domain.PaymentStatusUnpaid,
			AmountExpected: period.Amount,
			AmountReceived: decimal.Zero,
		}
		id := contract.ID
		if contract.Kind == domain.ContractKindAncillary {
			rec.ServiceContractID = &id
		} else {
			rec.HomeContractID = &id
		}

		// No rollback: a failure here leaves the records written so far in place.
		if err := s.paymentRepo.Create(ctx, rec); err != nil {
			logger.ExitMethodWithError("paymentService.GenerateSchedule", err,
				"contractID", contractID, "written", len(created), "planned", len(periods))
			s.bumpCache(ctx)
			return nil, err
		}
		created = append(created, *rec)
	}
	s.bumpCache(ctx)

	logger.Info("Payment schedule generated", "contractID", contractID, "kind", contract.Kind, "records", len(created))
	logger.ExitMethod("paymentService.GenerateSchedule", "contractID", contractID, "count", len(created))
	return created, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (*domain.PaymentRecord, error) {
	logger.EnterMethod("paymentService.CreatePayment", "homeID", in.HomeID, "homeContractID", in.HomeContractID, "serviceContractID", in.ServiceContractID)

	refs, err := s.checkReferences(ctx, in.HomeID, in.HomeContractID, in.ServiceContractID, in.ReceiverID)
	if err != nil {
		logger.ExitMethodWithError("paymentService.CreatePayment", err)
		return nil, err
	}

	resolved, ok := ResolveHome(in.HomeID, refs.homeContract, refs.serviceContract).(HomeResolved)
	if !ok {
		err := fmt.Errorf("%w: home or contract reference required", domain.ErrBadRequest)
		logger.ExitMethodWithError("paymentService.CreatePayment", err)
		return nil, err
	}

	kind := in.Kind
	if kind == "" {
		switch {
		case refs.homeContract != nil:
			kind = domain.PaymentKindRent
		case refs.serviceContract != nil:
			kind = domain.PaymentKindService
		default:
			err := fmt.Errorf("%w: payment kind is required without a contract reference", domain.ErrBadRequest)
			logger.ExitMethodWithError("paymentService.CreatePayment", err)
			return nil, err
		}
	}
	status := in.Status
	if status == "" {
		status = domain.PaymentStatusUnpaid
	}

	rec := &domain.PaymentRecord{
		HomeID:            resolved.HomeID,
		HomeContractID:    in.HomeContractID,
		ServiceContractID: in.ServiceContractID,
		ReceiverID:        in.ReceiverID,
		Kind:              kind,
		PeriodStart:       domain.DateOf(in.PeriodStart),
		PeriodEnd:         domain.DateOf(in.PeriodEnd),
		Status:            status,
		ActualDate:        in.ActualDate,
		AmountExpected:    in.AmountExpected,
		AmountReceived:    in.AmountReceived,
		Note:              in.Note,
	}
	if in.ExpectedDate != nil {
		rec.ExpectedDate = domain.DateOf(*in.ExpectedDate)
	} else {
		rec.ExpectedDate = schedule.ExpectedDateFor(rec.PeriodEnd)
	}
	if in.ReminderDate != nil {
		rec.ReminderDate = domain.DateOf(*in.ReminderDate)
	} else {
		rec.ReminderDate = schedule.ReminderDateFor(rec.ExpectedDate)
	}
	s.syncActualDate(rec)

	if err := rec.Validate(); err != nil {
		logger.ExitMethodWithError("paymentService.CreatePayment", err)
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, rec); err != nil {
		logger.ExitMethodWithError("paymentService.CreatePayment", err)
		return nil, err
	}
	s.bumpCache(ctx)

	logger.ExitMethod("paymentService.CreatePayment", "paymentID", rec.ID, "homeID", rec.HomeID, "homeSource", resolved.Source)
	return rec, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) UpdatePayment(ctx context.Context, id uuid.UUID, patch domain.PaymentPatch) (*domain.PaymentRecord, error) {
	logger.EnterMethod("paymentService.UpdatePayment", "paymentID", id)

	rec, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("paymentService.UpdatePayment", err, "paymentID", id)
		return nil, err
	}
	if _, err := s.checkReferences(ctx, patch.HomeID, patch.HomeContractID, patch.ServiceContractID, patch.ReceiverID); err != nil {
		logger.ExitMethodWithError("paymentService.UpdatePayment", err, "paymentID", id)
		return nil, err
	}

	patch.Apply(rec)
	s.syncActualDate(rec)

	if err := rec.Validate(); err != nil {
		logger.ExitMethodWithError("paymentService.UpdatePayment", err, "paymentID", id)
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, rec); err != nil {
		logger.ExitMethodWithError("paymentService.UpdatePayment", err, "paymentID", id)
		return nil, err
	}
	s.bumpCache(ctx)

	logger.ExitMethod("paymentService.UpdatePayment", "paymentID", id, "status", rec.Status)
	return rec, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	logger.EnterMethod("paymentService.DeletePayment", "paymentID", id)

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("paymentService.DeletePayment", err, "paymentID", id)
		return err
	}
	s.bumpCache(ctx)

	logger.ExitMethod("paymentService.DeletePayment", "paymentID", id)
	return nil
}

func (s *paymentService) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.ListByContract(ctx, contractID)
}

func (s *paymentService) ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.ListByHome(ctx, homeID)
}

func (s *paymentService) FindDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: due window end %s is before start %s",
			domain.ErrBadRequest, domain.FormatDate(to), domain.FormatDate(from))
	}
	return s.paymentRepo.ListDue(ctx, from, to)
}

func (s *paymentService) ScanDue(ctx context.Context, windowDays int) ([]domain.PaymentRecord, error) {
	if windowDays < 0 {
		return nil, fmt.Errorf("%w: window must not be negative, got %d days", domain.ErrBadRequest, windowDays)
	}
	from := s.clock.Today()
	return s.FindDue(ctx, from, schedule.AddDays(from, windowDays))
}

func (s *paymentService) MarkPaid(ctx context.Context, id uuid.UUID, received *decimal.Decimal) (*domain.PaymentRecord, error) {
	logger.EnterMethod("paymentService.MarkPaid", "paymentID", id)

	if received != nil && received.IsNegative() {
		err := fmt.Errorf("%w: received amount must not be negative", domain.ErrBadRequest)
		logger.ExitMethodWithError("paymentService.MarkPaid", err, "paymentID", id)
		return nil, err
	}

	rec, err := s.paymentRepo.MarkPaid(ctx, id, s.clock.Instant(), received)
	if err != nil {
		logger.ExitMethodWithError("paymentService.MarkPaid", err, "paymentID", id)
		return nil, err
	}
	s.bumpCache(ctx)

	logger.WithPayment(id).Info("Payment marked paid", "actualDate", rec.ActualDate, "amountReceived", rec.AmountReceived.String())
	logger.ExitMethod("paymentService.MarkPaid", "paymentID", id)
	return rec, nil
}

type loadedRefs struct {
	homeContract    *domain.Contract
	serviceContract *domain.Contract
}

// checkReferences verifies every non-nil reference against its source, before any write.
func (s *paymentService) checkReferences(ctx context.Context, homeID, homeContractID, serviceContractID, receiverID *uuid.UUID) (loadedRefs, error) {
	var refs loadedRefs

	if homeID != nil {
		found, err := s.homeRepo.Exists(ctx, *homeID)
		if err != nil {
			return refs, err
		}
		if !found {
			return refs, fmt.Errorf("%w: home %s", domain.ErrNotFound, *homeID)
		}
	}
	if homeContractID != nil {
		c, err := s.loadContract(ctx, *homeContractID, domain.ContractKindRental)
		if err != nil {
			return refs, err
		}
		refs.homeContract = c
	}
	if serviceContractID != nil {
		c, err := s.loadContract(ctx, *serviceContractID, domain.ContractKindAncillary)
		if err != nil {
			return refs, err
		}
		refs.serviceContract = c
	}
	if receiverID != nil {
		found, err := s.receiverRepo.Exists(ctx, *receiverID)
		if err != nil {
			return refs, err
		}
		if !found {
			return refs, fmt.Errorf("%w: receiver %s", domain.ErrNotFound, *receiverID)
		}
	}
	return refs, nil
}

func (s *paymentService) loadContract(ctx context.Context, id uuid.UUID, kind domain.ContractKind) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Kind != kind {
		return nil, fmt.Errorf("%w: %s contract %s", domain.ErrNotFound, kind, id)
	}
	return c, nil
}

// syncActualDate keeps actualDate present exactly when the record is PAID.
func (s *paymentService) syncActualDate(rec *domain.PaymentRecord) {
	switch rec.Status {
	case domain.PaymentStatusPaid:
		if rec.ActualDate == nil {
			now := s.clock.Instant()
			rec.ActualDate = &now
		}
	case domain.PaymentStatusUnpaid:
		rec.ActualDate = nil
	}
}

func (s *paymentService) bumpCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		logger.Warn("Report cache bump failed", "error", err)
	}
}

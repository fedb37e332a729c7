package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
)

var errNoGuest = errors.New("no contract reference resolves a guest")

type reminderService struct {
	paymentRepo  repository.PaymentRepository
	contractRepo repository.ContractRepository
	guestRepo    repository.GuestRepository
	channel      NotificationChannel
	clock        schedule.Clock
}

func NewReminderService(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
	guestRepo repository.GuestRepository,
	channel NotificationChannel,
	clock schedule.Clock,
) ReminderService {
	return &reminderService{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		guestRepo:    guestRepo,
		channel:      channel,
		clock:        clock,
	}
}

// DispatchReminders notifies the guest of every UNPAID record whose reminder date is
// today. Records without a resolvable guest are skipped, and channel failures are only
// logged; both still count as processed.
func (s *reminderService) DispatchReminders(ctx context.Context) (*domain.DispatchResult, error) {
	today := s.clock.Today()
	logger.EnterMethod("reminderService.DispatchReminders", "date", domain.FormatDate(today))

	due, err := s.paymentRepo.ListByReminderDate(ctx, today)
	if err != nil {
		logger.ExitMethodWithError("reminderService.DispatchReminders", err)
		return nil, err
	}

	result := &domain.DispatchResult{IDs: make([]uuid.UUID, 0, len(due))}
	for i := range due {
		p := &due[i]
		result.IDs = append(result.IDs, p.ID)

		guest, contract, err := s.resolveGuest(ctx, p)
		if err != nil {
			logger.WithPayment(p.ID).Warn("Skipping reminder", "reason", err)
			result.Skipped++
			continue
		}

		payload := domain.ReminderPayload{
			PaymentID:    p.ID,
			GuestName:    guest.FullName,
			Amount:       p.AmountExpected,
			ExpectedDate: p.ExpectedDate,
			ContractKind: contract.Kind,
		}
		if s.notify(ctx, guest, payload) {
			result.Notified++
		}
	}
	result.Count = len(result.IDs)

	logger.Info("Payment reminders dispatched", "date", domain.FormatDate(today),
		"processed", result.Count, "notified", result.Notified, "skipped", result.Skipped)
	logger.ExitMethod("reminderService.DispatchReminders", "count", result.Count)
	return result, nil
}

// resolveGuest follows the rental contract first, then the ancillary one.
func (s *reminderService) resolveGuest(ctx context.Context, p *domain.PaymentRecord) (*domain.Guest, *domain.Contract, error) {
	var lastErr error = errNoGuest
	for _, ref := range []*uuid.UUID{p.HomeContractID, p.ServiceContractID} {
		if ref == nil {
			continue
		}
		contract, err := s.contractRepo.GetByID(ctx, *ref)
		if err != nil {
			lastErr = fmt.Errorf("contract %s: %w", *ref, err)
			continue
		}
		guest, err := s.guestRepo.GetByID(ctx, contract.GuestID)
		if err != nil {
			lastErr = fmt.Errorf("guest %s: %w", contract.GuestID, err)
			continue
		}
		return guest, contract, nil
	}
	return nil, nil, lastErr
}

// notify reports whether at least one channel accepted the request.
func (s *reminderService) notify(ctx context.Context, guest *domain.Guest, payload domain.ReminderPayload) bool {
	handed := false
	if guest.Email != "" {
		if err := s.channel.SendEmail(ctx, guest.Email, payload); err != nil {
			logger.WithPayment(payload.PaymentID).Warn("Email reminder hand-off failed", "error", err)
		} else {
			handed = true
		}
	}
	if guest.Phone != "" {
		if err := s.channel.SendSMS(ctx, guest.Phone, payload); err != nil {
			logger.WithPayment(payload.PaymentID).Warn("SMS reminder hand-off failed", "error", err)
		} else {
			handed = true
		}
	}
	return handed
}

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
	"github.com/shopspring/decimal"
)

// createPaymentRequest is the body of POST /invoice-payments. Dates are YYYY-MM-DD.
type createPaymentRequest struct {
	HomeID            *string          `json:"home_id"`
	HomeContractID    *string          `json:"home_contract_id"`
	ServiceContractID *string          `json:"service_contract_id"`
	ReceiverID        *string          `json:"receiver_id"`
	Kind              string           `json:"kind" validate:"omitempty,oneof=RENT SERVICE"`
	PeriodStart       string           `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd         string           `json:"period_end" validate:"required,datetime=2006-01-02"`
	ExpectedDate      *string          `json:"expected_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderDate      *string          `json:"reminder_date" validate:"omitempty,datetime=2006-01-02"`
	Status            string           `json:"status" validate:"omitempty,oneof=UNPAID PAID"`
	ActualDate        *time.Time       `json:"actual_date"`
	AmountExpected    *decimal.Decimal `json:"amount_expected"`
	AmountReceived    *decimal.Decimal `json:"amount_received"`
	Note              string           `json:"note" validate:"max=1000"`
}

// updatePaymentRequest is the body of PATCH /invoice-payments/{id}. Absent fields stay.
type updatePaymentRequest struct {
	HomeID            *string          `json:"home_id"`
	HomeContractID    *string          `json:"home_contract_id"`
	ServiceContractID *string          `json:"service_contract_id"`
	ReceiverID        *string          `json:"receiver_id"`
	Kind              *string          `json:"kind" validate:"omitempty,oneof=RENT SERVICE"`
	PeriodStart       *string          `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd         *string          `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
	ExpectedDate      *string          `json:"expected_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderDate      *string          `json:"reminder_date" validate:"omitempty,datetime=2006-01-02"`
	Status            *string          `json:"status" validate:"omitempty,oneof=UNPAID PAID"`
	ActualDate        *time.Time       `json:"actual_date"`
	AmountExpected    *decimal.Decimal `json:"amount_expected"`
	AmountReceived    *decimal.Decimal `json:"amount_received"`
	Note              *string          `json:"note" validate:"omitempty,max=1000"`
}

type markPaidRequest struct {
	AmountReceived *decimal.Decimal `json:"amount_received"`
}

func optionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := domain.ParseID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrBadRequest, *raw)
	}
	return &d, nil
}

func (req *createPaymentRequest) toInput() (service.CreatePaymentInput, error) {
	var in service.CreatePaymentInput
	var err error
	if in.HomeID, err = optionalID(req.HomeID); err != nil {
		return in, err
	}
	if in.HomeContractID, err = optionalID(req.HomeContractID); err != nil {
		return in, err
	}
	if in.ServiceContractID, err = optionalID(req.ServiceContractID); err != nil {
		return in, err
	}
	if in.ReceiverID, err = optionalID(req.ReceiverID); err != nil {
		return in, err
	}
	start, err := optionalDate(&req.PeriodStart)
	if err != nil {
		return in, err
	}
	end, err := optionalDate(&req.PeriodEnd)
	if err != nil {
		return in, err
	}
	in.PeriodStart, in.PeriodEnd = *start, *end
	if in.ExpectedDate, err = optionalDate(req.ExpectedDate); err != nil {
		return in, err
	}
	if in.ReminderDate, err = optionalDate(req.ReminderDate); err != nil {
		return in, err
	}

	in.Kind = domain.PaymentKind(req.Kind)
	in.Status = domain.PaymentStatus(req.Status)
	in.ActualDate = req.ActualDate
	in.AmountExpected, in.AmountReceived = decimal.Zero, decimal.Zero
	if req.AmountExpected != nil {
		in.AmountExpected = *req.AmountExpected
	}
	if req.AmountReceived != nil {
		in.AmountReceived = *req.AmountReceived
	}
	in.Note = req.Note
	return in, nil
}

func (req *updatePaymentRequest) toPatch() (domain.PaymentPatch, error) {
	var patch domain.PaymentPatch
	var err error
	if patch.HomeID, err = optionalID(req.HomeID); err != nil {
		return patch, err
	}
	if patch.HomeContractID, err = optionalID(req.HomeContractID); err != nil {
		return patch, err
	}
	if patch.ServiceContractID, err = optionalID(req.ServiceContractID); err != nil {
		return patch, err
	}
	if patch.ReceiverID, err = optionalID(req.ReceiverID); err != nil {
		return patch, err
	}
	if patch.PeriodStart, err = optionalDate(req.PeriodStart); err != nil {
		return patch, err
	}
	if patch.PeriodEnd, err = optionalDate(req.PeriodEnd); err != nil {
		return patch, err
	}
	if patch.ExpectedDate, err = optionalDate(req.ExpectedDate); err != nil {
		return patch, err
	}
	if patch.ReminderDate, err = optionalDate(req.ReminderDate); err != nil {
		return patch, err
	}
	if req.Kind != nil {
		kind := domain.PaymentKind(*req.Kind)
		patch.Kind = &kind
	}
	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		patch.Status = &status
	}
	patch.ActualDate = req.ActualDate
	patch.AmountExpected = req.AmountExpected
	patch.AmountReceived = req.AmountReceived
	patch.Note = req.Note
	return patch, nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return domain.ParseID(mux.Vars(r)[name])
}

// POST /api/v1/invoice-payments
func (s *Server) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.payments.CreatePayment(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// GET /api/v1/invoice-payments/{id}
func (s *Server) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.payments.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// PATCH /api/v1/invoice-payments/{id}
func (s *Server) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updatePaymentRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.payments.UpdatePayment(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// PATCH /api/v1/invoice-payments/{id}/paid
func (s *Server) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req markPaidRequest
	if r.ContentLength != 0 {
		if err := s.decodeAndValidate(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	}
	rec, err := s.payments.MarkPaid(r.Context(), id, req.AmountReceived)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DELETE /api/v1/invoice-payments/{id}
func (s *Server) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.payments.DeletePayment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/invoice-payments/contract/{contractId}
func (s *Server) ListByContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "contractId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := s.payments.ListByContract(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GET /api/v1/invoice-payments/home/{homeId}
func (s *Server) ListByHome(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "homeId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := s.payments.ListByHome(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GET /api/v1/invoice-payments/due?days=7
func (s *Server) ScanDue(w http.ResponseWriter, r *http.Request) {
	days, err := s.windowDays(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := s.payments.ScanDue(r.Context(), days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// POST /api/v1/invoice-payments/generate/{contractId}
func (s *Server) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "contractId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := s.payments.GenerateSchedule(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, records)
}

// POST /api/v1/reminders/dispatch
func (s *Server) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	result, err := s.reminders.DispatchReminders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) windowDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return s.dueWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: days must be an integer, got %q", domain.ErrBadRequest, raw)
	}
	return days, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, home_id, home_contract_id, service_contract_id, receiver_id, kind,
		period_start, period_end, reminder_date, expected_date, actual_date, status,
		amount_expected, amount_received, COALESCE(note, ''), created_at, updated_at`

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*domain.PaymentRecord, error) {
	p := &domain.PaymentRecord{}
	err := row.Scan(
		&p.ID, &p.HomeID, &p.HomeContractID, &p.ServiceContractID, &p.ReceiverID, &p.Kind,
		&p.PeriodStart, &p.PeriodEnd, &p.ReminderDate, &p.ExpectedDate, &p.ActualDate, &p.Status,
		&p.AmountExpected, &p.AmountReceived, &p.Note, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.PaymentRecord) error {
	logger.EnterMethod("paymentRepository.Create", "homeID", p.HomeID, "kind", p.Kind, "periodStart", domain.FormatDate(p.PeriodStart))

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	query := `
		INSERT INTO invoice_payments (
			id, home_id, home_contract_id, service_contract_id, receiver_id, kind,
			period_start, period_end, reminder_date, expected_date, actual_date, status,
			amount_expected, amount_received, note, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	logger.DatabaseCall("insert", "invoice_payments", "paymentID", p.ID)
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.HomeID, p.HomeContractID, p.ServiceContractID, p.ReceiverID, p.Kind,
		p.PeriodStart, p.PeriodEnd, p.ReminderDate, p.ExpectedDate, p.ActualDate, p.Status,
		p.AmountExpected, p.AmountReceived, p.Note, now, now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.DatabaseResult("insert", 0, err, "paymentID", p.ID)
		logger.ExitMethodWithError("paymentRepository.Create", err, "paymentID", p.ID)
		return translateError(err)
	}

	logger.DatabaseResult("insert", 1, nil, "paymentID", p.ID)
	logger.ExitMethod("paymentRepository.Create", "paymentID", p.ID)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	logger.EnterMethod("paymentRepository.GetByID", "paymentID", id)

	query := `SELECT ` + paymentColumns + ` FROM invoice_payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.GetByID", err, "paymentID", id)
		return nil, translateError(err)
	}

	logger.ExitMethod("paymentRepository.GetByID", "paymentID", id)
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.PaymentRecord) error {
	logger.EnterMethod("paymentRepository.Update", "paymentID", p.ID, "status", p.Status)

	query := `
		UPDATE invoice_payments SET
			home_id = $1, home_contract_id = $2, service_contract_id = $3, receiver_id = $4, kind = $5,
			period_start = $6, period_end = $7, reminder_date = $8, expected_date = $9, actual_date = $10,
			status = $11, amount_expected = $12, amount_received = $13, note = $14, updated_at = $15
		WHERE id = $16
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.HomeID, p.HomeContractID, p.ServiceContractID, p.ReceiverID, p.Kind,
		p.PeriodStart, p.PeriodEnd, p.ReminderDate, p.ExpectedDate, p.ActualDate,
		p.Status, p.AmountExpected, p.AmountReceived, p.Note, time.Now(),
		p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Update", err, "paymentID", p.ID)
		return translateError(err)
	}

	logger.ExitMethod("paymentRepository.Update", "paymentID", p.ID)
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.EnterMethod("paymentRepository.Delete", "paymentID", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM invoice_payments WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Delete", err, "paymentID", id)
		return translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Delete", err, "paymentID", id)
		return err
	}
	logger.DatabaseResult("delete", affected, nil, "paymentID", id)
	if affected == 0 {
		err = fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
		logger.ExitMethodWithError("paymentRepository.Delete", err, "paymentID", id)
		return err
	}

	logger.ExitMethod("paymentRepository.Delete", "paymentID", id)
	return nil
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE home_contract_id = $1 OR service_contract_id = $1
		ORDER BY period_start ASC, created_at ASC`
	return r.list(ctx, "paymentRepository.ListByContract", query, contractID)
}

func (r *paymentRepository) ListByHome(ctx context.Context, homeID uuid.UUID) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE home_id = $1
		ORDER BY period_start ASC, created_at ASC`
	return r.list(ctx, "paymentRepository.ListByHome", query, homeID)
}

func (r *paymentRepository) ListDue(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE status = $1 AND expected_date BETWEEN $2 AND $3
		ORDER BY expected_date ASC, id ASC`
	return r.list(ctx, "paymentRepository.ListDue", query, domain.PaymentStatusUnpaid, from, to)
}

func (r *paymentRepository) ListByReminderDate(ctx context.Context, day time.Time) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE status = $1 AND reminder_date = $2
		ORDER BY expected_date ASC, id ASC`
	return r.list(ctx, "paymentRepository.ListByReminderDate", query, domain.PaymentStatusUnpaid, day)
}

func (r *paymentRepository) ListPaidBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE status = $1 AND actual_date >= $2 AND actual_date < $3
		ORDER BY actual_date ASC`
	return r.list(ctx, "paymentRepository.ListPaidBetween", query, domain.PaymentStatusPaid, from, to)
}

func (r *paymentRepository) ListExpectedBetween(ctx context.Context, from, to time.Time) ([]domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM invoice_payments
		WHERE expected_date BETWEEN $1 AND $2
		ORDER BY expected_date ASC`
	return r.list(ctx, "paymentRepository.ListExpectedBetween", query, from, to)
}

func (r *paymentRepository) CountPaid(ctx context.Context, timezone string) (int64, int64, error) {
	logger.EnterMethod("paymentRepository.CountPaid", "timezone", timezone)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE (actual_date AT TIME ZONE $1)::date <= expected_date)
		FROM invoice_payments
		WHERE status = $2
	`
	var total, onTime int64
	if err := r.db.QueryRowContext(ctx, query, timezone, domain.PaymentStatusPaid).Scan(&total, &onTime); err != nil {
		logger.ExitMethodWithError("paymentRepository.CountPaid", err)
		return 0, 0, translateError(err)
	}

	logger.ExitMethod("paymentRepository.CountPaid", "total", total, "onTime", onTime)
	return total, onTime, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, received *decimal.Decimal) (*domain.PaymentRecord, error) {
	logger.EnterMethod("paymentRepository.MarkPaid", "paymentID", id, "paidAt", paidAt)

	query := `
		UPDATE invoice_payments SET
			status = $1, actual_date = $2,
			amount_received = COALESCE($3::numeric, amount_received),
			updated_at = $4
		WHERE id = $5
		RETURNING ` + paymentColumns
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, domain.PaymentStatusPaid, paidAt, received, time.Now(), id))
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.MarkPaid", err, "paymentID", id)
		return nil, translateError(err)
	}

	logger.ExitMethod("paymentRepository.MarkPaid", "paymentID", id)
	return p, nil
}

func (r *paymentRepository) list(ctx context.Context, method, query string, args ...any) ([]domain.PaymentRecord, error) {
	logger.EnterMethod(method, "args", args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, translateError(err)
	}
	defer rows.Close()

	payments := []domain.PaymentRecord{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			logger.ExitMethodWithError(method, err)
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, err
	}

	logger.ExitMethod(method, "count", len(payments))
	return payments, nil
}

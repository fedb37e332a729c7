package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

// GetByID looks the id up in both contract tables; rental contracts never carry an
// end date.
func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	logger.EnterMethod("contractRepository.GetByID", "contractID", id)

	query := `
		SELECT id, 'RENTAL' AS kind, home_id, guest_id, start_date, duration_months,
		       pay_cycle_months, rent_amount, NULL::date AS end_date, status
		FROM home_contracts WHERE id = $1
		UNION ALL
		SELECT id, 'ANCILLARY' AS kind, home_id, guest_id, start_date, duration_months,
		       pay_cycle_months, unit_cost, end_date, status
		FROM service_contracts WHERE id = $1
		LIMIT 1
	`
	c := &domain.Contract{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Kind, &c.HomeID, &c.GuestID, &c.StartDate, &c.DurationMonths,
		&c.PayCycleMonths, &c.UnitAmount, &c.EndDate, &c.Status,
	)
	if err != nil {
		logger.ExitMethodWithError("contractRepository.GetByID", err, "contractID", id)
		return nil, translateError(err)
	}

	logger.ExitMethod("contractRepository.GetByID", "contractID", id, "kind", c.Kind)
	return c, nil
}

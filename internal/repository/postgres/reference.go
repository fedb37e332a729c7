package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository"
)

type homeRepository struct {
	db *sql.DB
}

func NewHomeRepository(db *sql.DB) repository.HomeRepository {
	return &homeRepository{db: db}
}

func (r *homeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, "homeRepository.Exists", `SELECT EXISTS(SELECT 1 FROM homes WHERE id = $1)`, id)
}

type receiverRepository struct {
	db *sql.DB
}

func NewReceiverRepository(db *sql.DB) repository.ReceiverRepository {
	return &receiverRepository{db: db}
}

func (r *receiverRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, "receiverRepository.Exists", `SELECT EXISTS(SELECT 1 FROM receivers WHERE id = $1)`, id)
}

func exists(ctx context.Context, db *sql.DB, method, query string, id uuid.UUID) (bool, error) {
	logger.EnterMethod(method, "id", id)

	var found bool
	if err := db.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return false, translateError(err)
	}

	logger.ExitMethod(method, "id", id, "exists", found)
	return found, nil
}

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Guest, error) {
	logger.EnterMethod("guestRepository.GetByID", "guestID", id)

	query := `SELECT id, fullname, COALESCE(phone, ''), COALESCE(email, '') FROM guests WHERE id = $1`
	g := &domain.Guest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.FullName, &g.Phone, &g.Email)
	if err != nil {
		logger.ExitMethodWithError("guestRepository.GetByID", err, "guestID", id)
		return nil, translateError(err)
	}

	logger.ExitMethod("guestRepository.GetByID", "guestID", id)
	return g, nil
}

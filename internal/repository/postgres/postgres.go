package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PaymentRepository
	Contracts repository.ContractRepository
	Homes     repository.HomeRepository
	Receivers repository.ReceiverRepository
	Guests    repository.GuestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		PaymentRepository: NewPaymentRepository(db),
		Contracts:         NewContractRepository(db),
		Homes:             NewHomeRepository(db),
		Receivers:         NewReceiverRepository(db),
		Guests:            NewGuestRepository(db),
	}
}

// Open connects to PostgreSQL and verifies the connection
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Ping reports whether the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kidiezyllex/real-estate-BE/internal/config"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/repository/postgres"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
)

type Home struct {
	ID      uuid.UUID `yaml:"id"`
	Name    string    `yaml:"name"`
	Address string    `yaml:"address"`
}

type Receiver struct {
	ID          uuid.UUID `yaml:"id"`
	Name        string    `yaml:"name"`
	BankAccount string    `yaml:"bank_account"`
}

type Guest struct {
	ID       uuid.UUID `yaml:"id"`
	FullName string    `yaml:"fullname"`
	Phone    string    `yaml:"phone"`
	Email    string    `yaml:"email"`
}

type Contract struct {
	ID             uuid.UUID       `yaml:"id"`
	HomeID         uuid.UUID       `yaml:"home_id"`
	GuestID        uuid.UUID       `yaml:"guest_id"`
	StartDate      string          `yaml:"start_date"`
	EndDate        string          `yaml:"end_date"`
	DurationMonths int             `yaml:"duration_months"`
	PayCycleMonths int             `yaml:"pay_cycle_months"`
	Amount         decimal.Decimal `yaml:"amount"`
}

// SeedData is the fixture file layout.
type SeedData struct {
	ConfigFile       string     `yaml:"config_file"`
	Homes            []Home     `yaml:"homes"`
	Receivers        []Receiver `yaml:"receivers"`
	Guests           []Guest    `yaml:"guests"`
	HomeContracts    []Contract `yaml:"home_contracts"`
	ServiceContracts []Contract `yaml:"service_contracts"`
}

func main() {
	seedFile := flag.String("file", "db/seed.dev.yaml", "Path to the seed fixture")
	generate := flag.Bool("generate", false, "Generate payment schedules for every seeded contract")
	flag.Parse()

	data, err := readSeedFile(*seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	cfg, err := config.Load(resolvePath(data.ConfigFile))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	if err := populateData(ctx, db, data); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data populated",
		"homes", len(data.Homes),
		"guests", len(data.Guests),
		"home_contracts", len(data.HomeContracts),
		"service_contracts", len(data.ServiceContracts))

	if !*generate {
		return
	}

	store := postgres.NewStore(db)
	payments := service.NewPaymentService(store.PaymentRepository, store.Contracts, store.Homes, store.Receivers, nil, schedule.NewClock(cfg.Location()))
	for _, group := range [][]Contract{data.HomeContracts, data.ServiceContracts} {
		for _, c := range group {
			records, err := payments.GenerateSchedule(ctx, c.ID)
			if err != nil {
				log.Fatalf("Failed to generate schedule for contract %s: %v", c.ID, err)
			}
			logger.Info("Generated schedule", "contractID", c.ID, "records", len(records))
		}
	}
}

func readSeedFile(filename string) (*SeedData, error) {
	raw, err := os.ReadFile(resolvePath(filename))
	if err != nil {
		return nil, err
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.ConfigFile == "" {
		data.ConfigFile = "config/config.dev.yaml"
	}
	return &data, nil
}

// resolvePath tries the path as given, then relative to the module root.
func resolvePath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		dir = parent
	}
}

func nullableDate(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return d, nil
}

func populateData(ctx context.Context, db *sql.DB, data *SeedData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, h := range data.Homes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO homes (id, name, address) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address
		`, h.ID, h.Name, h.Address); err != nil {
			return fmt.Errorf("insert home %s: %w", h.ID, err)
		}
	}
	for _, r := range data.Receivers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO receivers (id, name, bank_account) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, bank_account = EXCLUDED.bank_account
		`, r.ID, r.Name, r.BankAccount); err != nil {
			return fmt.Errorf("insert receiver %s: %w", r.ID, err)
		}
	}
	for _, g := range data.Guests {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO guests (id, fullname, phone, email) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET fullname = EXCLUDED.fullname, phone = EXCLUDED.phone, email = EXCLUDED.email
		`, g.ID, g.FullName, g.Phone, g.Email); err != nil {
			return fmt.Errorf("insert guest %s: %w", g.ID, err)
		}
	}
	for _, c := range data.HomeContracts {
		start, err := domain.ParseDate(c.StartDate)
		if err != nil {
			return fmt.Errorf("home contract %s: invalid start date %q", c.ID, c.StartDate)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO home_contracts (id, home_id, guest_id, start_date, duration_months, pay_cycle_months, rent_amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.HomeID, c.GuestID, start, c.DurationMonths, c.PayCycleMonths, c.Amount, domain.ContractStatusActive); err != nil {
			return fmt.Errorf("insert home contract %s: %w", c.ID, err)
		}
	}
	for _, c := range data.ServiceContracts {
		start, err := domain.ParseDate(c.StartDate)
		if err != nil {
			return fmt.Errorf("service contract %s: invalid start date %q", c.ID, c.StartDate)
		}
		end, err := nullableDate(c.EndDate)
		if err != nil {
			return fmt.Errorf("service contract %s: %w", c.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO service_contracts (id, home_id, guest_id, start_date, end_date, duration_months, pay_cycle_months, unit_cost, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.HomeID, c.GuestID, start, end, c.DurationMonths, c.PayCycleMonths, c.Amount, domain.ContractStatusActive); err != nil {
			return fmt.Errorf("insert service contract %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

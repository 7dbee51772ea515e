package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/oparantho/saakwa-laundry-platform/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB           *sql.DB
	User         UserRepository
	Booking      BookingRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repository, error) {
	// otelsql wraps the lib/pq driver so every query carries a span.
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:           db,
		User:         NewUserRepo(db),
		Booking:      NewBookingRepo(db),
		Notification: NewNotificationRepo(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

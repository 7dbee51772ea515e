package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingById(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Booking, int, error)
}

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepo(db *sql.DB) BookingRepository {
	return &bookingRepository{DB: db}
}

// The cart snapshot is stored as JSON; the schedule is flattened into
// columns so operations can query by pickup date.
func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cartJSON, err := json.Marshal(booking.Cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}

	query := `
		INSERT INTO bookings (
			id, customer_id, customer_name, customer_phone, customer_address,
			cart, pickup_date, pickup_time_slot, delivery_date, delivery_time_slot,
			subtotal, service_fee, total_amount, payment_status, receipt_path, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		booking.ID, booking.CustomerID,
		booking.Customer.FullName, booking.Customer.Phone, booking.Customer.Address,
		cartJSON,
		booking.Schedule.PickupDate, booking.Schedule.PickupTimeSlot,
		booking.Schedule.DeliveryDate, booking.Schedule.DeliveryTimeSlot,
		booking.Subtotal, booking.ServiceFee, booking.TotalAmount,
		booking.PaymentStatus, booking.ReceiptPath,
	).Scan(&booking.CreatedAt)
}

func (r *bookingRepository) GetBookingById(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, customer_id, customer_name, customer_phone, customer_address,
			   cart, pickup_date, pickup_time_slot, delivery_date, delivery_time_slot,
			   subtotal, service_fee, total_amount, payment_status, receipt_path, created_at
		FROM bookings
		WHERE id = $1
	`

	return r.scanBooking(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *bookingRepository) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Booking, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := `
		SELECT id, customer_id, customer_name, customer_phone, customer_address,
			   cart, pickup_date, pickup_time_slot, delivery_date, delivery_time_slot,
			   subtotal, service_fee, total_amount, payment_status, receipt_path, created_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}

		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading booking rows: %w", err)
	}

	return bookings, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *bookingRepository) scanBooking(row rowScanner) (*models.Booking, error) {
	booking := &models.Booking{}

	var (
		cartJSON    []byte
		receiptPath sql.NullString
	)

	err := row.Scan(
		&booking.ID, &booking.CustomerID,
		&booking.Customer.FullName, &booking.Customer.Phone, &booking.Customer.Address,
		&cartJSON,
		&booking.Schedule.PickupDate, &booking.Schedule.PickupTimeSlot,
		&booking.Schedule.DeliveryDate, &booking.Schedule.DeliveryTimeSlot,
		&booking.Subtotal, &booking.ServiceFee, &booking.TotalAmount,
		&booking.PaymentStatus, &receiptPath, &booking.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(cartJSON, &booking.Cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}

	booking.ReceiptPath = receiptPath.String

	return booking, nil
}

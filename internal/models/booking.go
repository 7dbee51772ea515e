package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	// Payment is an out-of-band bank transfer reconciled manually, so
	// every booking starts out pending.
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

type BookingState string

const (
	BookingStateCollecting    BookingState = "collecting"
	BookingStateReadyToSubmit BookingState = "ready_to_submit"
	BookingStateSubmitting    BookingState = "submitting"
	BookingStateSubmitted     BookingState = "submitted"
	BookingStateFailed        BookingState = "failed"
)

type CustomerInfo struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Phone    string `json:"phone"     validate:"required,min=1"`
	Address  string `json:"address"   validate:"required,min=1"`
}

// Booking is the submission record. It is created exactly once per
// successful submission and never mutated by this service afterwards.
type Booking struct {
	ID            uuid.UUID         `json:"id"`
	CustomerID    uuid.UUID         `json:"customer_id"`
	Customer      CustomerInfo      `json:"customer"`
	Cart          Cart              `json:"cart"`
	Schedule      ScheduleSelection `json:"schedule"`
	Subtotal      int64             `json:"subtotal"`
	ServiceFee    int64             `json:"service_fee"`
	TotalAmount   int64             `json:"total_amount"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	ReceiptPath   string            `json:"receipt_path,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type SubmitBookingRequest struct {
	Customer CustomerInfo `json:"customer" validate:"required"`
}

type BookingHistoryResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Size     int       `json:"size"`
}

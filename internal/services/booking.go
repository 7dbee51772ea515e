package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	"github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/metrics"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/oparantho/saakwa-laundry-platform/internal/pricing"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
)

// BookingService assembles the wizard state of one session into a
// booking record. Submission is the only write to the bookings table
// and the only point where the session is cleared.
type BookingService struct {
	sessions repository.SessionStore
	bookings repository.BookingRepository
	receipts repository.ReceiptStore
	notifier NotificationService
	pricing  pricing.Policy

	// Sessions with a submission currently running. A second submit
	// from the same session is rejected, not queued.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewBookingService(sessions repository.SessionStore, bookings repository.BookingRepository, receipts repository.ReceiptStore, notifier NotificationService, pricingPolicy pricing.Policy) *BookingService {
	return &BookingService{
		sessions: sessions,
		bookings: bookings,
		receipts: receipts,
		notifier: notifier,
		pricing:  pricingPolicy,
		inFlight: make(map[string]struct{}),
	}
}

func (s *BookingService) beginSubmission(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}

	s.inFlight[sessionID] = struct{}{}

	return true
}

func (s *BookingService) endSubmission(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, sessionID)
}

// Submit turns the session's cart and schedule into a booking. All
// validation runs before the first write; a failed insert leaves the
// session untouched so the customer can retry without re-entering
// anything. The notification email is best-effort and never fails the
// submission.
func (s *BookingService) Submit(ctx context.Context, sessionID string, customerID uuid.UUID, req *models.SubmitBookingRequest) (*models.Booking, error) {
	logger := middleware.LoggerFromContext(ctx)

	if !s.beginSubmission(sessionID) {
		return nil, errors.SubmissionInProgressError()
	}
	defer s.endSubmission(sessionID)

	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load cart").WithError(err)
	}

	if cart.IsEmpty() {
		return nil, errors.BadRequestError("Cart is empty")
	}

	schedule, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	if !schedule.IsComplete() {
		return nil, errors.BadRequestError("Pickup and delivery schedule is incomplete")
	}

	if err := validateCustomer(&req.Customer); err != nil {
		return nil, err
	}

	receiptPath, err := s.sessions.GetReceiptPath(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load receipt reference").WithError(err)
	}

	quote := pricing.Compute(cart, s.pricing)

	booking := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Customer:      req.Customer,
		Cart:          *cart,
		Schedule:      *schedule,
		Subtotal:      quote.Subtotal,
		ServiceFee:    quote.ServiceFee,
		TotalAmount:   quote.Total,
		PaymentStatus: models.PaymentStatusPending,
		ReceiptPath:   receiptPath,
	}

	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, errors.DatabaseError("Failed to save booking").WithError(err)
	}

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		logger.Error("Failed to clear session after booking", slog.String("sessionId", sessionID), slog.Any("error", err))
	}

	if err := s.notifier.SendBookingNotification(ctx, booking); err != nil {
		logger.Error("Booking notification failed", slog.String("bookingId", booking.ID.String()), slog.Any("error", err))
		metrics.RecordNotificationFailure()
	}

	return booking, nil
}

func validateCustomer(customer *models.CustomerInfo) error {
	if strings.TrimSpace(customer.FullName) == "" {
		return errors.AddValidationError("full_name", "must not be empty")
	}

	if strings.TrimSpace(customer.Phone) == "" {
		return errors.AddValidationError("phone", "must not be empty")
	}

	if strings.TrimSpace(customer.Address) == "" {
		return errors.AddValidationError("address", "must not be empty")
	}

	return nil
}

// SaveReceipt stores an uploaded payment receipt and remembers its path
// in the session so the upcoming submission picks it up.
func (s *BookingService) SaveReceipt(ctx context.Context, sessionID, filename string, content io.Reader) (string, error) {
	path, err := s.receipts.Save(ctx, sessionID, filename, content)
	if err != nil {
		return "", errors.InternalError("Failed to store receipt").WithError(err)
	}

	if err := s.sessions.SaveReceiptPath(ctx, sessionID, path); err != nil {
		return "", errors.ThirdPartyError("Failed to save receipt reference").WithError(err)
	}

	return path, nil
}

func (s *BookingService) GetBooking(ctx context.Context, customerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.GetBookingById(ctx, bookingID)
	if err != nil {
		return nil, errors.NotFoundError("Booking not found").WithError(err)
	}

	// Bookings are only visible to their owner.
	if booking.CustomerID != customerID {
		return nil, errors.NotFoundError("Booking not found")
	}

	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, customerID uuid.UUID, page, size int) (*models.BookingHistoryResponse, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	bookings, total, err := s.bookings.ListBookingsByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list bookings").WithError(err)
	}

	return &models.BookingHistoryResponse{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		Size:     size,
	}, nil
}

package service_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	sendgridclient "github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	return m.Called(ctx, sessionID, cart).Error(0)
}

func (m *mockSessionStore) GetSchedule(ctx context.Context, sessionID string) (*models.ScheduleSelection, error) {
	args := m.Called(ctx, sessionID)
	if schedule, ok := args.Get(0).(*models.ScheduleSelection); ok {
		return schedule, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) SaveSchedule(ctx context.Context, sessionID string, schedule *models.ScheduleSelection) error {
	return m.Called(ctx, sessionID, schedule).Error(0)
}

func (m *mockSessionStore) GetReceiptPath(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)

	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) SaveReceiptPath(ctx context.Context, sessionID, path string) error {
	return m.Called(ctx, sessionID, path).Error(0)
}

func (m *mockSessionStore) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) GetBookingById(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if booking, ok := args.Get(0).(*models.Booking); ok {
		return booking, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingRepository) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Booking, int, error) {
	args := m.Called(ctx, customerID, page, size)
	if bookings, ok := args.Get(0).([]models.Booking); ok {
		return bookings, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *mockNotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string) error {
	return m.Called(ctx, id, status, errorMessage).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockRateLimitRepository struct {
	mock.Mock
}

func (m *mockRateLimitRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

type mockPasswordResetRepository struct {
	mock.Mock
}

func (m *mockPasswordResetRepository) SaveResetToken(ctx context.Context, token string, userID uuid.UUID) error {
	return m.Called(ctx, token, userID).Error(0)
}

type mockReceiptStore struct {
	mock.Mock
}

func (m *mockReceiptStore) Save(ctx context.Context, sessionID, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, sessionID, filename, content)

	return args.String(0), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockEmailService) GetSendGridClient() *sendgridclient.Client {
	return nil
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) SendBookingNotification(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

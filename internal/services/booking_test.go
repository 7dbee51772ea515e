package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/oparantho/saakwa-laundry-platform/internal/pricing"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCart() *models.Cart {
	return &models.Cart{Lines: []models.CartLine{
		{ItemID: "jeans", Name: "Jeans", UnitPrice: 1900, Quantity: 2},
		{ItemID: "blouse", Name: "Blouse", UnitPrice: 1000, Quantity: 1},
	}}
}

func testSchedule() *models.ScheduleSelection {
	pickup := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	return &models.ScheduleSelection{
		PickupDate:       &pickup,
		PickupTimeSlot:   "9:00 AM - 11:00 AM",
		DeliveryDate:     &delivery,
		DeliveryTimeSlot: "1:00 PM - 3:00 PM",
	}
}

func testCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		FullName: "Ada Obi",
		Phone:    "+2348000000000",
		Address:  "12 Marina Road, Lagos",
	}
}

func newBookingFixture() (*service.BookingService, *mockSessionStore, *mockBookingRepository, *mockReceiptStore, *mockNotificationService) {
	sessions := &mockSessionStore{}
	bookings := &mockBookingRepository{}
	receipts := &mockReceiptStore{}
	notifier := &mockNotificationService{}

	svc := service.NewBookingService(sessions, bookings, receipts, notifier, pricing.DefaultPolicy())

	return svc, sessions, bookings, receipts, notifier
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	sessionID := "session-1"
	customerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, notifier := newBookingFixture()

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(testSchedule(), nil).Once()
		sessions.On("GetReceiptPath", ctx, sessionID).Return("receipts/session-1-abc.jpg", nil).Once()
		bookings.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()
		sessions.On("Clear", ctx, sessionID).Return(nil).Once()
		notifier.On("SendBookingNotification", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.NotEqual(t, uuid.Nil, booking.ID)
		assert.Equal(t, customerID, booking.CustomerID)
		assert.Equal(t, int64(4800), booking.Subtotal)
		assert.Equal(t, int64(480), booking.ServiceFee)
		assert.Equal(t, int64(5280), booking.TotalAmount)
		assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
		assert.Equal(t, "receipts/session-1-abc.jpg", booking.ReceiptPath)
		sessions.AssertExpectations(t)
		bookings.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, _ := newBookingFixture()

		sessions.On("GetCart", ctx, sessionID).Return(&models.Cart{}, nil).Once()

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Incomplete Schedule", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, _ := newBookingFixture()

		incomplete := testSchedule()
		incomplete.DeliveryTimeSlot = ""

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(incomplete, nil).Once()

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Customer Fields", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, _ := newBookingFixture()

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(testSchedule(), nil).Once()

		customer := testCustomer()
		customer.Phone = "   "

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: customer})

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Message, "phone")
		// Validation must run before the first write.
		bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Database Error Retains Session", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, notifier := newBookingFixture()

		dbErr := errors.New("insert failed")

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(testSchedule(), nil).Once()
		sessions.On("GetReceiptPath", ctx, sessionID).Return("", nil).Once()
		bookings.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(dbErr).Once()

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbErr)
		// A failed insert must not wipe the wizard state.
		sessions.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "SendBookingNotification", mock.Anything, mock.Anything)
	})

	t.Run("Success - Notification Failure Is Swallowed", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, notifier := newBookingFixture()

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(testSchedule(), nil).Once()
		sessions.On("GetReceiptPath", ctx, sessionID).Return("", nil).Once()
		bookings.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()
		sessions.On("Clear", ctx, sessionID).Return(nil).Once()
		notifier.On("SendBookingNotification", ctx, mock.AnythingOfType("*models.Booking")).Return(errors.New("sendgrid down")).Once()

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, booking)
		notifier.AssertExpectations(t)
	})

	t.Run("Failure - Concurrent Submission Rejected", func(t *testing.T) {
		// Arrange
		svc, sessions, bookings, _, notifier := newBookingFixture()

		started := make(chan struct{})
		release := make(chan struct{})

		sessions.On("GetCart", ctx, sessionID).Return(testCart(), nil).Once()
		sessions.On("GetSchedule", ctx, sessionID).Return(testSchedule(), nil).Once()
		sessions.On("GetReceiptPath", ctx, sessionID).Return("", nil).Once()
		bookings.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).Return(nil).Once()
		sessions.On("Clear", ctx, sessionID).Return(nil).Once()
		notifier.On("SendBookingNotification", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()

		firstDone := make(chan error, 1)

		go func() {
			_, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})
			firstDone <- err
		}()

		<-started

		// Act
		booking, err := svc.Submit(ctx, sessionID, customerID, &models.SubmitBookingRequest{Customer: testCustomer()})

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeSubmitInProgress, appErr.Code)

		close(release)
		assert.NoError(t, <-firstDone)
	})
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	bookingID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, _, bookings, _, _ := newBookingFixture()

		stored := &models.Booking{ID: bookingID, CustomerID: customerID}
		bookings.On("GetBookingById", ctx, bookingID).Return(stored, nil).Once()

		// Act
		booking, err := svc.GetBooking(ctx, customerID, bookingID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, bookingID, booking.ID)
	})

	t.Run("Failure - Another Customer's Booking", func(t *testing.T) {
		// Arrange
		svc, _, bookings, _, _ := newBookingFixture()

		stored := &models.Booking{ID: bookingID, CustomerID: uuid.New()}
		bookings.On("GetBookingById", ctx, bookingID).Return(stored, nil).Once()

		// Act
		booking, err := svc.GetBooking(ctx, customerID, bookingID)

		// Assert
		assert.Nil(t, booking)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Success - Clamps Page And Size", func(t *testing.T) {
		// Arrange
		svc, _, bookings, _, _ := newBookingFixture()

		bookings.On("ListBookingsByCustomer", ctx, customerID, 1, 10).
			Return([]models.Booking{{ID: uuid.New(), CustomerID: customerID}}, 1, nil).Once()

		// Act
		resp, err := svc.ListBookings(ctx, customerID, 0, -3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Size)
		assert.Len(t, resp.Bookings, 1)
		bookings.AssertExpectations(t)
	})
}

func TestSaveReceipt(t *testing.T) {
	ctx := context.Background()
	sessionID := "session-1"

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, sessions, _, receipts, _ := newBookingFixture()

		content := strings.NewReader("fake image bytes")
		receipts.On("Save", ctx, sessionID, "receipt.jpg", content).Return("receipts/session-1-x.jpg", nil).Once()
		sessions.On("SaveReceiptPath", ctx, sessionID, "receipts/session-1-x.jpg").Return(nil).Once()

		// Act
		path, err := svc.SaveReceipt(ctx, sessionID, "receipt.jpg", content)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "receipts/session-1-x.jpg", path)
		sessions.AssertExpectations(t)
		receipts.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		svc, sessions, _, receipts, _ := newBookingFixture()

		content := strings.NewReader("fake image bytes")
		receipts.On("Save", ctx, sessionID, "receipt.jpg", content).Return("", errors.New("disk full")).Once()

		// Act
		path, err := svc.SaveReceipt(ctx, sessionID, "receipt.jpg", content)

		// Assert
		assert.Empty(t, path)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInternal, appErr.Code)
		sessions.AssertNotCalled(t, "SaveReceiptPath", mock.Anything, mock.Anything, mock.Anything)
	})
}

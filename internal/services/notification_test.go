package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func notificationBooking() *models.Booking {
	pickup := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	return &models.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Customer: models.CustomerInfo{
			FullName: "Ada <script>alert(1)</script> Obi",
			Phone:    "+2348000000000",
			Address:  "12 Marina Road, Lagos",
		},
		Cart: models.Cart{Lines: []models.CartLine{
			{ItemID: "jeans", Name: "Jeans", UnitPrice: 1900, Quantity: 2},
		}},
		Schedule: models.ScheduleSelection{
			PickupDate:       &pickup,
			PickupTimeSlot:   "9:00 AM - 11:00 AM",
			DeliveryDate:     &delivery,
			DeliveryTimeSlot: "1:00 PM - 3:00 PM",
		},
		Subtotal:      3800,
		ServiceFee:    380,
		TotalAmount:   4180,
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestSendBookingNotification(t *testing.T) {
	ctx := context.Background()
	notifyEmail := "owner@saakwa.com"

	t.Run("Success - Records And Sends", func(t *testing.T) {
		// Arrange
		repo := &mockNotificationRepository{}
		email := &mockEmailService{}
		svc := service.NewNotificationService(repo, email, notifyEmail)
		booking := notificationBooking()

		repo.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Recipient == notifyEmail && n.Status == models.StatusPending
		})).Return(nil).Once()
		email.On("Send", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			// Customer text is stripped of markup in the HTML body.
			return req.To == notifyEmail &&
				req.HTMLContent != "" &&
				!strings.Contains(req.HTMLContent, "<script>")
		})).Return(nil).Once()
		repo.On("UpdateNotificationStatus", ctx, mock.AnythingOfType("uuid.UUID"), models.StatusSent, "").Return(nil).Once()

		// Act
		err := svc.SendBookingNotification(ctx, booking)

		// Assert
		require.NoError(t, err)
		repo.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	t.Run("Failure - Send Error Marks Record Failed", func(t *testing.T) {
		// Arrange
		repo := &mockNotificationRepository{}
		email := &mockEmailService{}
		svc := service.NewNotificationService(repo, email, notifyEmail)
		booking := notificationBooking()

		sendErr := errors.New("sendgrid down")

		repo.On("CreateNotification", ctx, mock.AnythingOfType("*models.Notification")).Return(nil).Once()
		email.On("Send", ctx, mock.AnythingOfType("*models.EmailNotificationRequest")).Return(sendErr).Once()
		repo.On("UpdateNotificationStatus", ctx, mock.AnythingOfType("uuid.UUID"), models.StatusFailed, sendErr.Error()).Return(nil).Once()

		// Act
		err := svc.SendBookingNotification(ctx, booking)

		// Assert
		assert.Error(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Success - No Recipient Configured", func(t *testing.T) {
		// Arrange
		repo := &mockNotificationRepository{}
		email := &mockEmailService{}
		svc := service.NewNotificationService(repo, email, "")

		// Act
		err := svc.SendBookingNotification(ctx, notificationBooking())

		// Assert
		require.NoError(t, err)
		repo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

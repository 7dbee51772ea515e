package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
	"github.com/oparantho/saakwa-laundry-platform/pkg/sendgrid"
)

type NotificationService interface {
	SendBookingNotification(ctx context.Context, booking *models.Booking) error
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
	notifyEmail  string
	sanitizer    *bluemonday.Policy
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService, notifyEmail string) NotificationService {
	return &notificationService{
		repo:         repo,
		emailService: emailService,
		notifyEmail:  notifyEmail,
		// Customer name, phone and address are free text and end up in
		// an HTML email body.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// SendBookingNotification emails the shop about a new booking and keeps
// a dispatch record either way. Callers treat failure as non-fatal; the
// booking is already saved by the time this runs.
func (n *notificationService) SendBookingNotification(ctx context.Context, booking *models.Booking) error {
	if n.notifyEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("New Laundry Order from %s", booking.Customer.FullName)
	plain := n.plainBody(booking)

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: n.notifyEmail,
		Subject:   subject,
		Content:   plain,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	req := &models.EmailNotificationRequest{
		To:          n.notifyEmail,
		Subject:     subject,
		Content:     plain,
		HTMLContent: n.htmlBody(booking),
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error())

		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return fmt.Errorf("notification sent but failed to update status: %w", err)
	}

	return nil
}

func (n *notificationService) plainBody(booking *models.Booking) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Booking %s\n\n", booking.ID)
	fmt.Fprintf(&b, "Customer: %s\nPhone: %s\nAddress: %s\n\n",
		booking.Customer.FullName, booking.Customer.Phone, booking.Customer.Address)

	fmt.Fprintf(&b, "Pickup: %s (%s)\nDelivery: %s (%s)\n\n",
		booking.Schedule.PickupDate.Format(models.DateLayout), booking.Schedule.PickupTimeSlot,
		booking.Schedule.DeliveryDate.Format(models.DateLayout), booking.Schedule.DeliveryTimeSlot)

	b.WriteString("Items:\n")

	for _, line := range booking.Cart.Lines {
		fmt.Fprintf(&b, "  %dx %s - %d\n", line.Quantity, line.Name, line.LineTotal())
	}

	fmt.Fprintf(&b, "\nSubtotal: %d\nService fee: %d\nTotal: %d\n",
		booking.Subtotal, booking.ServiceFee, booking.TotalAmount)

	if booking.ReceiptPath != "" {
		fmt.Fprintf(&b, "\nPayment receipt: %s\n", booking.ReceiptPath)
	}

	return b.String()
}

func (n *notificationService) htmlBody(booking *models.Booking) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>New Laundry Order</h2><p>Booking <strong>%s</strong></p>", booking.ID)
	fmt.Fprintf(&b, "<p>Customer: %s<br>Phone: %s<br>Address: %s</p>",
		n.sanitizer.Sanitize(booking.Customer.FullName),
		n.sanitizer.Sanitize(booking.Customer.Phone),
		n.sanitizer.Sanitize(booking.Customer.Address))

	fmt.Fprintf(&b, "<p>Pickup: %s (%s)<br>Delivery: %s (%s)</p>",
		booking.Schedule.PickupDate.Format(models.DateLayout), booking.Schedule.PickupTimeSlot,
		booking.Schedule.DeliveryDate.Format(models.DateLayout), booking.Schedule.DeliveryTimeSlot)

	b.WriteString("<ul>")

	for _, line := range booking.Cart.Lines {
		fmt.Fprintf(&b, "<li>%dx %s - %d</li>", line.Quantity, n.sanitizer.Sanitize(line.Name), line.LineTotal())
	}

	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p>Subtotal: %d<br>Service fee: %d<br><strong>Total: %d</strong></p>",
		booking.Subtotal, booking.ServiceFee, booking.TotalAmount)

	return b.String()
}

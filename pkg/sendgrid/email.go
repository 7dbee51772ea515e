// Package sendgrid carries the platform's transactional mail: the
// order notification that alerts the shop to a new booking and the
// password reset codes sent to customers.
package sendgrid

import (
	"context"
	"fmt"

	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send dispatches a message with both plain-text and HTML bodies.
// SendGrid reports delivery failures in-band as non-2xx status codes,
// so those surface as errors alongside transport errors.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.Subject = req.Subject
	personalization.AddTos(mail.NewEmail("", req.To))
	personalization.AddCCs(addresses(req.CC)...)
	personalization.AddBCCs(addresses(req.BCC)...)
	message.AddPersonalizations(personalization)

	message.AddContent(
		mail.NewContent("text/plain", req.Content),
		mail.NewContent("text/html", req.HTMLContent),
	)

	response, err := e.client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient exposes the underlying client so tests can point
// it at a stand-in server.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}

func addresses(emails []string) []*mail.Email {
	out := make([]*mail.Email, 0, len(emails))

	for _, address := range emails {
		out = append(out, mail.NewEmail("", address))
	}

	return out
}

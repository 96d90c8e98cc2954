package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewEmailService builds the SendGrid-backed sender. Without an API key it
// degrades to a no-op that only logs, so local and test runs need no
// credentials.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("no SendGrid API key configured, outbound email disabled")
		return &disabledEmailService{}
	}
	return &sendGridEmailService{
		apiKey:     cfg.SendGridAPIKey,
		fromEmail:  cfg.From,
		fromName:   cfg.FromName,
		adminEmail: cfg.AdminEmail,
	}
}

func (s *sendGridEmailService) SendRequestDecision(ctx context.Context, req *domain.BloodRequest, recipientEmail string) error {
	decision := strings.ToLower(string(req.Status))
	subject := fmt.Sprintf("Blood request %s %s", req.Reference, decision)
	plain := fmt.Sprintf("Your request for %d units of %s has been %s.", req.Units, req.BloodType, decision)
	html := fmt.Sprintf("<p>Your request <strong>%s</strong> for %d units of <strong>%s</strong> has been <strong>%s</strong>.</p>",
		req.Reference, req.Units, req.BloodType, decision)
	return s.send(ctx, recipientEmail, req.ReceiverName, subject, plain, html)
}

func (s *sendGridEmailService) SendLowStockAlert(ctx context.Context, entries []domain.InventoryEntry) error {
	if s.adminEmail == "" || len(entries) == 0 {
		return nil
	}

	var plain, html strings.Builder
	plain.WriteString("Blood types needing restock:\n")
	html.WriteString("<p>Blood types needing restock:</p><ul>")
	for _, e := range entries {
		fmt.Fprintf(&plain, "- %s: %d units (%s)\n", e.BloodType, e.Quantity, e.Status)
		fmt.Fprintf(&html, "<li><strong>%s</strong>: %d units (%s)</li>", e.BloodType, e.Quantity, e.Status)
	}
	html.WriteString("</ul>")

	return s.send(ctx, s.adminEmail, "Blood Bank Admin", "Low stock alert", plain.String(), html.String())
}

func (s *sendGridEmailService) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, recipientEmail string) error {
	subject := fmt.Sprintf("Appointment confirmed: %s", appt.CampName)
	plain := fmt.Sprintf("Your donation appointment at %s on %s at %s is confirmed.", appt.CampName, appt.Date, appt.Time)
	html := fmt.Sprintf("<p>Your donation appointment at <strong>%s</strong> on %s at %s is confirmed.</p>",
		appt.CampName, appt.Date, appt.Time)
	return s.send(ctx, recipientEmail, appt.DonorName, subject, plain, html)
}

func (s *sendGridEmailService) send(ctx context.Context, to, toName, subject, plain, html string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plain, html)

	logger.ExternalServiceCall("sendgrid", "Send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// disabledEmailService drops all mail and logs what it would have sent.
type disabledEmailService struct{}

func (d *disabledEmailService) SendRequestDecision(ctx context.Context, req *domain.BloodRequest, recipientEmail string) error {
	logger.Debug("email disabled, skipping request decision mail", "reference", req.Reference, "to", recipientEmail)
	return nil
}

func (d *disabledEmailService) SendLowStockAlert(ctx context.Context, entries []domain.InventoryEntry) error {
	logger.Debug("email disabled, skipping low stock alert", "entries", len(entries))
	return nil
}

func (d *disabledEmailService) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, recipientEmail string) error {
	logger.Debug("email disabled, skipping appointment confirmation", "appointment_id", appt.ID, "to", recipientEmail)
	return nil
}

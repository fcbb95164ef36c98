package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/chefincasa/backend/config"
	"github.com/chefincasa/backend/internal/models"
)

// EmailService sends inquiry notifications over SMTP. When SMTP is not
// configured the message is logged instead of sent, so development and test
// environments work without a mail server.
type EmailService struct {
	host       string
	port       string
	username   string
	password   string
	fromEmail  string
	adminEmail string
	logger     *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUser,
		password:   cfg.SMTPPass,
		fromEmail:  cfg.EmailFrom,
		adminEmail: cfg.AdminEmail,
		logger:     logger,
	}
}

// SendInquiryNotification mails the inquiry to the admin address, or to the
// from address when no admin address is set.
func (s *EmailService) SendInquiryNotification(inquiry *models.Inquiry) error {
	to := s.adminEmail
	if to == "" {
		to = s.fromEmail
	}

	subject := fmt.Sprintf("[ChefInCasa] Nuova richiesta da %s", inquiry.Name)
	body := s.buildInquiryBody(inquiry)
	return s.Send(to, subject, body)
}

func (s *EmailService) Send(to, subject, body string) error {
	if s.host == "" || to == "" {
		s.logger.Info("smtp not configured, logging email instead",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, s.fromEmail, subject, body))

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildInquiryBody(inquiry *models.Inquiry) string {
	chefLine := "<p><strong>Chef:</strong> nessuno (richiesta generica)</p>"
	if inquiry.ChefID != nil {
		chefLine = fmt.Sprintf("<p><strong>Chef:</strong> %s</p>", inquiry.ChefID)
	}

	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2>Nuova richiesta di contatto</h2>
	<div style="background-color: #f9f9f9; padding: 15px; border-left: 4px solid #e67e22;">
		<p><strong>Nome:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		%s
		<p><strong>Ricevuta:</strong> %s</p>
	</div>
	<div style="margin: 20px 0;">
		<h4>Messaggio:</h4>
		<div style="background-color: #f5f5f5; padding: 15px;">%s</div>
	</div>
	<p style="font-size: 12px; color: #666;">ID richiesta: %s</p>
</body>
</html>`,
		inquiry.Name,
		inquiry.Email,
		chefLine,
		inquiry.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		strings.ReplaceAll(inquiry.Message, "\n", "<br>"),
		inquiry.ID,
	)
}

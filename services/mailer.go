package services

import (
	"fmt"

	"fiber-lims/config"
	"fiber-lims/logger"

	"gopkg.in/gomail.v2"
)

// Mailer sends document notifications through the configured SMTP
// account. When SMTP is not configured sending is a no-op so local
// setups keep working.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) Enabled() bool {
	return config.SMTPHost != "" && config.SMTPSender != ""
}

func (m *Mailer) Send(to []string, subject, htmlBody string) error {
	if !m.Enabled() {
		logger.Get().Warn("SMTP not configured, skipping mail: " + subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// SendDocumentIssued notifies a recipient that a document was issued
// for their order.
func (m *Mailer) SendDocumentIssued(to, docNo, docType, orderNo string) error {
	subject := fmt.Sprintf("Document %s issued for order %s", docNo, orderNo)
	body := fmt.Sprintf(
		"<p>Document <b>%s</b> (%s) has been issued for order <b>%s</b>.</p><p>Please sign in to the dashboard to download it.</p>",
		docNo, docType, orderNo)
	return m.Send([]string{to}, subject, body)
}

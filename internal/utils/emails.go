package utils

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/Foysalhossain/musicy-server/internal/config"
)

// Mailer sends transactional mail over SMTP. A nil Mailer is valid and
// silently drops messages, so callers need no configuration checks.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	if !cfg.Enabled() {
		return nil
	}
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// SendPaymentReceipt emails a payment confirmation for a class enrollment.
func (m *Mailer) SendPaymentReceipt(to, className, transactionID, date string) error {
	if m == nil {
		return nil
	}

	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi,</p>
		<p>Your payment for <b>%s</b> has been received.</p>
		<p>Transaction ID: %s<br>Date: %s</p>
		<p>See you in class!</p>
	</body>
	</html>`, className, transactionID, date)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Payment Confirmation")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Payment receipt sent to %s", to)
	return nil
}

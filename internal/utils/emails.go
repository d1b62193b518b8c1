package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tanvir81/course-nest-server/internal/config"
)

// SendWelcomeEmail sends a greeting to a newly registered user. When SMTP
// is not configured it does nothing; registration never depends on mail
// delivery.
func SendWelcomeEmail(cfg config.SMTPConfig, to string, displayName string) error {
	if !cfg.Enabled() {
		return nil
	}

	body := fmt.Sprintf(`<html><body>
	<h2>Welcome to Course Nest, %s!</h2>
	<p>Your account is ready. Browse the catalog and enroll in your first course.</p>
	</body></html>`, displayName)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", cfg.From)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Welcome to Course Nest")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return dialer.DialAndSend(mailer)
}

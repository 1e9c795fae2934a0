package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendMeetingConfirmation(email, name string, start time.Time) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendMeetingConfirmation(email, name string, start time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your consultation with Evermore is booked")

	body := fmt.Sprintf(`
		<h2>See you soon, %s!</h2>
		<p>Your planning consultation is booked for <strong>%s</strong>.</p>
		<p>If the time no longer works, just reply to this email and we will reschedule.</p>
		<p>Warm regards,<br>The Evermore Team</p>
	`, name, start.Format("Monday, 2 January 2006 at 15:04"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send meeting confirmation email: %w", err)
	}

	return nil
}

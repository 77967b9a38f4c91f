package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/birdiehq/scorekeeper/config"
	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/scoring"
)

// EmailService sends round confirmation mail to the scoring committee.
// A nil receiver or missing SMTP config disables it without failing submits.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.SMTPHost != "" && len(s.cfg.RoundNotifyEmails) > 0
}

func (s *EmailService) SendRoundConfirmation(playerName string, day models.TournamentDay, totals scoring.Totals) error {
	subject := fmt.Sprintf("Round recorded: %s (%s)", playerName, day)
	body := fmt.Sprintf(
		"<p>%s &mdash; %s</p><p>Out: %d<br>In: %d<br>Gross: %d<br>Net: %d</p>",
		playerName, day, totals.Out, totals.In, totals.Gross, totals.Net,
	)
	return s.SendEmail(s.cfg.RoundNotifyEmails, subject, body)
}

func (s *EmailService) SendEmail(to []string, subject string, body string) error {
	if !s.Enabled() {
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	msg := []byte("To: " + strings.Join(to, ", ") + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Implicit TLS
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial failed: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("smtp client creation failed: %w", err)
		}
	} else {
		// STARTTLS (typically port 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial failed: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp starttls failed: %w", err)
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s failed: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}
	return w.Close()
}

package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/bizpulse/bizpulse-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService defines the interface for sending emails
type EmailService interface {
	SendInvitation(to, inviterName, businessName, roleName, invitationLink, expiresAt string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type invitationEmailData struct {
	InviterName    string
	BusinessName   string
	RoleName       string
	InvitationLink string
	ExpiresAt      string
}

// SendInvitation sends a team invitation email.
func (s *emailServiceImpl) SendInvitation(to, inviterName, businessName, roleName, invitationLink, expiresAt string) error {
	data := invitationEmailData{
		InviterName:    inviterName,
		BusinessName:   businessName,
		RoleName:       roleName,
		InvitationLink: invitationLink,
		ExpiresAt:      expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "invitation.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("You're invited to join %s", businessName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.From, to, subject, htmlBody,
	))

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/utils"
)

// EmailSender abstracts outbound transactional email so tests can swap in
// a recording fake.
type EmailSender interface {
	SendAccountConfirmation(ctx context.Context, toEmail, confirmLink string) error
	SendPasswordReset(ctx context.Context, toEmail, token string) error
}

type SendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	sandbox   bool
}

func NewSendGridEmailService(cfg *config.Config) *SendGridEmailService {
	return &SendGridEmailService{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.SendGridFromEmail,
		sandbox:   cfg.SendGridSandboxMode,
	}
}

func (s *SendGridEmailService) SendAccountConfirmation(ctx context.Context, toEmail, confirmLink string) error {
	subject := "Confirme seu cadastro"
	plain := fmt.Sprintf("Bem-vindo! Confirme seu cadastro acessando: %s", confirmLink)
	html := fmt.Sprintf(`<p>Bem-vindo!</p><p>Confirme seu cadastro <a href=%q>clicando aqui</a>.</p>`, confirmLink)
	return s.send(ctx, toEmail, subject, plain, html)
}

func (s *SendGridEmailService) SendPasswordReset(ctx context.Context, toEmail, token string) error {
	subject := "Redefinição de senha"
	plain := fmt.Sprintf("Use o código abaixo para redefinir sua senha:\n\n%s", token)
	html := fmt.Sprintf(`<p>Use o código abaixo para redefinir sua senha:</p><p><strong>%s</strong></p>`, token)
	return s.send(ctx, toEmail, subject, plain, html)
}

func (s *SendGridEmailService) send(ctx context.Context, toEmail, subject, plain, html string) error {
	from := mail.NewEmail("EcoGestão", s.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	if s.sandbox {
		settings := mail.NewMailSettings()
		settings.SetSandboxMode(mail.NewSetting(true))
		message.SetMailSettings(settings)
	}

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	utils.Logger.WithField("to", toEmail).Debug("Email dispatched")
	return nil
}

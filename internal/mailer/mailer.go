package mailer

import (
	"bytes"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

// DialAndSend dispatches a composed message over SMTP. Declared as a
// variable so tests can intercept outgoing mail.
var DialAndSend = func(cfg *config.Config, m *gomail.Message) error {
	d := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword)
	return d.DialAndSend(m)
}

type templateData struct {
	Username    string
	FullName    string
	Link        string
	CurrentYear int
}

// SendActivationEmail renders and dispatches the account-activation email.
// Dispatch is synchronous in the request path.
func SendActivationEmail(user *models.User, activationLink string) error {
	return send(user, "Activate Your Account", activationTemplate, activationLink)
}

// SendPasswordResetEmail renders and dispatches the password-reset email
// containing the OTP link.
func SendPasswordResetEmail(user *models.User, resetLink string) error {
	return send(user, "Password Reset Request", passwordResetTemplate, resetLink)
}

func send(user *models.User, subject string, tmpl emailTemplate, link string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	data := templateData{
		Username:    user.Username,
		FullName:    user.FullName(),
		Link:        link,
		CurrentYear: time.Now().Year(),
	}

	var html bytes.Buffer
	if err := tmpl.html.Execute(&html, data); err != nil {
		return err
	}
	var text bytes.Buffer
	if err := tmpl.text.Execute(&text, data); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text.String())
	m.AddAlternative("text/html", html.String())

	if err := DialAndSend(cfg, m); err != nil {
		return err
	}

	if logger.Log != nil {
		logger.Log.Info("email sent",
			zap.String("to", user.Email),
			zap.String("subject", subject),
		)
	}
	return nil
}

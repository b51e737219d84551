package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type RegistrationData struct {
	Name         string
	Email        string
	UniqueCode   string
	PhoneNumbers []string
	City         string
	State        string
	PinCode      string
	Address      string
}

type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Notifier is what the services depend on: one method per outbound
// notification, transport details hidden behind Mailer.
//
//go:generate mockgen -destination=mock/notifier_mock.go -package=mock . Notifier
type Notifier interface {
	SendRegistrationEmail(ctx context.Context, data RegistrationData) error
	SendContactEmail(ctx context.Context, data ContactData) error
}

type notifier struct {
	mailer    Mailer
	adminAddr string
}

func NewNotifier(mailer Mailer, adminAddr string) Notifier {
	return &notifier{mailer: mailer, adminAddr: adminAddr}
}

type registrationView struct {
	Name         string
	Email        string
	UniqueCode   string
	Phones       string
	City         string
	State        string
	PinCode      string
	Address      string
	RegisteredAt string
}

// SendRegistrationEmail sends the admin notification and the partner
// welcome mail. Both must go out for the send to count as successful.
func (n *notifier) SendRegistrationEmail(ctx context.Context, data RegistrationData) error {
	view := registrationView{
		Name:         data.Name,
		Email:        data.Email,
		UniqueCode:   data.UniqueCode,
		Phones:       strings.Join(data.PhoneNumbers, ", "),
		City:         data.City,
		State:        data.State,
		PinCode:      data.PinCode,
		Address:      data.Address,
		RegisteredAt: time.Now().Format(time.RFC1123),
	}

	adminBody, err := render(adminRegistrationTmpl, view)
	if err != nil {
		return fmt.Errorf("render admin registration mail: %w", err)
	}

	if err := n.mailer.Send(ctx, []string{n.adminAddr},
		fmt.Sprintf("New Partner Registration: %s", data.Name), adminBody, ""); err != nil {
		return fmt.Errorf("send admin registration mail: %w", err)
	}

	html, err := render(partnerWelcomeTmpl, view)
	if err != nil {
		return fmt.Errorf("render partner welcome mail: %w", err)
	}
	text, err := render(partnerWelcomeTextTmpl, view)
	if err != nil {
		return fmt.Errorf("render partner welcome text: %w", err)
	}

	if err := n.mailer.Send(ctx, []string{data.Email},
		"Welcome to Infibizz - Your Partner Code", html, text); err != nil {
		return fmt.Errorf("send partner welcome mail: %w", err)
	}

	return nil
}

type contactView struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt string
}

func (n *notifier) SendContactEmail(ctx context.Context, data ContactData) error {
	view := contactView{
		Name:        data.Name,
		Email:       data.Email,
		Subject:     data.Subject,
		Message:     data.Message,
		SubmittedAt: time.Now().Format(time.RFC1123),
	}

	html, err := render(contactTmpl, view)
	if err != nil {
		return fmt.Errorf("render contact mail: %w", err)
	}
	text, err := render(contactTextTmpl, view)
	if err != nil {
		return fmt.Errorf("render contact text: %w", err)
	}

	if err := n.mailer.Send(ctx, []string{n.adminAddr},
		fmt.Sprintf("Contact Form: %s", data.Subject), html, text); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	return nil
}

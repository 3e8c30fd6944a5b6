package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"nyumba/config"
	"nyumba/infras/otel"
	"nyumba/shared/constant"
)

// Mailer delivers a single plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewMailer(cfg *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		cfg:  cfg,
		otel: otel,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendMail")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mail.to", to)
	scope.SetAttribute("mail.subject", subject)

	msg := strings.Join([]string{
		"From: " + m.cfg.SMTP.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.SMTP.Host + ":" + m.cfg.SMTP.Port

	var auth smtp.Auth
	if m.cfg.SMTP.Username != constant.Empty {
		auth = smtp.PlainAuth(constant.Empty, m.cfg.SMTP.Username, m.cfg.SMTP.Password, m.cfg.SMTP.Host)
	}

	if err = smtp.SendMail(addr, auth, m.cfg.SMTP.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

// Subject returns the mail subject line for an event.
func Subject(event Event) string {
	switch event.Type {
	case EventBookingRequested:
		return fmt.Sprintf("New booking request from %s", event.FullName)
	case EventBookingConfirmed:
		return "Your booking is confirmed"
	case EventBookingCancelled:
		return "Your booking has been cancelled"
	default:
		return "Booking update"
	}
}

// Body renders the plain-text mail body for an event.
func Body(event Event) string {
	var sb strings.Builder

	switch event.Type {
	case EventBookingRequested:
		fmt.Fprintf(&sb, "A new booking request was received.\n\n")
		fmt.Fprintf(&sb, "Guest: %s\n", event.FullName)
		fmt.Fprintf(&sb, "Email: %s\n", event.Email)
		fmt.Fprintf(&sb, "Phone: %s\n", event.Phone)
	case EventBookingConfirmed:
		fmt.Fprintf(&sb, "Dear %s,\n\nYour booking has been confirmed.\n\n", event.FullName)
		if event.RoomNumber != constant.Empty {
			fmt.Fprintf(&sb, "Room: %s\n", event.RoomNumber)
		}
	case EventBookingCancelled:
		fmt.Fprintf(&sb, "Dear %s,\n\nYour booking has been cancelled.\n\n", event.FullName)
	}

	fmt.Fprintf(&sb, "Room type: %s\n", event.RoomType)
	fmt.Fprintf(&sb, "Check-in: %s\n", event.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", event.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n", event.Guests)
	fmt.Fprintf(&sb, "Nights: %d\n", event.Nights)
	fmt.Fprintf(&sb, "Total price: %s\n", event.TotalPrice)

	if event.SpecialRequests != constant.Empty {
		fmt.Fprintf(&sb, "Special requests: %s\n", event.SpecialRequests)
	}

	fmt.Fprintf(&sb, "\nBooking reference: %s\n", event.BookingID)

	return sb.String()
}

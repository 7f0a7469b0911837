package notifier

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/gomail.v2"

	"bperformance_backend/internals/configs"
)

type Attachment struct {
	Filename string
	Content  []byte
	MIMEType string
}

// Mailer is the outbound notification interface. Delivery is best-effort;
// callers log failures and carry on.
type Mailer interface {
	Send(to []string, subject, htmlBody string, attachments ...Attachment) error
}

// NewFromEnv picks SMTP when configured, console output otherwise.
func NewFromEnv() Mailer {
	if configs.SMTPHost == "" {
		return NewConsole()
	}
	return NewSMTP()
}

// ConsoleMailer logs the message instead of sending it. Used in dev and tests.
type ConsoleMailer struct{}

func NewConsole() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(to []string, subject, htmlBody string, attachments ...Attachment) error {
	log.Printf("[notify] to=%v subject=%q attachments=%d", to, subject, len(attachments))
	return nil
}

// SMTPMailer sends through the configured SMTP relay via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP() *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPassword),
		from:   configs.MailFrom,
	}
}

func (m *SMTPMailer) Send(to []string, subject, htmlBody string, attachments ...Attachment) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	for _, a := range attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.MIMEType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.MIMEType},
			}))
		}
		msg.Attach(a.Filename, settings...)
	}
	return m.dialer.DialAndSend(msg)
}

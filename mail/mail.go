package mail

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// Sender delivers a fully-formed message. Implementations can be swapped
// (SendGrid, SMTP) without changing callers.
type Sender interface {
	Send(to, subject, html string) error
}

// Default is the sender the application uses. Init picks an
// implementation from the environment; tests swap in a Recorder.
var Default Sender

// Send delivers through the configured default sender.
func Send(to, subject, html string) error {
	if Default == nil {
		return fmt.Errorf("mail: no sender configured")
	}
	return Default.Send(to, subject, html)
}

// Init selects the mail backend: SendGrid when SENDGRID_API_KEY is set,
// otherwise SMTP via gomail.
func Init() {
	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		Default = &SendGridSender{
			client: sendgrid.NewSendClient(key),
			from:   os.Getenv("EMAIL_FROM"),
		}
		log.Println("✅ Mail configured with SendGrid")
		return
	}
	Default = &SMTPSender{}
	log.Println("✅ Mail configured with SMTP")
}

// SendGridSender sends through the SendGrid API.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
}

func (s *SendGridSender) Send(to, subject, html string) error {
	from := sgmail.NewEmail("", s.from)
	msg := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), html, html)

	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("mail: sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SMTPSender sends through a plain SMTP account.
type SMTPSender struct{}

func (s *SMTPSender) Send(to, subject, html string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// Recorded is one message captured by a Recorder.
type Recorded struct {
	To      string
	Subject string
	HTML    string
}

// Recorder captures messages instead of sending them. Err, when set, is
// returned from every Send.
type Recorder struct {
	Messages []Recorded
	Err      error
}

func (r *Recorder) Send(to, subject, html string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Messages = append(r.Messages, Recorded{To: to, Subject: subject, HTML: html})
	return nil
}

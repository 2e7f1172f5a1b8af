package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey          string   `mapstructure:"sendgrid_api_key"`
	FromEmail       string   `mapstructure:"from_email"`
	FromName        string   `mapstructure:"from_email_name"`
	ReplyTo         string   `mapstructure:"reply_to"`
	AlertRecipients []string `mapstructure:"alert_recipients"`
}

type templateName string

type Mailer struct {
	cli       dependency.Sender
	from      *mail.Email
	c         *Config
	templates map[templateName]*template.Template
}

var _ dependency.Mailer = (*Mailer)(nil)

// New returns a mailer sending through SendGrid.
func New(c *Config) (*Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: sendgrid api key is empty")
	}
	return newWithSender(c, sendgrid.NewSendClient(c.APIKey))
}

func newWithSender(c *Config, cli dependency.Sender) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: from_email=%q from_email_name=%q", c.FromEmail, c.FromName)
	}
	if len(c.AlertRecipients) == 0 {
		return nil, fmt.Errorf("incomplete config: no alert recipients")
	}

	m := &Mailer{
		cli:       cli,
		from:      mail.NewEmail(c.FromName, c.FromEmail),
		c:         c,
		templates: make(map[templateName]*template.Template),
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		templatePath := filepath.Join(templateDir, entry.Name())
		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[templateName(entry.Name())] = tmpl
	}
	return nil
}

func (m *Mailer) buildMessage(to []string, tn templateName, subject string, data any) (*mail.SGMailV3, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	p := mail.NewPersonalization()
	for _, addr := range to {
		p.AddTos(mail.NewEmail("", addr))
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = subject
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/html", body.String()))
	if m.c.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", m.c.ReplyTo))
	}
	return msg, nil
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.ErrMailRateLimited
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}

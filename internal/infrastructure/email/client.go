// Package email provides outbound mail for contact-form messages.
package email

import (
	"fmt"
	"html"

	"github.com/pearlatelier/pearlsite-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Client wraps the Resend API for studio notifications.
type Client struct {
	resend    *resend.Client
	fromEmail string
	toEmail   string
}

// NewClient creates a mail client from configuration. A missing API key
// is an error; the caller decides whether mail is optional.
func NewClient() (*Client, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}
	if config.ContactEmailTo == "" {
		return nil, fmt.Errorf("CONTACT_EMAIL_TO environment variable is required")
	}

	return &Client{
		resend:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.ContactEmailFrom,
		toEmail:   config.ContactEmailTo,
	}, nil
}

// SendContactMessage forwards one contact-form submission to the studio
// inbox. The message is relayed, never persisted.
func (c *Client) SendContactMessage(name, replyTo, message string) error {
	subject := fmt.Sprintf("New message from %s", name)

	body := fmt.Sprintf(
		`<p><strong>From:</strong> %s &lt;%s&gt;</p><blockquote>%s</blockquote>`,
		html.EscapeString(name), html.EscapeString(replyTo), html.EscapeString(message))

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", config.SiteName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: replyTo,
		Subject: subject,
		Html:    body,
	}

	if _, err := c.resend.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	return nil
}

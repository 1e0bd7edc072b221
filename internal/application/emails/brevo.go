package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const brevoAPI = "https://api.brevo.com/v3/smtp/email"

const defaultMailFrom = "hello@archcatalog.app"

// BrevoSendRequest is the Brevo v3 transactional email body.
type BrevoSendRequest struct {
	Sender      BrevoContact   `json:"sender"`
	To          []BrevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	Tags        []string       `json:"tags,omitempty"`
}

type BrevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Sender sends transactional emails. Implementations must be safe for concurrent use.
type Sender interface {
	SendWaitlistConfirmation(ctx context.Context, toEmail string) error
}

// BrevoClient sends emails via the Brevo (Sendinblue) API. An empty APIKey turns
// every send into a no-op.
type BrevoClient struct {
	APIKey   string
	MailFrom string
	SiteURL  string
	Endpoint string // defaults to the Brevo v3 endpoint
	Client   *http.Client
}

func (c *BrevoClient) from() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return defaultMailFrom
}

func (c *BrevoClient) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return brevoAPI
}

func (c *BrevoClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (c *BrevoClient) send(ctx context.Context, toEmail, subject, html, tag string) error {
	if c.APIKey == "" {
		return nil
	}
	body := BrevoSendRequest{
		Sender:      BrevoContact{Email: c.from(), Name: siteName},
		To:          []BrevoContact{{Email: toEmail}},
		Subject:     subject,
		HTMLContent: html,
		Tags:        []string{tag},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}

// SendWaitlistConfirmation tells a new waitlist member they are in the queue for beta access.
func (c *BrevoClient) SendWaitlistConfirmation(ctx context.Context, toEmail string) error {
	return c.send(ctx, toEmail, "You're on the "+siteName+" waitlist", Layout(waitlistContent(c.SiteURL)), "waitlist")
}

package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultResendBaseURL is the production Resend API endpoint.
const DefaultResendBaseURL = "https://api.resend.com"

// ResendClient sends mail through the Resend REST API.
type ResendClient struct {
	apiKey string
	http   *resty.Client
}

// NewResendClient creates a ResendClient. An empty baseURL selects the
// production endpoint; an empty apiKey leaves the client unconfigured.
func NewResendClient(apiKey, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	return &ResendClient{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (c *ResendClient) Configured() bool {
	return c.apiKey != ""
}

func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var result resendResponse
	var apiErr resendError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(resendRequest{
			From:    msg.From,
			To:      []string{msg.To},
			ReplyTo: msg.ReplyTo,
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("resend send: status %d: %s %s", resp.StatusCode(), apiErr.Name, apiErr.Message)
	}
	if result.ID == "" {
		return errors.New("resend send: empty message ID in response")
	}
	return nil
}

package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Submitter implements the submission half of the contact form flow.
// With an Action endpoint configured it relays the form's fields in a
// single POST; with no endpoint it accepts the submission after a fixed
// delay, which mirrors the form's local-testing placeholder behavior.
// No retries in either mode.
type Submitter struct {
	// Action is the optional relay endpoint URL.
	Action string
	// Client is used for the relay POST. Defaults to a client bounded by
	// Timeout when nil.
	Client *http.Client
	// Timeout bounds the relay request.
	Timeout time.Duration
	// SimulateDelay is how long an endpoint-less submission takes.
	SimulateDelay time.Duration
}

// Submit forwards the message. A non-2xx response from the relay endpoint
// is a failure regardless of body content.
func (s *Submitter) Submit(ctx context.Context, m *Message) error {
	if s.Action == "" {
		return s.simulate(ctx)
	}

	form := url.Values{}
	form.Set("name", m.Name)
	form.Set("email", m.Email)
	if m.Subject != "" {
		form.Set("subject", m.Subject)
	}
	form.Set("message", m.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Action, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		timeout := s.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("relaying submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay endpoint returned %s", resp.Status)
	}
	return nil
}

// simulate waits the fixed placeholder delay, honoring ctx cancellation.
func (s *Submitter) simulate(ctx context.Context) error {
	delay := s.SimulateDelay
	if delay <= 0 {
		return nil
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

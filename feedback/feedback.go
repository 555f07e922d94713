package feedback

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrEmptyFeedback = errors.New("feedback must not be empty")

// SubmitError is returned when the form endpoint answers with anything
// other than 200 or 302.
type SubmitError struct {
	StatusCode int
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("feedback form returned status %d", e.StatusCode)
}

// Client posts free-text feedback to a Google Form.
type Client struct {
	formURL string
	entryID string
	http    *http.Client
}

func NewClient(formURL, entryID string, timeout time.Duration) *Client {
	return &Client{
		formURL: formURL,
		entryID: entryID,
		http: &http.Client{
			Timeout: timeout,
			// Google Forms answers a successful submission with a redirect.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Submit sends text as a single form field.
func (c *Client) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyFeedback
	}

	form := url.Values{}
	form.Set(c.entryID, text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error building feedback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error submitting feedback: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusFound:
		return nil
	default:
		return &SubmitError{StatusCode: resp.StatusCode}
	}
}

// Package backend talks to the activities API: listing activities, signing
// people up and unregistering them.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"activityBoard/internal/models"

	"github.com/tidwall/gjson"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
)

// StatusError is returned for non-2xx responses where the body is not used.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// SignupResult is the server's answer to a signup. OK is false for non-2xx
// responses; Message carries whatever the server said, possibly empty.
type SignupResult struct {
	OK      bool
	Status  int
	Message string
}

// BestEffort is the outcome of a call nobody waits on. Callers may log or
// count a failure; nothing else depends on it.
type BestEffort struct {
	Err error
}

func (b BestEffort) Failed() bool {
	return b.Err != nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the API at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Activities fetches the activity mapping, keeping the server's key order.
// A null or empty mapping yields no activities and no error.
func (c *Client) Activities(ctx context.Context) ([]models.RemoteActivity, error) {
	const op = "backend.Activities"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, fmt.Errorf("%s: %w", op, &StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read body: %w", op, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	root := gjson.ParseBytes(body)
	switch {
	case root.Type == gjson.Null:
		return nil, nil
	case !root.IsObject():
		return nil, fmt.Errorf("%s: %w: expected an object", op, ErrMalformedPayload)
	}

	var activities []models.RemoteActivity
	root.ForEach(func(key, value gjson.Result) bool {
		activities = append(activities, parseActivity(key.String(), value))
		return true
	})

	return activities, nil
}

func parseActivity(name string, details gjson.Result) models.RemoteActivity {
	a := models.RemoteActivity{
		Name:        name,
		Description: details.Get("description").String(),
		Schedule:    details.Get("schedule").String(),
	}

	if limit := details.Get("max_participants"); limit.Type == gjson.Number {
		a.MaxParticipants = int(limit.Int())
	}

	if p := details.Get("participants"); p.IsArray() {
		a.HasParticipants = true
		a.Participants = []string{}
		for _, item := range p.Array() {
			a.Participants = append(a.Participants, item.String())
		}
	}

	if count := details.Get("participants_count"); count.Type == gjson.Number {
		n := int(count.Int())
		a.ParticipantsCount = &n
	}

	return a
}

// Signup registers email (and optionally name) for the activity title.
// An error means no usable answer arrived: transport failure or a body that
// is not JSON.
func (c *Client) Signup(ctx context.Context, title, email, name string) (SignupResult, error) {
	const op = "backend.Signup"

	q := url.Values{}
	q.Set("email", email)
	if name != "" {
		q.Set("name", name)
	}

	resp, err := c.post(ctx, activityURL(c.baseURL, title, "signup", q))
	if err != nil {
		return SignupResult{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SignupResult{}, fmt.Errorf("%s: failed to read body: %w", op, err)
	}
	if !gjson.ValidBytes(body) {
		return SignupResult{}, fmt.Errorf("%s: %w", op, ErrMalformedPayload)
	}

	res := SignupResult{
		OK:     success(resp.StatusCode),
		Status: resp.StatusCode,
	}

	parsed := gjson.ParseBytes(body)
	if res.OK {
		res.Message = parsed.Get("message").String()
	} else {
		res.Message = firstNonEmpty(parsed.Get("detail").String(), parsed.Get("message").String())
	}

	return res, nil
}

// Unregister removes email from the activity title. The response body is
// ignored.
func (c *Client) Unregister(ctx context.Context, title, email string) BestEffort {
	const op = "backend.Unregister"

	q := url.Values{}
	q.Set("email", email)

	resp, err := c.post(ctx, activityURL(c.baseURL, title, "unregister", q))
	if err != nil {
		return BestEffort{Err: fmt.Errorf("%s: %w", op, err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return BestEffort{Err: fmt.Errorf("%s: %w", op, &StatusError{Code: resp.StatusCode})}
	}

	return BestEffort{}
}

func (c *Client) post(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return nil, err
	}

	return c.http.Do(req)
}

func activityURL(base, title, action string, q url.Values) string {
	return base + "/activities/" + url.PathEscape(title) + "/" + action + "?" + q.Encode()
}

func success(code int) bool {
	return code >= 200 && code < 300
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

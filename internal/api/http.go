package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/directdev/portal/internal/common"
	"github.com/directdev/portal/internal/models"
)

// HTTPClient is the production Client over net/http. Redirects are not
// followed: the sign-in endpoint answers with a redirect whose Set-Cookie
// header carries the session.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// Option adjusts an HTTPClient during construction.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// New returns an HTTPClient rooted at baseURL. The timeout covers the whole
// exchange of every call.
func New(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		hc: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, cookie string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req, nil
}

// doJSON executes req and decodes a 2xx JSON body into out. A non-2xx
// status surfaces as common.ErrBadStatus.
func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %s", common.ErrBadStatus, req.Method, req.URL.Path, resp.Status)
	}
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path, cookie string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, cookie, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *HTTPClient) GetTokens(ctx context.Context) (*models.Tokens, error) {
	var tokens models.Tokens
	if err := c.getJSON(ctx, "login/loader", "", &tokens); err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	return &tokens, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, username, password string, tokens *models.Tokens, cookie string) (*models.AuthResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("token1", tokens.First)
	form.Set("token2", tokens.Second)

	req, err := c.newRequest(ctx, http.MethodPost, "login", cookie, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// The service answers sign-in with a redirect; anything below 400 means
	// the credentials were accepted.
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("sign in: %w: %s", common.ErrBadStatus, resp.Status)
	}

	return &models.AuthResult{Cookie: resp.Header.Get("Set-Cookie")}, nil
}

func (c *HTTPClient) Bootstrap(ctx context.Context, cookie string) error {
	if err := c.getJSON(ctx, "student/init", cookie, nil); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

func (c *HTTPClient) GetTerms(ctx context.Context, cookie string) ([]*models.Term, error) {
	var terms []*models.Term
	if err := c.getJSON(ctx, "student/terms", cookie, &terms); err != nil {
		return nil, fmt.Errorf("get terms: %w", err)
	}
	return terms, nil
}

func (c *HTTPClient) GetSessions(ctx context.Context, cookie string) ([]*models.Session, error) {
	var sessions []*models.Session
	if err := c.getJSON(ctx, "student/schedule/classes", cookie, &sessions); err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}
	return sessions, nil
}

func (c *HTTPClient) GetFinances(ctx context.Context, cookie string) ([]*models.Finance, error) {
	var finances []*models.Finance
	if err := c.getJSON(ctx, "student/finance/dues", cookie, &finances); err != nil {
		return nil, fmt.Errorf("get finances: %w", err)
	}
	return finances, nil
}

func (c *HTTPClient) GetFinanceSummary(ctx context.Context, cookie string) (*models.FinanceSummary, error) {
	// The wire format is an array whose first object carries the totals.
	var summaries []models.FinanceSummary
	if err := c.getJSON(ctx, "student/finance/summary", cookie, &summaries); err != nil {
		return nil, fmt.Errorf("get finance summary: %w", err)
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("get finance summary: empty response")
	}
	return &summaries[0], nil
}

func (c *HTTPClient) GetExams(ctx context.Context, examReq models.ExamRequest, cookie string) ([]*models.Exam, error) {
	body, err := json.Marshal(examReq)
	if err != nil {
		return nil, fmt.Errorf("get exams: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "student/schedule/exams", cookie, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var exams []*models.Exam
	if err := c.doJSON(req, &exams); err != nil {
		return nil, fmt.Errorf("get exams: %w", err)
	}
	return exams, nil
}

func (c *HTTPClient) GetGrades(ctx context.Context, term string, cookie string) (*models.Grade, error) {
	var grade models.Grade
	if err := c.getJSON(ctx, "student/grades/"+url.PathEscape(term), cookie, &grade); err != nil {
		return nil, fmt.Errorf("get grades: %w", err)
	}
	return &grade, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, cookie string) (*models.Profile, error) {
	// The profile arrives wrapped in a single-element "Profile" array.
	var wrapper struct {
		Profile []models.Profile `json:"Profile"`
	}
	if err := c.getJSON(ctx, "student/profile", cookie, &wrapper); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(wrapper.Profile) == 0 {
		return nil, fmt.Errorf("get profile: empty response")
	}
	return &wrapper.Profile[0], nil
}

func (c *HTTPClient) GetResources(ctx context.Context, cookie string, courses []*models.Course) ([]*models.Resource, error) {
	var all []*models.Resource
	for _, course := range courses {
		var resources []*models.Resource
		path := "student/courses/" + url.PathEscape(course.ID) + "/resources"
		if err := c.getJSON(ctx, path, cookie, &resources); err != nil {
			return nil, fmt.Errorf("get resources for %s: %w", course.ID, err)
		}
		all = append(all, resources...)
	}
	return all, nil
}

// Package source fetches rule documents from the collaborative document store.
// It is a pure I/O boundary: it returns raw HTML-bearing content and never
// interprets it.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 10 * time.Second
	// maxResponseBytes bounds a single page payload.
	maxResponseBytes = 8 << 20
	// maxErrorBodyBytes bounds how much of an error body ends up in messages.
	maxErrorBodyBytes = 512
)

// Document is one page as returned by the document store.
type Document struct {
	ID    string
	Title string
	HTML  string
	URL   string
}

// Config holds the endpoint and credentials for the document store.
type Config struct {
	BaseURL string
	User    string
	Token   string
	Timeout time.Duration
}

// Client issues Basic-authenticated GET requests against the document store's
// content API. It never retries: a single failure is enough for callers to
// fall back to built-in rules.
type Client struct {
	baseURL    string
	user       string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTracer overrides the tracer used for fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New constructs a Client. Missing credentials are not an error here; every
// fetch reports them as a ConfigurationError instead.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		user:       strings.TrimSpace(cfg.User),
		token:      strings.TrimSpace(cfg.Token),
		timeout:    timeout,
		httpClient: &http.Client{},
		tracer:     otel.Tracer("compliance-advisor/internal/rules/source"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether credentials and endpoint are present.
func (c *Client) Configured() bool {
	return c.checkConfig() == nil
}

// FetchDocument retrieves a page by its identifier.
func (c *Client) FetchDocument(ctx context.Context, id string) (*Document, error) {
	ctx, span := c.tracer.Start(ctx, "source.FetchDocument",
		trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	doc, err := c.fetchDocument(ctx, id)
	recordSpanError(span, err)
	return doc, err
}

func (c *Client) fetchDocument(ctx context.Context, id string) (*Document, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ConfigurationError{Missing: []string{"document id"}}
	}

	endpoint := fmt.Sprintf("%s/rest/api/content/%s?expand=body.storage", c.baseURL, url.PathEscape(id))
	status, body, err := c.get(ctx, endpoint, id)
	if err != nil {
		return nil, err
	}
	return c.parseDocumentResponse(status, body, id)
}

// FetchDocumentByTitle retrieves the page with title inside space.
func (c *Client) FetchDocumentByTitle(ctx context.Context, space, title string) (*Document, error) {
	ctx, span := c.tracer.Start(ctx, "source.FetchDocumentByTitle",
		trace.WithAttributes(
			attribute.String("document.space", space),
			attribute.String("document.title", title),
		))
	defer span.End()

	doc, err := c.fetchDocumentByTitle(ctx, space, title)
	recordSpanError(span, err)
	return doc, err
}

func (c *Client) fetchDocumentByTitle(ctx context.Context, space, title string) (*Document, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}
	space, title = strings.TrimSpace(space), strings.TrimSpace(title)
	if space == "" || title == "" {
		return nil, &ConfigurationError{Missing: []string{"document space/title"}}
	}

	q := url.Values{}
	q.Set("spaceKey", space)
	q.Set("title", title)
	q.Set("expand", "body.storage")
	endpoint := fmt.Sprintf("%s/rest/api/content?%s", c.baseURL, q.Encode())
	ref := space + "/" + title

	status, body, err := c.get(ctx, endpoint, ref)
	if err != nil {
		return nil, err
	}
	return c.parseSearchResponse(status, body, ref)
}

func (c *Client) checkConfig() error {
	var missing []string
	if c.user == "" {
		missing = append(missing, "user")
	}
	if c.token == "" {
		missing = append(missing, "token")
	}
	if c.baseURL == "" {
		missing = append(missing, "base URL")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, ref string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, &RemoteError{DocumentID: ref, Message: "build request", Underlying: err}
	}
	req.SetBasicAuth(c.user, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &RemoteError{
			DocumentID: ref,
			Message:    "request failed",
			Timeout:    errors.Is(err, context.DeadlineExceeded),
			Underlying: err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &RemoteError{
			Status:     resp.StatusCode,
			DocumentID: ref,
			Message:    "read response body",
			Timeout:    errors.Is(err, context.DeadlineExceeded),
			Underlying: err,
		}
	}
	return resp.StatusCode, body, nil
}

type contentEnvelope struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
	Links struct {
		Base  string `json:"base"`
		WebUI string `json:"webui"`
	} `json:"_links"`
}

type searchEnvelope struct {
	Results []contentEnvelope `json:"results"`
}

func (c *Client) parseDocumentResponse(status int, body []byte, ref string) (*Document, error) {
	if err := checkStatus(status, body, ref); err != nil {
		return nil, err
	}
	var env contentEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &RemoteError{Status: status, DocumentID: ref, Message: "malformed content envelope", Underlying: err}
	}
	return c.toDocument(env, ref), nil
}

func (c *Client) parseSearchResponse(status int, body []byte, ref string) (*Document, error) {
	if err := checkStatus(status, body, ref); err != nil {
		return nil, err
	}
	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &RemoteError{Status: status, DocumentID: ref, Message: "malformed search envelope", Underlying: err}
	}
	if len(env.Results) == 0 {
		return nil, &RemoteError{Status: http.StatusNotFound, DocumentID: ref, Message: "no document with that title"}
	}
	return c.toDocument(env.Results[0], ref), nil
}

func checkStatus(status int, body []byte, ref string) error {
	if status >= 200 && status < 300 {
		return nil
	}
	return &RemoteError{Status: status, DocumentID: ref, Message: errorMessage(status, body)}
}

// errorMessage prefers the store's JSON "message" field, then a truncated body.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	text := truncateUTF8(strings.TrimSpace(string(body)), maxErrorBodyBytes)
	if text == "" {
		return http.StatusText(status)
	}
	return text
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (c *Client) toDocument(env contentEnvelope, ref string) *Document {
	id := env.ID
	if id == "" {
		id = ref
	}
	return &Document{
		ID:    id,
		Title: env.Title,
		HTML:  env.Body.Storage.Value,
		URL:   c.documentURL(env, id),
	}
}

func (c *Client) documentURL(env contentEnvelope, id string) string {
	if env.Links.WebUI != "" {
		base := env.Links.Base
		if base == "" {
			base = c.baseURL
		}
		return strings.TrimRight(base, "/") + env.Links.WebUI
	}
	return fmt.Sprintf("%s/pages/viewpage.action?pageId=%s", c.baseURL, url.QueryEscape(id))
}

func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, string(GetCategory(err)))
}

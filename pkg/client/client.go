// Package client is a Go SDK for the dorm-rental REST API. Every call
// returns a Result instead of an error so callers can render the outcome
// directly; transport failures are results too.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const defaultOverviewTimeout = 10 * time.Second

type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindValidation ErrorKind = "validation"
	KindUnknown    ErrorKind = "unknown"
)

// Result is the normalized outcome of a call.
type Result[T any] struct {
	Success    bool
	Data       T
	Error      string
	Kind       ErrorKind
	StatusCode int
}

// Err returns the failure as an *Error, or nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Kind: r.Kind, StatusCode: r.StatusCode, Message: r.Error}
}

type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func fail[T any](kind ErrorKind, status int, msg string) Result[T] {
	return Result[T]{Kind: kind, StatusCode: status, Error: msg}
}

// invalid is a failure detected before any network call.
func invalid[T any](msg string) Result[T] {
	return fail[T](KindValidation, 0, msg)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     *zap.Logger

	overviewTimeout time.Duration

	Bookings   *BookingService
	Properties *PropertyService
	Profile    *ProfileService
	Dashboard  *DashboardService
	Reports    *ReportService
	Tenants    *TenantService
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithOverviewTimeout bounds the aggregated dashboard fetch.
func WithOverviewTimeout(d time.Duration) Option {
	return func(c *Client) { c.overviewTimeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		http:            &http.Client{},
		tokens:          NewStaticToken(""),
		log:             zap.NewNop(),
		overviewTimeout: defaultOverviewTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("component", "client"))

	c.Bookings = &BookingService{c: c}
	c.Properties = &PropertyService{c: c}
	c.Profile = &ProfileService{c: c}
	c.Dashboard = &DashboardService{c: c}
	c.Reports = &ReportService{c: c}
	c.Tenants = &TenantService{c: c}
	return c
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

func jsonRequest(method, path string, payload any) (request, error) {
	req := request{method: method, path: path}
	if payload == nil {
		return req, nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return req, fmt.Errorf("encode request: %w", err)
	}
	req.body = body
	req.contentType = "application/json"
	return req, nil
}

// File is an upload attached to a multipart request.
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// multipartRequest always POSTs. A non-empty override is sent as the
// _method field for servers that route on it.
func multipartRequest(path, override string, values url.Values, files []File) (request, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if override != "" {
		if err := mw.WriteField("_method", override); err != nil {
			return request{}, err
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range values[k] {
			if err := mw.WriteField(k, v); err != nil {
				return request{}, err
			}
		}
	}

	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return request{}, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return request{}, fmt.Errorf("read %s: %w", f.Name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return request{}, err
	}

	return request{
		method:      http.MethodPost,
		path:        path,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	}, nil
}

// send performs the round trip. The error is non-nil only for transport
// failures.
func (c *Client) send(ctx context.Context, req request) (int, []byte, http.Header, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return 0, nil, nil, err
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	token, err := c.tokens.Token()
	if err != nil {
		c.log.Warn("Failed to load token", zap.Error(err))
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug("Request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err))
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, resp.Header, err
	}

	c.log.Debug("Request completed",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode))
	return resp.StatusCode, raw, resp.Header, nil
}

func call[T any](ctx context.Context, c *Client, req request) Result[T] {
	status, raw, _, err := c.send(ctx, req)
	if err != nil {
		return fail[T](KindNetwork, status, networkMessage(err))
	}
	return decode[T](status, raw)
}

func callJSON[T any](ctx context.Context, c *Client, method, path string, payload any) Result[T] {
	req, err := jsonRequest(method, path, payload)
	if err != nil {
		return fail[T](KindUnknown, 0, err.Error())
	}
	return call[T](ctx, c, req)
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	return call[T](ctx, c, request{method: http.MethodGet, path: path, query: query})
}

// decode unwraps the {status, message, data, errors} envelope.
func decode[T any](status int, raw []byte) Result[T] {
	if status < 200 || status > 299 {
		kind, msg := classify(status, raw)
		return fail[T](kind, status, msg)
	}

	var data T
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result[T]{Success: true, Data: data, StatusCode: status}
	}
	if !gjson.ValidBytes(raw) {
		return fail[T](KindUnknown, status, "unexpected response from server")
	}

	envelope := gjson.ParseBytes(raw)
	if s := envelope.Get("status"); s.Exists() && !s.Bool() {
		return fail[T](KindUnknown, status, envelope.Get("message").String())
	}
	if d := envelope.Get("data"); d.Exists() && d.Type != gjson.Null {
		if err := json.Unmarshal([]byte(d.Raw), &data); err != nil {
			return fail[T](KindUnknown, status, "decode response: "+err.Error())
		}
	}
	return Result[T]{Success: true, Data: data, StatusCode: status}
}

// classify turns an error response into a kind and a display message. A
// 4xx carrying field errors is a validation failure whose message is the
// flattened field list.
func classify(status int, raw []byte) (ErrorKind, string) {
	msg := http.StatusText(status)
	if !gjson.ValidBytes(raw) {
		return KindUnknown, msg
	}

	envelope := gjson.ParseBytes(raw)
	if m := envelope.Get("message").String(); m != "" {
		msg = m
	}
	if status >= 400 && status < 500 {
		if fields := FlattenFieldErrors(envelope.Get("errors")); fields != "" {
			return KindValidation, fields
		}
	}
	return KindUnknown, msg
}

// FlattenFieldErrors joins {"field": "msg" | ["msg", ...]} into
// "field: msg; other: msg1, msg2", ordered by field.
func FlattenFieldErrors(errs gjson.Result) string {
	if !errs.IsObject() {
		return ""
	}
	fields := map[string]string{}
	errs.ForEach(func(key, value gjson.Result) bool {
		var msgs []string
		if value.IsArray() {
			for _, m := range value.Array() {
				if s := strings.TrimSpace(m.String()); s != "" {
					msgs = append(msgs, s)
				}
			}
		} else if s := strings.TrimSpace(value.String()); s != "" {
			msgs = append(msgs, s)
		}
		if len(msgs) > 0 {
			fields[key.String()] = strings.Join(msgs, ", ")
		}
		return true
	})
	return joinFields(fields)
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

func networkMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	default:
		return "network error: " + err.Error()
	}
}

// PageQuery selects a page of a list endpoint. Zero values use the server
// defaults.
type PageQuery struct {
	Page    int
	PerPage int
}

func (p PageQuery) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", fmt.Sprint(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", fmt.Sprint(p.PerPage))
	}
	return v
}

func pathID(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}

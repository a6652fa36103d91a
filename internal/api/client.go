// Package api is the typed client for the remote FastFeet API. It does
// request/response mapping only; caching and workflow decisions live with
// the callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/metrics"
	"github.com/mvillar/fastfeet-front/internal/model"
	"github.com/mvillar/fastfeet-front/pgk/retryablehttp"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	cookieName string
	httpClient *http.Client
	// reads go through the retrying client, mutations never retry
	getClient *retryablehttp.RetryableClient
	lg        *zap.SugaredLogger
}

func New(baseURL, cookieName string, lg *zap.SugaredLogger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	httpClient := &http.Client{
		Jar:     jar,
		Timeout: defaultTimeout,
	}

	return &Client{
		baseURL:    baseURL,
		cookieName: cookieName,
		httpClient: httpClient,
		getClient:  retryablehttp.NewRetryableClientFrom(httpClient, retryablehttp.RetryConfig{}),
		lg:         lg,
	}, nil
}

func (c *Client) Login(ctx context.Context, input model.LoginDTO) error {
	// the session cookie from the response lands in the jar
	return c.do(ctx, http.MethodPost, "/login", nil, input, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) GetOrders(ctx context.Context, pageIndex, limit int) (*model.OrdersPage, error) {
	query := url.Values{}
	query.Set("pageIndex", strconv.Itoa(pageIndex))
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var page model.OrdersPage
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, input model.CreateOrderDTO) error {
	return c.do(ctx, http.MethodPost, "/orders", nil, input, nil)
}

func (c *Client) PickUpOrder(ctx context.Context, orderID string) (*model.PickUpResponse, error) {
	var response model.PickUpResponse
	path := "/orders/" + url.PathEscape(orderID) + "/status/pick-up"
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) CreateRecipient(ctx context.Context, input model.CreateRecipientDTO) error {
	zipcode, err := strconv.Atoi(input.Zipcode)
	if err != nil {
		return fmt.Errorf("zipcode is not numeric: %w", err)
	}

	// the API wants the zipcode as a number
	payload := struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		State        string `json:"state"`
		City         string `json:"city"`
		Neighborhood string `json:"neighborhood"`
		Address      string `json:"address"`
		Zipcode      int    `json:"zipcode"`
	}{
		FullName:     input.FullName,
		Email:        input.Email,
		State:        input.State,
		City:         input.City,
		Neighborhood: input.Neighborhood,
		Address:      input.Address,
		Zipcode:      zipcode,
	}

	return c.do(ctx, http.MethodPost, "/recipients", nil, payload, nil)
}

func (c *Client) GetRecipientsLite(ctx context.Context, pageIndex int, q string) (*model.RecipientsPage, error) {
	query := url.Values{}
	query.Set("pageIndex", strconv.Itoa(pageIndex))
	if q != "" {
		query.Set("q", q)
	}

	var page model.RecipientsPage
	if err := c.do(ctx, http.MethodGet, "/recipients/lite", query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// SessionToken returns the raw session cookie value, empty when the jar
// holds none.
func (c *Client) SessionToken() string {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}

	for _, cookie := range c.httpClient.Jar.Cookies(base) {
		if cookie.Name == c.cookieName {
			return cookie.Value
		}
	}

	return ""
}

// ResetSession drops the cookie jar. Called on logout so a rejected
// upstream logout still leaves the process signed out locally.
func (c *Client) ResetSession() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New only fails on bad options, and we pass none
		return
	}

	c.httpClient.Jar = jar
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var resp *http.Response
	if method == http.MethodGet {
		resp, err = c.getClient.Do(ctx, req)
	} else {
		resp, err = c.httpClient.Do(req)
	}
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method+" "+path, "error").Inc()
		return fmt.Errorf("send request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.UpstreamRequestsTotal.WithLabelValues(method+" "+path, "rejected").Inc()
		return c.decodeError(resp)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(method+" "+path, "ok").Inc()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response of %s %s: %w", method, path, err)
		}
	}

	return nil
}

// decodeError maps an upstream rejection body {code, details} to a
// model.UpstreamError. A body that is not in that shape still yields an
// UpstreamError carrying the status code.
func (c *Client) decodeError(resp *http.Response) error {
	upstream := &model.UpstreamError{Status: resp.StatusCode}

	var payload struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		upstream.Code = payload.Code
		upstream.Details = payload.Details
	}

	c.lg.Warnf("upstream rejected request: %v", upstream)
	return upstream
}

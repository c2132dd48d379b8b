package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/listique/client/internal"
	"github.com/listique/client/internal/dto"
	"github.com/listique/client/internal/metrics"
)

type endpoint string

const (
	ListEndpoint     endpoint = "%s/api/v1/%s"
	ResourceEndpoint endpoint = "%s/api/v1/%s/%s"
	RateLimitReset   string   = "X-RateLimit-Reset"
)

type Session interface {
	Token(ctx context.Context) (string, error)
	Terminate(cause error)
}

type ClientConfigurator interface {
	GetApiUrl() (string, error)
	GetMaxRetries() (int, error)
	GetRequestsPerSecond() (int, error)
}

type ResourceClientCfg struct {
	Session      Session
	HTTPClient   *http.Client
	Configurator ClientConfigurator
}

// ResourceClient talks to the resource api. Transient failures (network
// errors, 5xx, 429) are retried with exponential backoff before an error
// surfaces; auth rejections terminate the session instead of retrying.
type ResourceClient struct {
	baseUrl    string
	session    Session
	client     *http.Client
	numRetries int
	limiter    *rate.Limiter
}

func NewResourceClient(cfg ResourceClientCfg) (*ResourceClient, error) {

	baseUrl, err := cfg.Configurator.GetApiUrl()

	if err != nil {
		return nil, fmt.Errorf("failed to get api url - %w", err)
	}

	numRetries, err := cfg.Configurator.GetMaxRetries()

	if err != nil {
		return nil, fmt.Errorf("failed to get max retries - %w", err)
	}

	rps, err := cfg.Configurator.GetRequestsPerSecond()

	if err != nil {
		return nil, fmt.Errorf("failed to get requests per second - %w", err)
	}

	httpClient := cfg.HTTPClient

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &ResourceClient{
		baseUrl:    baseUrl,
		session:    cfg.Session,
		client:     httpClient,
		numRetries: numRetries,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}

	return c, nil
}

func (c *ResourceClient) FetchPage(ctx context.Context, resource string, page dto.PageRequest) ([]byte, error) {

	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page request - %w", err)
	}

	listUrl := fmt.Sprintf(string(ListEndpoint), c.baseUrl, resource)
	listUrl = fmt.Sprintf("%v?%v", listUrl, page.Query().Encode())

	return c.do(ctx, request{
		method:   http.MethodGet,
		url:      listUrl,
		resource: resource,
	})
}

func (c *ResourceClient) Get(ctx context.Context, resource, id string) ([]byte, error) {

	return c.do(ctx, request{
		method:   http.MethodGet,
		url:      fmt.Sprintf(string(ResourceEndpoint), c.baseUrl, resource, url.PathEscape(id)),
		resource: resource,
	})
}

func (c *ResourceClient) Create(ctx context.Context, resource string, payload json.RawMessage) ([]byte, error) {

	return c.do(ctx, request{
		method:   http.MethodPost,
		url:      fmt.Sprintf(string(ListEndpoint), c.baseUrl, resource),
		resource: resource,
		body:     payload,
	})
}

func (c *ResourceClient) Update(ctx context.Context, resource, id string, payload json.RawMessage) ([]byte, error) {

	return c.do(ctx, request{
		method:   http.MethodPut,
		url:      fmt.Sprintf(string(ResourceEndpoint), c.baseUrl, resource, url.PathEscape(id)),
		resource: resource,
		body:     payload,
	})
}

func (c *ResourceClient) Delete(ctx context.Context, resource, id string) error {

	_, err := c.do(ctx, request{
		method:   http.MethodDelete,
		url:      fmt.Sprintf(string(ResourceEndpoint), c.baseUrl, resource, url.PathEscape(id)),
		resource: resource,
	})

	return err
}

type request struct {
	method   string
	url      string
	resource string
	body     []byte
}

func (r request) op() string {
	return fmt.Sprintf("%v %v", r.method, r.url)
}

type apiError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func decodeApiError(body []byte, status string) apiError {

	apiErr := apiError{}

	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error == "" {
		apiErr.Error = status
	}

	return apiErr
}

func (c *ResourceClient) do(ctx context.Context, r request) ([]byte, error) {

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, internal.NetworkError{Op: r.op(), Err: err}
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 250 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	expo.MaxElapsedTime = 0

	return c.doWithBackoff(ctx, r, 0, expo)
}

func (c *ResourceClient) doWithBackoff(ctx context.Context, r request, retry int, expo *backoff.ExponentialBackOff) ([]byte, error) {

	var reader io.Reader

	if len(r.body) > 0 {
		reader = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, reader)

	if err != nil {
		return nil, fmt.Errorf("failed to create request - %w", err)
	}

	token, err := c.session.Token(ctx)

	if err != nil {
		if errors.As(err, &internal.AuthError{}) {
			return nil, err
		}

		return nil, internal.NetworkError{Op: "token refresh", Err: err}
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", token))

	if len(r.body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)

	if err != nil {
		if retry < c.numRetries {
			if err := c.sleep(ctx, r, expo.NextBackOff()); err != nil {
				return nil, err
			}

			return c.doWithBackoff(ctx, r, retry+1, expo)
		}

		c.observe(r, 0)
		return nil, internal.NetworkError{Op: r.op(), Err: err}
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	if err != nil {
		c.observe(r, res.StatusCode)
		return nil, internal.NetworkError{Op: r.op(), Err: err}
	}

	if res.StatusCode == http.StatusTooManyRequests && retry < c.numRetries {
		delay := expo.NextBackOff()

		if sleepMs, err := strconv.ParseInt(res.Header.Get(RateLimitReset), 10, 64); err == nil {
			delay = time.Duration(sleepMs+10) * time.Millisecond
		}

		if err := c.sleep(ctx, r, delay); err != nil {
			return nil, err
		}

		return c.doWithBackoff(ctx, r, retry+1, expo)
	}

	if res.StatusCode >= 500 && retry < c.numRetries {
		if err := c.sleep(ctx, r, expo.NextBackOff()); err != nil {
			return nil, err
		}

		return c.doWithBackoff(ctx, r, retry+1, expo)
	}

	c.observe(r, res.StatusCode)

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return body, nil
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		authErr := internal.AuthError{
			StatusCode: res.StatusCode,
			Reason:     decodeApiError(body, res.Status).Error,
		}

		c.session.Terminate(authErr)
		return nil, authErr
	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500:
		return nil, internal.ServerError{
			StatusCode: res.StatusCode,
			Msg:        decodeApiError(body, res.Status).Error,
		}
	default:
		apiErr := decodeApiError(body, res.Status)

		return nil, internal.ValidationError{
			StatusCode: res.StatusCode,
			Msg:        apiErr.Error,
			Fields:     apiErr.Fields,
		}
	}
}

func (c *ResourceClient) sleep(ctx context.Context, r request, delay time.Duration) error {

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return internal.NetworkError{Op: r.op(), Err: ctx.Err()}
	}

	metrics.Retries.WithLabelValues(r.resource).Inc()
	return nil
}

func (c *ResourceClient) observe(r request, statusCode int) {
	metrics.Requests.WithLabelValues(r.method, r.resource, strconv.Itoa(statusCode)).Inc()
}

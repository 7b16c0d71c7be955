package linkedin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultHost is the RapidAPI host of the profile data service.
	DefaultHost = "fresh-linkedin-profile-data.p.rapidapi.com"
	// DefaultEndpoint is the base URL of the profile data service.
	DefaultEndpoint = "https://" + DefaultHost
	profilePath     = "/get-linkedin-profile"
)

// Client fetches raw profile payloads from the profile data service.
type Client struct {
	apiKey     string
	host       string
	endpoint   string
	httpClient *http.Client
	retry      RetryPolicy
	onRetry    func(attempt int, err error)
}

// ClientOption configures a Client.
type ClientOption func(c *Client)

// WithEndpoint overrides the service base URL.
func WithEndpoint(endpoint string) (opt ClientOption) {
	opt = func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
	return opt
}

// WithHost overrides the x-rapidapi-host header.
func WithHost(host string) (opt ClientOption) {
	opt = func(c *Client) {
		if host != "" {
			c.host = host
		}
	}
	return opt
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) (opt ClientOption) {
	opt = func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
	return opt
}

// WithRetryPolicy replaces the retry policy.
func WithRetryPolicy(p RetryPolicy) (opt ClientOption) {
	opt = func(c *Client) {
		c.retry = p
	}
	return opt
}

// WithRetryObserver registers a callback run before each retry.
func WithRetryObserver(fn func(attempt int, err error)) (opt ClientOption) {
	opt = func(c *Client) {
		c.onRetry = fn
	}
	return opt
}

// NewClient creates a client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) (client *Client) {
	client = &Client{
		apiKey:   apiKey,
		host:     DefaultHost,
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryPolicy(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// FetchProfile returns the raw JSON payload for username. Failures are
// *Error values classified by kind.
func (c *Client) FetchProfile(ctx context.Context, username string) (raw []byte, err error) {
	if c.apiKey == "" {
		err = newError(KindConfigMissing, errors.New("no API key configured"))
		return raw, err
	}

	query := url.Values{}
	query.Set("linkedin_url", ProfileURL(username))
	target := c.endpoint + profilePath + "?" + query.Encode()

	buildReq := func(ctx context.Context) (req *http.Request, err error) {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return req, err
		}
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.host)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "brand-weaver/1.0")
		return req, err
	}

	raw, err = doWithRetry(ctx, c.httpClient, buildReq, c.retry, c.onRetry)
	if err != nil {
		err = classify(err)
		return raw, err
	}

	return raw, err
}

// classify maps a transport or status failure to an extraction error kind.
func classify(err error) (out error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch code := statusErr.StatusCode; {
		case code == http.StatusTooManyRequests:
			out = newError(KindRateLimited, err)
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			out = &Error{
				Kind: KindConfigMissing,
				Hint: "The profile data service rejected the API key. Check RAPIDAPI_KEY.",
				Err:  err,
			}
		case code == http.StatusNotFound:
			out = &Error{
				Kind: KindInvalidInput,
				Hint: "No public LinkedIn profile was found for that username.",
				Err:  err,
			}
		default:
			out = newError(KindUpstream, err)
		}
		return out
	}

	if errors.Is(err, context.Canceled) {
		out = err
		return out
	}

	out = newError(KindNetwork, err)
	return out
}

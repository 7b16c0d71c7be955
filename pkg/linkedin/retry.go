package linkedin

import (
	"context"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// RetryPolicy bounds retries of upstream requests.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Jitter is the upper bound of the random delay added to each backoff.
	Jitter time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() (p RetryPolicy) {
	p = RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    8 * time.Second,
		Jitter:      400 * time.Millisecond,
	}
	return p
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       []byte
	RetryAfter time.Duration
}

func (e *StatusError) Error() (msg string) {
	msg = "upstream returned status " + strconv.Itoa(e.StatusCode)
	if snippet := strings.TrimSpace(string(e.Body)); snippet != "" {
		if len(snippet) > 300 {
			snippet = snippet[:300] + "..."
		}
		msg += ": " + snippet
	}
	return msg
}

// backoff returns the wait before the attempt following attempt.
func (p RetryPolicy) backoff(attempt int, retryAfter time.Duration) (wait time.Duration) {
	if retryAfter > 0 {
		wait = min(retryAfter, p.MaxDelay)
		return wait
	}

	wait = min(p.BaseDelay*time.Duration(1<<(attempt-1)), p.MaxDelay)
	if p.Jitter > 0 {
		wait += rand.N(p.Jitter)
	}
	return wait
}

// doWithRetry runs buildReq and client.Do until a 2xx response, a
// non-retryable failure, or the attempt budget runs out. onRetry is called
// before each retry.
func doWithRetry(ctx context.Context, client *http.Client, buildReq func(context.Context) (*http.Request, error), policy RetryPolicy, onRetry func(attempt int, err error)) (body []byte, err error) {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		var req *http.Request
		req, err = buildReq(ctx)
		if err != nil {
			err = errors.Wrap(err, "failed to create HTTP request")
			return body, err
		}

		var retryAfter time.Duration
		body, retryAfter, err = do(client, req)
		if err == nil {
			return body, err
		}

		if !retryable(err) || attempt == policy.MaxAttempts {
			return body, err
		}

		if onRetry != nil {
			onRetry(attempt, err)
		}

		err = sleep(ctx, policy.backoff(attempt, retryAfter))
		if err != nil {
			return body, err
		}
	}

	return body, err
}

func do(client *http.Client, req *http.Request) (body []byte, retryAfter time.Duration, err error) {
	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return body, retryAfter, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return body, retryAfter, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		err = &StatusError{StatusCode: resp.StatusCode, Body: body, RetryAfter: retryAfter}
		return body, retryAfter, err
	}

	return body, retryAfter, err
}

func retryable(err error) (ok bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		code := statusErr.StatusCode
		ok = code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500
		return ok
	}

	ok = isTransientNetErr(err)
	return ok
}

func isTransientNetErr(err error) (ok bool) {
	if errors.Is(err, context.Canceled) {
		return ok
	}
	if errors.Is(err, context.DeadlineExceeded) {
		ok = true
		return ok
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		ok = true
		return ok
	}

	msg := strings.ToLower(err.Error())
	ok = strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.HasSuffix(msg, "eof")
	return ok
}

// parseRetryAfter reads a Retry-After value in seconds or as an HTTP date.
func parseRetryAfter(value string, now time.Time) (d time.Duration) {
	value = strings.TrimSpace(value)
	if value == "" {
		return d
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs > 0 {
			d = time.Duration(secs) * time.Second
		}
		return d
	}

	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		d = at.Sub(now)
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		err = ctx.Err()
	}
	return err
}

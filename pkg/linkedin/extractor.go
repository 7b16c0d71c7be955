// Package linkedin resolves LinkedIn identifiers, fetches profile payloads
// from the profile data service and normalizes them into profile.Data.
package linkedin

import (
	"context"
	"time"

	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/pkg/errors"
)

// Fetcher returns the raw profile payload for a username.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (raw []byte, err error)
}

// Extractor runs resolve, fetch, normalize and validate for one identifier.
type Extractor struct {
	fetcher        Fetcher
	sampleFallback bool
	clock          func() time.Time
	logger         logging.Logger
	recorder       metrics.Recorder
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(e *Extractor)

// WithSampleFallback serves sample data when no fetcher is configured.
func WithSampleFallback(enabled bool) (opt ExtractorOption) {
	opt = func(e *Extractor) {
		e.sampleFallback = enabled
	}
	return opt
}

// WithExtractorClock sets the clock used for extraction timestamps.
func WithExtractorClock(clock func() time.Time) (opt ExtractorOption) {
	opt = func(e *Extractor) {
		if clock != nil {
			e.clock = clock
		}
	}
	return opt
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) (opt ExtractorOption) {
	opt = func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
	return opt
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder metrics.Recorder) (opt ExtractorOption) {
	opt = func(e *Extractor) {
		if recorder != nil {
			e.recorder = recorder
		}
	}
	return opt
}

// NewExtractor creates an Extractor. A nil fetcher means the profile data
// service is not configured.
func NewExtractor(fetcher Fetcher, opts ...ExtractorOption) (e *Extractor) {
	e = &Extractor{
		fetcher:  fetcher,
		clock:    time.Now,
		logger:   logging.NewNop(),
		recorder: metrics.NoopRecorder{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Configured reports whether a fetcher is set.
func (e *Extractor) Configured() (ok bool) {
	ok = e.fetcher != nil
	return ok
}

// Extract returns normalized, validated profile data for identifier. Errors
// are *Error values; use KindOf and HintOf to present them.
func (e *Extractor) Extract(ctx context.Context, identifier string) (data profile.Data, err error) {
	var username string
	username, err = ResolveUsername(identifier)
	if err != nil {
		e.recorder.IncExtraction(metrics.ResultFailed)
		return data, err
	}

	log := e.logger.With(logging.String("username", username))

	if e.fetcher == nil {
		if !e.sampleFallback {
			e.recorder.IncExtraction(metrics.ResultFailed)
			err = newError(KindConfigMissing, errors.New("no profile data service configured"))
			return data, err
		}

		log.Info("serving sample profile data")
		e.recorder.IncExtraction(metrics.ResultSample)
		data = profile.Sample(username, e.clock())
		return data, err
	}

	start := e.clock()

	var raw []byte
	raw, err = e.fetcher.FetchProfile(ctx, username)
	if err != nil {
		log.Warn("profile fetch failed", logging.String("kind", string(KindOf(err))), logging.Err(err))
		e.recorder.IncExtraction(metrics.ResultFailed)
		return data, err
	}

	data, err = Normalize(raw, e.clock())
	if err != nil {
		e.recorder.IncExtraction(metrics.ResultFailed)
		return data, err
	}

	if data.Profile.Username == "" {
		data.Profile.Username = username
		data.Profile.LinkedInURL = ProfileURL(username)
		if data.Profile.FullName == "" {
			data.Profile.FullName = profile.DisplayName(username)
		}
	}

	err = data.Validate()
	if err != nil {
		e.recorder.IncExtraction(metrics.ResultFailed)
		err = newError(KindUpstream, errors.Wrap(err, "normalized profile is invalid"))
		return data, err
	}

	log.Info("profile extracted",
		logging.Int("experience", len(data.Experience)),
		logging.Int("posts", len(data.FeaturedPosts)),
		logging.Duration("elapsed", e.clock().Sub(start)),
	)
	e.recorder.IncExtraction(metrics.ResultSuccess)

	return data, err
}

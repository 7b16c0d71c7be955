package linkedin

import (
	"github.com/pkg/errors"
)

// Kind classifies extraction failures.
type Kind string

const (
	KindConfigMissing Kind = "config_missing"
	KindInvalidInput  Kind = "invalid_input"
	KindRateLimited   Kind = "rate_limited"
	KindUpstream      Kind = "upstream"
	KindNetwork       Kind = "network"
)

//nolint:gochecknoglobals // fixed lookup
var hints = map[Kind]string{
	KindConfigMissing: "The profile data service is not configured. Set RAPIDAPI_KEY or enable sample data.",
	KindInvalidInput:  "Enter a LinkedIn profile URL such as https://www.linkedin.com/in/username or just the username.",
	KindRateLimited:   "Too many requests to the profile data service. Wait a minute and try again.",
	KindUpstream:      "The profile data service returned an unexpected response. Try again later.",
	KindNetwork:       "Could not reach the profile data service. Check your connection and try again.",
}

// Hint returns the user-facing message for kind.
func Hint(kind Kind) (hint string) {
	hint = hints[kind]
	return hint
}

// Error is an extraction failure with a category and a user-facing hint.
type Error struct {
	Kind Kind
	Hint string
	Err  error
}

func (e *Error) Error() (msg string) {
	msg = string(e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() (err error) {
	err = e.Err
	return err
}

// newError wraps err with kind and the kind's default hint.
func newError(kind Kind, err error) (e *Error) {
	e = &Error{Kind: kind, Hint: Hint(kind), Err: err}
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUpstream when there is none.
func KindOf(err error) (kind Kind) {
	var e *Error
	if errors.As(err, &e) {
		kind = e.Kind
		return kind
	}
	kind = KindUpstream
	return kind
}

// HintOf returns the hint carried by err, or the hint for KindOf(err).
func HintOf(err error) (hint string) {
	var e *Error
	if errors.As(err, &e) && e.Hint != "" {
		hint = e.Hint
		return hint
	}
	hint = Hint(KindOf(err))
	return hint
}

package linkedin

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // compiled once
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{1,99}$`)

// ResolveUsername turns a profile URL or bare username into the username.
// Accepted forms include https://www.linkedin.com/in/<u>/, linkedin.com/in/<u>,
// in/<u>, @<u> and <u>.
func ResolveUsername(identifier string) (username string, err error) {
	input := strings.TrimSpace(identifier)
	if input == "" {
		err = newError(KindInvalidInput, errors.New("identifier is empty"))
		return username, err
	}

	candidate := input

	switch {
	case strings.Contains(input, "/") || strings.Contains(input, "."):
		candidate, err = usernameFromURL(input)
		if err != nil {
			err = newError(KindInvalidInput, err)
			return username, err
		}
	case strings.HasPrefix(input, "@"):
		candidate = strings.TrimPrefix(input, "@")
	}

	if !usernamePattern.MatchString(candidate) {
		err = newError(KindInvalidInput, errors.Errorf("invalid username: %q", candidate))
		return username, err
	}

	username = candidate
	return username, err
}

func usernameFromURL(input string) (username string, err error) {
	raw := input
	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "/")
	}

	var parsed *url.URL
	parsed, err = url.Parse(raw)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile URL: %s", input)
		return username, err
	}

	host := strings.ToLower(parsed.Hostname())
	path := parsed.Path

	// "in/<u>" parses with "in" as the host.
	if host == "in" {
		host = "linkedin.com"
		path = "/in" + path
	}

	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		err = errors.Errorf("not a LinkedIn URL: %s", input)
		return username, err
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "in" || segments[1] == "" {
		err = errors.Errorf("not a LinkedIn profile URL: %s", input)
		return username, err
	}

	username, err = url.PathUnescape(segments[1])
	if err != nil {
		err = errors.Wrapf(err, "failed to decode username in %s", input)
		return username, err
	}

	return username, err
}

// ProfileURL returns the canonical profile URL for username.
func ProfileURL(username string) (u string) {
	u = "https://linkedin.com/in/" + username
	return u
}

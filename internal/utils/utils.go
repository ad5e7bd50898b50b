package utils

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

// Errors
var (
	ErrEmptyURL          = &url.Error{Op: "normalize", URL: "", Err: &errStr{"empty url"}}
	ErrMissingHost       = &url.Error{Op: "normalize", URL: "", Err: &errStr{"missing host"}}
	ErrUnsupportedScheme = &url.Error{Op: "normalize", URL: "", Err: &errStr{"unsupported scheme"}}
)

type errStr struct{ s string }

func (e *errStr) Error() string { return e.s }

// NormalizeTarget turns a user-supplied page address into a deterministic
// navigable URL. Schemeless input gets https, the host is lowercased and
// IDN-encoded, default ports and fragments are dropped, and query params are
// sorted so the same page always yields the same string.
//
// Examples:
//
//	NormalizeTarget("Example.com/A/../b?z=1&a=2") → "https://example.com/b?a=2&z=1"
//	NormalizeTarget("http://bücher.de")           → "http://xn--bcher-kva.de"
func NormalizeTarget(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", raw, err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrUnsupportedScheme
	}
	if u.Host == "" {
		return "", ErrMissingHost
	}

	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	// Preserve non-default port only
	port := u.Port()
	if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") || port == "" {
		u.Host = host
	} else {
		u.Host = net.JoinHostPort(host, port)
	}

	// Drop userinfo (credentials)
	u.User = nil

	cleanPath := path.Clean(u.Path)
	if cleanPath == "." {
		cleanPath = ""
	}
	u.Path = cleanPath

	u.Fragment = ""
	u.RawQuery = sortedQuery(u.Query())

	return u.String(), nil
}

// sortedQuery re-encodes values with keys and values sorted for determinism.
func sortedQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := url.Values{}
	for _, k := range keys {
		values := q[k]
		sort.Strings(values)
		for _, v := range values {
			ordered.Add(k, v)
		}
	}
	return ordered.Encode()
}

// DisplayHost returns the hostname of a normalized URL for log output,
// falling back to the raw input when it cannot be parsed.
func DisplayHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

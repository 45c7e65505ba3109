// Package url parses the small subset of http URLs the browser fetches.
package url

import (
	"fmt"
	"strings"
)

const scheme = "http://"

// URL is a parsed http URL. Every field is already split out; Port defaults
// to 80 and Path and Searchpart may be empty.
type URL struct {
	Host       string
	Port       string
	Path       string
	Searchpart string
}

// Parse splits a raw http URL into its parts. Only the http scheme is
// supported; anything else is an error.
func Parse(raw string) (URL, error) {
	if !strings.HasPrefix(raw, scheme) {
		return URL{}, fmt.Errorf("unsupported scheme in %q: only http is supported", raw)
	}
	rest := strings.TrimPrefix(raw, scheme)

	authority, tail, _ := strings.Cut(rest, "/")
	if authority == "" {
		return URL{}, fmt.Errorf("missing host in %q", raw)
	}

	u := URL{Port: "80"}
	if host, port, ok := strings.Cut(authority, ":"); ok {
		u.Host = host
		u.Port = port
	} else {
		u.Host = authority
	}

	u.Path, u.Searchpart, _ = strings.Cut(tail, "?")
	return u, nil
}

// String reassembles the URL for request building and display.
func (u URL) String() string {
	s := scheme + u.Host + ":" + u.Port + "/" + u.Path
	if u.Searchpart != "" {
		s += "?" + u.Searchpart
	}
	return s
}
